package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
)

func TestOperationalInfoRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createOperationalInfoTable(t, db)
	repo := NewOperationalInfoRepository(db)
	ctx := context.Background()
	businessID := uuid.New()

	info := &entities.OperationalInfo{
		BusinessID:      businessID,
		OpeningHours:    "09:00",
		ClosingHours:    "22:00",
		OffDays:         []string{"monday", "tuesday"},
		DeliveryOptions: null.StringFrom("in-house"),
		WifiAvailable:   true,
	}
	require.NoError(t, repo.Create(ctx, info))
	require.NotEqual(t, uuid.Nil, info.ID)

	got, err := repo.GetByID(ctx, info.ID)
	require.NoError(t, err)
	require.Equal(t, "09:00", got.OpeningHours)
	require.Equal(t, []string{"monday", "tuesday"}, got.OffDays)
	require.True(t, got.WifiAvailable)
	require.Equal(t, "in-house", got.DeliveryOptions.String)

	byBusiness, err := repo.GetByBusinessID(ctx, businessID)
	require.NoError(t, err)
	require.Equal(t, info.ID, byBusiness.ID)
}

func TestOperationalInfoRepository_EmptyOffDays(t *testing.T) {
	db := newTestDB(t)
	createOperationalInfoTable(t, db)
	repo := NewOperationalInfoRepository(db)
	ctx := context.Background()

	info := &entities.OperationalInfo{
		BusinessID:   uuid.New(),
		OpeningHours: "08:00",
		ClosingHours: "20:00",
	}
	require.NoError(t, repo.Create(ctx, info))

	got, err := repo.GetByID(ctx, info.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OffDays)
	require.Empty(t, got.OffDays)
}

func TestOperationalInfoRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createOperationalInfoTable(t, db)
	repo := NewOperationalInfoRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByBusinessID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
