package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/usecases"
	"aivault.backend/pkg/crypto"
	"aivault.backend/pkg/jwt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
}

func TestUserUsecase_Register(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	input := &entities.RegisterInput{
		Email:    "owner@example.com",
		Name:     "Asha Stores",
		Password: "supersecret",
	}

	mockUserRepo.On("GetByEmail", context.Background(), input.Email).Return(nil, domainerrors.ErrNotFound).Once()
	mockUserRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()
	mockBusinessRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.BusinessProfile")).Return(nil).Once()

	resp, err := uc.Register(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	require.NotNil(t, resp.Business)

	assert.Equal(t, input.Email, resp.User.Email)
	assert.Equal(t, entities.AuthProviderPassword, resp.User.AuthProvider)
	assert.True(t, resp.User.IsActive)
	assert.NotEqual(t, input.Password, resp.User.PasswordHash)

	// registration always seeds a published starter listing
	assert.Equal(t, "Asha Stores", resp.Business.Name)
	assert.True(t, resp.Business.Published)
	assert.Equal(t, 1, resp.Business.Version)

	mockUserRepo.AssertExpectations(t)
	mockBusinessRepo.AssertExpectations(t)
}

func TestUserUsecase_Register_BusinessNameFallsBackToEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	input := &entities.RegisterInput{
		Email:    "anon@example.com",
		Password: "supersecret",
	}

	mockUserRepo.On("GetByEmail", context.Background(), input.Email).Return(nil, domainerrors.ErrNotFound).Once()
	mockUserRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()
	mockBusinessRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.BusinessProfile")).Return(nil).Once()

	resp, err := uc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "anon@example.com", resp.Business.Name)
	assert.False(t, resp.User.Name.Valid)
}

func TestUserUsecase_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	existing := &entities.User{ID: uuid.New(), Email: "owner@example.com"}
	mockUserRepo.On("GetByEmail", context.Background(), existing.Email).Return(existing, nil).Once()

	resp, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:    existing.Email,
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.Nil(t, resp)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "Email already registered", appErr.Message)

	mockUserRepo.AssertExpectations(t)
	mockBusinessRepo.AssertNotCalled(t, "Create")
}

func TestUserUsecase_Login(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	hash, err := crypto.HashPassword("supersecret")
	require.NoError(t, err)

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	mockUserRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()
	mockUserRepo.On("UpdateLastLogin", context.Background(), user.ID).Return(nil).Once()

	pair, loggedIn, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    user.Email,
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.ID, loggedIn.ID)

	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	hash, err := crypto.HashPassword("supersecret")
	require.NoError(t, err)

	user := &entities.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash, IsActive: true}
	mockUserRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()

	_, _, err = uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	mockUserRepo.AssertNotCalled(t, "UpdateLastLogin")
}

func TestUserUsecase_Login_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	mockUserRepo.On("GetByEmail", context.Background(), "ghost@example.com").Return(nil, domainerrors.ErrNotFound).Once()

	_, _, err := uc.Login(context.Background(), &entities.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserUsecase_Login_InactiveAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	hash, err := crypto.HashPassword("supersecret")
	require.NoError(t, err)

	user := &entities.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash, IsActive: false}
	mockUserRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()

	_, _, err = uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "supersecret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserUsecase_List(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	uc := usecases.NewUserUsecase(mockUserRepo, mockBusinessRepo, newTestJWTService())

	users := []*entities.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}
	mockUserRepo.On("List", context.Background(), "example", 20, 0).Return(users, int64(2), nil).Once()

	got, meta, err := uc.List(context.Background(), "example", 1, 20)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), meta.TotalCount)
	assert.Equal(t, 1, meta.Page)
}
