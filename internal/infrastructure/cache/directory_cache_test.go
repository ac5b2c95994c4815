package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aivault.backend/internal/domain/entities"
)

func snapshot(names ...string) []*entities.DirectoryEntry {
	entries := make([]*entities.DirectoryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &entities.DirectoryEntry{
			Business: &entities.BusinessProfile{Name: name},
		})
	}
	return entries
}

func TestDirectoryCache_MissOnEmpty(t *testing.T) {
	c := NewDirectoryCache(300 * time.Second)
	got, ok := c.Get()
	require.False(t, ok)
	require.Nil(t, got)
}

func TestDirectoryCache_HitWithinTTL(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := NewDirectoryCacheWithClock(300*time.Second, func() time.Time { return current })

	c.Set(snapshot("Spice Garden"))

	got, ok := c.Get()
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "Spice Garden", got[0].Business.Name)

	current = current.Add(299 * time.Second)
	_, ok = c.Get()
	require.True(t, ok)
}

func TestDirectoryCache_ExpiresAtTTLBoundary(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := NewDirectoryCacheWithClock(300*time.Second, func() time.Time { return current })

	c.Set(snapshot("Spice Garden"))

	current = current.Add(300 * time.Second)
	_, ok := c.Get()
	require.False(t, ok)
}

func TestDirectoryCache_SetRestartsWindow(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := NewDirectoryCacheWithClock(300*time.Second, func() time.Time { return current })

	c.Set(snapshot("old"))
	current = current.Add(200 * time.Second)
	c.Set(snapshot("new"))

	current = current.Add(200 * time.Second)
	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, "new", got[0].Business.Name)
}

func TestDirectoryCache_Invalidate(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := NewDirectoryCacheWithClock(300*time.Second, func() time.Time { return current })

	c.Set(snapshot("Spice Garden"))
	c.Invalidate()

	_, ok := c.Get()
	require.False(t, ok)
}

func TestDirectoryCache_ZeroTTLDisables(t *testing.T) {
	c := NewDirectoryCache(0)
	c.Set(snapshot("Spice Garden"))
	_, ok := c.Get()
	require.False(t, ok)
}

func TestDirectoryCache_EmptySnapshotIsCacheable(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c := NewDirectoryCacheWithClock(300*time.Second, func() time.Time { return current })

	c.Set([]*entities.DirectoryEntry{})
	got, ok := c.Get()
	require.True(t, ok)
	require.Empty(t, got)
}
