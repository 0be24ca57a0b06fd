package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()
	mr := miniredis.RunT(t)

	s, err := Connect(context.Background(), config.RedisConfig{
		Addr:        mr.Addr(),
		SnapshotKey: "test:snapshot",
		SnapshotTTL: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestSaveAndLoad(t *testing.T) {
	mr, s := startStore(t)
	ctx := context.Background()

	products := []models.Product{
		{ID: 1, Name: "Arroz", Quantity: 10, Unit: "kg", AlertLevel: 2},
		{ID: 2, Name: "Leche", Quantity: 1.5, Unit: "litros", AlertLevel: 3},
	}
	require.NoError(t, s.Save(ctx, products))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, products, got)
	assert.Equal(t, time.Minute, mr.TTL("test:snapshot"))
}

func TestLoad_Miss(t *testing.T) {
	_, s := startStore(t)

	got, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestLoad_Expired(t *testing.T) {
	mr, s := startStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []models.Product{{ID: 1, Name: "Arroz"}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_Corrupt(t *testing.T) {
	mr, s := startStore(t)
	require.NoError(t, mr.Set("test:snapshot", "not json"))

	_, _, err := s.Load(context.Background())
	assert.Error(t, err)
}

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
