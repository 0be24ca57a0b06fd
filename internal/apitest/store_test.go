package apitest

import (
	"testing"

	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore()
	s.Seed(models.Product{ID: 4, Name: "Arroz"})

	created := s.Create(models.Draft{Name: "Leche", Quantity: 2, Unit: "litros", AlertLevel: 1})
	assert.Equal(t, 5, created.ID)

	require.NoError(t, s.Delete(4))
	assert.ErrorIs(t, s.Delete(4), ErrProductNotFound)
	assert.Equal(t, []models.Product{created}, s.GetAll())
}
