package models

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/inventory-console/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		expectField string
		expectMsg   string
	}{
		{
			name:        "Empty name",
			draft:       Draft{Name: "", Quantity: 2, Unit: "kg", AlertLevel: 5},
			expectField: FieldName,
			expectMsg:   MsgNameRequired,
		},
		{
			name:        "Blank name",
			draft:       Draft{Name: "   ", Quantity: 2, Unit: "kg", AlertLevel: 5},
			expectField: FieldName,
			expectMsg:   MsgNameRequired,
		},
		{
			name:        "Zero quantity",
			draft:       Draft{Name: "Rice", Quantity: 0, Unit: "kg", AlertLevel: 5},
			expectField: FieldQuantity,
			expectMsg:   MsgQuantityInvalid,
		},
		{
			name:        "Negative quantity",
			draft:       Draft{Name: "Rice", Quantity: -1, Unit: "kg", AlertLevel: 5},
			expectField: FieldQuantity,
			expectMsg:   MsgQuantityInvalid,
		},
		{
			name:        "Blank unit",
			draft:       Draft{Name: "Rice", Quantity: 1, Unit: " ", AlertLevel: 5},
			expectField: FieldUnit,
			expectMsg:   MsgUnitRequired,
		},
		{
			name:        "Zero alert level",
			draft:       Draft{Name: "Rice", Quantity: 1, Unit: "kg"},
			expectField: FieldAlertLevel,
			expectMsg:   MsgAlertLevelInvalid,
		},
		{
			name:        "First failure wins",
			draft:       Draft{},
			expectField: FieldName,
			expectMsg:   MsgNameRequired,
		},
		{
			name:        "Quantity reported before unit",
			draft:       Draft{Name: "Rice"},
			expectField: FieldQuantity,
			expectMsg:   MsgQuantityInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			require.Error(t, err)

			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr), "expected a validation error, got %T", err)
			assert.Equal(t, tt.expectField, vErr.Field)
			assert.Equal(t, tt.expectMsg, vErr.Message)
		})
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	err := ValidateDraft(Draft{Name: "Rice", Quantity: 10, Unit: "kg", AlertLevel: 3})
	assert.NoError(t, err)
}

func TestDraftSetField(t *testing.T) {
	d := Draft{}

	var err error
	d, err = d.SetField(FieldName, "Rice")
	require.NoError(t, err)
	d, err = d.SetField(FieldQuantity, " 10.5 ")
	require.NoError(t, err)
	d, err = d.SetField(FieldUnit, "kg")
	require.NoError(t, err)
	d, err = d.SetField(FieldAlertLevel, "abc")
	require.NoError(t, err)

	assert.Equal(t, Draft{Name: "Rice", Quantity: 10.5, Unit: "kg", AlertLevel: 0}, d)

	d, err = d.SetField(FieldQuantity, "NaN")
	require.NoError(t, err)
	assert.Zero(t, d.Quantity)

	_, err = d.SetField("price", "3")
	assert.Error(t, err)
}

func TestProductLowStock(t *testing.T) {
	assert.True(t, Product{Quantity: 2, AlertLevel: 5}.LowStock())
	assert.False(t, Product{Quantity: 5, AlertLevel: 5}.LowStock())
}
