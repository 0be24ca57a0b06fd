package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rogerio-castellano/inventory-console/internal/apperrors"
)

// Messages shown to the user through the alert box.
const (
	MsgNameRequired       = "Por favor, ingrese el nombre del producto"
	MsgQuantityInvalid    = "Por favor, ingrese una cantidad válida"
	MsgUnitRequired       = "Por favor, ingrese la unidad de medida"
	MsgAlertLevelInvalid  = "Por favor, ingrese un nivel de alerta válido"
	MsgCreateFailed       = "Error al agregar el producto"
	MsgDeleteConfirmation = "¿Está seguro que desea eliminar el producto \"%s\"?"
)

// Form field names, as sent on the wire.
const (
	FieldName       = "name"
	FieldQuantity   = "quantity"
	FieldUnit       = "unit"
	FieldAlertLevel = "alertLevel"
)

var draftMessages = map[string]string{
	"Name":       MsgNameRequired,
	"Quantity":   MsgQuantityInvalid,
	"Unit":       MsgUnitRequired,
	"AlertLevel": MsgAlertLevelInvalid,
}

var draftFields = map[string]string{
	"Name":       FieldName,
	"Quantity":   FieldQuantity,
	"Unit":       FieldUnit,
	"AlertLevel": FieldAlertLevel,
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
}

// ValidateDraft checks the draft fields in declaration order and returns the
// first failure as an *apperrors.ValidationError.
func ValidateDraft(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	return apperrors.NewValidationError(draftFields[first.Field()], draftMessages[first.Field()])
}

// SetField assigns a raw form value to the named field. Numeric values that do
// not parse are stored as zero so validation rejects them later.
func (d Draft) SetField(field, value string) (Draft, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldQuantity:
		d.Quantity = parseNumber(value)
	case FieldUnit:
		d.Unit = value
	case FieldAlertLevel:
		d.AlertLevel = parseNumber(value)
	default:
		return d, fmt.Errorf("unknown draft field %q", field)
	}
	return d, nil
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
