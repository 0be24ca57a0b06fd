package models

// Product represents a product entity in the inventory service.
type Product struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	AlertLevel float64 `json:"alertLevel"`
}

// LowStock reports whether the quantity sits below the alert level. It is
// only used to mark the product when rendered.
func (p Product) LowStock() bool {
	return p.Quantity < p.AlertLevel
}

// Draft holds the values of the add form before they are submitted.
type Draft struct {
	Name       string  `json:"name" validate:"notblank"`
	Quantity   float64 `json:"quantity" validate:"gt=0"`
	Unit       string  `json:"unit" validate:"notblank"`
	AlertLevel float64 `json:"alertLevel" validate:"gt=0"`
}

// IsEmpty reports whether the draft holds the reset values.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}
