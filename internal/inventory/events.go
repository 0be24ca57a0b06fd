package inventory

import "github.com/rogerio-castellano/inventory-console/internal/models"

type Event interface {
	event()
}

// ProductsLoaded replaces the collection with a fetched one.
type ProductsLoaded struct {
	Products []models.Product
}

type SearchChanged struct {
	Term string
}

// PageSelected sets the current page as is, without bounds checks.
type PageSelected struct {
	Page int
}

type DraftFieldChanged struct {
	Field string
	Value string
}

// DraftRejected opens the alert with a validation message.
type DraftRejected struct {
	Message string
}

// ProductCreated appends the stored product and resets the draft.
type ProductCreated struct {
	Product models.Product
}

// CreateFailed opens the alert with the generic create failure message.
type CreateFailed struct{}

// DeleteRequested opens the delete prompt for a product.
type DeleteRequested struct {
	Product models.Product
}

// ProductDeleted removes the product and closes the delete prompt.
type ProductDeleted struct {
	ID int
}

type DeleteCancelled struct{}

type AlertDismissed struct{}

func (ProductsLoaded) event()    {}
func (SearchChanged) event()     {}
func (PageSelected) event()      {}
func (DraftFieldChanged) event() {}
func (DraftRejected) event()     {}
func (ProductCreated) event()    {}
func (CreateFailed) event()      {}
func (DeleteRequested) event()   {}
func (ProductDeleted) event()    {}
func (DeleteCancelled) event()   {}
func (AlertDismissed) event()    {}
