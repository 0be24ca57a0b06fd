// Package inventory holds the state of the inventory view and the
// transitions user actions and service replies apply to it.
package inventory

import (
	"github.com/rogerio-castellano/inventory-console/internal/listview"
	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// State is everything the inventory view shows. Values are never mutated in
// place; Apply returns a new State.
type State struct {
	Products      []models.Product
	Draft         models.Draft
	Search        string
	Page          int
	PendingDelete *models.Product
	Alert         string
}

func NewState() State {
	return State{
		Products: []models.Product{},
		Page:     1,
	}
}

// View derives the page of products to display.
func (s State) View() listview.Page {
	return listview.Build(s.Products, s.Search, s.Page)
}

// DeletePromptOpen reports whether a delete is waiting for confirmation.
func (s State) DeletePromptOpen() bool {
	return s.PendingDelete != nil
}

func (s State) AlertOpen() bool {
	return s.Alert != ""
}

// Find returns the product with id from the local collection.
func (s State) Find(id int) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
