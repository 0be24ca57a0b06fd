package inventory

import "github.com/rogerio-castellano/inventory-console/internal/models"

// Apply returns the state that results from e. It does not modify s or any
// slice reachable from it.
func Apply(s State, e Event) State {
	switch e := e.(type) {
	case ProductsLoaded:
		s.Products = cloneProducts(e.Products)

	case SearchChanged:
		s.Search = e.Term

	case PageSelected:
		s.Page = e.Page

	case DraftFieldChanged:
		if d, err := s.Draft.SetField(e.Field, e.Value); err == nil {
			s.Draft = d
		}

	case DraftRejected:
		s.Alert = e.Message

	case ProductCreated:
		products := make([]models.Product, len(s.Products), len(s.Products)+1)
		copy(products, s.Products)
		s.Products = append(products, e.Product)
		s.Draft = models.Draft{}

	case CreateFailed:
		s.Alert = models.MsgCreateFailed

	case DeleteRequested:
		p := e.Product
		s.PendingDelete = &p

	case ProductDeleted:
		products := make([]models.Product, 0, len(s.Products))
		for _, p := range s.Products {
			if p.ID != e.ID {
				products = append(products, p)
			}
		}
		s.Products = products
		s.PendingDelete = nil

	case DeleteCancelled:
		s.PendingDelete = nil

	case AlertDismissed:
		s.Alert = ""
	}
	return s
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
