// Package listview derives the page of products to display from the full
// collection, the search term and the current page number.
package listview

import (
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// PageSize is the number of products shown per page.
const PageSize = 5

// Page is the displayed subset of the filtered collection.
type Page struct {
	Items      []models.Product
	Number     int
	TotalPages int
	TotalCount int
}

func matchesSearch(p models.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}

// Filter returns the products whose name contains term, ignoring case. The
// input order is kept and the input slice is never modified.
func Filter(products []models.Product, term string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TotalPages returns ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// Paginate returns the 1-indexed page of filtered. A page outside
// 1..TotalPages yields an empty slice.
func Paginate(filtered []models.Product, page int) []models.Product {
	if page < 1 {
		return []models.Product{}
	}

	start := clamp((page-1)*PageSize, 0, len(filtered))
	end := clamp(page*PageSize, start, len(filtered))

	items := make([]models.Product, end-start)
	copy(items, filtered[start:end])
	return items
}

// Build filters then paginates.
func Build(products []models.Product, term string, page int) Page {
	filtered := Filter(products, term)
	return Page{
		Items:      Paginate(filtered, page),
		Number:     page,
		TotalPages: TotalPages(len(filtered)),
		TotalCount: len(filtered),
	}
}

// Selector lists the page numbers a user can pick, 1 through totalPages.
func Selector(totalPages int) []int {
	pages := make([]int, 0, max(totalPages, 0))
	for i := 1; i <= totalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

// OutOfRange reports whether the page number points past the last page.
func (p Page) OutOfRange() bool {
	return p.Number < 1 || p.Number > p.TotalPages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
