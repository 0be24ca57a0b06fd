package listview

import (
	"fmt"
	"testing"

	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: i + 1, Name: fmt.Sprintf("Item %02d", i+1), Quantity: 1, Unit: "kg", AlertLevel: 1}
	}
	return products
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Arroz Blanco"},
		{ID: 2, Name: "Frijol"},
		{ID: 3, Name: "arroz integral"},
		{ID: 4, Name: "Azúcar"},
	}

	tests := []struct {
		name   string
		term   string
		expect []string
	}{
		{name: "Empty term keeps order", term: "", expect: []string{"Arroz Blanco", "Frijol", "arroz integral", "Azúcar"}},
		{name: "Case insensitive", term: "ARROZ", expect: []string{"Arroz Blanco", "arroz integral"}},
		{name: "Substring in the middle", term: "inte", expect: []string{"arroz integral"}},
		{name: "Non ascii", term: "AZÚ", expect: []string{"Azúcar"}},
		{name: "No match", term: "leche", expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, names(Filter(products, tt.term)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	products := seed(3)
	filtered := Filter(products, "")
	filtered[0].Name = "changed"

	assert.Equal(t, "Item 01", products[0].Name)
}

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 4: 1, 5: 1, 6: 2, 10: 2, 11: 3}
	for count, expect := range cases {
		assert.Equal(t, expect, TotalPages(count), "count %d", count)
	}
}

func TestPaginate(t *testing.T) {
	products := seed(12)

	tests := []struct {
		name   string
		page   int
		expect []string
	}{
		{name: "First page", page: 1, expect: []string{"Item 01", "Item 02", "Item 03", "Item 04", "Item 05"}},
		{name: "Second page", page: 2, expect: []string{"Item 06", "Item 07", "Item 08", "Item 09", "Item 10"}},
		{name: "Partial last page", page: 3, expect: []string{"Item 11", "Item 12"}},
		{name: "Past the end", page: 4, expect: []string{}},
		{name: "Page zero", page: 0, expect: []string{}},
		{name: "Negative page", page: -2, expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, names(Paginate(products, tt.page)))
		})
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	items := Paginate(nil, 1)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBuild(t *testing.T) {
	products := append(seed(7), models.Product{ID: 99, Name: "Other"})

	page := Build(products, "item", 2)

	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 7, page.TotalCount)
	assert.Equal(t, []string{"Item 06", "Item 07"}, names(page.Items))
	assert.False(t, page.OutOfRange())
}

func TestBuild_PageDriftIsKept(t *testing.T) {
	products := seed(12)

	page := Build(products, "Item 1", 3)

	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.True(t, page.OutOfRange())
}

func TestBuild_Idempotent(t *testing.T) {
	products := seed(9)

	first := Build(products, "item", 2)
	second := Build(products, "item", 2)

	assert.Equal(t, first, second)
}

func TestSelector(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Selector(3))
	assert.Empty(t, Selector(0))
}
