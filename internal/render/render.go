// Package render writes the inventory view as plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/inventory"
	"github.com/rogerio-castellano/inventory-console/internal/listview"
	"github.com/rogerio-castellano/inventory-console/internal/models"
)

const (
	title    = "Gestión de Inventario"
	subtitle = "Aquí puedes gestionar los productos en inventario."
)

// Number formats a quantity without trailing zeros.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Product writes one product card.
func Product(w io.Writer, p models.Product) {
	marker := ""
	if p.LowStock() {
		marker = " (!)"
	}
	fmt.Fprintf(w, "#%d %s%s\n", p.ID, p.Name, marker)
	fmt.Fprintf(w, "    Cantidad: %s %s\n", Number(p.Quantity), p.Unit)
	fmt.Fprintf(w, "    Nivel de Alerta: %s\n", Number(p.AlertLevel))
}

// Page writes the cards of the page followed by the page selector.
func Page(w io.Writer, page listview.Page) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No hay productos para mostrar.")
	}
	for _, p := range page.Items {
		Product(w, p)
	}
	if sel := Selector(page); sel != "" {
		fmt.Fprintf(w, "\nPáginas: %s\n", sel)
	}
}

// Selector lists every page number, with the current one in brackets.
func Selector(page listview.Page) string {
	numbers := listview.Selector(page.TotalPages)
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		if n == page.Number {
			parts[i] = fmt.Sprintf("[%d]", n)
			continue
		}
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func Alert(w io.Writer, message string) {
	fmt.Fprintln(w, "== Alerta ==")
	fmt.Fprintln(w, message)
	fmt.Fprintln(w, "[ok] Aceptar")
}

func DeletePrompt(w io.Writer, p models.Product) {
	fmt.Fprintln(w, "== Confirmar Eliminación ==")
	fmt.Fprintf(w, models.MsgDeleteConfirmation+"\n", p.Name)
	fmt.Fprintln(w, "[n] Cancelar  [y] Eliminar")
}

// Draft writes the add form with its current values.
func Draft(w io.Writer, d models.Draft) {
	fmt.Fprintf(w, "Nombre del producto: %s\n", d.Name)
	fmt.Fprintf(w, "Cantidad: %s\n", Number(d.Quantity))
	fmt.Fprintf(w, "Unidad (ej. kg, litros): %s\n", d.Unit)
	fmt.Fprintf(w, "Nivel de alerta: %s\n", Number(d.AlertLevel))
}

// State writes the whole screen: header, search, page, then any open dialog.
func State(w io.Writer, s inventory.State) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, subtitle)
	if s.Search != "" {
		fmt.Fprintf(w, "Buscar: %s\n", s.Search)
	}
	fmt.Fprintln(w)

	Page(w, s.View())

	if s.AlertOpen() {
		fmt.Fprintln(w)
		Alert(w, s.Alert)
	}
	if s.DeletePromptOpen() {
		fmt.Fprintln(w)
		DeletePrompt(w, *s.PendingDelete)
	}
}
