package cmd

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/rogerio-castellano/inventory-console/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAddCmd(v *viper.Viper) *cobra.Command {
	var name, quantity, unit, alertLevel string

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer a.Close()

			fields := []struct{ field, value string }{
				{models.FieldName, name},
				{models.FieldQuantity, quantity},
				{models.FieldUnit, unit},
				{models.FieldAlertLevel, alertLevel},
			}
			for _, f := range fields {
				if err := a.ctrl.SetField(f.field, f.value); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if err := a.ctrl.Submit(cmd.Context()); err != nil {
				render.Alert(out, a.ctrl.State().Alert)
				return fmt.Errorf("product not added: %w", err)
			}

			products := a.ctrl.State().Products
			fmt.Fprintln(out, "Producto agregado:")
			render.Product(out, products[len(products)-1])
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "Product name")
	c.Flags().StringVar(&quantity, "quantity", "", "Quantity in stock, greater than zero")
	c.Flags().StringVar(&unit, "unit", "", "Unit of measure, e.g. kg or litros")
	c.Flags().StringVar(&alertLevel, "alert-level", "", "Alert level, greater than zero")
	return c
}
