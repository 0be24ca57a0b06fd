package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/apperrors"
	"github.com/rogerio-castellano/inventory-console/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDeleteCmd(v *viper.Viper) *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product ID %q", args[0])
			}

			a, err := newApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if err := a.ctrl.Mount(cmd.Context()); err != nil {
				if len(a.ctrl.State().Products) == 0 {
					return fmt.Errorf("could not load products: %w", err)
				}
				fmt.Fprintln(out, "Usando la última copia guardada de los productos.")
			}

			product, ok := a.ctrl.State().Find(id)
			if !ok {
				return apperrors.NewNotFoundError("product", args[0])
			}

			a.ctrl.RequestDelete(product)
			if !yes {
				render.DeletePrompt(out, product)
				if !confirmed(bufio.NewScanner(cmd.InOrStdin())) {
					a.ctrl.CancelDelete()
					fmt.Fprintln(out, "Eliminación cancelada.")
					return nil
				}
			}

			if err := a.ctrl.ConfirmDelete(cmd.Context()); err != nil {
				return fmt.Errorf("product not deleted: %w", err)
			}
			fmt.Fprintf(out, "Producto \"%s\" eliminado.\n", product.Name)
			return nil
		},
	}

	c.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return c
}

// confirmed reads one answer line; only an explicit yes confirms.
func confirmed(sc *bufio.Scanner) bool {
	if !sc.Scan() {
		return false
	}
	return isYes(sc.Text())
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func isNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return true
	}
	return false
}
