package cmd

import (
	"github.com/rogerio-castellano/inventory-console/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	var (
		search string
		page   int
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "Show one page of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer a.Close()

			// A failed fetch is logged by the controller; the list is shown anyway.
			_ = a.ctrl.Mount(cmd.Context())

			a.ctrl.SetSearch(search)
			a.ctrl.SelectPage(page)
			render.State(cmd.OutOrStdout(), a.ctrl.State())
			return nil
		},
	}

	c.Flags().StringVarP(&search, "search", "s", "", "Only show products whose name contains this text")
	c.Flags().IntVarP(&page, "page", "p", 1, "Page number, starting at 1")
	return c
}
