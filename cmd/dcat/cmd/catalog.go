package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and refresh the served catalog",
	}

	root.AddCommand(
		&cobra.Command{
			Use:     "status",
			Short:   "Show the applied catalog's source and size",
			Example: `  dcat catalog status`,
			RunE: func(_ *cobra.Command, _ []string) error {
				s, err := newClient().CatalogStatus(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(s)
				}
				return printCatalogStatus(s)
			},
		},
		&cobra.Command{
			Use:     "refresh",
			Short:   "Reload the catalog from its sources (admin)",
			Example: `  dcat catalog refresh --token $DCAT_TOKEN`,
			RunE: func(_ *cobra.Command, _ []string) error {
				r, err := newClient().RefreshCatalog(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(r)
				}
				if !r.Applied {
					fmt.Fprintln(stdout, "A newer load finished first; showing the applied catalog.")
				}
				return printCatalogStatus(&r.CatalogStatus)
			},
		},
	)

	return root
}
