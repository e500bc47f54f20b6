package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dealer-catalog/internal/api/client"
)

func vehiclesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse the vehicle catalog",
	}

	root.AddCommand(
		vehicleListCmd(),
		vehicleGetCmd(),
		vehicleFacetsCmd(),
		vehicleFeaturedCmd(),
		vehicleContactCmd(),
	)

	return root
}

// addVehicleFilterFlags binds the filter flags shared by list and facets.
func addVehicleFilterFlags(cmd *cobra.Command, p *apiclient.VehicleParams) {
	cmd.Flags().StringVar(&p.Category, "category", "", "bike or car (default bike)")
	cmd.Flags().StringVar(&p.Brand, "brand", "", "brand, or all, new, used")
	cmd.Flags().StringVar(&p.Model, "model", "", "model within the brand")
	cmd.Flags().IntVar(&p.MaxMileage, "max-mileage", 0, "maximum mileage in km")
	cmd.Flags().IntVar(&p.MinPrice, "min-price", 0, "minimum price in CHF")
	cmd.Flags().IntVar(&p.MaxPrice, "max-price", 0, "maximum price in CHF")
	cmd.Flags().IntVar(&p.MinYear, "min-year", 0, "earliest model year")
	cmd.Flags().IntVar(&p.MaxYear, "max-year", 0, "latest model year")
	cmd.Flags().StringVar(&p.Fuel, "fuel", "", "fuel type")
	cmd.Flags().StringVar(&p.Transmission, "transmission", "", "transmission")
	cmd.Flags().StringVar(&p.State, "state", "", "filter state token from a previous listing")
}

func vehicleListCmd() *cobra.Command {
	var p apiclient.VehicleParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of vehicles",
		Example: `  dcat vehicles list
  dcat vehicles list --category car --brand AUDI --max-price 30000 --sort price_asc
  dcat vehicles list --state eyJjYXRlZ29yeSI6ImJpa2UiLC4uLn0 --page 2
  dcat vehicles list --locale fr --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := newClient().ListVehicles(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(stdout, "No vehicles found.")
				return nil
			}
			return printVehiclePage(resp)
		},
	}
	addVehicleFilterFlags(cmd, &p)
	cmd.Flags().StringVar(&p.Sort, "sort", "", "price_asc, price_desc, year_desc or mileage_asc")
	cmd.Flags().IntVar(&p.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "vehicles per page")

	return cmd
}

func vehicleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show vehicle details",
		Example: `  dcat vehicles get gen-12
  dcat vehicles get gen-12 --locale en --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := newClient().GetVehicle(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			return printVehicleDetail(v)
		},
	}
}

func vehicleFacetsCmd() *cobra.Command {
	var p apiclient.VehicleParams

	cmd := &cobra.Command{
		Use:     "facets",
		Short:   "Show brand and model counts for a filter",
		Example: `  dcat vehicles facets --category car --brand VW`,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := newClient().Facets(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if err := printCounts("BRAND", resp.Brands); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			return printCounts("MODEL", resp.Models)
		},
	}
	addVehicleFilterFlags(cmd, &p)

	return cmd
}

func vehicleFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "featured",
		Short:   "List the featured vehicles",
		Example: `  dcat vehicles featured --locale fr`,
		RunE: func(_ *cobra.Command, _ []string) error {
			items, err := newClient().FeaturedVehicles(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(stdout, "No featured vehicles.")
				return nil
			}
			return printVehicleTable(items)
		},
	}
}

func vehicleContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "contact <id>",
		Short:   "Print the phone and WhatsApp links for a vehicle",
		Example: `  dcat vehicles contact gen-12 --locale en`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			links, err := newClient().VehicleContact(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(links)
			}
			fmt.Fprintf(stdout, "Phone:    %s\nWhatsApp: %s\n\n%s\n", links.Tel, links.WhatsApp, links.Message)
			return nil
		},
	}
}
