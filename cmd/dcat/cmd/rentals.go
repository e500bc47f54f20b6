package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dealer-catalog/internal/api/client"
)

func rentalsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rentals",
		Short: "Browse and manage the rental fleet",
	}

	root.AddCommand(
		rentalListCmd(),
		rentalRequestCmd(),
		rentalCreateCmd(),
		rentalDeleteCmd(),
	)

	return root
}

func rentalListCmd() *cobra.Command {
	var p apiclient.RentalParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rental cars",
		Example: `  dcat rentals list
  dcat rentals list --available --min-seats 7`,
		RunE: func(_ *cobra.Command, _ []string) error {
			items, err := newClient().ListRentals(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(stdout, "No rental cars found.")
				return nil
			}
			return printRentalTable(items)
		},
	}
	cmd.Flags().BoolVar(&p.AvailableOnly, "available", false, "only available cars")
	cmd.Flags().StringVar(&p.Category, "category", "", "category label")
	cmd.Flags().IntVar(&p.MinSeats, "min-seats", 0, "minimum number of seats")

	return cmd
}

func rentalRequestCmd() *cobra.Command {
	var from, to, customer string

	cmd := &cobra.Command{
		Use:     "request <id>",
		Short:   "Build the WhatsApp link for a rental request",
		Example: `  dcat rentals request 7b1c2f0e-3a55-4c3e-9f55-0c2b5f6f8e11 --from 2025-07-01 --to 2025-07-03`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to are required")
			}
			links, err := newClient().RequestRental(context.Background(), args[0], from, to, customer)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(links)
			}
			fmt.Fprintf(stdout, "WhatsApp: %s\n\n%s\n", links.WhatsApp, links.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first rental day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last rental day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name for the message")

	return cmd
}

func rentalCreateCmd() *cobra.Command {
	var in apiclient.RentalCarInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a rental car (admin)",
		Example: `  dcat rentals create --name "VW Polo" --category Kompakt --seats 5 \
    --price-per-day 69 --available --token $DCAT_TOKEN`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if in.Name == "" {
				return fmt.Errorf("--name is required")
			}
			created, err := newClient().CreateRental(context.Background(), &in)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Fprintf(stdout, "Rental car created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Brand, "brand", "", "brand")
	cmd.Flags().StringVar(&in.Model, "model", "", "model")
	cmd.Flags().StringVar(&in.Category, "category", "", "category label")
	cmd.Flags().IntVar(&in.Seats, "seats", 0, "number of seats")
	cmd.Flags().StringVar(&in.Transmission, "transmission", "", "transmission")
	cmd.Flags().StringVar(&in.Fuel, "fuel", "", "fuel type")
	cmd.Flags().IntVar(&in.PricePerDay, "price-per-day", 0, "daily price in CHF")
	cmd.Flags().IntVar(&in.Deposit, "deposit", 0, "deposit in CHF")
	cmd.Flags().BoolVar(&in.Available, "available", false, "available for booking")

	return cmd
}

func rentalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a rental car (admin)",
		Example: `  dcat rentals delete 7b1c2f0e-3a55-4c3e-9f55-0c2b5f6f8e11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteRental(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Rental car %s deleted.\n", args[0])
			return nil
		},
	}
}
