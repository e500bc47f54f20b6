package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dealer-catalog/internal/api/client"
)

func financeCmd() *cobra.Command {
	var (
		p    apiclient.FinanceParams
		rate float64
	)

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Compute a financing plan",
		Example: `  dcat finance --price 24900 --down-payment 5000 --term 48
  dcat finance --vehicle gen-12 --rate 2.9 --residual 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if p.Price == 0 && p.VehicleID == "" {
				return fmt.Errorf("--price or --vehicle is required")
			}
			if cmd.Flags().Changed("rate") {
				p.Rate = &rate
			}
			res, err := newClient().Finance(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printFinance(res)
		},
	}
	cmd.Flags().Float64Var(&p.Price, "price", 0, "vehicle price in CHF")
	cmd.Flags().StringVar(&p.VehicleID, "vehicle", "", "take the price from this vehicle")
	cmd.Flags().Float64Var(&p.DownPayment, "down-payment", 0, "down payment in CHF")
	cmd.Flags().IntVar(&p.TermMonths, "term", 0, "term in months")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().Float64Var(&p.ResidualPct, "residual", 0, "balloon residual in percent of the price")

	return cmd
}
