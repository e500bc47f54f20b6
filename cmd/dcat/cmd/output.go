package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/dealer-catalog/internal/api/client"
	"github.com/donaldgifford/dealer-catalog/pkg/filter"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
)

var stdout io.Writer = os.Stdout

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printVehicleTable(items []locale.LocalizedVehicle) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tTITLE\tYEAR\tKM\tPRICE\tCONDITION\tFUEL\n")
	for i := range items {
		v := &items[i]
		tw.writef("%s\t%s\t%d\t%d\tCHF %d\t%s\t%s\n",
			v.ID,
			truncate(v.Title, 40),
			v.Year,
			v.Mileage,
			v.Price,
			v.Condition,
			v.Fuel,
		)
	}
	return tw.finish()
}

func printVehiclePage(resp *apiclient.VehiclesResponse) error {
	if err := printVehicleTable(resp.Items); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "\nPage %d of %d (%d vehicles, source %s)\nState: %s\n",
		resp.Page, resp.TotalPages, resp.Total, resp.Source, resp.State)
	return err
}

func printVehicleDetail(v *locale.LocalizedVehicle) error {
	tw := newTabWriter(stdout)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("Title:\t%s\n", v.Title)
	tw.writef("Brand:\t%s\n", v.Brand)
	tw.writef("Model:\t%s\n", v.Model)
	tw.writef("Category:\t%s\n", v.Category)
	tw.writef("Condition:\t%s\n", v.Condition)
	tw.writef("Year:\t%d\n", v.Year)
	tw.writef("Mileage:\t%d km\n", v.Mileage)
	tw.writef("Price:\tCHF %d\n", v.Price)
	tw.writef("Fuel:\t%s\n", v.Fuel)
	tw.writef("Transmission:\t%s\n", v.Transmission)
	tw.writef("Power:\t%s\n", v.Power)
	tw.writef("Body:\t%s\n", v.BodyType)
	tw.writef("Location:\t%s\n", v.Location)
	tw.writef("Images:\t%d\n", len(v.Images))
	return tw.finish()
}

func printCounts(title string, counts []filter.Count) error {
	tw := newTabWriter(stdout)
	tw.writef("%s\tCOUNT\n", title)
	for _, c := range counts {
		tw.writef("%s\t%d\n", c.Value, c.Count)
	}
	return tw.finish()
}

func printRentalTable(items []locale.LocalizedRental) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tNAME\tCATEGORY\tSEATS\tPER DAY\tAVAILABLE\n")
	for i := range items {
		r := &items[i]
		tw.writef("%s\t%s\t%s\t%d\tCHF %d\t%v\n",
			r.ID,
			truncate(r.Name, 30),
			r.Category,
			r.Seats,
			r.PricePerDay,
			r.Available,
		)
	}
	return tw.finish()
}

func printFinance(r *apiclient.FinanceResult) error {
	tw := newTabWriter(stdout)
	tw.writef("Financed:\tCHF %.2f\n", r.FinancedAmount)
	tw.writef("Monthly:\tCHF %.2f\n", r.MonthlyPayment)
	tw.writef("Term:\t%d months at %.2f%%\n", r.TermMonths, r.AnnualRatePct)
	tw.writef("Residual:\tCHF %.2f\n", r.ResidualValue)
	tw.writef("Interest:\tCHF %.2f\n", r.TotalInterest)
	tw.writef("Total cost:\tCHF %.2f\n", r.TotalCost)
	return tw.finish()
}

func printCatalogStatus(s *apiclient.CatalogStatus) error {
	tw := newTabWriter(stdout)
	tw.writef("Source:\t%s\n", s.Source)
	tw.writef("Generation:\t%d\n", s.Generation)
	tw.writef("Vehicles:\t%d\n", s.Vehicles)
	tw.writef("Rentals:\t%d\n", s.Rentals)
	tw.writef("Loaded:\t%s\n", s.LoadedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Tiers:\t%v\n", s.Sources)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
