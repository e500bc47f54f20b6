package handlers_test

import (
	"context"
	"time"

	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/internal/contact"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

var loadedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// fakeCatalog serves a fixed snapshot and counts refreshes.
type fakeCatalog struct {
	snap      *catalog.Snapshot
	refreshes int
	applied   bool
}

func (f *fakeCatalog) Snapshot() *catalog.Snapshot { return f.snap }

func (f *fakeCatalog) Refresh(context.Context) (*catalog.Snapshot, bool) {
	f.refreshes++
	return f.snap, f.applied
}

func (*fakeCatalog) Sources() []string {
	return []string{catalog.SourceStore, catalog.SourceSnapshotFile, catalog.SourceFallback}
}

type fakeFeatured struct {
	ids []string
	err error
}

func (f fakeFeatured) FeaturedIDs(context.Context) ([]string, error) { return f.ids, f.err }

func vehicleFixtures() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID: "gen-0", Title: "YAMAHA MT-07", Brand: "YAMAHA", Model: "MT-07", Year: 2022,
			Price: 7490, Mileage: 3200, Fuel: "Benzin", Transmission: "Manuell",
			Condition: domain.ConditionUsed, Category: domain.CategoryBike,
			Multilingual: domain.Multilingual{
				domain.FieldTitle: {
					DE: domain.TextString("YAMAHA MT-07"),
					FR: domain.TextString("YAMAHA MT-07 roadster"),
					EN: domain.TextString("YAMAHA MT-07 roadster"),
				},
			},
		},
		{
			ID: "gen-1", Title: "YAMAHA MT-09", Brand: "YAMAHA", Model: "MT-09", Year: 2025,
			Price: 12990, Mileage: 10, Fuel: "Benzin", Transmission: "Manuell",
			Condition: domain.ConditionNew, Category: domain.CategoryBike,
		},
		{
			ID: "gen-2", Title: "KTM 390 Duke", Brand: "KTM", Model: "390 Duke", Year: 2021,
			Price: 4990, Mileage: 8000, Fuel: "Benzin", Transmission: "Manuell",
			Condition: domain.ConditionUsed, Category: domain.CategoryBike,
		},
		{
			ID: "gen-3", Title: "VW Golf", Brand: "VW", Model: "Golf", Year: 2019,
			Price: 15900, Mileage: 64000, Fuel: "Diesel", Transmission: "Automatik",
			BodyType: "Limousine", Condition: domain.ConditionUsed, Category: domain.CategoryCar,
		},
	}
}

func rentalFixtures() []domain.RentalCar {
	return []domain.RentalCar{
		{
			ID: "7b1c2f0e-3a55-4c3e-9f55-0c2b5f6f8e11", Name: "VW Polo", Category: "Kompakt",
			Seats: 5, PricePerDay: 69, Available: true,
			Multilingual: domain.Multilingual{"name": {FR: domain.TextString("VW Polo citadine")}},
		},
		{
			ID: "0d8e6a57-5c0b-4bd5-8d38-0a7d3c2d6b90", Name: "VW Multivan", Category: "Van",
			Seats: 7, PricePerDay: 149, Available: false,
		},
	}
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		snap:    catalog.NewSnapshot(vehicleFixtures(), rentalFixtures(), catalog.SourceStore, loadedAt, 3),
		applied: true,
	}
}

func newLinkBuilder() *contact.Builder {
	b, err := contact.NewBuilder(contact.Dealer{Name: "Moto Example AG", Phone: "+41 44 123 45 67"}, nil, nil)
	if err != nil {
		panic(err)
	}
	return b
}
