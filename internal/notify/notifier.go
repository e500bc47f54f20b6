// Package notify delivers back-office notifications to the dealership:
// incoming rental requests and changes in catalog health.
package notify

import (
	"context"
	"time"
)

// RentalRequestPayload describes a customer's rental request.
type RentalRequestPayload struct {
	CarID       string
	CarName     string
	ImageURL    string
	From        time.Time
	To          time.Time
	Customer    string
	Locale      string
	PricePerDay int
	// WhatsAppURL is the link handed to the customer, so staff can see the
	// exact message they will receive.
	WhatsAppURL string
}

// Days returns the inclusive number of rental days.
func (p *RentalRequestPayload) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// CatalogPayload describes a change in where the served catalog comes from.
type CatalogPayload struct {
	// Degraded is true when the catalog fell back to the bundled inventory
	// and false when a real source is serving again.
	Degraded   bool
	Source     string
	Vehicles   int
	Generation uint64
	LoadedAt   time.Time
}

// Notifier defines the interface for sending dealership notifications.
type Notifier interface {
	NotifyRentalRequest(ctx context.Context, p *RentalRequestPayload) error
	NotifyCatalog(ctx context.Context, p *CatalogPayload) error
}
