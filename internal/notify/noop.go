package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyRentalRequest logs and discards a rental request.
func (n *NoOpNotifier) NotifyRentalRequest(_ context.Context, p *RentalRequestPayload) error {
	n.log.Debug("rental notification discarded (no backend configured)",
		"car", p.CarID,
		"from", p.From.Format("2006-01-02"),
		"days", p.Days(),
	)
	return nil
}

// NotifyCatalog logs and discards a catalog health change.
func (n *NoOpNotifier) NotifyCatalog(_ context.Context, p *CatalogPayload) error {
	n.log.Debug("catalog notification discarded (no backend configured)",
		"degraded", p.Degraded,
		"source", p.Source,
	)
	return nil
}
