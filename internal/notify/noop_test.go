package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, n.NotifyRentalRequest(context.Background(), &RentalRequestPayload{
		CarID: "r1",
		From:  from,
		To:    from.AddDate(0, 0, 2),
	}))
	require.NoError(t, n.NotifyCatalog(context.Background(), &CatalogPayload{
		Degraded: true,
		Source:   "fallback",
	}))
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
)
