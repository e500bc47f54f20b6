package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
)

const (
	colorBlue  = 0x3498DB // rental request
	colorGreen = 0x2ECC71 // catalog recovered
	colorRed   = 0xE74C3C // catalog degraded
)

// Notification kinds used as metric labels.
const (
	KindRental  = "rental_request"
	KindCatalog = "catalog"
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// NotifyRentalRequest posts a rental request as a Discord embed.
func (d *DiscordNotifier) NotifyRentalRequest(ctx context.Context, p *RentalRequestPayload) error {
	return d.post(ctx, KindRental, discordWebhookPayload{Embeds: []discordEmbed{rentalEmbed(p)}})
}

// NotifyCatalog posts a catalog health change as a Discord embed.
func (d *DiscordNotifier) NotifyCatalog(ctx context.Context, p *CatalogPayload) error {
	return d.post(ctx, KindCatalog, discordWebhookPayload{Embeds: []discordEmbed{catalogEmbed(p)}})
}

func rentalEmbed(p *RentalRequestPayload) discordEmbed {
	customer := p.Customer
	if customer == "" {
		customer = "(not given)"
	}
	days := p.Days()

	embed := discordEmbed{
		Title: "Rental request: " + p.CarName,
		URL:   p.WhatsAppURL,
		Color: colorBlue,
		Fields: []discordEmbedField{
			{Name: "From", Value: p.From.Format("02.01.2006"), Inline: true},
			{Name: "To", Value: p.To.Format("02.01.2006"), Inline: true},
			{Name: "Days", Value: strconv.Itoa(days), Inline: true},
			{Name: "Customer", Value: customer, Inline: true},
			{Name: "Language", Value: p.Locale, Inline: true},
		},
	}
	if p.PricePerDay > 0 {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Estimate",
			Value:  fmt.Sprintf("CHF %d (%d × %d)", p.PricePerDay*days, days, p.PricePerDay),
			Inline: true,
		})
	}
	if p.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: p.ImageURL}
	}
	return embed
}

func catalogEmbed(p *CatalogPayload) discordEmbed {
	embed := discordEmbed{
		Title:       "Catalog recovered",
		Color:       colorGreen,
		Description: fmt.Sprintf("Serving %d vehicles from %s again.", p.Vehicles, p.Source),
	}
	if p.Degraded {
		embed.Title = "Catalog degraded"
		embed.Color = colorRed
		embed.Description = "Every configured source failed or returned nothing. " +
			"The site is showing the bundled fallback inventory."
	}
	embed.Fields = []discordEmbedField{
		{Name: "Source", Value: p.Source, Inline: true},
		{Name: "Vehicles", Value: strconv.Itoa(p.Vehicles), Inline: true},
		{Name: "Generation", Value: strconv.FormatUint(p.Generation, 10), Inline: true},
	}
	if !p.LoadedAt.IsZero() {
		embed.Timestamp = p.LoadedAt.UTC().Format(time.RFC3339)
	}
	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, kind string, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	err := d.send(ctx, payload)
	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(kind).Inc()
	}
	return err
}

func (d *DiscordNotifier) send(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
