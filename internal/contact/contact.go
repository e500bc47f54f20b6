// Package contact builds the phone and WhatsApp deep links shown next to
// vehicles and rental cars.
package contact

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

const dateLayout = "02.01.2006"

var defaultVehicleTemplates = map[domain.Locale]string{
	domain.LocaleDE: "Guten Tag, ich interessiere mich für {{.Title}} ({{.Year}}, {{.Price}}). Referenz: {{.ID}}",
	domain.LocaleFR: "Bonjour, je suis intéressé(e) par {{.Title}} ({{.Year}}, {{.Price}}). Référence : {{.ID}}",
	domain.LocaleEN: "Hello, I am interested in the {{.Title}} ({{.Year}}, {{.Price}}). Reference: {{.ID}}",
}

var defaultRentalTemplates = map[domain.Locale]string{
	domain.LocaleDE: "Guten Tag, ich möchte den {{.Name}} vom {{.From}} bis {{.To}} mieten ({{.Days}} Tage, {{.Price}}/Tag).{{if .Customer}} {{.Customer}}{{end}}",
	domain.LocaleFR: "Bonjour, je souhaite louer la {{.Name}} du {{.From}} au {{.To}} ({{.Days}} jours, {{.Price}}/jour).{{if .Customer}} {{.Customer}}{{end}}",
	domain.LocaleEN: "Hello, I would like to rent the {{.Name}} from {{.From}} to {{.To}} ({{.Days}} days, {{.Price}}/day).{{if .Customer}} {{.Customer}}{{end}}",
}

// ErrInvalidRequest is returned for rental requests that cannot be sent.
var ErrInvalidRequest = errors.New("invalid rental request")

// Dealer identifies the phone numbers links point to.
type Dealer struct {
	Name     string
	Phone    string
	WhatsApp string
}

// Links is a set of contact deep links with the pre-filled message.
type Links struct {
	Tel      string `json:"tel,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Message  string `json:"message"`
}

// RentalRequest is a customer's request to rent a car.
type RentalRequest struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Customer string    `json:"customer,omitempty"`
}

// Days returns the number of rental days, counting both ends.
func (r RentalRequest) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// Validate checks the date range.
func (r RentalRequest) Validate() error {
	switch {
	case r.From.IsZero() || r.To.IsZero():
		return fmt.Errorf("%w: from and to are required", ErrInvalidRequest)
	case r.To.Before(r.From):
		return fmt.Errorf("%w: to is before from", ErrInvalidRequest)
	}
	return nil
}

type vehicleData struct {
	ID     string
	Title  string
	Brand  string
	Model  string
	Year   int
	Price  string
	Dealer string
}

type rentalData struct {
	ID       string
	Name     string
	From     string
	To       string
	Days     int
	Price    string
	Customer string
	Dealer   string
}

// Builder renders contact links from per-locale message templates.
type Builder struct {
	dealer  Dealer
	vehicle map[domain.Locale]*template.Template
	rental  map[domain.Locale]*template.Template
}

// NewBuilder parses the configured templates. Keys are locale codes; locales
// without a configured template fall back to German, then to the built-in
// text.
func NewBuilder(d Dealer, vehicleTemplates, rentalTemplates map[string]string) (*Builder, error) {
	vehicle, err := parseTemplates("vehicle", vehicleTemplates, defaultVehicleTemplates)
	if err != nil {
		return nil, err
	}
	rental, err := parseTemplates("rental", rentalTemplates, defaultRentalTemplates)
	if err != nil {
		return nil, err
	}
	return &Builder{dealer: d, vehicle: vehicle, rental: rental}, nil
}

func parseTemplates(
	kind string,
	configured map[string]string,
	defaults map[domain.Locale]string,
) (map[domain.Locale]*template.Template, error) {
	out := make(map[domain.Locale]*template.Template, len(domain.Locales))
	for _, loc := range domain.Locales {
		text, ok := configured[string(loc)]
		if !ok {
			text, ok = configured[string(domain.DefaultLocale)]
		}
		if !ok {
			text = defaults[loc]
		}
		tpl, err := template.New(kind + "-" + string(loc)).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template for %s: %w", kind, loc, err)
		}
		out[loc] = tpl
	}
	return out, nil
}

// Links builds the contact links for an enquiry about v.
func (b *Builder) Links(v *domain.Vehicle, loc domain.Locale) (Links, error) {
	data := vehicleData{
		ID:     v.ID,
		Title:  locale.Project(v, domain.FieldTitle, loc).String(),
		Brand:  v.Brand,
		Model:  v.Model,
		Year:   v.Year,
		Price:  locale.FormatPrice(v.Price, loc),
		Dealer: b.dealer.Name,
	}
	msg, err := render(b.vehicle, loc, data)
	if err != nil {
		return Links{}, err
	}
	metrics.ContactLinksTotal.WithLabelValues("vehicle", string(loc)).Inc()
	return b.links(msg), nil
}

// RentalLinks builds the contact links for a rental request.
func (b *Builder) RentalLinks(car *domain.RentalCar, req RentalRequest, loc domain.Locale) (Links, error) {
	if err := req.Validate(); err != nil {
		return Links{}, err
	}
	data := rentalData{
		ID:       car.ID,
		Name:     locale.ProjectRental(car, "name", loc).String(),
		From:     req.From.Format(dateLayout),
		To:       req.To.Format(dateLayout),
		Days:     req.Days(),
		Price:    locale.FormatPrice(car.PricePerDay, loc),
		Customer: strings.TrimSpace(req.Customer),
		Dealer:   b.dealer.Name,
	}
	msg, err := render(b.rental, loc, data)
	if err != nil {
		return Links{}, err
	}
	metrics.ContactLinksTotal.WithLabelValues("rental", string(loc)).Inc()
	return b.links(msg), nil
}

func render(tpls map[domain.Locale]*template.Template, loc domain.Locale, data any) (string, error) {
	tpl, ok := tpls[loc]
	if !ok {
		tpl = tpls[domain.DefaultLocale]
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func (b *Builder) links(msg string) Links {
	l := Links{Message: msg}
	if phone := TelNumber(b.dealer.Phone); phone != "" {
		l.Tel = "tel:" + phone
	}
	wa := b.dealer.WhatsApp
	if wa == "" {
		wa = b.dealer.Phone
	}
	if digits := WhatsAppNumber(wa); digits != "" {
		l.WhatsApp = "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	}
	return l
}

// TelNumber normalizes a dialable number: separators are dropped and a
// leading 00 becomes +.
func TelNumber(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	n := b.String()
	if strings.HasPrefix(n, "00") {
		n = "+" + n[2:]
	}
	if n == "+" {
		return ""
	}
	return n
}

// WhatsAppNumber returns the international digits wa.me expects, without
// plus sign or leading zeros.
func WhatsAppNumber(raw string) string {
	return strings.TrimLeft(strings.TrimPrefix(TelNumber(raw), "+"), "0")
}
