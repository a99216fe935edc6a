// Package page owns the two controllers of the listing page and the
// narrow wiring between them: the map pushes projected addresses into
// the form, and form resets pull the map back to its home state. The
// controllers never reference each other directly.
package page

import (
	"context"

	"github.com/rs/zerolog"

	"nestmap/internal/form"
	"nestmap/internal/geomap"
	"nestmap/internal/listing"
)

// ListingSource supplies the listings shown on the map. Fetching is the
// collaborator's business; the page only consumes the result.
type ListingSource interface {
	Listings(ctx context.Context) ([]listing.Listing, error)
}

// Activator enables and disables the page around map load.
type Activator interface {
	Activate()
	Deactivate()
}

// Alerts extends the form's outcome messages with the persistent
// data-error indicator shown when the listing source fails.
type Alerts interface {
	form.Alerts
	DataError()
}

// Config carries the page's collaborators.
type Config struct {
	View      form.View
	Transport form.Transport
	Widget    geomap.Widget
	Source    ListingSource
	Activator Activator
	Alerts    Alerts
	Logger    zerolog.Logger
}

// Page is the composition root of the listing page.
type Page struct {
	form      *form.Controller
	geo       *geomap.Controller
	source    ListingSource
	activator Activator
	alerts    Alerts
	log       zerolog.Logger
}

// New wires both controllers together.
func New(cfg Config) *Page {
	p := &Page{
		source:    cfg.Source,
		activator: cfg.Activator,
		alerts:    cfg.Alerts,
		log:       cfg.Logger,
	}

	p.form = form.New(form.Config{
		View:      cfg.View,
		Transport: cfg.Transport,
		Alerts:    cfg.Alerts,
		ResetMap:  func() { p.geo.Reset() },
		Logger:    cfg.Logger,
	})

	p.geo = geomap.New(geomap.Config{
		Widget:      cfg.Widget,
		Home:        listing.DefaultLocation,
		Accuracy:    listing.Accuracy,
		AddressSink: p.form.SetAddress,
		Logger:      cfg.Logger,
	})

	return p
}

// Form exposes the form controller.
func (p *Page) Form() *form.Controller {
	return p.form
}

// Map exposes the map controller.
func (p *Page) Map() *geomap.Controller {
	return p.geo
}

// Open boots the page: disabled while the map loads, then the anchor is
// placed, the page comes alive and the listing set is rendered.
func (p *Page) Open(ctx context.Context) error {
	p.activator.Deactivate()
	p.geo.Start()
	p.activator.Activate()
	return p.Refresh(ctx)
}

// Refresh replaces the rendered listing set. A source failure shows the
// persistent data-error indicator and renders nothing; a popup build
// failure is a contract violation and propagates.
func (p *Page) Refresh(ctx context.Context) error {
	listings, err := p.source.Listings(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("listing source failed")
		p.alerts.DataError()
		return nil
	}
	return p.geo.RenderListings(listings)
}

// HandleField routes a form field event to the validation rules.
func (p *Page) HandleField(f form.Field, t form.Trigger, value string) error {
	return p.form.Handle(f, t, value)
}

// Submit runs the form submission flow.
func (p *Page) Submit(ctx context.Context) error {
	return p.form.Submit(ctx)
}

// HandleReset serves the explicit user reset action: form and map are
// restored together.
func (p *Page) HandleReset() {
	p.form.Reset()
	p.geo.Reset()
}
