// Package geomap owns the map side of the listing page: the draggable
// anchor marker that writes the address field, the listing markers with
// their popup cards, and the map filter state.
package geomap

import (
	"fmt"

	"github.com/rs/zerolog"

	"nestmap/internal/listing"
	"nestmap/internal/popup"
)

// AddressSink receives the projected address text whenever the anchor
// marker settles on a new position. It is the only writer of the form's
// address field.
type AddressSink func(address string)

// Config carries the controller's injected collaborators and constants.
type Config struct {
	Widget      Widget
	Home        listing.Coordinate
	Accuracy    int
	AddressSink AddressSink
	Logger      zerolog.Logger
}

// Controller synchronizes the anchor marker with the address field and
// renders the listing marker collection. Not safe for concurrent use:
// all methods are expected to run from a single event loop.
type Controller struct {
	widget      Widget
	home        listing.Coordinate
	accuracy    int
	addressSink AddressSink
	log         zerolog.Logger

	anchor  MarkerHandle
	markers []MarkerHandle
	filters *FilterState
}

// New constructs a map controller. Call Start to place the anchor.
func New(cfg Config) *Controller {
	return &Controller{
		widget:      cfg.Widget,
		home:        cfg.Home,
		accuracy:    cfg.Accuracy,
		addressSink: cfg.AddressSink,
		log:         cfg.Logger,
		filters:     NewFilterState(),
	}
}

// ProjectAddress formats a coordinate as "lat, lng" with the given fixed
// decimal precision. Pure and idempotent: the same coordinate and
// precision always yield identical text.
func ProjectAddress(c listing.Coordinate, precision int) string {
	return fmt.Sprintf("%.*f, %.*f", precision, c.Lat, precision, c.Lng)
}

// Start places the draggable anchor marker at the home coordinate and
// immediately projects its address into the sink.
func (c *Controller) Start() {
	c.anchor = c.widget.CreateMarker(c.home, MarkerOptions{
		Draggable: true,
		Icon:      AnchorIcon,
	})
	c.anchor.OnMoveEnd(func(at listing.Coordinate) {
		c.addressSink(ProjectAddress(at, c.accuracy))
	})
	c.addressSink(ProjectAddress(c.home, c.accuracy))
}

// RenderListings replaces the whole listing marker collection: every
// previously rendered marker is removed, then one marker with a popup
// card is created per listing. Listing sets are small and refreshed
// wholesale, so no diffing is done. A popup build failure aborts the
// render; it signals a contract violation, not bad user input.
func (c *Controller) RenderListings(listings []listing.Listing) error {
	for _, m := range c.markers {
		m.Remove()
	}
	c.markers = c.markers[:0]

	for _, l := range listings {
		card, err := popup.Build(l)
		if err != nil {
			return err
		}
		marker := c.widget.CreateMarker(l.Location, MarkerOptions{Icon: ListingIcon})
		marker.BindPopup(card)
		c.markers = append(c.markers, marker)
	}

	c.log.Debug().Int("count", len(listings)).Msg("listing markers rendered")
	return nil
}

// Reset restores the anchor marker to the home coordinate, projects the
// home address into the sink and clears every map filter.
func (c *Controller) Reset() {
	if c.anchor != nil {
		c.anchor.SetPosition(c.home)
	}
	c.addressSink(ProjectAddress(c.home, c.accuracy))
	c.filters.Reset()
}

// Filters exposes the map filter state.
func (c *Controller) Filters() *FilterState {
	return c.filters
}
