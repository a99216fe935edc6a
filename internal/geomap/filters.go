package geomap

import "nestmap/internal/listing"

// AnyFilter is the "no restriction" value every select-style filter
// resets to.
const AnyFilter = "any"

// Filter field names on the map panel.
const (
	FilterType   = "housing-type"
	FilterPrice  = "housing-price"
	FilterRooms  = "housing-rooms"
	FilterGuests = "housing-guests"
)

// FilterState mirrors the map filter panel: one select-style value per
// field plus one checkbox per feature.
type FilterState struct {
	Fields   map[string]string
	Features map[listing.Feature]bool
}

// NewFilterState returns a filter state with everything cleared.
func NewFilterState() *FilterState {
	f := &FilterState{
		Fields:   make(map[string]string, 4),
		Features: make(map[listing.Feature]bool, len(listing.Features)),
	}
	f.Reset()
	return f
}

// Reset sets every filter field back to AnyFilter and unchecks every
// feature checkbox.
func (f *FilterState) Reset() {
	for _, field := range []string{FilterType, FilterPrice, FilterRooms, FilterGuests} {
		f.Fields[field] = AnyFilter
	}
	for _, feature := range listing.Features {
		f.Features[feature] = false
	}
}
