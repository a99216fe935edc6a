package geomap

import (
	"nestmap/internal/listing"
	"nestmap/internal/popup"
)

// Icon describes a marker icon. The anchor sits at the bottom-center of
// the image.
type Icon struct {
	URL    string
	Width  int
	Height int
}

// Marker icons used by the pipeline.
var (
	AnchorIcon  = Icon{URL: "img/main-pin.svg", Width: 52, Height: 52}
	ListingIcon = Icon{URL: "img/pin.svg", Width: 40, Height: 40}
)

// MarkerOptions configure a marker at creation time.
type MarkerOptions struct {
	Draggable bool
	Icon      Icon
}

// MarkerHandle is the pipeline's view of one marker owned by the map
// widget.
type MarkerHandle interface {
	Position() listing.Coordinate
	SetPosition(listing.Coordinate)
	// OnMoveEnd registers a callback fired when a drag completes.
	OnMoveEnd(func(listing.Coordinate))
	BindPopup(*popup.Content)
	Remove()
}

// Widget abstracts the map implementation. Tile rendering, panning and
// zooming are the widget's business; the pipeline only places markers.
type Widget interface {
	CreateMarker(at listing.Coordinate, opts MarkerOptions) MarkerHandle
}
