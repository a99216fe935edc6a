package listing

// Type is the accommodation type code carried by the listing feed.
type Type string

const (
	TypeBungalow Type = "bungalow"
	TypeFlat     Type = "flat"
	TypeHotel    Type = "hotel"
	TypeHouse    Type = "house"
	TypePalace   Type = "palace"
)

// Feature is a listing amenity id from the feed.
type Feature string

const (
	FeatureWifi        Feature = "wifi"
	FeatureDishwasher  Feature = "dishwasher"
	FeatureParking     Feature = "parking"
	FeatureWasher      Feature = "washer"
	FeatureElevator    Feature = "elevator"
	FeatureConditioner Feature = "conditioner"
)

// Coordinate is a geographical point on the listing map.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Author carries the data known about the listing's owner.
// Avatar is nil when the feed omitted it.
type Author struct {
	Avatar *string
}

// Offer describes the accommodation itself. Every scalar field is a
// pointer and every collection a slice: nil means the feed omitted the
// field. The feed's sentinel encoding (0 for scalars, null for
// collections) is translated at the codec boundary, never here.
type Offer struct {
	Title       *string
	Address     *string
	Price       *int
	Type        *Type
	Rooms       *int
	Guests      *int
	CheckIn     *string
	CheckOut    *string
	Description *string
	Features    []Feature
	Photos      []string
}

// Listing is one externally supplied advert: the offer, its author and
// the map location its marker is placed at.
type Listing struct {
	Author   Author
	Offer    Offer
	Location Coordinate
}
