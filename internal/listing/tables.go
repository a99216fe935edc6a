package listing

import "fmt"

// Form and map configuration. These mirror the values the submission
// form and popup rendering were built around; they are consumed as
// inputs, never computed.
const (
	// Accuracy is the fixed number of decimal digits used whenever a
	// coordinate is rendered to text.
	Accuracy = 5

	// MaxRoomNumber is the room-count ceiling. A listing with this many
	// rooms is reserved for the "not for guests" capacity option.
	MaxRoomNumber = 100

	// MinCapacity is the numeric value of the "not for guests" option.
	MinCapacity = 0

	MaxPrice       = 1_000_000
	MinTitleLength = 30

	// DefaultAvatarURL stands in for an omitted author avatar.
	DefaultAvatarURL = "img/muffin-grey.svg"
)

// DefaultLocation is where the anchor marker sits on load and after reset.
var DefaultLocation = Coordinate{Lat: 35.68950, Lng: 139.69171}

// DefaultType is the accommodation type the form starts from.
const DefaultType = TypeFlat

var minPrices = map[Type]int{
	TypeBungalow: 0,
	TypeFlat:     1000,
	TypeHotel:    3000,
	TypeHouse:    5000,
	TypePalace:   10000,
}

var typeLabels = map[Type]string{
	TypeBungalow: "Bungalow",
	TypeFlat:     "Flat",
	TypeHotel:    "Hotel",
	TypeHouse:    "House",
	TypePalace:   "Palace",
}

// CapacityOptions are the selectable guest-capacity values, MinCapacity
// included.
var CapacityOptions = []int{0, 1, 2, 3}

// RoomOptions are the selectable room counts.
var RoomOptions = []int{1, 2, 3, MaxRoomNumber}

// TimeSlots are the selectable check-in/check-out times.
var TimeSlots = []string{"12:00", "13:00", "14:00"}

// Features lists every amenity id the feed may reference.
var Features = []Feature{
	FeatureWifi,
	FeatureDishwasher,
	FeatureParking,
	FeatureWasher,
	FeatureElevator,
	FeatureConditioner,
}

// MinPriceFor returns the minimum nightly price for an accommodation
// type. An unrecognized code means the configuration tables and the data
// source have drifted apart, which is a programmer error.
func MinPriceFor(t Type) (int, error) {
	price, ok := minPrices[t]
	if !ok {
		return 0, fmt.Errorf("unknown accommodation type %q", t)
	}
	return price, nil
}

// LabelFor returns the display label for an accommodation type.
func LabelFor(t Type) (string, error) {
	label, ok := typeLabels[t]
	if !ok {
		return "", fmt.Errorf("unknown accommodation type %q", t)
	}
	return label, nil
}
