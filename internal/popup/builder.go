// Package popup builds the content of a listing marker's popup. Each
// field of the card is rendered only when the listing actually carries
// it; the view layer gets a ready-made block per field and never
// inspects the listing itself.
package popup

import (
	"fmt"

	"nestmap/internal/listing"
)

// Block is one conditionally rendered line of the card. An invisible
// block carries no text.
type Block struct {
	Visible bool
	Text    string
}

// Content is the fully assembled card for one listing.
type Content struct {
	Title       Block
	Address     Block
	Price       Block
	Type        Block
	Capacity    Block
	Times       Block
	Description Block

	// AvatarURL is always set; an omitted avatar falls back to the
	// default placeholder image.
	AvatarURL string

	// Features holds one visual fragment class per present feature.
	// A nil slice with FeaturesVisible false means the listing omitted
	// the collection entirely; an empty-but-present collection keeps the
	// container visible.
	Features        []string
	FeaturesVisible bool

	// Photos preserves the feed's photo order.
	Photos        []string
	PhotosVisible bool
}

var featureFragments = map[listing.Feature]string{
	listing.FeatureWifi:        "popup__feature--wifi",
	listing.FeatureDishwasher:  "popup__feature--dishwasher",
	listing.FeatureParking:     "popup__feature--parking",
	listing.FeatureWasher:      "popup__feature--washer",
	listing.FeatureElevator:    "popup__feature--elevator",
	listing.FeatureConditioner: "popup__feature--conditioner",
}

// Build assembles the popup card for one listing. Unknown accommodation
// type or feature codes mean the configuration tables and the data
// source have drifted out of sync; Build fails loudly instead of
// rendering a hole.
func Build(l listing.Listing) (*Content, error) {
	c := &Content{
		Title:       textBlock(l.Offer.Title),
		Address:     textBlock(l.Offer.Address),
		Description: textBlock(l.Offer.Description),
		AvatarURL:   listing.DefaultAvatarURL,
	}

	if l.Offer.Price != nil {
		c.Price = Block{Visible: true, Text: fmt.Sprintf("%d ₽/night", *l.Offer.Price)}
	}

	if l.Offer.Type != nil {
		label, err := listing.LabelFor(*l.Offer.Type)
		if err != nil {
			return nil, fmt.Errorf("build popup: %w", err)
		}
		c.Type = Block{Visible: true, Text: label}
	}

	c.Capacity = capacityBlock(l.Offer.Rooms, l.Offer.Guests)
	c.Times = timesBlock(l.Offer.CheckIn, l.Offer.CheckOut)

	if l.Author.Avatar != nil {
		c.AvatarURL = *l.Author.Avatar
	}

	if l.Offer.Features != nil {
		c.FeaturesVisible = true
		c.Features = make([]string, 0, len(l.Offer.Features))
		for _, f := range l.Offer.Features {
			fragment, ok := featureFragments[f]
			if !ok {
				return nil, fmt.Errorf("build popup: unknown feature %q", f)
			}
			c.Features = append(c.Features, fragment)
		}
	}

	if l.Offer.Photos != nil {
		c.PhotosVisible = true
		c.Photos = append([]string(nil), l.Offer.Photos...)
	}

	return c, nil
}

func textBlock(s *string) Block {
	if s == nil {
		return Block{}
	}
	return Block{Visible: true, Text: *s}
}

func capacityBlock(rooms, guests *int) Block {
	switch {
	case rooms == nil && guests == nil:
		return Block{}
	case rooms == nil:
		return Block{Visible: true, Text: fmt.Sprintf("For %d guests", *guests)}
	case guests == nil:
		return Block{Visible: true, Text: fmt.Sprintf("%d rooms", *rooms)}
	default:
		return Block{Visible: true, Text: fmt.Sprintf("%d rooms for %d guests", *rooms, *guests)}
	}
}

// timesBlock hides the whole line whenever check-in is missing, even if
// check-out is present: a check-out time alone is never rendered.
func timesBlock(checkIn, checkOut *string) Block {
	if checkIn == nil {
		return Block{}
	}
	if checkOut == nil {
		return Block{Visible: true, Text: fmt.Sprintf("Check-in after %s", *checkIn)}
	}
	return Block{Visible: true, Text: fmt.Sprintf("Check-in after %s, check-out before %s", *checkIn, *checkOut)}
}
