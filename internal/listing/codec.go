package listing

import (
	"encoding/json"
	"fmt"
)

// Wire encoding of the listing feed. The feed marks an omitted scalar
// with the number 0 (even for string-typed fields) and an omitted
// collection with null. That convention stops at this file: decoded
// listings carry nil for absent fields, and encoding puts the sentinels
// back. A true zero never appears in the feed for these fields, so 0
// always decodes as "absent".

type wireListing struct {
	Author   wireAuthor `json:"author"`
	Offer    wireOffer  `json:"offer"`
	Location Coordinate `json:"location"`
}

type wireAuthor struct {
	Avatar any `json:"avatar"`
}

type wireOffer struct {
	Title       any      `json:"title"`
	Address     any      `json:"address"`
	Price       any      `json:"price"`
	Type        any      `json:"type"`
	Rooms       any      `json:"rooms"`
	Guests      any      `json:"guests"`
	CheckIn     any      `json:"checkin"`
	CheckOut    any      `json:"checkout"`
	Description any      `json:"description"`
	Features    []string `json:"features"`
	Photos      []string `json:"photos"`
}

// DecodeListings parses a feed payload into domain listings.
func DecodeListings(data []byte) ([]Listing, error) {
	var wire []wireListing
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode listing feed: %w", err)
	}

	listings := make([]Listing, 0, len(wire))
	for _, w := range wire {
		l := Listing{
			Author:   Author{Avatar: optString(w.Author.Avatar)},
			Location: w.Location,
			Offer: Offer{
				Title:       optString(w.Offer.Title),
				Address:     optString(w.Offer.Address),
				Price:       optInt(w.Offer.Price),
				Rooms:       optInt(w.Offer.Rooms),
				Guests:      optInt(w.Offer.Guests),
				CheckIn:     optString(w.Offer.CheckIn),
				CheckOut:    optString(w.Offer.CheckOut),
				Description: optString(w.Offer.Description),
				Photos:      w.Offer.Photos,
			},
		}
		if s := optString(w.Offer.Type); s != nil {
			t := Type(*s)
			l.Offer.Type = &t
		}
		if w.Offer.Features != nil {
			l.Offer.Features = make([]Feature, 0, len(w.Offer.Features))
			for _, f := range w.Offer.Features {
				l.Offer.Features = append(l.Offer.Features, Feature(f))
			}
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// EncodeListings renders domain listings back into the feed encoding.
func EncodeListings(listings []Listing) ([]byte, error) {
	wire := make([]wireListing, 0, len(listings))
	for _, l := range listings {
		w := wireListing{
			Author:   wireAuthor{Avatar: sentinelString(l.Author.Avatar)},
			Location: l.Location,
			Offer: wireOffer{
				Title:       sentinelString(l.Offer.Title),
				Address:     sentinelString(l.Offer.Address),
				Price:       sentinelInt(l.Offer.Price),
				Rooms:       sentinelInt(l.Offer.Rooms),
				Guests:      sentinelInt(l.Offer.Guests),
				CheckIn:     sentinelString(l.Offer.CheckIn),
				CheckOut:    sentinelString(l.Offer.CheckOut),
				Description: sentinelString(l.Offer.Description),
				Photos:      l.Offer.Photos,
			},
		}
		if l.Offer.Type != nil {
			w.Offer.Type = string(*l.Offer.Type)
		} else {
			w.Offer.Type = 0
		}
		if l.Offer.Features != nil {
			w.Offer.Features = make([]string, 0, len(l.Offer.Features))
			for _, f := range l.Offer.Features {
				w.Offer.Features = append(w.Offer.Features, string(f))
			}
		}
		wire = append(wire, w)
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode listing feed: %w", err)
	}
	return data, nil
}

func optString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func optInt(v any) *int {
	f, ok := v.(float64)
	if !ok || f == 0 {
		return nil
	}
	n := int(f)
	return &n
}

func sentinelString(s *string) any {
	if s == nil {
		return 0
	}
	return *s
}

func sentinelInt(n *int) any {
	if n == nil {
		return 0
	}
	return *n
}
