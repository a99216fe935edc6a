package main

import "nestmap/internal/listing"

// demoListings builds the in-memory listing set served by the demo API.
// Several listings deliberately omit fields so popup rendering exercises
// every conditional path.
func demoListings() []listing.Listing {
	return []listing.Listing{
		{
			Author: listing.Author{Avatar: str("img/avatars/user01.png")},
			Offer: listing.Offer{
				Title:       str("Bright flat near the station"),
				Address:     str("35.68940, 139.69200"),
				Price:       num(5200),
				Type:        typ(listing.TypeFlat),
				Rooms:       num(2),
				Guests:      num(3),
				CheckIn:     str("12:00"),
				CheckOut:    str("13:00"),
				Description: str("Second floor, quiet courtyard, fast wifi."),
				Features:    []listing.Feature{listing.FeatureWifi, listing.FeatureWasher},
				Photos: []string{
					"img/photos/flat-01-1.jpg",
					"img/photos/flat-01-2.jpg",
				},
			},
			Location: listing.Coordinate{Lat: 35.68940, Lng: 139.69200},
		},
		{
			Author: listing.Author{Avatar: str("img/avatars/user02.png")},
			Offer: listing.Offer{
				Title:    str("Family house with a garden"),
				Address:  str("35.69310, 139.70080"),
				Price:    num(12000),
				Type:     typ(listing.TypeHouse),
				Rooms:    num(3),
				Guests:   num(3),
				CheckIn:  str("14:00"),
				CheckOut: str("14:00"),
				Features: []listing.Feature{
					listing.FeatureParking,
					listing.FeatureDishwasher,
					listing.FeatureConditioner,
				},
				Photos: []string{"img/photos/house-02-1.jpg"},
			},
			Location: listing.Coordinate{Lat: 35.69310, Lng: 139.70080},
		},
		{
			// Anonymous owner, sparse offer: only guests, no rooms.
			Offer: listing.Offer{
				Title:   str("Cheap bed in a shared bungalow"),
				Price:   num(800),
				Type:    typ(listing.TypeBungalow),
				Guests:  num(2),
				CheckIn: str("12:00"),
			},
			Location: listing.Coordinate{Lat: 35.68410, Lng: 139.68720},
		},
		{
			Author: listing.Author{Avatar: str("img/avatars/user04.png")},
			Offer: listing.Offer{
				Title:       str("Palace for ceremonies, not for guests"),
				Address:     str("35.69800, 139.69540"),
				Price:       num(750000),
				Type:        typ(listing.TypePalace),
				Rooms:       num(listing.MaxRoomNumber),
				Description: str("The whole palace. Booked for events only."),
				Features:    []listing.Feature{listing.FeatureElevator},
				Photos:      []string{"img/photos/palace-04-1.jpg"},
			},
			Location: listing.Coordinate{Lat: 35.69800, Lng: 139.69540},
		},
		{
			Author: listing.Author{Avatar: str("img/avatars/user05.png")},
			Offer: listing.Offer{
				Title:    str("Hotel room with a skyline view"),
				Address:  str("35.68120, 139.70360"),
				Price:    num(9400),
				Type:     typ(listing.TypeHotel),
				Rooms:    num(1),
				Guests:   num(1),
				CheckIn:  str("13:00"),
				CheckOut: str("12:00"),
				Features: []listing.Feature{},
				Photos:   []string{"img/photos/hotel-05-1.jpg", "img/photos/hotel-05-2.jpg", "img/photos/hotel-05-3.jpg"},
			},
			Location: listing.Coordinate{Lat: 35.68120, Lng: 139.70360},
		},
		{
			// Listing with almost everything omitted.
			Offer: listing.Offer{
				Title: str("Mystery stay"),
				Type:  typ(listing.TypeFlat),
			},
			Location: listing.Coordinate{Lat: 35.67990, Lng: 139.69030},
		},
	}
}

func str(s string) *string { return &s }

func num(n int) *int { return &n }

func typ(t listing.Type) *listing.Type { return &t }
