// Package validate holds the cross-field rules for the listing
// submission form. Every check is a pure function from current field
// values to a validity message: the empty string means valid, anything
// else is shown to the user through the form view's custom-validity
// mechanism.
package validate

import (
	"fmt"
	"unicode/utf8"

	"nestmap/internal/listing"
)

const msgCapacityMismatch = "Guest count does not match room count."

// Title checks the listing title against the minimum length.
func Title(title string, minLength int) string {
	if title == "" {
		return "Required field."
	}
	length := utf8.RuneCountInString(title)
	if length < minLength {
		return fmt.Sprintf("Title must be at least %d characters long. %d more to go.", minLength, minLength-length)
	}
	return ""
}

// Price checks the nightly price against the per-type minimum and the
// global ceiling. An unknown accommodation type is a contract violation
// and is returned as an error rather than a validity message.
func Price(price int, t listing.Type, maxPrice int) (string, error) {
	min, err := listing.MinPriceFor(t)
	if err != nil {
		return "", err
	}
	label, err := listing.LabelFor(t)
	if err != nil {
		return "", err
	}
	if price < min {
		return fmt.Sprintf("Minimum price for a %s is %d.", label, min), nil
	}
	if price > maxPrice {
		return fmt.Sprintf("Maximum price is %d.", maxPrice), nil
	}
	return "", nil
}

// Capacity checks guest count against room count. The rules are ordered;
// the first match wins:
//
//  1. more guests than rooms is never allowed;
//  2. the max-room listing is reserved for "not for guests", so booking
//     it for a small group is "too spacious";
//  3. "not for guests" is only selectable with the max-room listing.
func Capacity(guests, rooms int) string {
	switch {
	case guests > rooms:
		return msgCapacityMismatch
	case guests < rooms && rooms == listing.MaxRoomNumber && guests != listing.MinCapacity:
		return "Too spacious."
	case rooms != listing.MaxRoomNumber && guests == listing.MinCapacity:
		return msgCapacityMismatch
	}
	return ""
}

// SelectableCapacities recomputes, from scratch, which capacity options
// are selectable for the given room count. For the max-room listing only
// the "not for guests" option stays enabled; otherwise an option is
// enabled when it fits into the rooms and is not "not for guests".
func SelectableCapacities(rooms int, options []int) map[int]bool {
	enabled := make(map[int]bool, len(options))
	for _, option := range options {
		if rooms == listing.MaxRoomNumber {
			enabled[option] = option == listing.MinCapacity
		} else {
			enabled[option] = option <= rooms && option != listing.MinCapacity
		}
	}
	return enabled
}
