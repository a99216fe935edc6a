package main

import (
	"fmt"
	"io"

	"nestmap/internal/form"
	"nestmap/internal/geomap"
	"nestmap/internal/listing"
	"nestmap/internal/popup"
)

// Console-backed collaborators: the map widget draws to a writer, the
// form view tracks state silently, alerts print outcome lines. Together
// they let the whole page run without a browser.

type consoleWidget struct {
	out io.Writer
}

func (w *consoleWidget) CreateMarker(at listing.Coordinate, opts geomap.MarkerOptions) geomap.MarkerHandle {
	kind := "listing pin"
	if opts.Draggable {
		kind = "anchor pin"
	}
	fmt.Fprintf(w.out, "[map] %s placed at %s\n", kind, geomap.ProjectAddress(at, listing.Accuracy))
	return &consoleMarker{out: w.out, at: at}
}

type consoleMarker struct {
	out       io.Writer
	at        listing.Coordinate
	onMoveEnd func(listing.Coordinate)
}

func (m *consoleMarker) Position() listing.Coordinate { return m.at }

func (m *consoleMarker) SetPosition(at listing.Coordinate) {
	m.at = at
	if m.onMoveEnd != nil {
		m.onMoveEnd(at)
	}
}

func (m *consoleMarker) OnMoveEnd(fn func(listing.Coordinate)) { m.onMoveEnd = fn }

func (m *consoleMarker) BindPopup(card *popup.Content) {
	fmt.Fprintln(m.out, "  popup:")
	for _, block := range []popup.Block{
		card.Title, card.Address, card.Price, card.Type,
		card.Capacity, card.Times, card.Description,
	} {
		if block.Visible {
			fmt.Fprintf(m.out, "    %s\n", block.Text)
		}
	}
	fmt.Fprintf(m.out, "    avatar: %s\n", card.AvatarURL)
	if card.FeaturesVisible {
		fmt.Fprintf(m.out, "    features: %v\n", card.Features)
	}
	if card.PhotosVisible {
		fmt.Fprintf(m.out, "    photos: %v\n", card.Photos)
	}
}

func (m *consoleMarker) Remove() {}

type consoleView struct {
	out    io.Writer
	values map[form.Field]string
}

func newConsoleView(out io.Writer) *consoleView {
	return &consoleView{out: out, values: make(map[form.Field]string)}
}

func (v *consoleView) SetValidity(f form.Field, message string) {
	if message != "" {
		fmt.Fprintf(v.out, "[form] %s: %s\n", f, message)
	}
}

func (v *consoleView) ReportValidity(form.Field) {}

func (v *consoleView) MarkInvalid(f form.Field) {
	fmt.Fprintf(v.out, "[form] %s marked invalid\n", f)
}

func (v *consoleView) ClearInvalid(form.Field) {}

func (v *consoleView) SetValue(f form.Field, value string) { v.values[f] = value }

func (v *consoleView) SetPlaceholder(form.Field, string) {}

func (v *consoleView) SetCapacityEnabled(map[int]bool) {}

func (v *consoleView) SetAvatar(string) {}

func (v *consoleView) ClearPhotoPreviews() {}

func (v *consoleView) ClearForm() { v.values = make(map[form.Field]string) }

type consoleAlerts struct {
	out io.Writer
}

func (a *consoleAlerts) SubmitSuccess() { fmt.Fprintln(a.out, "[page] listing submitted, form reset") }
func (a *consoleAlerts) SubmitError() { fmt.Fprintln(a.out, "[page] submission failed, draft kept") }
func (a *consoleAlerts) DataError() { fmt.Fprintln(a.out, "[page] could not load listings") }

type consoleActivator struct {
	out io.Writer
}

func (a *consoleActivator) Activate() { fmt.Fprintln(a.out, "[page] active") }
func (a *consoleActivator) Deactivate() { fmt.Fprintln(a.out, "[page] disabled while the map loads") }
