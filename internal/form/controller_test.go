package form

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nestmap/internal/listing"
)

type stubView struct {
	validity        map[Field]string
	values          map[Field]string
	placeholders    map[Field]string
	marked          map[Field]int
	cleared         map[Field]int
	capacityEnabled map[int]bool
	avatar          string
	photosCleared   int
	formCleared     int
	reports         int
}

func newStubView() *stubView {
	return &stubView{
		validity:     make(map[Field]string),
		values:       make(map[Field]string),
		placeholders: make(map[Field]string),
		marked:       make(map[Field]int),
		cleared:      make(map[Field]int),
	}
}

func (v *stubView) SetValidity(f Field, message string) { v.validity[f] = message }
func (v *stubView) ReportValidity(Field) { v.reports++ }
func (v *stubView) MarkInvalid(f Field) { v.marked[f]++ }
func (v *stubView) ClearInvalid(f Field) { v.cleared[f]++ }
func (v *stubView) SetValue(f Field, value string) { v.values[f] = value }
func (v *stubView) SetPlaceholder(f Field, value string) { v.placeholders[f] = value }
func (v *stubView) SetCapacityEnabled(enabled map[int]bool) { v.capacityEnabled = enabled }
func (v *stubView) SetAvatar(url string) { v.avatar = url }
func (v *stubView) ClearPhotoPreviews() { v.photosCleared++ }
func (v *stubView) ClearForm() { v.formCleared++ }

type stubTransport struct {
	calls    int
	lastSent Payload
	err      error
}

func (t *stubTransport) Submit(_ context.Context, payload Payload) error {
	t.calls++
	t.lastSent = payload
	return t.err
}

type stubAlerts struct {
	successes int
	errors    int
}

func (a *stubAlerts) SubmitSuccess() { a.successes++ }
func (a *stubAlerts) SubmitError() { a.errors++ }

func newTestController(t *testing.T) (*Controller, *stubView, *stubTransport, *stubAlerts, *int) {
	t.Helper()
	view := newStubView()
	transport := &stubTransport{}
	alerts := &stubAlerts{}
	mapResets := 0
	c := New(Config{
		View:      view,
		Transport: transport,
		Alerts:    alerts,
		ResetMap:  func() { mapResets++ },
		Logger:    zerolog.Nop(),
	})
	return c, view, transport, alerts, &mapResets
}

func fillValidDraft(t *testing.T, c *Controller) {
	t.Helper()
	steps := []struct {
		field   Field
		trigger Trigger
		value   string
	}{
		{FieldTitle, TriggerInput, strings.Repeat("spacious flat ", 3)},
		{FieldType, TriggerChange, "flat"},
		{FieldPrice, TriggerInput, "4500"},
		{FieldRooms, TriggerChange, "2"},
		{FieldCapacity, TriggerChange, "2"},
	}
	for _, s := range steps {
		if err := c.Handle(s.field, s.trigger, s.value); err != nil {
			t.Fatalf("Handle(%s): %v", s.field, err)
		}
	}
}

func TestNewPrimesView(t *testing.T) {
	_, view, _, _, _ := newTestController(t)

	min, _ := listing.MinPriceFor(listing.DefaultType)
	if view.placeholders[FieldPrice] != strconv.Itoa(min) {
		t.Errorf("price placeholder = %q, want %d", view.placeholders[FieldPrice], min)
	}
	if view.capacityEnabled == nil {
		t.Fatal("capacity options not primed")
	}
	if !view.capacityEnabled[1] || view.capacityEnabled[0] {
		t.Errorf("default capacity enablement = %v", view.capacityEnabled)
	}
}

func TestTitleValidationFlow(t *testing.T) {
	c, view, _, _, _ := newTestController(t)

	if err := c.Handle(FieldTitle, TriggerInput, "too short"); err != nil {
		t.Fatal(err)
	}
	if view.validity[FieldTitle] == "" {
		t.Error("short title must set a validity message")
	}
	if c.State() != StateInvalid {
		t.Errorf("state = %s, want invalid", c.State())
	}

	if err := c.Handle(FieldTitle, TriggerInput, strings.Repeat("a", 30)); err != nil {
		t.Fatal(err)
	}
	if view.validity[FieldTitle] != "" {
		t.Error("valid title must clear the validity message")
	}
	if view.cleared[FieldTitle] == 0 {
		t.Error("valid title must clear the invalid container marker")
	}
	if c.State() != StateValid {
		t.Errorf("state = %s, want valid", c.State())
	}
}

func TestTypeChangeUpdatesPlaceholderAndRevalidates(t *testing.T) {
	c, view, _, _, _ := newTestController(t)

	if err := c.Handle(FieldPrice, TriggerInput, "2000"); err != nil {
		t.Fatal(err)
	}
	if view.validity[FieldPrice] != "" {
		t.Errorf("2000 valid for flat, got %q", view.validity[FieldPrice])
	}

	if err := c.Handle(FieldType, TriggerChange, "palace"); err != nil {
		t.Fatal(err)
	}
	if view.placeholders[FieldPrice] != "10000" {
		t.Errorf("placeholder = %q, want 10000", view.placeholders[FieldPrice])
	}
	if view.validity[FieldPrice] == "" {
		t.Error("2000 must become invalid after switching to palace")
	}
}

func TestTypeChangeUnknownCodeFails(t *testing.T) {
	c, _, _, _, _ := newTestController(t)
	if err := c.Handle(FieldType, TriggerChange, "cave"); err == nil {
		t.Fatal("expected error for unknown accommodation type")
	}
}

func TestRoomsChangeRecomputesCapacities(t *testing.T) {
	c, view, _, _, _ := newTestController(t)

	if err := c.Handle(FieldRooms, TriggerChange, "100"); err != nil {
		t.Fatal(err)
	}
	if !view.capacityEnabled[0] || view.capacityEnabled[1] || view.capacityEnabled[2] || view.capacityEnabled[3] {
		t.Errorf("max rooms enablement = %v", view.capacityEnabled)
	}
	// Default guest count no longer fits: 1 guest in the 100-room listing.
	if view.validity[FieldCapacity] != "Too spacious." {
		t.Errorf("capacity message = %q", view.validity[FieldCapacity])
	}

	if err := c.Handle(FieldRooms, TriggerChange, "3"); err != nil {
		t.Fatal(err)
	}
	if view.capacityEnabled[0] || !view.capacityEnabled[3] {
		t.Errorf("three-room enablement = %v", view.capacityEnabled)
	}
}

func TestTimeFieldsOverwriteEachOther(t *testing.T) {
	c, view, _, _, _ := newTestController(t)

	if err := c.Handle(FieldCheckIn, TriggerChange, "14:00"); err != nil {
		t.Fatal(err)
	}
	if c.Draft().CheckOut != "14:00" {
		t.Errorf("checkout = %q after checkin change", c.Draft().CheckOut)
	}
	if view.values[FieldCheckOut] != "14:00" {
		t.Error("checkout field not synced in the view")
	}

	if err := c.Handle(FieldCheckOut, TriggerChange, "12:00"); err != nil {
		t.Fatal(err)
	}
	if c.Draft().CheckIn != "12:00" {
		t.Errorf("checkin = %q after checkout change", c.Draft().CheckIn)
	}
	if view.values[FieldCheckIn] != "12:00" {
		t.Error("checkin field not synced in the view")
	}
}

func TestAddressIsWrittenBySink(t *testing.T) {
	c, view, _, _, _ := newTestController(t)

	c.SetAddress("35.68950, 139.69171")
	if view.values[FieldAddress] != "35.68950, 139.69171" {
		t.Errorf("address value = %q", view.values[FieldAddress])
	}
	if c.Draft().Address != "35.68950, 139.69171" {
		t.Errorf("draft address = %q", c.Draft().Address)
	}
}

func TestSubmitInvalidMarksFieldsAndSkipsTransport(t *testing.T) {
	c, view, transport, alerts, _ := newTestController(t)

	// Pristine draft: empty title, zero price below flat minimum.
	if err := c.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	if transport.calls != 0 {
		t.Errorf("transport called %d times, want 0", transport.calls)
	}
	if view.marked[FieldTitle] == 0 || view.marked[FieldPrice] == 0 {
		t.Errorf("invalid containers not marked: %v", view.marked)
	}
	if alerts.successes != 0 || alerts.errors != 0 {
		t.Error("no outcome message expected for a blocked submit")
	}
	if c.State() != StateInvalid {
		t.Errorf("state = %s, want invalid", c.State())
	}
}

func TestSubmitSuccessResetsFormAndMap(t *testing.T) {
	c, view, transport, alerts, mapResets := newTestController(t)
	fillValidDraft(t, c)
	c.SetAddress("35.68950, 139.69171")
	c.AddPhotoPreview("img/photos/preview.jpg")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	if transport.calls != 1 {
		t.Fatalf("transport called %d times, want 1", transport.calls)
	}
	if transport.lastSent["title"] == "" || transport.lastSent["price"] != "4500" {
		t.Errorf("payload = %v", transport.lastSent)
	}
	if alerts.successes != 1 || alerts.errors != 0 {
		t.Errorf("alerts: %d successes, %d errors", alerts.successes, alerts.errors)
	}
	if *mapResets != 1 {
		t.Errorf("map reset %d times, want 1", *mapResets)
	}
	if c.State() != StatePristine {
		t.Errorf("state = %s, want pristine", c.State())
	}
	if view.formCleared != 1 || view.photosCleared != 1 {
		t.Errorf("form cleared %d, photos cleared %d", view.formCleared, view.photosCleared)
	}
	if view.avatar != listing.DefaultAvatarURL {
		t.Errorf("avatar = %q after reset", view.avatar)
	}
	if len(c.Draft().Photos) != 0 {
		t.Error("photo previews must be dropped on reset")
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	c, view, transport, alerts, mapResets := newTestController(t)
	transport.err = errors.New("network down")
	fillValidDraft(t, c)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	if transport.calls != 1 {
		t.Fatalf("transport called %d times, want 1", transport.calls)
	}
	if alerts.errors != 1 || alerts.successes != 0 {
		t.Errorf("alerts: %d successes, %d errors", alerts.successes, alerts.errors)
	}
	if *mapResets != 0 {
		t.Error("map must not reset on failure")
	}
	if view.formCleared != 0 {
		t.Error("form must stay populated for retry")
	}
	if c.Draft().Price != 4500 {
		t.Errorf("draft price = %d, want 4500", c.Draft().Price)
	}
	if c.State() != StateEditing {
		t.Errorf("state = %s, want editing", c.State())
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c, view, _, _, _ := newTestController(t)
	fillValidDraft(t, c)
	c.AddPhotoPreview("img/photos/preview.jpg")
	c.SetAvatarPreview("img/avatars/me.png")

	c.Reset()

	d := c.Draft()
	if d.Title != "" || d.Price != 0 {
		t.Errorf("draft after reset = %+v", d)
	}
	if d.Type != listing.DefaultType || d.Rooms != 1 {
		t.Errorf("defaults after reset = %+v", d)
	}
	if len(d.Photos) != 0 {
		t.Error("photos kept after reset")
	}
	if d.Avatar != listing.DefaultAvatarURL {
		t.Errorf("avatar = %q after reset", d.Avatar)
	}
	min, _ := listing.MinPriceFor(listing.DefaultType)
	if view.placeholders[FieldPrice] != strconv.Itoa(min) {
		t.Errorf("placeholder = %q after reset", view.placeholders[FieldPrice])
	}
	if c.State() != StatePristine {
		t.Errorf("state = %s, want pristine", c.State())
	}
}

func TestHandleUnknownRule(t *testing.T) {
	c, _, _, _, _ := newTestController(t)
	if err := c.Handle(FieldAddress, TriggerInput, "x"); err == nil {
		t.Fatal("expected error for unwired field event")
	}
}
