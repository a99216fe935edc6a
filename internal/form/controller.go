// Package form drives the listing submission form: field validation,
// the submission state machine and the reset flow. The DOM, the
// transport and the outcome messages are injected collaborators.
package form

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"nestmap/internal/listing"
	"nestmap/internal/validate"
)

// Draft is the current form state. Address is derived from the anchor
// marker and read-only to the user.
type Draft struct {
	Title    string
	Address  string
	Price    int
	Type     listing.Type
	Rooms    int
	Guests   int
	CheckIn  string
	CheckOut string
	Photos   []string
	Avatar   string
}

// Config carries the form's collaborators and limits.
type Config struct {
	View      View
	Transport Transport
	Alerts    Alerts

	// ResetMap is invoked whenever a form reset must also restore the
	// map side (anchor marker, filters). Wired by the page owner.
	ResetMap func()

	MinTitleLength  int
	MaxPrice        int
	CapacityOptions []int
	DefaultRooms    int
	DefaultGuests   int
	DefaultTime     string
	Logger          zerolog.Logger
}

// Controller owns the submission form. Not safe for concurrent use: all
// methods run from a single event loop, and the transport call is the
// only operation that may take time.
type Controller struct {
	view      View
	transport Transport
	alerts    Alerts
	resetMap  func()
	log       zerolog.Logger
	cfg       Config

	draft   Draft
	state   State
	invalid map[Field]bool
}

// New constructs the controller and primes the view: price placeholder
// for the default type, selectable capacities for the default rooms.
func New(cfg Config) *Controller {
	if cfg.MinTitleLength == 0 {
		cfg.MinTitleLength = listing.MinTitleLength
	}
	if cfg.MaxPrice == 0 {
		cfg.MaxPrice = listing.MaxPrice
	}
	if cfg.CapacityOptions == nil {
		cfg.CapacityOptions = listing.CapacityOptions
	}
	if cfg.DefaultRooms == 0 {
		cfg.DefaultRooms = listing.RoomOptions[0]
	}
	if cfg.DefaultGuests == 0 {
		cfg.DefaultGuests = 1
	}
	if cfg.DefaultTime == "" {
		cfg.DefaultTime = listing.TimeSlots[0]
	}
	if cfg.ResetMap == nil {
		cfg.ResetMap = func() {}
	}

	c := &Controller{
		view:      cfg.View,
		transport: cfg.Transport,
		alerts:    cfg.Alerts,
		resetMap:  cfg.ResetMap,
		log:       cfg.Logger,
		cfg:       cfg,
		draft:     defaultDraft(cfg),
		invalid:   make(map[Field]bool),
	}
	c.primeView()
	return c
}

func defaultDraft(cfg Config) Draft {
	return Draft{
		Type:     listing.DefaultType,
		Rooms:    cfg.DefaultRooms,
		Guests:   cfg.DefaultGuests,
		CheckIn:  cfg.DefaultTime,
		CheckOut: cfg.DefaultTime,
		Avatar:   listing.DefaultAvatarURL,
	}
}

func (c *Controller) primeView() {
	min, _ := listing.MinPriceFor(listing.DefaultType)
	c.view.SetPlaceholder(FieldPrice, strconv.Itoa(min))
	c.view.SetCapacityEnabled(validate.SelectableCapacities(c.draft.Rooms, c.cfg.CapacityOptions))
}

// State reports where the form is in its submission lifecycle.
func (c *Controller) State() State {
	return c.state
}

// Draft returns a copy of the current form state.
func (c *Controller) Draft() Draft {
	return c.draft
}

// SetAddress writes the projected address into the read-only address
// field. It is the form's end of the anchor marker sync.
func (c *Controller) SetAddress(address string) {
	c.draft.Address = address
	c.view.SetValue(FieldAddress, address)
}

// AddPhotoPreview records an uploaded listing photo preview.
func (c *Controller) AddPhotoPreview(url string) {
	c.draft.Photos = append(c.draft.Photos, url)
}

// SetAvatarPreview records an uploaded avatar preview.
func (c *Controller) SetAvatarPreview(url string) {
	c.draft.Avatar = url
	c.view.SetAvatar(url)
}

func (c *Controller) titleChanged(value string) error {
	c.draft.Title = value
	c.applyValidity(FieldTitle, validate.Title(value, c.cfg.MinTitleLength))
	return nil
}

func (c *Controller) priceChanged(value string) error {
	c.draft.Price = parseNumber(value)
	message, err := validate.Price(c.draft.Price, c.draft.Type, c.cfg.MaxPrice)
	if err != nil {
		return err
	}
	c.applyValidity(FieldPrice, message)
	return nil
}

func (c *Controller) typeChanged(value string) error {
	t := listing.Type(value)
	min, err := listing.MinPriceFor(t)
	if err != nil {
		return err
	}
	c.draft.Type = t
	c.view.SetPlaceholder(FieldPrice, strconv.Itoa(min))
	message, err := validate.Price(c.draft.Price, t, c.cfg.MaxPrice)
	if err != nil {
		return err
	}
	c.applyValidity(FieldPrice, message)
	return nil
}

func (c *Controller) roomsChanged(value string) error {
	c.draft.Rooms = parseNumber(value)
	c.view.SetCapacityEnabled(validate.SelectableCapacities(c.draft.Rooms, c.cfg.CapacityOptions))
	c.applyValidity(FieldCapacity, validate.Capacity(c.draft.Guests, c.draft.Rooms))
	return nil
}

func (c *Controller) capacityChanged(value string) error {
	c.draft.Guests = parseNumber(value)
	c.applyValidity(FieldCapacity, validate.Capacity(c.draft.Guests, c.draft.Rooms))
	return nil
}

// Check-in and check-out overwrite each other, so after the first edit
// they are always equal.
func (c *Controller) checkInChanged(value string) error {
	c.draft.CheckIn = value
	c.draft.CheckOut = value
	c.view.SetValue(FieldCheckOut, value)
	c.touch()
	return nil
}

func (c *Controller) checkOutChanged(value string) error {
	c.draft.CheckOut = value
	c.draft.CheckIn = value
	c.view.SetValue(FieldCheckIn, value)
	c.touch()
	return nil
}

func (c *Controller) applyValidity(f Field, message string) {
	c.view.SetValidity(f, message)
	if message == "" {
		delete(c.invalid, f)
		c.view.ClearInvalid(f)
	} else {
		c.invalid[f] = true
	}
	c.view.ReportValidity(f)
	c.settleState()
}

// touch moves a pristine form into editing without a verdict change.
func (c *Controller) touch() {
	if c.state == StatePristine {
		c.state = StateEditing
	}
}

func (c *Controller) settleState() {
	if len(c.invalid) == 0 {
		c.state = StateValid
	} else {
		c.state = StateInvalid
	}
}

func (c *Controller) validateAll() error {
	c.applyValidity(FieldTitle, validate.Title(c.draft.Title, c.cfg.MinTitleLength))
	message, err := validate.Price(c.draft.Price, c.draft.Type, c.cfg.MaxPrice)
	if err != nil {
		return err
	}
	c.applyValidity(FieldPrice, message)
	c.applyValidity(FieldCapacity, validate.Capacity(c.draft.Guests, c.draft.Rooms))
	return nil
}

// Submit validates the whole draft and, when valid, dispatches it to the
// transport. An invalid draft marks every failing field's container and
// stays put. Transport failure keeps the draft for retry; success resets
// the form and the map.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state == StateSubmitting {
		return nil
	}
	if err := c.validateAll(); err != nil {
		return err
	}
	if len(c.invalid) > 0 {
		for f := range c.invalid {
			c.view.MarkInvalid(f)
		}
		c.state = StateInvalid
		return nil
	}

	c.state = StateSubmitting
	if err := c.transport.Submit(ctx, c.payload()); err != nil {
		c.log.Warn().Err(err).Msg("listing submission failed")
		c.state = StateEditing
		c.alerts.SubmitError()
		return nil
	}

	c.log.Info().Str("title", c.draft.Title).Msg("listing submitted")
	c.alerts.SubmitSuccess()
	c.Reset()
	c.resetMap()
	return nil
}

// Reset restores every field to its default, clears validity state and
// invalid markers, restores the price placeholder and avatar, and drops
// any uploaded photo previews. The address field is restored by the map
// reset that accompanies every form reset.
func (c *Controller) Reset() {
	c.draft = defaultDraft(c.cfg)
	c.invalid = make(map[Field]bool)

	c.view.ClearForm()
	for _, f := range allFields {
		c.view.SetValidity(f, "")
		c.view.ClearInvalid(f)
	}
	c.view.SetAvatar(listing.DefaultAvatarURL)
	c.view.ClearPhotoPreviews()
	c.primeView()

	c.state = StatePristine
}

func (c *Controller) payload() Payload {
	return Payload{
		"title":    c.draft.Title,
		"address":  c.draft.Address,
		"price":    strconv.Itoa(c.draft.Price),
		"type":     string(c.draft.Type),
		"rooms":    strconv.Itoa(c.draft.Rooms),
		"capacity": strconv.Itoa(c.draft.Guests),
		"timein":   c.draft.CheckIn,
		"timeout":  c.draft.CheckOut,
	}
}

// parseNumber mirrors the form's loose numeric inputs: anything that is
// not a number counts as 0.
func parseNumber(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
