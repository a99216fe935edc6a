package form

import "context"

// Field identifies one form control.
type Field string

const (
	FieldTitle    Field = "title"
	FieldAddress  Field = "address"
	FieldPrice    Field = "price"
	FieldType     Field = "type"
	FieldRooms    Field = "room_number"
	FieldCapacity Field = "capacity"
	FieldCheckIn  Field = "timein"
	FieldCheckOut Field = "timeout"
)

var allFields = []Field{
	FieldTitle, FieldAddress, FieldPrice, FieldType,
	FieldRooms, FieldCapacity, FieldCheckIn, FieldCheckOut,
}

// Trigger names the event kind that fired a field rule.
type Trigger string

const (
	TriggerInput  Trigger = "input"
	TriggerChange Trigger = "change"
)

// State is the form's position in its submission lifecycle.
type State int

const (
	StatePristine State = iota
	StateEditing
	StateValid
	StateInvalid
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StatePristine:
		return "pristine"
	case StateEditing:
		return "editing"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// Payload is the serialized form data handed to the transport.
type Payload map[string]string

// View is the form's window onto the page. It covers the platform
// validity mechanism (set/report custom validity), the visual
// invalid-state marker on a field's container, and the few writes the
// controller performs on the markup. The controller never touches
// elements directly.
type View interface {
	SetValidity(f Field, message string)
	ReportValidity(f Field)
	MarkInvalid(f Field)
	ClearInvalid(f Field)
	SetValue(f Field, value string)
	SetPlaceholder(f Field, value string)
	SetCapacityEnabled(enabled map[int]bool)
	SetAvatar(url string)
	ClearPhotoPreviews()
	ClearForm()
}

// Transport submits a serialized draft to the backing API. A nil error
// is the success continuation, anything else the failure one.
type Transport interface {
	Submit(ctx context.Context, payload Payload) error
}

// Alerts displays the transient submission outcome messages. Display
// mechanics and dismissal timers are the collaborator's business.
type Alerts interface {
	SubmitSuccess()
	SubmitError()
}
