package form

import "fmt"

// rule binds one field and trigger to its handler. The table is
// registered once and dispatched uniformly instead of each field wiring
// its own listener.
type rule struct {
	field   Field
	trigger Trigger
	apply   func(*Controller, string) error
}

var rules = []rule{
	{FieldTitle, TriggerInput, (*Controller).titleChanged},
	{FieldPrice, TriggerInput, (*Controller).priceChanged},
	{FieldType, TriggerChange, (*Controller).typeChanged},
	{FieldRooms, TriggerChange, (*Controller).roomsChanged},
	{FieldCapacity, TriggerChange, (*Controller).capacityChanged},
	{FieldCheckIn, TriggerChange, (*Controller).checkInChanged},
	{FieldCheckOut, TriggerChange, (*Controller).checkOutChanged},
}

// Handle routes a field event through the rule table. An event with no
// registered rule is a wiring bug.
func (c *Controller) Handle(f Field, t Trigger, value string) error {
	for _, r := range rules {
		if r.field == f && r.trigger == t {
			return r.apply(c, value)
		}
	}
	return fmt.Errorf("form: no rule for field %q trigger %q", f, t)
}
