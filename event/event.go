package event

import (
	"errors"
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrNoLocation is returned when advice is requested before a location has
// been selected.
var ErrNoLocation = errors.New("select a location before requesting event advice")

// Input is the typed event form, validated once at the UI boundary before
// any request is made.
type Input struct {
	Name  string `validate:"required"`
	Type  string `validate:"required"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Start string `validate:"required,datetime=15:04"`
	End   string `validate:"required,datetime=15:04"`
}

// WindowStart returns the zero-padded local datetime the backend expects.
// Both window values share the Date, so plain string comparison orders them.
func (in Input) WindowStart() string {
	return in.Date + "T" + in.Start
}

func (in Input) WindowEnd() string {
	return in.Date + "T" + in.End
}

// Validate checks the form and the window ordering. It must pass before an
// advice request is issued; failures are shown inline and send nothing.
func (in Input) Validate(hasLocation bool) error {
	if !hasLocation {
		return ErrNoLocation
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s: invalid or missing value", fieldLabel(verrs[0].Field()))
		}
		return err
	}
	if in.WindowEnd() <= in.WindowStart() {
		return errors.New("end time must be after start time")
	}
	return nil
}

func fieldLabel(field string) string {
	switch field {
	case "Name":
		return "event name"
	case "Type":
		return "event type"
	case "Date":
		return "date"
	case "Start":
		return "start time"
	case "End":
		return "end time"
	default:
		return field
	}
}

// FromICS prefills the form from the first VEVENT of an iCalendar stream.
// The event type defaults to General; the caller may adjust before submit.
func FromICS(r io.Reader) (Input, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return Input{}, fmt.Errorf("parsing calendar: %w", err)
	}

	events := cal.Events()
	if len(events) == 0 {
		return Input{}, errors.New("calendar has no events")
	}
	e := events[0]

	start, err := e.GetStartAt()
	if err != nil {
		return Input{}, fmt.Errorf("event start: %w", err)
	}
	end, err := e.GetEndAt()
	if err != nil {
		return Input{}, fmt.Errorf("event end: %w", err)
	}

	name := "Imported event"
	if p := e.GetProperty(ics.ComponentPropertySummary); p != nil && p.Value != "" {
		name = p.Value
	}

	return Input{
		Name:  name,
		Type:  "General",
		Date:  start.Format("2006-01-02"),
		Start: start.Format("15:04"),
		End:   end.Format("15:04"),
	}, nil
}
