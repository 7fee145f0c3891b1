package event

import (
	"errors"
	"strings"
	"testing"
)

func validInput() Input {
	return Input{
		Name:  "Company picnic",
		Type:  "Outdoor Gathering",
		Date:  "2024-06-15",
		Start: "11:00",
		End:   "15:00",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Input)
		hasLocation bool
		wantErr     string
	}{
		{"valid", func(in *Input) {}, true, ""},
		{"no location", func(in *Input) {}, false, "select a location"},
		{"missing name", func(in *Input) { in.Name = "" }, true, "event name"},
		{"missing type", func(in *Input) { in.Type = "" }, true, "event type"},
		{"bad date", func(in *Input) { in.Date = "June 15" }, true, "date"},
		{"bad start", func(in *Input) { in.Start = "11am" }, true, "start time"},
		{"missing end", func(in *Input) { in.End = "" }, true, "end time"},
		{"end before start", func(in *Input) { in.Start = "15:00"; in.End = "11:00" }, true, "end time must be after start time"},
		{"end equals start", func(in *Input) { in.End = in.Start }, true, "end time must be after start time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate(tt.hasLocation)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNoLocationBeatsFieldErrors(t *testing.T) {
	err := Input{}.Validate(false)
	if !errors.Is(err, ErrNoLocation) {
		t.Errorf("err = %v, want ErrNoLocation", err)
	}
}

func TestWindowStrings(t *testing.T) {
	in := validInput()
	if got := in.WindowStart(); got != "2024-06-15T11:00" {
		t.Errorf("WindowStart = %q", got)
	}
	if got := in.WindowEnd(); got != "2024-06-15T15:00" {
		t.Errorf("WindowEnd = %q", got)
	}
}

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:test-1
SUMMARY:Morning run
DTSTART:20240615T070000Z
DTEND:20240615T083000Z
END:VEVENT
END:VCALENDAR
`

func TestFromICS(t *testing.T) {
	in, err := FromICS(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("FromICS: %v", err)
	}
	if in.Name != "Morning run" {
		t.Errorf("name = %q", in.Name)
	}
	if in.Type != "General" {
		t.Errorf("type = %q, want General", in.Type)
	}
	if in.Date != "2024-06-15" {
		t.Errorf("date = %q", in.Date)
	}
	if in.Start != "07:00" || in.End != "08:30" {
		t.Errorf("window = %q-%q", in.Start, in.End)
	}
}

func TestFromICSNoEvents(t *testing.T) {
	empty := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\nEND:VCALENDAR\r\n"
	if _, err := FromICS(strings.NewReader(empty)); err == nil {
		t.Fatal("expected error for calendar with no events")
	}
}

func TestFromICSGarbage(t *testing.T) {
	if _, err := FromICS(strings.NewReader("not a calendar")); err == nil {
		t.Fatal("expected parse error")
	}
}
