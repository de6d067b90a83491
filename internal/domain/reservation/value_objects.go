package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime     = errors.New("time must be formatted as HH:MM or HH:MM:SS")
	ErrInvalidInterval = errors.New("interval must have a positive duration")
	ErrInvalidCode     = errors.New("invalid confirmation code format")
	ErrEmptyName       = errors.New("customer name cannot be empty")
	ErrEmptyPhone      = errors.New("customer phone cannot be empty")
	ErrNameTooLong     = errors.New("customer name is too long (max 255 characters)")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	MaxNameLength = 255
)

// Interval is the half-open span [start, end) a reservation occupies on a table.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start time.Time, duration time.Duration) (Interval, error) {
	if duration <= 0 {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: start.Add(duration)}, nil
}

func (i Interval) Start() time.Time        { return i.start }
func (i Interval) End() time.Time          { return i.end }
func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }

// Overlaps reports newStart < existingEnd && newEnd > existingStart.
// Intervals that only touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && i.end.After(other.start)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.DateTime), i.end.Format(time.DateTime))
}

// Slot is a requested calendar date plus a wall-clock time.
// Both are zone-less; the date is held at UTC midnight.
type Slot struct {
	date      time.Time
	timeOfDay time.Duration
}

func ParseSlot(date, clock string) (Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Slot{}, err
	}
	offset, err := ParseTimeOfDay(clock)
	if err != nil {
		return Slot{}, err
	}
	return Slot{date: d, timeOfDay: offset}, nil
}

func NewSlot(date time.Time, timeOfDay time.Duration) Slot {
	y, m, d := date.Date()
	return Slot{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), timeOfDay: timeOfDay}
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS and returns the offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	switch len(s) {
	case len("15:04"):
		t, err = time.Parse("15:04", s)
	case len(TimeLayout):
		t, err = time.Parse(TimeLayout, s)
	default:
		return 0, ErrInvalidTime
	}
	if err != nil {
		return 0, ErrInvalidTime
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// NormalizeTime rewrites HH:MM or HH:MM:SS as HH:MM:SS.
func NormalizeTime(s string) (string, error) {
	offset, err := ParseTimeOfDay(s)
	if err != nil {
		return "", err
	}
	return FormatTimeOfDay(offset), nil
}

func FormatTimeOfDay(offset time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(offset).Format(TimeLayout)
}

func (s Slot) Date() time.Time          { return s.date }
func (s Slot) TimeOfDay() time.Duration { return s.timeOfDay }
func (s Slot) DateString() string       { return s.date.Format(DateLayout) }
func (s Slot) TimeString() string       { return FormatTimeOfDay(s.timeOfDay) }
func (s Slot) Start() time.Time         { return s.date.Add(s.timeOfDay) }
func (s Slot) IsZero() bool             { return s.date.IsZero() }
func (s Slot) SameDate(other Slot) bool { return s.date.Equal(other.date) }
func (s Slot) String() string           { return s.DateString() + " " + s.TimeString() }
func (s Slot) Interval(duration time.Duration) (Interval, error) {
	return NewInterval(s.Start(), duration)
}

type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Contact{}, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return Contact{}, ErrNameTooLong
	}
	if phone == "" {
		return Contact{}, ErrEmptyPhone
	}
	return Contact{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Contact) Name() string   { return c.name }
func (c Contact) Phone() string  { return c.phone }
func (c Contact) Email() string  { return c.email }
func (c Contact) HasEmail() bool { return c.email != "" }

// Accommodations is persisted as-is in a jsonb column.
type Accommodations struct {
	Allergies  string `json:"allergies,omitempty"`
	Occasion   string `json:"occasion,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Wheelchair bool   `json:"wheelchair,omitempty"`
	HighChair  bool   `json:"high_chair,omitempty"`
}

func (a Accommodations) IsEmpty() bool {
	return a == Accommodations{}
}

var confirmationCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{3,31}$`)

type ConfirmationCode string

func NewConfirmationCode(code string) (ConfirmationCode, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !confirmationCodeRegex.MatchString(code) {
		return ConfirmationCode(""), ErrInvalidCode
	}
	return ConfirmationCode(code), nil
}

func (c ConfirmationCode) String() string {
	return string(c)
}
