package loyalty

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPhone      = errors.New("phone number has no digits")
	ErrAlreadyEnrolled = errors.New("profile is already enrolled")
	ErrMissingLocation = errors.New("location is required")
)

// NormalizePhone keeps digits and a leading plus sign.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	b.Grow(len(raw))
	if strings.HasPrefix(raw, "+") {
		b.WriteByte('+')
	}
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			digits++
		}
	}
	if digits == 0 {
		return "", ErrEmptyPhone
	}
	return b.String(), nil
}

type Profile struct {
	id                 uuid.UUID
	locationID         uuid.UUID
	phone              string
	name               string
	email              string
	enrolled           bool
	pointsBalance      int
	lifetimeVisits     int
	lifetimeSpendCents int64
	createdAt          time.Time
	updatedAt          time.Time
}

// NewEnrolledProfile creates a profile that joins the loyalty program with zero balances.
func NewEnrolledProfile(locationID uuid.UUID, rawPhone, name, email string, now time.Time) (*Profile, error) {
	if locationID == uuid.Nil {
		return nil, ErrMissingLocation
	}
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	return &Profile{
		id:         uuid.New(),
		locationID: locationID,
		phone:      phone,
		name:       strings.TrimSpace(name),
		email:      strings.TrimSpace(email),
		enrolled:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructProfile(
	id, locationID uuid.UUID,
	phone, name, email string,
	enrolled bool,
	pointsBalance, lifetimeVisits int,
	lifetimeSpendCents int64,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:                 id,
		locationID:         locationID,
		phone:              phone,
		name:               name,
		email:              email,
		enrolled:           enrolled,
		pointsBalance:      pointsBalance,
		lifetimeVisits:     lifetimeVisits,
		lifetimeSpendCents: lifetimeSpendCents,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Enroll flips an existing profile into the program. Blank name or email keep the stored value.
func (p *Profile) Enroll(name, email string, now time.Time) error {
	if p.enrolled {
		return ErrAlreadyEnrolled
	}
	p.enrolled = true
	if n := strings.TrimSpace(name); n != "" {
		p.name = n
	}
	if e := strings.TrimSpace(email); e != "" {
		p.email = e
	}
	p.updatedAt = now
	return nil
}

func (p *Profile) ID() uuid.UUID             { return p.id }
func (p *Profile) LocationID() uuid.UUID     { return p.locationID }
func (p *Profile) Phone() string             { return p.phone }
func (p *Profile) Name() string              { return p.name }
func (p *Profile) Email() string             { return p.email }
func (p *Profile) Enrolled() bool            { return p.enrolled }
func (p *Profile) PointsBalance() int        { return p.pointsBalance }
func (p *Profile) LifetimeVisits() int       { return p.lifetimeVisits }
func (p *Profile) LifetimeSpendCents() int64 { return p.lifetimeSpendCents }
func (p *Profile) CreatedAt() time.Time      { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time      { return p.updatedAt }
