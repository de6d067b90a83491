package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize   = errors.New("party size must be positive")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrMissingLocation    = errors.New("location is required")
	ErrMissingConfirmCode = errors.New("confirmation code is required")
)

type Reservation struct {
	id                 uuid.UUID
	locationID         uuid.UUID
	contact            Contact
	slot               Slot
	durationMinutes    int
	partySize          int
	accommodations     Accommodations
	status             Status
	source             Source
	confirmationCode   ConfirmationCode
	confirmationSentAt *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewOnlineReservation builds a confirmed reservation made through the public booking flow.
func NewOnlineReservation(
	locationID uuid.UUID,
	contact Contact,
	slot Slot,
	durationMinutes int,
	partySize int,
	accommodations Accommodations,
	code ConfirmationCode,
	now time.Time,
) (*Reservation, error) {
	if locationID == uuid.Nil {
		return nil, ErrMissingLocation
	}
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if code == "" {
		return nil, ErrMissingConfirmCode
	}

	return &Reservation{
		id:               uuid.New(),
		locationID:       locationID,
		contact:          contact,
		slot:             slot,
		durationMinutes:  durationMinutes,
		partySize:        partySize,
		accommodations:   accommodations,
		status:           StatusConfirmed,
		source:           SourceOnline,
		confirmationCode: code,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructReservation(
	id, locationID uuid.UUID,
	contact Contact,
	slot Slot,
	durationMinutes, partySize int,
	accommodations Accommodations,
	status Status,
	source Source,
	code ConfirmationCode,
	confirmationSentAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		locationID:         locationID,
		contact:            contact,
		slot:               slot,
		durationMinutes:    durationMinutes,
		partySize:          partySize,
		accommodations:     accommodations,
		status:             status,
		source:             source,
		confirmationCode:   code,
		confirmationSentAt: confirmationSentAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// WithConfirmationCode returns a copy carrying a freshly issued code.
func (r *Reservation) WithConfirmationCode(code ConfirmationCode) *Reservation {
	cp := *r
	cp.confirmationCode = code
	return &cp
}

func (r *Reservation) Interval() Interval {
	// duration is validated on construction
	iv, _ := r.slot.Interval(r.Duration())
	return iv
}

func (r *Reservation) Duration() time.Duration {
	return time.Duration(r.durationMinutes) * time.Minute
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) LocationID() uuid.UUID          { return r.locationID }
func (r *Reservation) Contact() Contact               { return r.contact }
func (r *Reservation) Slot() Slot                     { return r.slot }
func (r *Reservation) DurationMinutes() int           { return r.durationMinutes }
func (r *Reservation) PartySize() int                 { return r.partySize }
func (r *Reservation) Accommodations() Accommodations { return r.accommodations }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) Source() Source                 { return r.source }
func (r *Reservation) ConfirmationCode() ConfirmationCode {
	return r.confirmationCode
}
func (r *Reservation) ConfirmationSentAt() *time.Time { return r.confirmationSentAt }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time           { return r.updatedAt }
