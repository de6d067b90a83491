package location

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the per-location reservation configuration. A nil *Settings
// means the location has none, which disables online booking.
type Settings struct {
	locationID             uuid.UUID
	onlineBookingEnabled   bool
	maxPartySizeOnline     int
	defaultDurationMinutes int
	confirmationMessage    string
}

func NewSettings(locationID uuid.UUID, onlineEnabled bool, maxPartySize, defaultDurationMinutes int, confirmationMessage string) (*Settings, error) {
	if maxPartySize <= 0 || defaultDurationMinutes <= 0 {
		return nil, ErrInvalidSettings
	}
	return &Settings{
		locationID:             locationID,
		onlineBookingEnabled:   onlineEnabled,
		maxPartySizeOnline:     maxPartySize,
		defaultDurationMinutes: defaultDurationMinutes,
		confirmationMessage:    confirmationMessage,
	}, nil
}

// CheckOnlineBooking applies the business rules that gate the public flow.
func (s *Settings) CheckOnlineBooking(partySize int) error {
	if s == nil || !s.onlineBookingEnabled {
		return ErrOnlineBookingDisabled
	}
	if partySize <= 0 {
		return ErrInvalidPartySize
	}
	if partySize > s.maxPartySizeOnline {
		return ErrPartyTooLarge
	}
	return nil
}

func (s *Settings) Duration() time.Duration {
	return time.Duration(s.defaultDurationMinutes) * time.Minute
}

func (s *Settings) LocationID() uuid.UUID       { return s.locationID }
func (s *Settings) OnlineBookingEnabled() bool  { return s.onlineBookingEnabled }
func (s *Settings) MaxPartySizeOnline() int     { return s.maxPartySizeOnline }
func (s *Settings) DefaultDurationMinutes() int { return s.defaultDurationMinutes }
func (s *Settings) ConfirmationMessage() string { return s.confirmationMessage }
