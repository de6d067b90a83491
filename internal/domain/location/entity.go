package location

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOnlineBookingDisabled = errors.New("online booking is disabled for this location")
	ErrPartyTooLarge         = errors.New("party size exceeds the online maximum")
	ErrInvalidPartySize      = errors.New("party size must be positive")
	ErrInvalidSettings       = errors.New("invalid reservation settings")
)

const DefaultTimezone = "UTC"

type Location struct {
	id            uuid.UUID
	name          string
	address       string
	timezone      string
	onlineEnabled bool
}

func ReconstructLocation(id uuid.UUID, name, address, timezone string, onlineEnabled bool) *Location {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	return &Location{
		id:            id,
		name:          name,
		address:       address,
		timezone:      timezone,
		onlineEnabled: onlineEnabled,
	}
}

// Zone falls back to UTC when the stored name is unknown to the tz database.
func (l *Location) Zone() *time.Location {
	loc, err := time.LoadLocation(l.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l *Location) ID() uuid.UUID       { return l.id }
func (l *Location) Name() string        { return l.name }
func (l *Location) Address() string     { return l.address }
func (l *Location) Timezone() string    { return l.timezone }
func (l *Location) OnlineEnabled() bool { return l.onlineEnabled }
