package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.

type SettingsSnapshot struct {
	OnlineBookingEnabled   bool
	MaxPartySizeOnline     int
	DefaultDurationMinutes int
	ConfirmationMessage    string
}

type LocationSnapshot struct {
	ID            uuid.UUID
	Name          string
	Address       string
	Timezone      string
	OnlineEnabled bool
	// nil when the location has no reservation settings row
	Settings *SettingsSnapshot
}

type TableSnapshot struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	SeatingMapID uuid.UUID
	Label        string
	Capacity     int
	IsActive     *bool
	MapIsActive  *bool
}

type BookingSnapshot struct {
	ReservationID   uuid.UUID
	Date            time.Time
	TimeOfDay       time.Duration
	DurationMinutes int
	Status          string
}

type ReservationSnapshot struct {
	ID               uuid.UUID
	LocationID       uuid.UUID
	ConfirmationCode string
	Status           string
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}
