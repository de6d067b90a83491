package postcommit

import (
	"context"
	"encoding/json"
	"time"

	"table-booking/internal/domain/location"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const EventTypeReservationCreated = "reservation.created"

type ReservationCreatedEvent struct {
	EventID          uuid.UUID `json:"event_id"`
	Type             string    `json:"type"`
	OccurredAt       time.Time `json:"occurred_at"`
	ReservationID    uuid.UUID `json:"reservation_id"`
	LocationID       uuid.UUID `json:"location_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	StartsAt         time.Time `json:"starts_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	PartySize        int       `json:"party_size"`
	TableLabel       string    `json:"table_label"`
	Source           string    `json:"source"`
}

func NewReservationCreatedEvent(b shared.CommittedBooking, at time.Time) ReservationCreatedEvent {
	res := b.Reservation
	loc := location.ReconstructLocation(res.LocationID(), b.LocationName, b.LocationAddress, b.LocationTimezone, true)
	return ReservationCreatedEvent{
		EventID:          uuid.New(),
		Type:             EventTypeReservationCreated,
		OccurredAt:       at.UTC(),
		ReservationID:    res.ID(),
		LocationID:       res.LocationID(),
		ConfirmationCode: res.ConfirmationCode().String(),
		Date:             res.Slot().DateString(),
		Time:             res.Slot().TimeString(),
		StartsAt:         localStart(res.Slot().Start(), loc.Zone()),
		DurationMinutes:  res.DurationMinutes(),
		PartySize:        res.PartySize(),
		TableLabel:       b.TableLabel,
		Source:           res.Source().String(),
	}
}

func (p *Pipeline) publishCreated(ctx context.Context, b shared.CommittedBooking) error {
	payload, err := json.Marshal(NewReservationCreatedEvent(b, p.clock.Now()))
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation.created event")
	}
	return p.publisher.Publish(ctx, p.cfg.EventSubject, b.Reservation.ID().String(), payload)
}

// localStart reads the zone-less slot start as wall-clock time at the location.
func localStart(wall time.Time, zone *time.Location) time.Time {
	y, m, d := wall.Date()
	return time.Date(y, m, d, wall.Hour(), wall.Minute(), wall.Second(), 0, zone)
}
