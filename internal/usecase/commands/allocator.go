package commands

import (
	"context"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/table"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// tableLocker takes the per-table lock inside the current transaction.
type tableLocker func(ctx context.Context, tableID uuid.UUID) error

// resolveTable walks candidates in order and returns the first whose live bookings
// on the slot's date do not overlap requested. lock, when set, runs before each check.
func resolveTable(
	ctx context.Context,
	reads shared.CommandReads,
	slot reservation.Slot,
	requested reservation.Interval,
	candidates []*table.Table,
	lock tableLocker,
) (*table.Table, error) {
	for _, candidate := range candidates {
		if lock != nil {
			if err := lock(ctx, candidate.ID()); err != nil {
				return nil, err
			}
		}

		bookings, err := reads.ActiveBookings(ctx, candidate.ID(), slot.Date())
		if err != nil {
			return nil, err
		}
		if !reservation.Conflicts(requested, toBooked(bookings)) {
			return candidate, nil
		}
	}
	return nil, ErrNoTableAvailable
}

func toBooked(snaps []shared.BookingSnapshot) []reservation.Booked {
	out := make([]reservation.Booked, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, reservation.Booked{
			Slot:            reservation.NewSlot(s.Date, s.TimeOfDay),
			DurationMinutes: s.DurationMinutes,
			Status:          reservation.Status(s.Status),
		})
	}
	return out
}

func toTables(snaps []shared.TableSnapshot) []*table.Table {
	out := make([]*table.Table, 0, len(snaps))
	for _, s := range snaps {
		t, err := table.NewTable(
			s.ID,
			s.LocationID,
			s.SeatingMapID,
			s.Label,
			s.Capacity,
			table.ActiveStateFromPtr(s.IsActive),
			table.ActiveStateFromPtr(s.MapIsActive),
		)
		if err != nil {
			// rows the store should never produce; they cannot seat anyone
			continue
		}
		out = append(out, t)
	}
	return out
}
