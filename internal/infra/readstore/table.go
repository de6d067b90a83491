package readstore

import (
	"context"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=table.go -destination=../../../tests/mock/readstore/table.go -package=readstoremock

type TableReadQueries interface {
	ListTablesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) ([]sqlc.ListTablesByLocationRow, error)
	ListActiveTableBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveTableBookingsParams) ([]sqlc.ListActiveTableBookingsRow, error)
}

type TableReadStore struct {
	queries TableReadQueries
	db      sqlc.DBTX
}

func NewTableReadStore(queries TableReadQueries, db sqlc.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByLocation returns the location's tables ordered by label.
func (r *TableReadStore) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]shared.TableSnapshot, error) {
	rows, err := r.queries.ListTablesByLocation(ctx, r.db, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}

	out := make([]shared.TableSnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.TableSnapshot{
			ID:           row.ID,
			LocationID:   row.LocationID,
			SeatingMapID: row.SeatingMapID,
			Label:        row.Label,
			Capacity:     int(row.Capacity),
			IsActive:     pgconv.BoolPtrFromPgtype(row.IsActive),
			MapIsActive:  pgconv.BoolPtrFromPgtype(row.MapIsActive),
		}
	}
	return out, nil
}

// FindActiveBookings lists non-terminal reservations holding a live assignment on tableID for date.
func (r *TableReadStore) FindActiveBookings(ctx context.Context, tableID uuid.UUID, date time.Time) ([]shared.BookingSnapshot, error) {
	rows, err := r.queries.ListActiveTableBookings(ctx, r.db, sqlc.ListActiveTableBookingsParams{
		TableID:          tableID,
		ReservationDate:  pgconv.DateToPgtype(date),
		TerminalStatuses: reservation.TerminalStatusStrings(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list table bookings", err)
	}

	out := make([]shared.BookingSnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.BookingSnapshot{
			ReservationID:   row.ID,
			Date:            pgconv.DateFromPgtype(row.ReservationDate),
			TimeOfDay:       pgconv.TimeOfDayFromPgtype(row.ReservationTime),
			DurationMinutes: int(row.DurationMinutes),
			Status:          row.Status,
		}
	}
	return out, nil
}
