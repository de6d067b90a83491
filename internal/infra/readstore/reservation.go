package readstore

import (
	"context"
	"encoding/json"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationViewByCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.GetReservationViewByCodeRow, error)
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	return toReservationView(sqlc.GetReservationViewByIDRow(row))
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row)
}

// FindByCodeForUpdate locks the row; it must run inside a transaction.
func (r *ReservationReadStore) FindByCodeForUpdate(ctx context.Context, code string) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationByCodeForUpdate(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return &shared.ReservationSnapshot{
		ID:               row.ID,
		LocationID:       row.LocationID,
		ConfirmationCode: row.ConfirmationCode,
		Status:           row.Status,
	}, nil
}

func toReservationView(row sqlc.GetReservationViewByIDRow) (*queries.ReservationView, error) {
	var accommodations reservation.Accommodations
	if len(row.Accommodations) > 0 {
		if err := json.Unmarshal(row.Accommodations, &accommodations); err != nil {
			return nil, infra.WrapRepoErr("failed to decode accommodations", err)
		}
	}

	return &queries.ReservationView{
		ID:                 row.ID,
		LocationID:         row.LocationID,
		LocationName:       row.LocationName,
		CustomerName:       row.CustomerName,
		CustomerPhone:      row.CustomerPhone,
		CustomerEmail:      pgconv.StringPtrFromPgtype(row.CustomerEmail),
		Date:               pgconv.DateFromPgtype(row.ReservationDate).Format(reservation.DateLayout),
		Time:               reservation.FormatTimeOfDay(pgconv.TimeOfDayFromPgtype(row.ReservationTime)),
		DurationMinutes:    int(row.DurationMinutes),
		PartySize:          int(row.PartySize),
		Accommodations:     accommodations,
		Status:             row.Status,
		Source:             row.Source,
		ConfirmationCode:   row.ConfirmationCode,
		TableLabel:         pgconv.StringPtrFromPgtype(row.TableLabel),
		ConfirmationSentAt: pgconv.TimePtrFromPgtype(row.ConfirmationSentAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
