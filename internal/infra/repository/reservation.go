package repository

import (
	"context"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	MarkConfirmationSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkConfirmationSentParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params, err := reservationToCreateParams(res)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode reservation", err)
	}

	id, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", errs.New("no rows deleted"), infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, at time.Time) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", errs.New("no rows updated"), infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) MarkConfirmationSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkConfirmationSent(ctx, tx, sqlc.MarkConfirmationSentParams{
		ID:                 id,
		ConfirmationSentAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark confirmation sent", err)
	}
	return nil
}
