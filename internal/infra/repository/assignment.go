package repository

import (
	"context"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=assignment.go -destination=../../../tests/mock/repository/assignment.go -package=repositorymock

type AssignmentWriteQueries interface {
	LockTable(ctx context.Context, db sqlc.DBTX, tableID uuid.UUID) error
	CreateTableAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTableAssignmentParams) (uuid.UUID, error)
	ReleaseTableAssignment(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (int64, error)
}

type TableAssignmentRepository struct {
	queries AssignmentWriteQueries
}

func NewTableAssignmentRepository(queries AssignmentWriteQueries) *TableAssignmentRepository {
	return &TableAssignmentRepository{queries: queries}
}

func (r *TableAssignmentRepository) LockTable(ctx context.Context, tx sqlc.DBTX, tableID uuid.UUID) error {
	if err := r.queries.LockTable(ctx, tx, tableID); err != nil {
		return infra.WrapRepoErr("failed to lock table", err)
	}
	return nil
}

// Create fails with KindConflict when the range overlaps a live assignment on the same table.
func (r *TableAssignmentRepository) Create(ctx context.Context, tx sqlc.DBTX, reservationID, tableID uuid.UUID, during reservation.Interval) (uuid.UUID, error) {
	startsAt, endsAt := intervalToParams(during)
	id, err := r.queries.CreateTableAssignment(ctx, tx, sqlc.CreateTableAssignmentParams{
		ReservationID: reservationID,
		TableID:       tableID,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create table assignment", err)
	}
	return id, nil
}

// Release is a no-op for reservations whose assignment is already released.
func (r *TableAssignmentRepository) Release(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if _, err := r.queries.ReleaseTableAssignment(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to release table assignment", err)
	}
	return nil
}
