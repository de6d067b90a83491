package shared

import (
	"context"
	"time"

	"table-booking/internal/domain/loyalty"
	"table-booking/internal/domain/reservation"
	sqlc "table-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Repositories bound to the pool; every statement autocommits
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Assignments() TableAssignmentRepository
	Idempotency() IdempotencyRepository
	CustomerProfiles() CustomerProfileRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	TablesByLocation(ctx context.Context, locationID uuid.UUID) ([]TableSnapshot, error)
	ActiveBookings(ctx context.Context, tableID uuid.UUID, date time.Time) ([]BookingSnapshot, error)
	ReservationByCodeForUpdate(ctx context.Context, code string) (*ReservationSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, at time.Time) error
	MarkConfirmationSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
}

type TableAssignmentRepository interface {
	// LockTable serializes conflict checks on one table until the transaction ends.
	LockTable(ctx context.Context, tx sqlc.DBTX, tableID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, reservationID, tableID uuid.UUID, during reservation.Interval) (uuid.UUID, error)
	Release(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, reservationID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) error
}

type CustomerProfileRepository interface {
	FindByPhone(ctx context.Context, tx sqlc.DBTX, locationID uuid.UUID, phone string) (*loyalty.Profile, error)
	Create(ctx context.Context, tx sqlc.DBTX, profile *loyalty.Profile) (bool, error)
	Enroll(ctx context.Context, tx sqlc.DBTX, profile *loyalty.Profile) error
}
