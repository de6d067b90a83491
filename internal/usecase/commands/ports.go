package commands

import (
	"context"

	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// SlotOracle lists the times still bookable for a party on a date.
type SlotOracle interface {
	AvailableTimes(ctx context.Context, locationID uuid.UUID, date string, partySize int) ([]string, error)
}

type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type ManageTokenIssuer interface {
	GenerateManageToken(reservationID uuid.UUID, code string) (string, error)
}

// AfterCommitHook must return promptly; the booking response waits on it.
// Implementations must detach from ctx cancellation before doing slow work.
type AfterCommitHook interface {
	OnBookingCommitted(ctx context.Context, booking shared.CommittedBooking)
}
