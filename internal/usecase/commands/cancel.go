package commands

import (
	"context"
	"errors"
	"log/slog"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

// CancelBooking marks the reservation cancelled and frees its table in one transaction.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, code string) error {
	normalized, err := reservation.NewConfirmationCode(code)
	if err != nil {
		return ErrReservationNotFound
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByCodeForUpdate(ctx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		status, err := reservation.ParseStatus(snap.Status)
		if err != nil {
			return err
		}
		if status.IsTerminal() {
			return ErrNotCancellable
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), snap.ID, reservation.StatusCancelled, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Assignments().Release(ctx, tx.DB(), snap.ID); err != nil {
			return err
		}

		slog.Info("reservation cancelled", "reservation_id", snap.ID.String(), "code", normalized.String())
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound), errors.Is(err, ErrNotCancellable):
			return err
		default:
			return errs.Mark(err, ErrBookingFailed)
		}
	}
	return nil
}
