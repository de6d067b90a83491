package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const maxCompleteRetries = 2

// claimIdempotencyKey returns the stored reservation ID when key already completed,
// nil when this request now owns the key.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, hash string) (*uuid.UUID, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(uc.cfg.IdempotencyTTL)

	var replayID *uuid.UUID
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, bookingEndpoint, hash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		record, err := tx.Reads().IdempotencyByKey(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// released between insert and read; the owner just failed
				return ErrIdempotencyInProgress
			}
			return err
		}

		if !record.ExpiresAt.After(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, hash, expiresAt)
			if err != nil {
				return err
			}
			if !claimed {
				return ErrIdempotencyInProgress
			}
			return nil
		}

		if record.RequestHash != hash {
			return ErrIdempotencyKeyReused
		}
		if record.Status != shared.IdempotencyStatusCompleted {
			return ErrIdempotencyInProgress
		}
		if record.ResultReservationID == nil {
			return errs.Newf("completed idempotency key %s has no reservation", key)
		}
		replayID = record.ResultReservationID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrIdempotencyInProgress), errors.Is(err, ErrIdempotencyKeyReused):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrBookingFailed)
		}
	}
	return replayID, nil
}

func (uc *bookingUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

// completeIdempotencyKey records the committed reservation on key. A key that
// cannot be completed is released so a retry books again instead of waiting
// out the TTL as in-progress.
func (uc *bookingUseCaseImpl) completeIdempotencyKey(ctx context.Context, tx shared.Tx, key, reservationID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxInterval = 200 * time.Millisecond

	err := backoff.Retry(func() error {
		return tx.Idempotency().Complete(ctx, tx.DB(), key, reservationID)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, maxCompleteRetries), ctx))
	if err == nil {
		return
	}

	slog.Warn("failed to complete idempotency key, releasing it",
		"key", key.String(), "reservation_id", reservationID.String(), "error", err.Error())
	if err := tx.Idempotency().Release(ctx, tx.DB(), key); err != nil {
		slog.Error("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

// replay rebuilds the original response from the stored reservation.
func (uc *bookingUseCaseImpl) replay(ctx context.Context, reservationID uuid.UUID) (*BookingResult, error) {
	view, err := uc.views.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	var message string
	loc, err := uc.uow.CommandReads().LocationByID(ctx, view.LocationID)
	if err != nil {
		slog.Warn("replay without confirmation message", "location_id", view.LocationID.String(), "error", err.Error())
	} else if loc.Settings != nil {
		message = loc.Settings.ConfirmationMessage
	}

	token, err := uc.tokens.GenerateManageToken(view.ID, view.ConfirmationCode)
	if err != nil {
		slog.Error("failed to issue manage token", "reservation_id", view.ID.String(), "error", err.Error())
	}

	var tableLabel string
	if view.TableLabel != nil {
		tableLabel = *view.TableLabel
	}

	return &BookingResult{
		ReservationID:       view.ID,
		ConfirmationCode:    view.ConfirmationCode,
		TableLabel:          tableLabel,
		Date:                view.Date,
		Time:                view.Time,
		PartySize:           view.PartySize,
		DurationMinutes:     view.DurationMinutes,
		ConfirmationMessage: message,
		ManageToken:         token,
		Replayed:            true,
	}, nil
}
