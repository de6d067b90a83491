package postcommit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"table-booking/internal/domain/loyalty"
	"table-booking/internal/infra"
	"table-booking/internal/usecase/shared"
)

func (p *Pipeline) enrollLoyalty(ctx context.Context, b shared.CommittedBooking) error {
	res := b.Reservation
	contact := res.Contact()

	phone, err := loyalty.NormalizePhone(contact.Phone())
	if err != nil {
		return err
	}
	now := p.clock.Now()

	return p.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.CustomerProfiles().FindByPhone(ctx, tx.DB(), res.LocationID(), phone)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			return createEnrolledProfile(ctx, tx, b, phone, now)
		}

		if err := profile.Enroll(contact.Name(), contact.Email(), now); err != nil {
			if errors.Is(err, loyalty.ErrAlreadyEnrolled) {
				return nil
			}
			return err
		}
		return tx.CustomerProfiles().Enroll(ctx, tx.DB(), profile)
	})
}

func createEnrolledProfile(ctx context.Context, tx shared.Tx, b shared.CommittedBooking, phone string, now time.Time) error {
	res := b.Reservation
	profile, err := loyalty.NewEnrolledProfile(res.LocationID(), phone, res.Contact().Name(), res.Contact().Email(), now)
	if err != nil {
		return err
	}
	inserted, err := tx.CustomerProfiles().Create(ctx, tx.DB(), profile)
	if err != nil {
		return err
	}
	if !inserted {
		slog.Info("loyalty profile created concurrently", "location_id", res.LocationID().String())
	}
	return nil
}
