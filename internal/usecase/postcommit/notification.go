package postcommit

import (
	"context"

	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

func (p *Pipeline) sendConfirmation(ctx context.Context, b shared.CommittedBooking) error {
	res := b.Reservation

	rendered, err := p.renderer.Confirmation(b)
	if err != nil {
		return err
	}

	err = p.dispatcher.Send(ctx, Email{
		From:      p.cfg.SenderAddress,
		To:        res.Contact().Email(),
		Subject:   rendered.Subject,
		HTMLBody:  rendered.HTMLBody,
		Reference: res.ID().String(),
	})
	if err != nil {
		return err
	}

	err = p.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().MarkConfirmationSent(ctx, tx.DB(), res.ID(), p.clock.Now())
	})
	if err != nil {
		return errs.Wrap(err, "email sent but confirmation_sent_at not stamped")
	}
	return nil
}
