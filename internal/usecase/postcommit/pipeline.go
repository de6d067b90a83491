package postcommit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	SenderAddress string
	EventSubject  string
	Timeout       time.Duration
}

// Pipeline runs the best-effort work that follows a committed booking.
// Every action runs in its own goroutine; failures are logged and dropped.
type Pipeline struct {
	uow        shared.UnitOfWork
	dispatcher Dispatcher
	publisher  Publisher
	renderer   *Renderer
	clock      clock.Clock
	cfg        Config

	wg sync.WaitGroup
}

func NewPipeline(
	uow shared.UnitOfWork,
	dispatcher Dispatcher,
	publisher Publisher,
	renderer *Renderer,
	clk clock.Clock,
	cfg Config,
) *Pipeline {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Pipeline{
		uow:        uow,
		dispatcher: dispatcher,
		publisher:  publisher,
		renderer:   renderer,
		clock:      clk,
		cfg:        cfg,
	}
}

func (p *Pipeline) OnBookingCommitted(ctx context.Context, b shared.CommittedBooking) {
	if b.Reservation == nil {
		return
	}
	// request cancellation must not reach the side effects
	ctx = context.WithoutCancel(ctx)
	contact := b.Reservation.Contact()

	if b.LoyaltyOptIn && contact.Phone() != "" {
		p.spawn(ctx, "loyalty_enrollment", b, p.enrollLoyalty)
	}
	if contact.HasEmail() {
		p.spawn(ctx, "confirmation_email", b, p.sendConfirmation)
	}
	if p.publisher != nil {
		p.spawn(ctx, "reservation_created_event", b, p.publishCreated)
	}
}

func (p *Pipeline) spawn(ctx context.Context, action string, b shared.CommittedBooking, fn func(context.Context, shared.CommittedBooking) error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("post-commit action panicked",
					"action", action,
					"reservation_id", b.Reservation.ID().String(),
					"panic", fmt.Sprint(r),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()

		if err := fn(ctx, b); err != nil {
			slog.Warn("post-commit action failed",
				"action", action,
				"reservation_id", b.Reservation.ID().String(),
				"error", err.Error(),
			)
			return
		}
		slog.Debug("post-commit action done", "action", action, "reservation_id", b.Reservation.ID().String())
	}()
}

// Drain waits for in-flight actions until ctx ends.
func (p *Pipeline) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "post-commit drain interrupted")
	}
}
