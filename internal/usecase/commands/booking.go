package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"table-booking/internal/domain/location"
	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/table"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

const (
	bookingEndpoint = "POST /api/public/bookings"

	confirmationCodeConstraint = "reservations_confirmation_code_key"
)

var (
	ErrInvalidBookingRequest = errs.New("invalid booking request")
	ErrLocationNotFound      = errs.New("location not found")
	ErrOnlineBookingDisabled = errs.New("online booking is disabled")
	ErrPartyTooLarge         = errs.New("party size exceeds online maximum")
	ErrSlotUnavailable       = errs.New("requested time is no longer available")
	ErrNoSuitableTable       = errs.New("no table can seat the party")
	ErrNoTableAvailable      = errs.New("no table available at the requested time")
	ErrSlotOracleUnavailable = errs.New("slot availability service unavailable")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")
	ErrBookingFailed         = errs.New("booking failed")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrNotCancellable        = errs.New("reservation is not cancellable")

	errCodeCollision = errs.New("confirmation code collision")
)

type CreateBookingInput struct {
	LocationID     uuid.UUID                  `json:"location_id"`
	Date           string                     `json:"date"`
	Time           string                     `json:"time"`
	PartySize      int                        `json:"party_size"`
	CustomerName   string                     `json:"customer_name"`
	CustomerPhone  string                     `json:"customer_phone"`
	CustomerEmail  string                     `json:"customer_email"`
	Accommodations reservation.Accommodations `json:"accommodations"`
	LoyaltyOptIn   bool                       `json:"loyalty_opt_in"`
	IdempotencyKey *uuid.UUID                 `json:"-"`
}

type BookingResult struct {
	ReservationID       uuid.UUID
	ConfirmationCode    string
	TableLabel          string
	Date                string
	Time                string
	PartySize           int
	DurationMinutes     int
	ConfirmationMessage string
	ManageToken         string
	Replayed            bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
	CancelBooking(ctx context.Context, code string) error
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	oracle SlotOracle
	issuer *ConfirmationIssuer
	tokens ManageTokenIssuer
	hook   AfterCommitHook
	views  queries.ReservationQueries
	clock  clock.Clock
	cfg    config.BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	oracle SlotOracle,
	issuer *ConfirmationIssuer,
	tokens ManageTokenIssuer,
	hook AfterCommitHook,
	views queries.ReservationQueries,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:    uow,
		oracle: oracle,
		issuer: issuer,
		tokens: tokens,
		hook:   hook,
		views:  views,
		clock:  clk,
		cfg:    cfg,
	}
}

// bookingPlan is everything validated before any write happens.
type bookingPlan struct {
	location   *location.Location
	settings   *location.Settings
	contact    reservation.Contact
	slot       reservation.Slot
	interval   reservation.Interval
	candidates []*table.Table
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	slot, contact, err := parseBookingInput(in)
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey == nil {
		return uc.book(ctx, in, slot, contact)
	}

	replayID, err := uc.claimIdempotencyKey(ctx, *in.IdempotencyKey, requestHash(in))
	if err != nil {
		return nil, err
	}
	if replayID != nil {
		return uc.replay(ctx, *replayID)
	}

	result, err := uc.book(ctx, in, slot, contact)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, *in.IdempotencyKey)
		return nil, err
	}
	return result, nil
}

func parseBookingInput(in CreateBookingInput) (reservation.Slot, reservation.Contact, error) {
	if in.LocationID == uuid.Nil || in.PartySize <= 0 {
		return reservation.Slot{}, reservation.Contact{}, ErrInvalidBookingRequest
	}
	slot, err := reservation.ParseSlot(in.Date, in.Time)
	if err != nil {
		return reservation.Slot{}, reservation.Contact{}, errs.Mark(err, ErrInvalidBookingRequest)
	}
	contact, err := reservation.NewContact(in.CustomerName, in.CustomerPhone, in.CustomerEmail)
	if err != nil {
		return reservation.Slot{}, reservation.Contact{}, errs.Mark(err, ErrInvalidBookingRequest)
	}
	return slot, contact, nil
}

func (uc *bookingUseCaseImpl) book(ctx context.Context, in CreateBookingInput, slot reservation.Slot, contact reservation.Contact) (*BookingResult, error) {
	plan, err := uc.plan(ctx, in, slot, contact)
	if err != nil {
		return nil, err
	}

	attempts := max(uc.cfg.CodeAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		chosen, res, err := uc.commit(ctx, plan, in)
		if errors.Is(err, errCodeCollision) {
			slog.Warn("confirmation code collision, reissuing", "attempt", attempt, "error", err.Error())
			continue
		}
		if err != nil {
			return nil, err
		}

		return uc.complete(ctx, plan, res, chosen, in.LoyaltyOptIn), nil
	}

	return nil, errs.Mark(errs.Newf("no unique confirmation code after %d attempts", attempts), ErrBookingFailed)
}

// plan runs every read-only check in order: location, settings, slot, capacity.
func (uc *bookingUseCaseImpl) plan(ctx context.Context, in CreateBookingInput, slot reservation.Slot, contact reservation.Contact) (*bookingPlan, error) {
	reads := uc.uow.CommandReads()

	loc, err := reads.LocationByID(ctx, in.LocationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	site := location.ReconstructLocation(loc.ID, loc.Name, loc.Address, loc.Timezone, loc.OnlineEnabled)
	if !site.OnlineEnabled() {
		return nil, ErrOnlineBookingDisabled
	}
	settings, err := settingsFromSnapshot(loc)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	if err := settings.CheckOnlineBooking(in.PartySize); err != nil {
		switch {
		case errors.Is(err, location.ErrPartyTooLarge):
			return nil, errs.Mark(err, ErrPartyTooLarge)
		case errors.Is(err, location.ErrInvalidPartySize):
			return nil, errs.Mark(err, ErrInvalidBookingRequest)
		default:
			return nil, errs.Mark(err, ErrOnlineBookingDisabled)
		}
	}

	if err := uc.verifySlot(ctx, in.LocationID, slot, in.PartySize); err != nil {
		return nil, err
	}

	tables, err := reads.TablesByLocation(ctx, in.LocationID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	candidates, err := table.SelectCandidates(in.PartySize, toTables(tables))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	if len(candidates) == 0 {
		return nil, ErrNoSuitableTable
	}

	interval, err := slot.Interval(settings.Duration())
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	return &bookingPlan{
		location:   site,
		settings:   settings,
		contact:    contact,
		slot:       slot,
		interval:   interval,
		candidates: candidates,
	}, nil
}

// settingsFromSnapshot returns nil settings for a location without a settings row.
func settingsFromSnapshot(loc *shared.LocationSnapshot) (*location.Settings, error) {
	if loc.Settings == nil {
		return nil, nil
	}
	return location.NewSettings(
		loc.ID,
		loc.Settings.OnlineBookingEnabled,
		loc.Settings.MaxPartySizeOnline,
		loc.Settings.DefaultDurationMinutes,
		loc.Settings.ConfirmationMessage,
	)
}

func (uc *bookingUseCaseImpl) verifySlot(ctx context.Context, locationID uuid.UUID, slot reservation.Slot, partySize int) error {
	times, err := uc.oracle.AvailableTimes(ctx, locationID, slot.DateString(), partySize)
	if err != nil {
		return errs.Mark(err, ErrSlotOracleUnavailable)
	}

	want := slot.TimeString()
	available := slices.ContainsFunc(times, func(t string) bool {
		normalized, err := reservation.NormalizeTime(t)
		return err == nil && normalized == want
	})
	if !available {
		return ErrSlotUnavailable
	}
	return nil
}

func (uc *bookingUseCaseImpl) commit(ctx context.Context, plan *bookingPlan, in CreateBookingInput) (*table.Table, *reservation.Reservation, error) {
	var (
		chosen *table.Table
		res    *reservation.Reservation
		err    error
	)
	if uc.cfg.CommitMode == config.CommitModeSaga {
		chosen, res, err = uc.commitSaga(ctx, plan, in)
	} else {
		chosen, res, err = uc.commitTransaction(ctx, plan, in)
	}
	if err != nil {
		return nil, nil, classifyCommitError(err)
	}
	return chosen, res, nil
}

// newReservation issues a confirmation code once a table is known to be free.
func (uc *bookingUseCaseImpl) newReservation(ctx context.Context, plan *bookingPlan, in CreateBookingInput) (*reservation.Reservation, error) {
	code, err := uc.issuer.Issue(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	res, err := reservation.NewOnlineReservation(
		in.LocationID,
		plan.contact,
		plan.slot,
		plan.settings.DefaultDurationMinutes(),
		in.PartySize,
		in.Accommodations,
		code,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	return res, nil
}

// commitTransaction writes reservation, assignment and idempotency completion atomically.
func (uc *bookingUseCaseImpl) commitTransaction(ctx context.Context, plan *bookingPlan, in CreateBookingInput) (*table.Table, *reservation.Reservation, error) {
	var (
		chosen *table.Table
		res    *reservation.Reservation
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lock := func(ctx context.Context, tableID uuid.UUID) error {
			return tx.Assignments().LockTable(ctx, tx.DB(), tableID)
		}
		t, err := resolveTable(ctx, tx.Reads(), plan.slot, plan.interval, plan.candidates, lock)
		if err != nil {
			return err
		}

		r, err := uc.newReservation(ctx, plan, in)
		if err != nil {
			return err
		}
		if _, err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return err
		}
		if _, err := tx.Assignments().Create(ctx, tx.DB(), r.ID(), t.ID(), plan.interval); err != nil {
			return err
		}
		if in.IdempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), *in.IdempotencyKey, r.ID()); err != nil {
				return err
			}
		}
		chosen, res = t, r
		return nil
	})
	return chosen, res, err
}

// commitSaga autocommits each write and deletes the reservation if the assignment fails.
func (uc *bookingUseCaseImpl) commitSaga(ctx context.Context, plan *bookingPlan, in CreateBookingInput) (*table.Table, *reservation.Reservation, error) {
	var (
		chosen *table.Table
		res    *reservation.Reservation
	)
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := resolveTable(ctx, tx.Reads(), plan.slot, plan.interval, plan.candidates, nil)
		if err != nil {
			return err
		}

		r, err := uc.newReservation(ctx, plan, in)
		if err != nil {
			return err
		}
		if _, err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return err
		}

		if _, err := tx.Assignments().Create(ctx, tx.DB(), r.ID(), t.ID(), plan.interval); err != nil {
			if cerr := uc.compensate(ctx, tx, r.ID()); cerr != nil {
				return errs.Mark(errors.Join(err, cerr), ErrBookingFailed)
			}
			return err
		}

		if in.IdempotencyKey != nil {
			uc.completeIdempotencyKey(ctx, tx, *in.IdempotencyKey, r.ID())
		}
		chosen, res = t, r
		return nil
	})
	return chosen, res, err
}

func (uc *bookingUseCaseImpl) compensate(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	// the client going away must not leave an unassigned reservation behind
	ctx = context.WithoutCancel(ctx)
	if err := tx.Reservations().Delete(ctx, tx.DB(), reservationID); err != nil {
		slog.Error("compensating delete failed", "reservation_id", reservationID.String(), "error", err.Error())
		return err
	}
	slog.Warn("reservation rolled back after assignment failure", "reservation_id", reservationID.String())
	return nil
}

func classifyCommitError(err error) error {
	switch {
	case errors.Is(err, ErrNoTableAvailable), errors.Is(err, ErrBookingFailed), errors.Is(err, ErrInvalidBookingRequest):
		return err
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrNoTableAvailable)
	case infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == confirmationCodeConstraint:
		return errs.Mark(err, errCodeCollision)
	default:
		return errs.Mark(err, ErrBookingFailed)
	}
}

func (uc *bookingUseCaseImpl) complete(ctx context.Context, plan *bookingPlan, res *reservation.Reservation, chosen *table.Table, loyaltyOptIn bool) *BookingResult {
	token, err := uc.tokens.GenerateManageToken(res.ID(), res.ConfirmationCode().String())
	if err != nil {
		// the booking is already durable
		slog.Error("failed to issue manage token", "reservation_id", res.ID().String(), "error", err.Error())
	}

	if uc.hook != nil {
		uc.hook.OnBookingCommitted(ctx, shared.CommittedBooking{
			Reservation:         res,
			LocationName:        plan.location.Name(),
			LocationAddress:     plan.location.Address(),
			LocationTimezone:    plan.location.Timezone(),
			TableLabel:          chosen.Label(),
			ConfirmationMessage: plan.settings.ConfirmationMessage(),
			LoyaltyOptIn:        loyaltyOptIn,
		})
	}

	return &BookingResult{
		ReservationID:       res.ID(),
		ConfirmationCode:    res.ConfirmationCode().String(),
		TableLabel:          chosen.Label(),
		Date:                res.Slot().DateString(),
		Time:                res.Slot().TimeString(),
		PartySize:           res.PartySize(),
		DurationMinutes:     res.DurationMinutes(),
		ConfirmationMessage: plan.settings.ConfirmationMessage(),
		ManageToken:         token,
	}
}

func requestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
