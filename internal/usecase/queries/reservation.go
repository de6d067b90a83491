package queries

import (
	"context"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

var ErrReservationNotFound = errs.New("reservation not found")

// ReservationView is the public read model of a booking.
type ReservationView struct {
	ID                 uuid.UUID                  `json:"id"`
	LocationID         uuid.UUID                  `json:"location_id"`
	LocationName       string                     `json:"location_name"`
	CustomerName       string                     `json:"customer_name"`
	CustomerPhone      string                     `json:"customer_phone"`
	CustomerEmail      *string                    `json:"customer_email,omitempty"`
	Date               string                     `json:"date"`
	Time               string                     `json:"time"`
	DurationMinutes    int                        `json:"duration_minutes"`
	PartySize          int                        `json:"party_size"`
	Accommodations     reservation.Accommodations `json:"accommodations"`
	Status             string                     `json:"status"`
	Source             string                     `json:"source"`
	ConfirmationCode   string                     `json:"confirmation_code"`
	TableLabel         *string                    `json:"table_label,omitempty"`
	ConfirmationSentAt *time.Time                 `json:"confirmation_sent_at,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByCode(ctx context.Context, code string) (*ReservationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	normalized, err := reservation.NewConfirmationCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationNotFound)
	}
	view, err := q.repo.FindByCode(ctx, normalized.String())
	return view, mapNotFound(err)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	return view, mapNotFound(err)
}

func mapNotFound(err error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return err
}
