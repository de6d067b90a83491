//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ReservationID   uuid.UUID
	LocationID      uuid.UUID
	LocationName    string
	Date            string
	Time            string
	PartySize       int
	DurationMinutes int
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Accommodations  reservation.Accommodations
	LoyaltyOptIn    bool
	Code            string
	Status          reservation.Status
	TableLabel      string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReservationID:   uuid.New(),
		LocationID:      uuid.New(),
		LocationName:    "Harbor Bistro",
		Date:            "2030-06-15",
		Time:            "19:00",
		PartySize:       4,
		DurationMinutes: 90,
		CustomerName:    "Ada Lovelace",
		CustomerPhone:   "+1 (555) 010-0200",
		CustomerEmail:   "ada@example.com",
		Code:            "RES-7K3M9QPX",
		Status:          reservation.StatusConfirmed,
		TableLabel:      "T4",
		CreatedAt:       time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		LocationID:    b.LocationID,
		Date:          b.Date,
		Time:          b.Time,
		PartySize:     b.PartySize,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		LoyaltyOptIn:  b.LoyaltyOptIn,
	}
	if b.CustomerEmail != "" {
		email := b.CustomerEmail
		req.CustomerEmail = &email
	}
	if !b.Accommodations.IsEmpty() {
		req.SpecialRequests = &reqdto.SpecialRequests{
			Allergies:  b.Accommodations.Allergies,
			Occasion:   b.Accommodations.Occasion,
			Notes:      b.Accommodations.Notes,
			Wheelchair: b.Accommodations.Wheelchair,
			HighChair:  b.Accommodations.HighChair,
		}
	}
	return req
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		LocationID:     b.LocationID,
		Date:           b.Date,
		Time:           b.Time,
		PartySize:      b.PartySize,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		CustomerEmail:  b.CustomerEmail,
		Accommodations: b.Accommodations,
		LoyaltyOptIn:   b.LoyaltyOptIn,
	}
}

func (b *BookingBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.ParseSlot(b.Date, b.Time)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.NewContact(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	code, err := reservation.NewConfirmationCode(b.Code)
	if err != nil {
		return nil, err
	}
	return reservation.NewOnlineReservation(b.LocationID, contact, slot, b.DurationMinutes, b.PartySize, b.Accommodations, code, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	view := &queries.ReservationView{
		ID:               b.ReservationID,
		LocationID:       b.LocationID,
		LocationName:     b.LocationName,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		Date:             b.Date,
		Time:             normalizedTime(b.Time),
		DurationMinutes:  b.DurationMinutes,
		PartySize:        b.PartySize,
		Accommodations:   b.Accommodations,
		Status:           b.Status.String(),
		Source:           reservation.SourceOnline.String(),
		ConfirmationCode: b.Code,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
	if b.CustomerEmail != "" {
		email := b.CustomerEmail
		view.CustomerEmail = &email
	}
	if b.TableLabel != "" {
		label := b.TableLabel
		view.TableLabel = &label
	}
	return view
}

func (b *BookingBuilder) BuildInfraView() sqlc.GetReservationViewByIDRow {
	slot, _ := reservation.ParseSlot(b.Date, b.Time)
	acc, _ := json.Marshal(b.Accommodations)
	return sqlc.GetReservationViewByIDRow{
		ID:               b.ReservationID,
		LocationID:       b.LocationID,
		LocationName:     b.LocationName,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		CustomerEmail:    pgconv.OptionalStringToPgtype(b.CustomerEmail),
		ReservationDate:  pgconv.DateToPgtype(slot.Date()),
		ReservationTime:  pgconv.TimeOfDayToPgtype(slot.TimeOfDay()),
		DurationMinutes:  int32(b.DurationMinutes),
		PartySize:        int32(b.PartySize),
		Accommodations:   acc,
		Status:           b.Status.String(),
		Source:           reservation.SourceOnline.String(),
		ConfirmationCode: b.Code,
		TableLabel:       pgconv.OptionalStringToPgtype(b.TableLabel),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		ReservationID:       b.ReservationID,
		ConfirmationCode:    b.Code,
		TableLabel:          b.TableLabel,
		Date:                b.Date,
		Time:                normalizedTime(b.Time),
		PartySize:           b.PartySize,
		DurationMinutes:     b.DurationMinutes,
		ConfirmationMessage: "See you soon!",
		ManageToken:         "manage-token",
	}
}

func normalizedTime(s string) string {
	if t, err := reservation.NormalizeTime(s); err == nil {
		return t
	}
	return s
}
