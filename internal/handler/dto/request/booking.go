package request

import (
	"strings"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type SpecialRequests struct {
	Allergies  string `json:"allergies" binding:"max=500"`
	Occasion   string `json:"occasion" binding:"max=200"`
	Notes      string `json:"notes" binding:"max=1000"`
	Wheelchair bool   `json:"wheelchair"`
	HighChair  bool   `json:"highChair"`
}

type CreateBookingRequest struct {
	LocationID      uuid.UUID        `json:"locationId" binding:"required"`
	Date            string           `json:"date" binding:"required,bookingdate"`
	Time            string           `json:"time" binding:"required,clocktime"`
	PartySize       int              `json:"partySize" binding:"required,gt=0"`
	CustomerName    string           `json:"customerName" binding:"required,max=200"`
	CustomerPhone   string           `json:"customerPhone" binding:"required,phone"`
	CustomerEmail   *string          `json:"customerEmail,omitempty" binding:"omitempty,email,max=320"`
	SpecialRequests *SpecialRequests `json:"specialRequests,omitempty"`
	LoyaltyOptIn    bool             `json:"loyaltyOptIn"`
}

func (r CreateBookingRequest) ToInput(idempotencyKey *uuid.UUID) commands.CreateBookingInput {
	var email string
	if r.CustomerEmail != nil {
		email = strings.TrimSpace(*r.CustomerEmail)
	}

	var acc reservation.Accommodations
	if r.SpecialRequests != nil {
		acc = reservation.Accommodations{
			Allergies:  strings.TrimSpace(r.SpecialRequests.Allergies),
			Occasion:   strings.TrimSpace(r.SpecialRequests.Occasion),
			Notes:      strings.TrimSpace(r.SpecialRequests.Notes),
			Wheelchair: r.SpecialRequests.Wheelchair,
			HighChair:  r.SpecialRequests.HighChair,
		}
	}

	return commands.CreateBookingInput{
		LocationID:     r.LocationID,
		Date:           r.Date,
		Time:           r.Time,
		PartySize:      r.PartySize,
		CustomerName:   strings.TrimSpace(r.CustomerName),
		CustomerPhone:  strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:  email,
		Accommodations: acc,
		LoyaltyOptIn:   r.LoyaltyOptIn,
		IdempotencyKey: idempotencyKey,
	}
}
