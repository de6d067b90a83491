package shared

import (
	"table-booking/internal/domain/reservation"
)

// CommittedBooking is what the post-commit side effects receive once a booking is durable.
type CommittedBooking struct {
	Reservation         *reservation.Reservation
	LocationName        string
	LocationAddress     string
	LocationTimezone    string
	TableLabel          string
	ConfirmationMessage string
	LoyaltyOptIn        bool
}
