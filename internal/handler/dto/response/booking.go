package response

import (
	"time"

	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ReservationID       uuid.UUID `json:"reservationId"`
	ConfirmationCode    string    `json:"confirmationCode"`
	TableLabel          string    `json:"tableLabel"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	PartySize           int       `json:"partySize"`
	DurationMinutes     int       `json:"durationMinutes"`
	ConfirmationMessage string    `json:"confirmationMessage"`
	ManageToken         string    `json:"manageToken,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ReservationID:       r.ReservationID,
		ConfirmationCode:    r.ConfirmationCode,
		TableLabel:          r.TableLabel,
		Date:                r.Date,
		Time:                r.Time,
		PartySize:           r.PartySize,
		DurationMinutes:     r.DurationMinutes,
		ConfirmationMessage: r.ConfirmationMessage,
		ManageToken:         r.ManageToken,
	}
}

type AccommodationsResponse struct {
	Allergies  string `json:"allergies,omitempty"`
	Occasion   string `json:"occasion,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Wheelchair bool   `json:"wheelchair"`
	HighChair  bool   `json:"highChair"`
}

type ReservationResponse struct {
	ID                 uuid.UUID              `json:"id"`
	LocationID         uuid.UUID              `json:"locationId"`
	LocationName       string                 `json:"locationName"`
	CustomerName       string                 `json:"customerName"`
	CustomerPhone      string                 `json:"customerPhone"`
	CustomerEmail      *string                `json:"customerEmail,omitempty"`
	Date               string                 `json:"date"`
	Time               string                 `json:"time"`
	DurationMinutes    int                    `json:"durationMinutes"`
	PartySize          int                    `json:"partySize"`
	Accommodations     AccommodationsResponse `json:"specialRequests"`
	Status             string                 `json:"status"`
	Source             string                 `json:"source"`
	ConfirmationCode   string                 `json:"confirmationCode"`
	TableLabel         *string                `json:"tableLabel,omitempty"`
	ConfirmationSentAt *time.Time             `json:"confirmationSentAt,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// FromReservationView copies fields by name; the view and response share field names.
func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &out, nil
}
