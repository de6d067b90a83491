package repository

import (
	"encoding/json"

	"table-booking/internal/domain/reservation"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func reservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	accommodations, err := json.Marshal(res.Accommodations())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	contact := res.Contact()
	slot := res.Slot()
	return sqlc.CreateReservationParams{
		ID:               res.ID(),
		LocationID:       res.LocationID(),
		CustomerName:     contact.Name(),
		CustomerPhone:    contact.Phone(),
		CustomerEmail:    pgconv.OptionalStringToPgtype(contact.Email()),
		ReservationDate:  pgconv.DateToPgtype(slot.Date()),
		ReservationTime:  pgconv.TimeOfDayToPgtype(slot.TimeOfDay()),
		DurationMinutes:  int32(res.DurationMinutes()), // #nosec G115 -- bounded by settings
		PartySize:        int32(res.PartySize()),       // #nosec G115 -- bounded by settings
		Accommodations:   accommodations,
		Status:           res.Status().String(),
		Source:           res.Source().String(),
		ConfirmationCode: res.ConfirmationCode().String(),
		CreatedAt:        pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func intervalToParams(iv reservation.Interval) (pgtype.Timestamp, pgtype.Timestamp) {
	return pgconv.TimestampToPgtype(iv.Start()), pgconv.TimestampToPgtype(iv.End())
}
