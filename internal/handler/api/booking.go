package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/handler/validation"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"

	reservationPathPrefix = "/api/public/reservations/"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

type errorMapping struct {
	target error
	status int
	msg    string
	reason string
}

// ordered: the first matching sentinel wins
var bookingErrorMappings = []errorMapping{
	{commands.ErrInvalidBookingRequest, http.StatusBadRequest, "Invalid booking request", "invalid_request"},
	{commands.ErrLocationNotFound, http.StatusNotFound, "Location not found", "location_not_found"},
	{commands.ErrOnlineBookingDisabled, http.StatusUnprocessableEntity, "Online booking is not available for this location", "booking_disabled"},
	{commands.ErrPartyTooLarge, http.StatusUnprocessableEntity, "Party size exceeds the online booking limit", "party_too_large"},
	{commands.ErrSlotUnavailable, http.StatusConflict, "The requested time is no longer available", "slot_unavailable"},
	{commands.ErrNoSuitableTable, http.StatusUnprocessableEntity, "No table can seat this party", "no_suitable_table"},
	{commands.ErrNoTableAvailable, http.StatusConflict, "No table is available at the requested time", "no_table_available"},
	{commands.ErrSlotOracleUnavailable, http.StatusServiceUnavailable, "Availability service is temporarily unavailable", "slot_oracle_unavailable"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Booking request is currently being processed", "request_in_progress"},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency key was used with a different request", "idempotency_key_reused"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found", "reservation_not_found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found", "reservation_not_found"},
	{commands.ErrNotCancellable, http.StatusConflict, "Reservation can no longer be cancelled", "not_cancellable"},
}

func abortWithBookingError(c *gin.Context, err error) {
	for _, m := range bookingErrorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, httperr.Reason(m.reason))
			return
		}
	}
	// details stay in the logs
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// @Summary Create booking
// @Description Book a table online. An optional Idempotency-Key makes retries safe.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID identifying this booking attempt"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/public/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	idempotencyKey, err := idempotencyKeyFromHeader(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", httperr.Reason("invalid_idempotency_key"))
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", httperr.Detail{
			Reason: "invalid_request",
			Fields: validation.FieldErrors(bindErr),
		})
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(idempotencyKey))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	if result.Replayed {
		c.Header(HeaderIdempotentReplayed, "true")
	}
	c.Header("Location", reservationPathPrefix+result.ConfirmationCode)
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Get reservation
// @Description Look up a reservation by confirmation code
// @Tags reservations
// @Produce json
// @Security ManageToken
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/public/reservations/{code} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	if id, ok := middleware.GetReservationID(c); ok && id != view.ID {
		slog.Warn("manage token reservation mismatch", "token_reservation_id", id.String(), "reservation_id", view.ID.String())
		httperr.AbortWithError(c, http.StatusForbidden, errors.New("token reservation mismatch"), "Token not valid for this reservation", httperr.Reason("token_mismatch"))
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel reservation
// @Description Cancel a reservation and free its table
// @Tags reservations
// @Security ManageToken
// @Param code path string true "Confirmation code"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/public/reservations/{code} [delete]
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	if err := h.cmds.CancelBooking(c.Request.Context(), c.Param("code")); err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func idempotencyKeyFromHeader(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(HeaderIdempotencyKey)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
