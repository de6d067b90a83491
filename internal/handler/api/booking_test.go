//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/handler/validation"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/jwt"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/httptest"
	"table-booking/tests/common/testutil"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	bookingsURL = "/api/public/bookings"
	testSecret  = "test-manage-secret"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	tokens       *jwt.Service
	clock        *clock.MockClock
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	s.tokens = jwt.NewService(testSecret, time.Hour, s.clock)

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	manage := middleware.NewManageAuthMiddleware(s.tokens).RequireManageToken()

	s.router.POST(bookingsURL, h.CreateBooking)
	s.router.GET("/api/public/reservations/:code", manage, h.GetReservation)
	s.router.DELETE("/api/public/reservations/:code", manage, h.CancelReservation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) manageToken(id uuid.UUID, code string) string {
	token, err := s.tokens.GenerateManageToken(id, code)
	s.Require().NoError(err)
	return token
}

type testCaseBooking struct {
	name        string
	mutate      func(m map[string]any)
	expectCode  int
	expectField string
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	result := b.BuildResult()

	s.Run("success: 201 with Location header", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildInput()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, bookingsURL, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(*resdto.FromBookingResult(result), body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":                   "/api/public/reservations/" + result.ConfirmationCode,
			api.HeaderIdempotentReplayed: "",
		})
	})

	s.Run("success: idempotency key reaches the use case", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal(key, *in.IdempotencyKey)
				return result, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, bookingsURL, reqBody, "",
			map[string]string{api.HeaderIdempotencyKey: key.String()})

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: replay is flagged", func() {
		replayed := *result
		replayed.Replayed = true
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(&replayed, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, bookingsURL, reqBody, "",
			map[string]string{api.HeaderIdempotencyKey: uuid.NewString()})

		s.Equal(http.StatusCreated, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotentReplayed: "true"})
	})

	s.Run("success: special requests are trimmed into accommodations", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("specialRequests", map[string]any{
			"allergies":  "  peanuts ",
			"wheelchair": true,
		}), testutil.Field("customerName", "  Ada Lovelace  "))
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Equal("peanuts", in.Accommodations.Allergies)
				s.True(in.Accommodations.Wheelchair)
				s.Equal("Ada Lovelace", in.CustomerName)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, bookingsURL, requestMap, "")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, bookingsURL, reqBody, "",
			map[string]string{api.HeaderIdempotencyKey: "not-a-uuid"})

		httptest.AssertErrorReason(s.T(), rec, http.StatusBadRequest, "invalid_idempotency_key")
	})

	bound := []testCaseBooking{
		{name: "party size 1 OK", mutate: testutil.Field("partySize", 1), expectCode: http.StatusCreated},
		{name: "party size 0 invalid", mutate: testutil.Field("partySize", 0), expectCode: http.StatusBadRequest, expectField: "partySize"},
		{name: "time with seconds OK", mutate: testutil.Field("time", "19:00:00"), expectCode: http.StatusCreated},
		{name: "time out of range", mutate: testutil.Field("time", "24:00"), expectCode: http.StatusBadRequest, expectField: "time"},
		{name: "date wrong format", mutate: testutil.Field("date", "15/06/2030"), expectCode: http.StatusBadRequest, expectField: "date"},
		{name: "name 200 chars OK", mutate: testutil.Field("customerName", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "name 201 chars invalid", mutate: testutil.Field("customerName", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest, expectField: "customerName"},
		{name: "phone with letters", mutate: testutil.Field("customerPhone", "call me"), expectCode: http.StatusBadRequest, expectField: "customerPhone"},
		{name: "phone too short", mutate: testutil.Field("customerPhone", "12345"), expectCode: http.StatusBadRequest, expectField: "customerPhone"},
		{name: "email invalid", mutate: testutil.Field("customerEmail", "ada-at-example"), expectCode: http.StatusBadRequest, expectField: "customerEmail"},
		{name: "email omitted OK", mutate: testutil.Field("customerEmail", nil), expectCode: http.StatusCreated},
		{
			name:        "notes too long",
			mutate:      testutil.Field("specialRequests", map[string]any{"notes": strings.Repeat("n", 1001)}),
			expectCode:  http.StatusBadRequest,
			expectField: "specialRequests.notes",
		},
	}

	missing := []testCaseBooking{
		{name: "missing field: locationId", mutate: testutil.Field("locationId", nil), expectCode: http.StatusBadRequest, expectField: "locationId"},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest, expectField: "date"},
		{name: "missing field: time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest, expectField: "time"},
		{name: "missing field: partySize", mutate: testutil.Field("partySize", nil), expectCode: http.StatusBadRequest, expectField: "partySize"},
		{name: "missing field: customerName", mutate: testutil.Field("customerName", nil), expectCode: http.StatusBadRequest, expectField: "customerName"},
		{name: "missing field: customerPhone", mutate: testutil.Field("customerPhone", nil), expectCode: http.StatusBadRequest, expectField: "customerPhone"},
	}

	malformed := []testCaseBooking{
		{name: "locationId not a uuid", mutate: testutil.Field("locationId", "harbor"), expectCode: http.StatusBadRequest},
		{name: "partySize as string", mutate: testutil.Field("partySize", "four"), expectCode: http.StatusBadRequest},
	}

	for _, group := range [][]testCaseBooking{bound, missing, malformed} {
		for _, tc := range group {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(result, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, bookingsURL, requestMap, "")

				if tc.expectCode != http.StatusBadRequest {
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
					return
				}
				httptest.AssertErrorReason(s.T(), rec, http.StatusBadRequest, "invalid_request")
				if tc.expectField != "" {
					s.Contains(httptest.ErrorFields(s.T(), rec), tc.expectField)
				}
			})
		}
	}

	errorCases := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"invalid request", commands.ErrInvalidBookingRequest, http.StatusBadRequest, "invalid_request"},
		{"unknown location", commands.ErrLocationNotFound, http.StatusNotFound, "location_not_found"},
		{"booking disabled", commands.ErrOnlineBookingDisabled, http.StatusUnprocessableEntity, "booking_disabled"},
		{"party too large", commands.ErrPartyTooLarge, http.StatusUnprocessableEntity, "party_too_large"},
		{"stale slot", commands.ErrSlotUnavailable, http.StatusConflict, "slot_unavailable"},
		{"no table seats party", commands.ErrNoSuitableTable, http.StatusUnprocessableEntity, "no_suitable_table"},
		{"all tables taken", errs.Mark(errs.New("exclusion violation"), commands.ErrNoTableAvailable), http.StatusConflict, "no_table_available"},
		{"oracle down", errs.Mark(errs.New("dial tcp"), commands.ErrSlotOracleUnavailable), http.StatusServiceUnavailable, "slot_oracle_unavailable"},
		{"in progress", commands.ErrIdempotencyInProgress, http.StatusConflict, "request_in_progress"},
		{"key reused", commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "idempotency_key_reused"},
		{"party limit from domain", errs.Mark(errs.New("party of 12 exceeds 8"), commands.ErrPartyTooLarge), http.StatusUnprocessableEntity, "party_too_large"},
		{"wrapped conflict", errs.Wrap(errs.Mark(errs.New("exclusion violation"), commands.ErrNoTableAvailable), "commit"), http.StatusConflict, "no_table_available"},
		{"internal", errs.Mark(errs.New("pool closed"), commands.ErrBookingFailed), http.StatusInternalServerError, ""},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, bookingsURL, reqBody, "")

			httptest.AssertErrorReason(s.T(), rec, tc.status, tc.reason)
			s.NotContains(rec.Body.String(), "pool closed")
		})
	}
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetReservation() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	url := "/api/public/reservations/" + view.ConfirmationCode

	s.Run("success: bearer token", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), view.ConfirmationCode).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.manageToken(view.ID, view.ConfirmationCode))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("19:00:00", body.Time)
		s.Equal(view.ConfirmationCode, body.ConfirmationCode)
		s.Require().NotNil(body.TableLabel)
		s.Equal("T4", *body.TableLabel)
	})

	s.Run("success: token as query parameter, code in lowercase", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), strings.ToLower(view.ConfirmationCode)).Return(view, nil)

		token := s.manageToken(view.ID, view.ConfirmationCode)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/public/reservations/"+strings.ToLower(view.ConfirmationCode)+"?token="+token, nil, "")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnauthorized, "token_required")
	})

	s.Run("error: garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "not.a.jwt")
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnauthorized, "invalid_token")
	})

	s.Run("error: expired token", func() {
		token := s.manageToken(view.ID, view.ConfirmationCode)
		s.clock.Add(2 * time.Hour)
		defer s.clock.Add(-2 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnauthorized, "invalid_token")
	})

	s.Run("error: token signed with another secret", func() {
		other := jwt.NewService("other-secret", time.Hour, s.clock)
		token, err := other.GenerateManageToken(view.ID, view.ConfirmationCode)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnauthorized, "invalid_token")
	})

	s.Run("error: token for another code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.manageToken(view.ID, "RES-OTHER000"))
		httptest.AssertErrorReason(s.T(), rec, http.StatusForbidden, "token_mismatch")
	})

	s.Run("error: token for another reservation with the same code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), view.ConfirmationCode).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.manageToken(uuid.New(), view.ConfirmationCode))
		httptest.AssertErrorReason(s.T(), rec, http.StatusForbidden, "token_mismatch")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), view.ConfirmationCode).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.manageToken(view.ID, view.ConfirmationCode))
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "reservation_not_found")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelReservation() {
	id := uuid.New()
	code := "RES-7K3M9QPX"
	url := "/api/public/reservations/" + code

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), code).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.manageToken(id, code))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: not cancellable", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), code).Return(commands.ErrNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.manageToken(id, code))
		httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, "not_cancellable")
	})

	s.Run("error: unknown code", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), code).Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.manageToken(id, code))
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "reservation_not_found")
	})

	s.Run("error: requires token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnauthorized, "token_required")
	})
}
