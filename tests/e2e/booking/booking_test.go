//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"table-booking/internal/handler/api"
	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/pkg/config"
	"table-booking/tests/common/dbtest"
	"table-booking/tests/common/httptest"
	"table-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	bookingsURL     = "/api/public/bookings"
	reservationsURL = "/api/public/reservations/"

	bookingDate = "2030-06-15"
)

type bookingSuite struct {
	e2e.SharedSuite

	locationID uuid.UUID
	fourTop    uuid.UUID
	sixTop     uuid.UUID
}

func TestBookingSuite_TransactionMode(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func TestBookingSuite_SagaMode(t *testing.T) {
	t.Parallel()
	s := new(bookingSuite)
	s.ConfigureApp = func(cfg *config.Config) {
		cfg.Booking.CommitMode = config.CommitModeSaga
	}
	suite.Run(t, s)
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seedFloor(dbtest.DefaultLocation())
}

func (s *bookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seedFloor(dbtest.DefaultLocation())
}

// seedFloor creates a location with one 4-top and one 6-top on an unflagged seating map.
func (s *bookingSuite) seedFloor(loc dbtest.LocationFixture) {
	t := s.T()
	loc.MaxPartySizeOnline = 20
	s.locationID = dbtest.CreateTestLocation(t, s.DB, loc)
	mapID := dbtest.CreateTestSeatingMap(t, s.DB, s.locationID, nil)
	s.fourTop = dbtest.CreateTestTable(t, s.DB, s.locationID, mapID, "T4", 4, dbtest.Bool(true))
	s.sixTop = dbtest.CreateTestTable(t, s.DB, s.locationID, mapID, "T6", 6, nil)
}

func (s *bookingSuite) request(at string, party int) reqdto.CreateBookingRequest {
	email := "ada@example.com"
	return reqdto.CreateBookingRequest{
		LocationID:    s.locationID,
		Date:          bookingDate,
		Time:          at,
		PartySize:     party,
		CustomerName:  "Ada Lovelace",
		CustomerPhone: "+1 555 010 2030",
		CustomerEmail: &email,
		SpecialRequests: &reqdto.SpecialRequests{
			Occasion: "Anniversary",
		},
	}
}

func (s *bookingSuite) book(req reqdto.CreateBookingRequest, headers map[string]string) (*resdto.BookingResponse, int) {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, req, "", headers)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var out resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &out)
	return &out, w.Code
}

func (s *bookingSuite) existing(tableID uuid.UUID, at string, minutes int) {
	dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
		LocationID:      s.locationID,
		TableID:         tableID,
		Date:            bookingDate,
		Time:            at,
		DurationMinutes: minutes,
		PartySize:       4,
	})
}

var ignoreIssued = cmpopts.IgnoreFields(resdto.BookingResponse{}, "ReservationID", "ConfirmationCode", "ManageToken")

func (s *bookingSuite) TestScenarios() {
	s.Run("A: smallest fitting table on an empty floor", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")

		got, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)

		want := &resdto.BookingResponse{
			TableLabel:          "T4",
			Date:                bookingDate,
			Time:                "18:00:00",
			PartySize:           4,
			DurationMinutes:     90,
			ConfirmationMessage: "See you soon!",
		}
		s.Empty(cmp.Diff(want, got, ignoreIssued))
		s.NotEmpty(got.ManageToken)

		tableID, released := dbtest.AssignedTable(s.T(), s.DB, got.ConfirmationCode)
		s.Equal(s.fourTop, tableID)
		s.False(released)
		s.Equal("confirmed", dbtest.ReservationStatus(s.T(), s.DB, got.ConfirmationCode))
	})

	s.Run("B: overlap on the 4-top falls through to the 6-top", func() {
		s.existing(s.fourTop, "18:00", 90)
		s.Oracle.Offer(s.locationID, bookingDate, "18:30")

		got, status := s.book(s.request("18:30", 4), nil)
		s.Require().Equal(http.StatusCreated, status)
		s.Equal("T6", got.TableLabel)

		tableID, _ := dbtest.AssignedTable(s.T(), s.DB, got.ConfirmationCode)
		s.Equal(s.sixTop, tableID)
	})

	s.Run("C: touching intervals do not conflict", func() {
		s.existing(s.fourTop, "17:00", 60)
		s.Oracle.Offer(s.locationID, bookingDate, "18:00:00")

		got, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)
		s.Equal("T4", got.TableLabel)
	})

	s.Run("D: no table seats the party", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 12), "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "no_suitable_table")
		s.Zero(dbtest.CountReservations(s.T(), s.DB, s.locationID))
	})

	s.Run("E: stale slot is rejected before table selection", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "17:30", "19:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 4), "")
		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, "slot_unavailable")
		s.Zero(dbtest.CountReservations(s.T(), s.DB, s.locationID))
	})
}

func (s *bookingSuite) TestTerminalBookingsFreeTheTable() {
	s.Run("marked no-show after being seated on the table", func() {
		earlier := dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
			LocationID:      s.locationID,
			TableID:         s.fourTop,
			Date:            bookingDate,
			Time:            "18:00",
			DurationMinutes: 90,
			PartySize:       4,
			Code:            "SNOSHOW1",
		})
		dbtest.SetReservationStatus(s.T(), s.DB, earlier, "no_show")
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")

		got, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)
		s.Equal("T4", got.TableLabel)

		_, released := dbtest.AssignedTable(s.T(), s.DB, "SNOSHOW1")
		s.True(released)
	})

	for _, terminal := range []string{"cancelled", "no_show", "completed"} {
		s.Run("stored as "+terminal, func() {
			earlier := dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
				LocationID:      s.locationID,
				TableID:         s.fourTop,
				Date:            bookingDate,
				Time:            "18:00",
				DurationMinutes: 90,
				PartySize:       4,
				Status:          terminal,
			})
			s.Oracle.Offer(s.locationID, bookingDate, "18:00")

			got, status := s.book(s.request("18:00", 4), nil)
			s.Require().Equal(http.StatusCreated, status, "table held by %s", earlier)
			s.Equal("T4", got.TableLabel)
		})
	}
}

func (s *bookingSuite) TestRejections() {
	s.Run("both tables taken", func() {
		s.existing(s.fourTop, "18:00", 90)
		s.existing(s.sixTop, "17:30", 120)
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 4), "")
		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, "no_table_available")
	})

	s.Run("party above the online limit", func() {
		loc := dbtest.DefaultLocation()
		loc.MaxPartySizeOnline = 4
		id := dbtest.CreateTestLocation(s.T(), s.DB, loc)
		req := s.request("18:00", 6)
		req.LocationID = id

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "party_too_large")
	})

	s.Run("online booking disabled", func() {
		loc := dbtest.DefaultLocation()
		loc.OnlineBookingEnabled = false
		req := s.request("18:00", 2)
		req.LocationID = dbtest.CreateTestLocation(s.T(), s.DB, loc)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "booking_disabled")
	})

	s.Run("location without settings", func() {
		loc := dbtest.DefaultLocation()
		loc.WithSettings = false
		req := s.request("18:00", 2)
		req.LocationID = dbtest.CreateTestLocation(s.T(), s.DB, loc)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "booking_disabled")
	})

	s.Run("unknown location", func() {
		req := s.request("18:00", 2)
		req.LocationID = uuid.New()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusNotFound, "location_not_found")
	})

	s.Run("inactive seating map hides its tables", func() {
		loc := dbtest.DefaultLocation()
		loc.MaxPartySizeOnline = 20
		id := dbtest.CreateTestLocation(s.T(), s.DB, loc)
		mapID := dbtest.CreateTestSeatingMap(s.T(), s.DB, id, dbtest.Bool(false))
		dbtest.CreateTestTable(s.T(), s.DB, id, mapID, "P1", 8, dbtest.Bool(true))
		s.Oracle.Offer(id, bookingDate, "18:00")
		req := s.request("18:00", 2)
		req.LocationID = id

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "no_suitable_table")
	})

	s.Run("oracle outage", func() {
		s.Oracle.FailWith(http.StatusBadGateway)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 2), "")
		httptest.AssertErrorReason(s.T(), w, http.StatusServiceUnavailable, "slot_oracle_unavailable")
		s.GreaterOrEqual(s.Oracle.Calls(), 2, "5xx responses are retried")
	})
}

func (s *bookingSuite) TestConcurrentBookingsForOneTable() {
	const contenders = 8

	// a single 2-top so every contender competes for the same row
	loc := dbtest.DefaultLocation()
	id := dbtest.CreateTestLocation(s.T(), s.DB, loc)
	mapID := dbtest.CreateTestSeatingMap(s.T(), s.DB, id, dbtest.Bool(true))
	tableID := dbtest.CreateTestTable(s.T(), s.DB, id, mapID, "B1", 2, nil)
	s.Oracle.Offer(id, bookingDate, "19:00")

	statuses := make([]int, contenders)
	var g errgroup.Group
	for i := range contenders {
		g.Go(func() error {
			req := s.request("19:00", 2)
			req.LocationID = id
			req.CustomerPhone = fmt.Sprintf("+1 555 100 %04d", i)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
			statuses[i] = w.Code
			return nil
		})
	}
	require.NoError(s.T(), g.Wait())

	created := 0
	for _, code := range statuses {
		switch code {
		case http.StatusCreated:
			created++
		default:
			s.Equal(http.StatusConflict, code)
		}
	}
	s.Equal(1, created, "exactly one contender wins the table")
	s.Equal(1, dbtest.CountReservations(s.T(), s.DB, id), "losers leave nothing behind")

	var holds int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM table_assignments WHERE table_id = $1 AND NOT released", tableID).Scan(&holds)
	s.Require().NoError(err)
	s.Equal(1, holds)
}

func (s *bookingSuite) TestIdempotentRetry() {
	s.Run("retry replays the original booking", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")
		key := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}

		first, status := s.book(s.request("18:00", 4), key)
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 4), "", key)
		var second resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &second)
		httptest.AssertHeaders(s.T(), w, map[string]string{api.HeaderIdempotentReplayed: "true"})

		s.Empty(cmp.Diff(first, &second, cmpopts.IgnoreFields(resdto.BookingResponse{}, "ManageToken")))
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, s.locationID))
	})

	s.Run("same key with a different body", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00", "20:00")
		key := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}

		_, status := s.book(s.request("18:00", 4), key)
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("20:00", 4), "", key)
		httptest.AssertErrorReason(s.T(), w, http.StatusUnprocessableEntity, "idempotency_key_reused")
	})

	s.Run("failed attempt frees the key", func() {
		key := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.request("18:00", 4), "", key)
		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, "slot_unavailable")

		s.Oracle.Offer(s.locationID, bookingDate, "18:00")
		_, status := s.book(s.request("18:00", 4), key)
		s.Equal(http.StatusCreated, status)
	})
}

func (s *bookingSuite) TestManageReservation() {
	s.Run("look up, cancel and rebook the freed table", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00")
		booked, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+booked.ConfirmationCode, nil, booked.ManageToken)
		var view resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal(booked.ReservationID, view.ID)
		s.Equal("Harbor Bistro", view.LocationName)
		s.Equal("Anniversary", view.Accommodations.Occasion)
		s.Equal("online", view.Source)
		s.Require().NotNil(view.TableLabel)
		s.Equal("T4", *view.TableLabel)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+booked.ConfirmationCode, nil, booked.ManageToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())
		s.Equal("cancelled", dbtest.ReservationStatus(s.T(), s.DB, booked.ConfirmationCode))
		_, released := dbtest.AssignedTable(s.T(), s.DB, booked.ConfirmationCode)
		s.True(released)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+booked.ConfirmationCode, nil, booked.ManageToken)
		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, "not_cancellable")

		again, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)
		s.Equal("T4", again.TableLabel)
	})

	s.Run("token for another reservation", func() {
		s.Oracle.Offer(s.locationID, bookingDate, "18:00", "21:00")
		first, status := s.book(s.request("18:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)
		second, status := s.book(s.request("21:00", 4), nil)
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+second.ConfirmationCode, nil, first.ManageToken)
		httptest.AssertErrorReason(s.T(), w, http.StatusForbidden, "token_mismatch")
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"ABC234", nil, "")
		httptest.AssertErrorReason(s.T(), w, http.StatusUnauthorized, "token_required")
	})
}

func (s *bookingSuite) TestLoyaltyEnrollment() {
	s.Oracle.Offer(s.locationID, bookingDate, "18:00")
	req := s.request("18:00", 2)
	req.LoyaltyOptIn = true

	_, status := s.book(req, nil)
	s.Require().Equal(http.StatusCreated, status)

	// post-commit work runs after the response
	s.Eventually(func() bool {
		var enrolled bool
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT loyalty_enrolled FROM customer_profiles WHERE location_id = $1", s.locationID).Scan(&enrolled)
		return err == nil && enrolled
	}, 5*time.Second, 50*time.Millisecond)
}
