//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type LocationFixture struct {
	Name                   string
	Timezone               string
	OnlineEnabled          bool
	OnlineBookingEnabled   bool
	MaxPartySizeOnline     int
	DefaultDurationMinutes int
	ConfirmationMessage    string
	// false leaves the location without a reservation_settings row
	WithSettings bool
}

func DefaultLocation() LocationFixture {
	return LocationFixture{
		Name:                   "Harbor Bistro",
		Timezone:               "America/New_York",
		OnlineEnabled:          true,
		OnlineBookingEnabled:   true,
		MaxPartySizeOnline:     8,
		DefaultDurationMinutes: 90,
		ConfirmationMessage:    "See you soon!",
		WithSettings:           true,
	}
}

func CreateTestLocation(t *testing.T, db DBLike, f LocationFixture) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO locations (id, name, address, timezone, online_enabled) VALUES ($1, $2, '1 Pier Road', $3, $4)",
		id, f.Name, f.Timezone, f.OnlineEnabled)
	require.NoError(t, err)

	if f.WithSettings {
		_, err = db.Exec(ctx,
			`INSERT INTO reservation_settings
			    (location_id, online_booking_enabled, max_party_size_online, default_duration_minutes, confirmation_message)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, f.OnlineBookingEnabled, f.MaxPartySizeOnline, f.DefaultDurationMinutes, f.ConfirmationMessage)
		require.NoError(t, err)
	}
	return id
}

// CreateTestSeatingMap accepts nil for a map with no explicit active flag.
func CreateTestSeatingMap(t *testing.T, db DBLike, locationID uuid.UUID, active *bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO seating_maps (id, location_id, name, is_active) VALUES ($1, $2, 'Main floor', $3)",
		id, locationID, active)
	require.NoError(t, err)
	return id
}

func CreateTestTable(t *testing.T, db DBLike, locationID, seatingMapID uuid.UUID, label string, capacity int, active *bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO restaurant_tables (id, location_id, seating_map_id, label, capacity, is_active) VALUES ($1, $2, $3, $4, $5, $6)",
		id, locationID, seatingMapID, label, capacity, active)
	require.NoError(t, err)
	return id
}

type BookingFixture struct {
	LocationID      uuid.UUID
	TableID         uuid.UUID
	Date            string
	Time            string
	DurationMinutes int
	PartySize       int
	Status          string
	Code            string
}

// CreateTestBooking inserts a staff reservation with an assignment on TableID.
// The assignment is inserted unreleased whatever the status; the schema decides
// whether it still holds the table.
func CreateTestBooking(t *testing.T, db DBLike, f BookingFixture) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	if f.Status == "" {
		f.Status = "confirmed"
	}
	if f.Code == "" {
		f.Code = "S" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:7])
	}

	id := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO reservations
		    (id, location_id, customer_name, customer_phone, reservation_date, reservation_time,
		     duration_minutes, party_size, status, source, confirmation_code)
		 VALUES ($1, $2, 'Walk In', '+15550000000', $3::date, $4::time, $5, $6, $7, 'staff', $8)`,
		id, f.LocationID, f.Date, f.Time, f.DurationMinutes, f.PartySize, f.Status, f.Code)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO table_assignments (reservation_id, table_id, during, released)
		 VALUES ($1, $2,
		         tsrange($3::date + $4::time, $3::date + $4::time + make_interval(mins => $5), '[)'),
		         FALSE)`,
		id, f.TableID, f.Date, f.Time, f.DurationMinutes)
	require.NoError(t, err)
	return id
}

func ReservationStatus(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE confirmation_code = $1", code).Scan(&status)
	require.NoError(t, err)
	return status
}

// AssignedTable returns the table holding the reservation and whether the hold was released.
func AssignedTable(t *testing.T, db DBLike, code string) (uuid.UUID, bool) {
	t.Helper()

	var (
		tableID  uuid.UUID
		released bool
	)
	err := db.QueryRow(context.Background(),
		`SELECT ta.table_id, ta.released
		 FROM table_assignments ta JOIN reservations r ON r.id = ta.reservation_id
		 WHERE r.confirmation_code = $1`, code).Scan(&tableID, &released)
	require.NoError(t, err)
	return tableID, released
}

// SetReservationStatus changes status the way staff tooling does, without touching assignments.
func SetReservationStatus(t *testing.T, db DBLike, id uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE reservations SET status = $2 WHERE id = $1", id, status)
	require.NoError(t, err)
}

func CountReservations(t *testing.T, db DBLike, locationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE location_id = $1", locationID).Scan(&n)
	require.NoError(t, err)
	return n
}

func Bool(b bool) *bool { return &b }

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except schema_migrations.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
