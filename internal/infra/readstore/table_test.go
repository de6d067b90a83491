//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/infra/readstore"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/shared"
	"table-booking/tests/common/builder"
	readstoremock "table-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTableReadStore_FindByLocation(t *testing.T) {
	inactive := false
	locationID := uuid.New()
	tables := []*builder.TableBuilder{
		builder.NewTableBuilder().With(func(b *builder.TableBuilder) { b.LocationID = locationID; b.Label = "T1" }),
		builder.NewTableBuilder().With(func(b *builder.TableBuilder) {
			b.LocationID = locationID
			b.Label = "T2"
			b.MapIsActive = &inactive
		}),
	}
	rows := make([]sqlc.ListTablesByLocationRow, 0, len(tables))
	want := make([]shared.TableSnapshot, 0, len(tables))
	for _, tb := range tables {
		rows = append(rows, tb.BuildInfra())
		want = append(want, tb.BuildSnapshot())
	}

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockTableReadQueries(ctrl)
	q.EXPECT().ListTablesByLocation(gomock.Any(), gomock.Any(), locationID).Return(rows, nil)

	got, err := readstore.NewTableReadStore(q, nil).FindByLocation(context.Background(), locationID)

	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}
}

func TestTableReadStore_FindActiveBookings(t *testing.T) {
	tableID, reservationID := uuid.New(), uuid.New()
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockTableReadQueries(ctrl)
	q.EXPECT().ListActiveTableBookings(gomock.Any(), gomock.Any(), sqlc.ListActiveTableBookingsParams{
		TableID:          tableID,
		ReservationDate:  pgconv.DateToPgtype(date),
		TerminalStatuses: []string{"cancelled", "no_show", "completed"},
	}).Return([]sqlc.ListActiveTableBookingsRow{{
		ID:              reservationID,
		ReservationDate: pgconv.DateToPgtype(date),
		ReservationTime: pgconv.TimeOfDayToPgtype(18*time.Hour + 30*time.Minute),
		DurationMinutes: 90,
		Status:          "confirmed",
	}}, nil)

	got, err := readstore.NewTableReadStore(q, nil).FindActiveBookings(context.Background(), tableID, date)

	require.NoError(t, err)
	assert.Equal(t, []shared.BookingSnapshot{{
		ReservationID:   reservationID,
		Date:            date,
		TimeOfDay:       18*time.Hour + 30*time.Minute,
		DurationMinutes: 90,
		Status:          "confirmed",
	}}, got)
}

func TestTableReadStore_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockTableReadQueries(ctrl)
	q.EXPECT().ListTablesByLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	q.EXPECT().ListActiveTableBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	store := readstore.NewTableReadStore(q, nil)

	_, err := store.FindByLocation(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = store.FindActiveBookings(context.Background(), uuid.New(), time.Now())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
