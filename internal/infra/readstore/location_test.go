//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"table-booking/internal/infra"
	"table-booking/internal/infra/readstore"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/tests/common/builder"
	readstoremock "table-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocationReadStore_FindByID(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.LocationBuilder)
	}{
		{name: "with settings", mutate: func(*builder.LocationBuilder) {}},
		{name: "without settings row", mutate: func(l *builder.LocationBuilder) { l.HasSettings = false }},
		{name: "online disabled", mutate: func(l *builder.LocationBuilder) { l.OnlineEnabled = false; l.ConfirmationMessage = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := builder.NewLocationBuilder().With(tt.mutate)

			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockLocationReadQueries(ctrl)
			q.EXPECT().GetLocationWithSettings(gomock.Any(), gomock.Any(), loc.ID).Return(loc.BuildInfra(), nil)

			got, err := readstore.NewLocationReadStore(q, nil).FindByID(context.Background(), loc.ID)

			require.NoError(t, err)
			if diff := cmp.Diff(loc.BuildSnapshot(), got); diff != "" {
				t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocationReadStore_Errors(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockLocationReadQueries(ctrl)
	gomock.InOrder(
		q.EXPECT().GetLocationWithSettings(gomock.Any(), gomock.Any(), id).Return(sqlc.GetLocationWithSettingsRow{}, pgx.ErrNoRows),
		q.EXPECT().GetLocationWithSettings(gomock.Any(), gomock.Any(), id).Return(sqlc.GetLocationWithSettingsRow{}, assert.AnError),
	)
	store := readstore.NewLocationReadStore(q, nil)

	_, err := store.FindByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.FindByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
