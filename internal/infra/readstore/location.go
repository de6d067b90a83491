package readstore

import (
	"context"

	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=location.go -destination=../../../tests/mock/readstore/location.go -package=readstoremock

type LocationReadQueries interface {
	GetLocationWithSettings(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetLocationWithSettingsRow, error)
}

type LocationReadStore struct {
	queries LocationReadQueries
	db      sqlc.DBTX
}

func NewLocationReadStore(queries LocationReadQueries, db sqlc.DBTX) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	row, err := r.queries.GetLocationWithSettings(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get location", err)
	}

	snap := &shared.LocationSnapshot{
		ID:            row.ID,
		Name:          row.Name,
		Address:       row.Address,
		Timezone:      row.Timezone,
		OnlineEnabled: row.OnlineEnabled,
	}
	if row.SettingsLocationID.Valid {
		snap.Settings = &shared.SettingsSnapshot{
			OnlineBookingEnabled:   row.OnlineBookingEnabled.Bool,
			MaxPartySizeOnline:     int(row.MaxPartySizeOnline.Int32),
			DefaultDurationMinutes: int(row.DefaultDurationMinutes.Int32),
			ConfirmationMessage:    pgconv.StringFromPgtype(row.ConfirmationMessage),
		}
	}
	return snap, nil
}
