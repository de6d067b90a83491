//go:build unit || e2e

package builder

import (
	"table-booking/internal/domain/table"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LocationBuilder struct {
	ID                     uuid.UUID
	Name                   string
	Address                string
	Timezone               string
	OnlineEnabled          bool
	HasSettings            bool
	OnlineBookingEnabled   bool
	MaxPartySizeOnline     int
	DefaultDurationMinutes int
	ConfirmationMessage    string
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		ID:                     uuid.New(),
		Name:                   "Harbor Bistro",
		Address:                "1 Pier Road",
		Timezone:               "America/New_York",
		OnlineEnabled:          true,
		HasSettings:            true,
		OnlineBookingEnabled:   true,
		MaxPartySizeOnline:     8,
		DefaultDurationMinutes: 90,
		ConfirmationMessage:    "See you soon!",
	}
}

func (l *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(l)
	return l
}

func (l *LocationBuilder) BuildSnapshot() *shared.LocationSnapshot {
	snap := &shared.LocationSnapshot{
		ID:            l.ID,
		Name:          l.Name,
		Address:       l.Address,
		Timezone:      l.Timezone,
		OnlineEnabled: l.OnlineEnabled,
	}
	if l.HasSettings {
		snap.Settings = &shared.SettingsSnapshot{
			OnlineBookingEnabled:   l.OnlineBookingEnabled,
			MaxPartySizeOnline:     l.MaxPartySizeOnline,
			DefaultDurationMinutes: l.DefaultDurationMinutes,
			ConfirmationMessage:    l.ConfirmationMessage,
		}
	}
	return snap
}

// BuildInfra mirrors the LEFT JOIN row; settings columns are NULL without a settings row.
func (l *LocationBuilder) BuildInfra() sqlc.GetLocationWithSettingsRow {
	row := sqlc.GetLocationWithSettingsRow{
		ID:            l.ID,
		Name:          l.Name,
		Address:       l.Address,
		Timezone:      l.Timezone,
		OnlineEnabled: l.OnlineEnabled,
	}
	if l.HasSettings {
		row.SettingsLocationID = pgconv.UUIDToPgtype(l.ID)
		row.OnlineBookingEnabled = pgtype.Bool{Bool: l.OnlineBookingEnabled, Valid: true}
		row.MaxPartySizeOnline = pgtype.Int4{Int32: int32(l.MaxPartySizeOnline), Valid: true}
		row.DefaultDurationMinutes = pgtype.Int4{Int32: int32(l.DefaultDurationMinutes), Valid: true}
		row.ConfirmationMessage = pgconv.OptionalStringToPgtype(l.ConfirmationMessage)
	}
	return row
}

type TableBuilder struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	SeatingMapID uuid.UUID
	Label        string
	Capacity     int
	IsActive     *bool
	MapIsActive  *bool
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:           uuid.New(),
		LocationID:   uuid.New(),
		SeatingMapID: uuid.New(),
		Label:        "T4",
		Capacity:     4,
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) BuildSnapshot() shared.TableSnapshot {
	return shared.TableSnapshot{
		ID:           b.ID,
		LocationID:   b.LocationID,
		SeatingMapID: b.SeatingMapID,
		Label:        b.Label,
		Capacity:     b.Capacity,
		IsActive:     b.IsActive,
		MapIsActive:  b.MapIsActive,
	}
}

func (b *TableBuilder) BuildDomain() (*table.Table, error) {
	return table.NewTable(
		b.ID,
		b.LocationID,
		b.SeatingMapID,
		b.Label,
		b.Capacity,
		table.ActiveStateFromPtr(b.IsActive),
		table.ActiveStateFromPtr(b.MapIsActive),
	)
}

func (b *TableBuilder) BuildInfra() sqlc.ListTablesByLocationRow {
	return sqlc.ListTablesByLocationRow{
		ID:           b.ID,
		LocationID:   b.LocationID,
		SeatingMapID: b.SeatingMapID,
		Label:        b.Label,
		Capacity:     int32(b.Capacity),
		IsActive:     boolToPgtype(b.IsActive),
		MapIsActive:  boolToPgtype(b.MapIsActive),
	}
}

func boolToPgtype(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
