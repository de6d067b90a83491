package components

import (
	"table-booking/internal/infra/codegen"
	"table-booking/internal/infra/readstore"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/infra/uow"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Confirmation codes
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(codegen.ConfirmationCodeQueries)),
		),
		fx.Annotate(
			codegen.NewPostgresCodeGenerator,
			fx.As(new(commands.CodeGenerator)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
