package codegen

import (
	"context"

	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=postgres.go -destination=../../../tests/mock/codegen/postgres.go -package=codegenmock

type ConfirmationCodeQueries interface {
	GenerateConfirmationCode(ctx context.Context, db sqlc.DBTX) (string, error)
}

// PostgresCodeGenerator calls generate_confirmation_code() on its own connection,
// outside any booking transaction.
type PostgresCodeGenerator struct {
	queries ConfirmationCodeQueries
	db      sqlc.DBTX
}

func NewPostgresCodeGenerator(queries ConfirmationCodeQueries, db sqlc.DBTX) *PostgresCodeGenerator {
	return &PostgresCodeGenerator{
		queries: queries,
		db:      db,
	}
}

func (g *PostgresCodeGenerator) Generate(ctx context.Context) (string, error) {
	code, err := g.queries.GenerateConfirmationCode(ctx, g.db)
	if err != nil {
		return "", infra.WrapRepoErr("failed to generate confirmation code", err)
	}
	return code, nil
}
