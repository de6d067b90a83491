package repository

import (
	"context"

	"table-booking/internal/domain/loyalty"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=customer_profile.go -destination=../../../tests/mock/repository/customer_profile.go -package=repositorymock

type CustomerProfileQueries interface {
	GetCustomerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerProfileParams) (sqlc.CustomerProfiles, error)
	CreateCustomerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerProfileParams) (int64, error)
	EnrollCustomerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.EnrollCustomerProfileParams) (int64, error)
}

type CustomerProfileRepository struct {
	queries CustomerProfileQueries
}

func NewCustomerProfileRepository(queries CustomerProfileQueries) *CustomerProfileRepository {
	return &CustomerProfileRepository{queries: queries}
}

func (r *CustomerProfileRepository) FindByPhone(ctx context.Context, tx sqlc.DBTX, locationID uuid.UUID, phone string) (*loyalty.Profile, error) {
	row, err := r.queries.GetCustomerProfile(ctx, tx, sqlc.GetCustomerProfileParams{
		LocationID: locationID,
		Phone:      phone,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer profile", err)
	}

	return loyalty.ReconstructProfile(
		row.ID,
		row.LocationID,
		row.Phone,
		row.Name,
		pgconv.StringFromPgtype(row.Email),
		row.LoyaltyEnrolled,
		int(row.PointsBalance),
		int(row.LifetimeVisits),
		row.LifetimeSpendCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// Create reports false when a concurrent writer already created the (location, phone) profile.
func (r *CustomerProfileRepository) Create(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) (bool, error) {
	inserted, err := r.queries.CreateCustomerProfile(ctx, tx, sqlc.CreateCustomerProfileParams{
		ID:                 p.ID(),
		LocationID:         p.LocationID(),
		Phone:              p.Phone(),
		Name:               p.Name(),
		Email:              pgconv.OptionalStringToPgtype(p.Email()),
		LoyaltyEnrolled:    p.Enrolled(),
		PointsBalance:      int32(p.PointsBalance()),  // #nosec G115 -- zero on creation
		LifetimeVisits:     int32(p.LifetimeVisits()), // #nosec G115 -- zero on creation
		LifetimeSpendCents: p.LifetimeSpendCents(),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create customer profile", err)
	}
	return inserted == 1, nil
}

func (r *CustomerProfileRepository) Enroll(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) error {
	_, err := r.queries.EnrollCustomerProfile(ctx, tx, sqlc.EnrollCustomerProfileParams{
		ID:        p.ID(),
		Name:      p.Name(),
		Email:     pgconv.OptionalStringToPgtype(p.Email()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enroll customer profile", err)
	}
	return nil
}
