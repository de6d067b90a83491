//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"table-booking/internal/domain/loyalty"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	repositorymock "table-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerProfileRepository_FindByPhone(t *testing.T) {
	locationID := uuid.New()
	created := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
	row := sqlc.CustomerProfiles{
		ID:                 uuid.New(),
		LocationID:         locationID,
		Phone:              "+15550100200",
		Name:               "Ada Lovelace",
		Email:              pgconv.OptionalStringToPgtype(""),
		LoyaltyEnrolled:    false,
		PointsBalance:      10,
		LifetimeVisits:     2,
		LifetimeSpendCents: 8400,
		CreatedAt:          pgconv.TimeToPgtype(created),
		UpdatedAt:          pgconv.TimeToPgtype(created),
	}
	params := sqlc.GetCustomerProfileParams{LocationID: locationID, Phone: "+15550100200"}

	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "found"},
		{name: "missing", dbErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "db failure", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := repositorymock.NewMockCustomerProfileQueries(ctrl)
			queries.EXPECT().GetCustomerProfile(gomock.Any(), gomock.Any(), params).Return(row, tt.dbErr)

			got, err := repository.NewCustomerProfileRepository(queries).FindByPhone(context.Background(), nil, locationID, "+15550100200")

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID())
			assert.Empty(t, got.Email())
			assert.False(t, got.Enrolled())
			assert.Equal(t, 10, got.PointsBalance())
			assert.Equal(t, int64(8400), got.LifetimeSpendCents())
			assert.Equal(t, created, got.CreatedAt())
		})
	}
}

func TestCustomerProfileRepository_CreateAndEnroll(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	profile, err := loyalty.NewEnrolledProfile(uuid.New(), "+1 555 010 0200", "Ada", "ada@example.com", now)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockCustomerProfileQueries(ctrl)
	queries.EXPECT().CreateCustomerProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.CreateCustomerProfileParams) (int64, error) {
			assert.Equal(t, "+15550100200", p.Phone)
			assert.True(t, p.LoyaltyEnrolled)
			assert.Equal(t, int32(0), p.PointsBalance)
			assert.Equal(t, "ada@example.com", p.Email.String)
			return 0, nil
		})
	queries.EXPECT().EnrollCustomerProfile(gomock.Any(), gomock.Any(), sqlc.EnrollCustomerProfileParams{
		ID:        profile.ID(),
		Name:      "Ada",
		Email:     pgconv.OptionalStringToPgtype("ada@example.com"),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}).Return(int64(1), nil)
	repo := repository.NewCustomerProfileRepository(queries)

	inserted, err := repo.Create(context.Background(), nil, profile)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.NoError(t, repo.Enroll(context.Background(), nil, profile))
}
