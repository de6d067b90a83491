//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "+1 (555) 010-0200", want: "+15550100200"},
		{in: "555.010.0200", want: "5550100200"},
		{in: "  +44 20 7946 0958 ", want: "+442079460958"},
		{in: "call me", err: loyalty.ErrEmptyPhone},
		{in: "", err: loyalty.ErrEmptyPhone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := loyalty.NormalizePhone(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEnrolledProfile(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	p, err := loyalty.NewEnrolledProfile(uuid.New(), "+1 555 010 0200", " Ada ", "ada@example.com", now)
	require.NoError(t, err)
	assert.True(t, p.Enrolled())
	assert.Equal(t, "+15550100200", p.Phone())
	assert.Equal(t, "Ada", p.Name())
	assert.Zero(t, p.PointsBalance())
	assert.Zero(t, p.LifetimeVisits())
	assert.Zero(t, p.LifetimeSpendCents())

	_, err = loyalty.NewEnrolledProfile(uuid.Nil, "+1 555 010 0200", "Ada", "", now)
	assert.ErrorIs(t, err, loyalty.ErrMissingLocation)
}

func TestProfile_Enroll(t *testing.T) {
	created := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.AddDate(1, 0, 0)

	t.Run("keeps stored contact when the new one is blank", func(t *testing.T) {
		p := loyalty.ReconstructProfile(uuid.New(), uuid.New(), "+15550100200", "Ada", "old@example.com", false, 40, 3, 12000, created, created)

		require.NoError(t, p.Enroll("", "  ", now))
		assert.True(t, p.Enrolled())
		assert.Equal(t, "Ada", p.Name())
		assert.Equal(t, "old@example.com", p.Email())
		assert.Equal(t, 40, p.PointsBalance())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("overwrites with non-blank values", func(t *testing.T) {
		p := loyalty.ReconstructProfile(uuid.New(), uuid.New(), "+15550100200", "Ada", "", false, 0, 0, 0, created, created)

		require.NoError(t, p.Enroll("Ada Lovelace", "ada@example.com", now))
		assert.Equal(t, "Ada Lovelace", p.Name())
		assert.Equal(t, "ada@example.com", p.Email())
	})

	t.Run("already enrolled", func(t *testing.T) {
		p := loyalty.ReconstructProfile(uuid.New(), uuid.New(), "+15550100200", "Ada", "", true, 0, 0, 0, created, created)

		assert.ErrorIs(t, p.Enroll("Ada", "", now), loyalty.ErrAlreadyEnrolled)
		assert.Equal(t, created, p.UpdatedAt())
	})
}
