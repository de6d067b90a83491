//go:build unit

package commands_test

import (
	"context"
	"time"

	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
	"table-booking/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// keyed returns a request carrying an idempotency key.
func (s *BookingCommandsSuite) keyed() (commands.CreateBookingInput, uuid.UUID) {
	key := uuid.New()
	in := s.input("18:00", 4)
	in.IdempotencyKey = &key
	return in, key
}

// expectExistingKey makes TryInsert lose and hands back record with the caller's hash.
func (s *BookingCommandsSuite) expectExistingKey(key uuid.UUID, record func(hash string) *shared.IdempotencyRecord) {
	var hash string
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ string, h string, _ time.Time) (bool, error) {
			hash = h
			return false, nil
		})
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key).
		DoAndReturn(func(context.Context, uuid.UUID) (*shared.IdempotencyRecord, error) {
			return record(hash), nil
		})
}

func (s *BookingCommandsSuite) TestIdempotency_FirstRequestCompletesKey() {
	in, key := s.keyed()
	expiry := s.clock.Now().Add(s.cfg.IdempotencyTTL)
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, "POST /api/public/bookings", gomock.Any(), expiry).Return(true, nil)
	s.expectPlan(in, "18:00")
	s.expectTableFree(s.fourTop.ID)
	created := s.expectCommit("RES-IDEM0001", s.fourTop.ID)
	s.idemRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, reservationID uuid.UUID) error {
			s.Equal((*created).ID(), reservationID)
			return nil
		})
	s.expectCompletion("RES-IDEM0001")

	result, err := s.useCase().CreateBooking(context.Background(), in)

	s.Require().NoError(err)
	s.False(result.Replayed)
}

func (s *BookingCommandsSuite) TestIdempotency_CompletedKeyReplays() {
	in, key := s.keyed()
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.LocationID = s.loc.ID
		b.Time = "18:00"
	}).BuildView()
	s.expectExistingKey(key, func(hash string) *shared.IdempotencyRecord {
		return &shared.IdempotencyRecord{
			Key:                 key,
			Status:              shared.IdempotencyStatusCompleted,
			RequestHash:         hash,
			ResultReservationID: &view.ID,
			ExpiresAt:           s.clock.Now().Add(time.Hour),
		}
	})
	s.views.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
	s.reads.EXPECT().LocationByID(gomock.Any(), s.loc.ID).Return(s.loc.BuildSnapshot(), nil)
	s.tokens.EXPECT().GenerateManageToken(view.ID, view.ConfirmationCode).Return("manage-token", nil)

	result, err := s.useCase().CreateBooking(context.Background(), in)

	s.Require().NoError(err)
	s.True(result.Replayed)
	s.Equal(view.ID, result.ReservationID)
	s.Equal(view.ConfirmationCode, result.ConfirmationCode)
	s.Equal("T4", result.TableLabel)
	s.Equal("18:00:00", result.Time)
	s.Equal("See you soon!", result.ConfirmationMessage)
}

func (s *BookingCommandsSuite) TestIdempotency_ReplayOfVanishedReservation() {
	in, key := s.keyed()
	id := uuid.New()
	s.expectExistingKey(key, func(hash string) *shared.IdempotencyRecord {
		return &shared.IdempotencyRecord{
			Status:              shared.IdempotencyStatusCompleted,
			RequestHash:         hash,
			ResultReservationID: &id,
			ExpiresAt:           s.clock.Now().Add(time.Hour),
		}
	})
	s.views.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.Mark(errs.New("gone"), queries.ErrReservationNotFound))

	_, err := s.useCase().CreateBooking(context.Background(), in)

	s.ErrorIs(err, commands.ErrBookingFailed)
}

func (s *BookingCommandsSuite) TestIdempotency_Rejections() {
	tests := []struct {
		name   string
		record func(now time.Time, hash string) *shared.IdempotencyRecord
		errIs  error
	}{
		{
			name: "same key different body",
			record: func(now time.Time, _ string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{
					Status:      shared.IdempotencyStatusCompleted,
					RequestHash: "some-other-request",
					ExpiresAt:   now.Add(time.Hour),
				}
			},
			errIs: commands.ErrIdempotencyKeyReused,
		},
		{
			name: "first request still running",
			record: func(now time.Time, hash string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{
					Status:      shared.IdempotencyStatusProcessing,
					RequestHash: hash,
					ExpiresAt:   now.Add(time.Hour),
				}
			},
			errIs: commands.ErrIdempotencyInProgress,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			in, key := s.keyed()
			s.expectExistingKey(key, func(hash string) *shared.IdempotencyRecord {
				return tt.record(s.clock.Now(), hash)
			})

			result, err := s.useCase().CreateBooking(context.Background(), in)

			s.Nil(result)
			s.ErrorIs(err, tt.errIs)
		})
	}
}

func (s *BookingCommandsSuite) TestIdempotency_ExpiredKeyIsReclaimed() {
	in, key := s.keyed()
	s.expectExistingKey(key, func(string) *shared.IdempotencyRecord {
		return &shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: "stale-request",
			ExpiresAt:   s.clock.Now().Add(-time.Minute),
		}
	})
	s.idemRepo.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, gomock.Any(), s.clock.Now().Add(s.cfg.IdempotencyTTL)).Return(true, nil)
	s.expectPlan(in, "18:00")
	s.expectTableFree(s.fourTop.ID)
	s.expectCommit("RES-IDEM0002", s.fourTop.ID)
	s.idemRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).Return(nil)
	s.expectCompletion("RES-IDEM0002")

	result, err := s.useCase().CreateBooking(context.Background(), in)

	s.Require().NoError(err)
	s.Equal("RES-IDEM0002", result.ConfirmationCode)
}

func (s *BookingCommandsSuite) TestIdempotency_ExpiredKeyClaimedElsewhere() {
	in, key := s.keyed()
	s.expectExistingKey(key, func(hash string) *shared.IdempotencyRecord {
		return &shared.IdempotencyRecord{
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: hash,
			ExpiresAt:   s.clock.Now(),
		}
	})
	s.idemRepo.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.useCase().CreateBooking(context.Background(), in)

	s.ErrorIs(err, commands.ErrIdempotencyInProgress)
}

func (s *BookingCommandsSuite) TestIdempotency_KeyReleasedBetweenInsertAndRead() {
	in, key := s.keyed()
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key).Return(nil, notFound())

	_, err := s.useCase().CreateBooking(context.Background(), in)

	s.ErrorIs(err, commands.ErrIdempotencyInProgress)
}

func (s *BookingCommandsSuite) TestIdempotency_FailureReleasesKey() {
	in, key := s.keyed()
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.reads.EXPECT().LocationByID(gomock.Any(), s.loc.ID).Return(nil, notFound())
	s.idemRepo.EXPECT().Release(gomock.Any(), gomock.Any(), key).Return(nil)

	_, err := s.useCase().CreateBooking(context.Background(), in)

	s.ErrorIs(err, commands.ErrLocationNotFound)
}

func (s *BookingCommandsSuite) TestIdempotency_StoreErrorIsInternal() {
	in, key := s.keyed()
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errs.New("connection refused"))

	_, err := s.useCase().CreateBooking(context.Background(), in)

	s.ErrorIs(err, commands.ErrBookingFailed)
}

func (s *BookingCommandsSuite) TestIdempotency_HashIgnoresKeyButNotBody() {
	var hashes []string
	capture := func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ string, h string, _ time.Time) (bool, error) {
		hashes = append(hashes, h)
		return false, errs.New("stop here")
	}
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(capture).Times(3)

	first, _ := s.keyed()
	second, _ := s.keyed()
	changed, _ := s.keyed()
	changed.PartySize = 5

	uc := s.useCase()
	for _, in := range []commands.CreateBookingInput{first, second, changed} {
		_, err := uc.CreateBooking(context.Background(), in)
		s.Require().Error(err)
	}

	s.Require().Len(hashes, 3)
	s.Equal(hashes[0], hashes[1])
	s.NotEqual(hashes[0], hashes[2])
}

func (s *BookingCommandsSuite) TestIdempotency_SagaRetriesCompletion() {
	s.cfg.CommitMode = config.CommitModeSaga
	in, key := s.keyed()
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.expectPlan(in, "18:00")
	s.expectTableFree(s.fourTop.ID)
	s.expectCommit("RES-SAGA0002", s.fourTop.ID)
	gomock.InOrder(
		s.idemRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).Return(errs.New("connection reset")),
		s.idemRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).Return(nil),
	)
	s.idemRepo.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.expectCompletion("RES-SAGA0002")

	result, err := s.useCase().CreateBooking(context.Background(), in)

	s.Require().NoError(err)
	s.Equal("RES-SAGA0002", result.ConfirmationCode)
}

func (s *BookingCommandsSuite) TestIdempotency_SagaReleasesKeyThatCannotComplete() {
	s.cfg.CommitMode = config.CommitModeSaga
	ctx, cancel := context.WithCancel(context.Background())
	in, key := s.keyed()
	s.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.expectPlan(in, "18:00")
	s.expectTableFree(s.fourTop.ID)
	s.expectCommit("RES-SAGA0003", s.fourTop.ID)
	s.idemRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ sqlc.DBTX, _ uuid.UUID, _ uuid.UUID) error {
			cancel()
			s.NoError(ctx.Err())
			return errs.New("connection reset")
		}).Times(3)
	s.idemRepo.EXPECT().Release(gomock.Any(), gomock.Any(), key).
		DoAndReturn(func(ctx context.Context, _ sqlc.DBTX, _ uuid.UUID) error {
			s.NoError(ctx.Err())
			return nil
		})
	s.expectCompletion("RES-SAGA0003")

	result, err := s.useCase().CreateBooking(ctx, in)

	s.Require().NoError(err)
	s.Equal("RES-SAGA0003", result.ConfirmationCode)
}
