//go:build unit

package commands_test

import (
	"context"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *BookingCommandsSuite) snapshot(status reservation.Status) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:               uuid.New(),
		LocationID:       s.loc.ID,
		ConfirmationCode: "RES-7K3M9QPX",
		Status:           status.String(),
	}
}

func (s *BookingCommandsSuite) TestCancelBooking_ReleasesTable() {
	snap := s.snapshot(reservation.StatusConfirmed)
	gomock.InOrder(
		s.reads.EXPECT().ReservationByCodeForUpdate(gomock.Any(), "RES-7K3M9QPX").Return(snap, nil),
		s.resRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusCancelled, s.clock.Now()).Return(nil),
		s.assignRepo.EXPECT().Release(gomock.Any(), gomock.Any(), snap.ID).Return(nil),
	)

	err := s.useCase().CancelBooking(context.Background(), " res-7k3m9qpx ")

	s.NoError(err)
}

func (s *BookingCommandsSuite) TestCancelBooking_Rejections() {
	tests := []struct {
		name   string
		code   string
		expect func()
		errIs  error
	}{
		{
			name:   "malformed code",
			code:   "   ",
			expect: func() {},
			errIs:  commands.ErrReservationNotFound,
		},
		{
			name: "unknown code",
			code: "RES-NOPE0000",
			expect: func() {
				s.reads.EXPECT().ReservationByCodeForUpdate(gomock.Any(), "RES-NOPE0000").Return(nil, notFound())
			},
			errIs: commands.ErrReservationNotFound,
		},
		{
			name: "already cancelled",
			code: "RES-7K3M9QPX",
			expect: func() {
				s.reads.EXPECT().ReservationByCodeForUpdate(gomock.Any(), "RES-7K3M9QPX").
					Return(s.snapshot(reservation.StatusCancelled), nil)
			},
			errIs: commands.ErrNotCancellable,
		},
		{
			name: "already completed",
			code: "RES-7K3M9QPX",
			expect: func() {
				s.reads.EXPECT().ReservationByCodeForUpdate(gomock.Any(), "RES-7K3M9QPX").
					Return(s.snapshot(reservation.StatusCompleted), nil)
			},
			errIs: commands.ErrNotCancellable,
		},
		{
			name: "status update fails",
			code: "RES-7K3M9QPX",
			expect: func() {
				snap := s.snapshot(reservation.StatusSeated)
				s.reads.EXPECT().ReservationByCodeForUpdate(gomock.Any(), "RES-7K3M9QPX").Return(snap, nil)
				s.resRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusCancelled, gomock.Any()).
					Return(errs.New("deadlock detected"))
			},
			errIs: commands.ErrBookingFailed,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.expect()

			err := s.useCase().CancelBooking(context.Background(), tt.code)

			s.ErrorIs(err, tt.errIs)
		})
	}
}
