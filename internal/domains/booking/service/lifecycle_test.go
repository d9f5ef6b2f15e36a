package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	guestModel "innkeeper/internal/domains/guest/model"
	guestDto "innkeeper/internal/domains/guest/model/dto"
	paymentModel "innkeeper/internal/domains/payment/model"
	"innkeeper/shared/failure"
)

func TestBookingService_CheckIn(t *testing.T) {
	t.Run("checks one room in and seats its guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})
		allowAsync(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedBooking("b-1"), nil)
		m.assignRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingAssignment("a-1", "b-1", "l-1"), nil)
		m.guestSvc.EXPECT().FindOrCreateByPhone(gomock.Any(), gomock.Any(), "staff-1").
			Return(guestModel.Guest{ID: "g-9"}, nil)

		m.assignRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, updated map[string]any, _ any) error {
				assert.Equal(t, model.RoomStatusCheckedIn, updated[model.AssignmentFieldStatus])
				assert.NotNil(t, updated[model.AssignmentFieldCheckedInAt])

				return nil
			})
		m.lineRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeLine("l-1", "b-1"), nil)
		m.guestLinks.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.guestLinks.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, link model.GuestLink) error {
				assert.Equal(t, "a-1", link.AssignmentID)
				assert.Equal(t, "g-9", link.GuestID)

				return nil
			})

		err := svc.CheckIn(context.Background(), dto.CheckInRequest{
			Guests: []guestDto.GuestInput{guestInput("Alex Walkup")},
		}, "b-1", "a-1", "staff-1")

		assert.NoError(t, err)
	})

	t.Run("room already checked in is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		occupied := pendingAssignment("a-1", "b-1", "l-1")
		occupied.Status = model.RoomStatusCheckedIn

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedBooking("b-1"), nil)
		m.assignRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(occupied, nil)

		err := svc.CheckIn(context.Background(), dto.CheckInRequest{}, "b-1", "a-1", "staff-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("room of another booking is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedBooking("b-1"), nil)
		m.assignRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingAssignment("a-9", "b-other", "l-9"), nil)

		err := svc.CheckIn(context.Background(), dto.CheckInRequest{}, "b-1", "a-9", "staff-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cancelled booking cannot check in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		booking := pendingBooking("b-1")
		booking.Status = model.StatusCancelled

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.CheckIn(context.Background(), dto.CheckInRequest{}, "b-1", "a-1", "staff-1")

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestBookingService_Complete(t *testing.T) {
	t.Run("seals a booking whose rooms all checked out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})
		allowAsync(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedBooking("b-1"), nil)
		m.assignRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated map[string]any, _ any) error {
				assert.Equal(t, model.StatusCompleted, updated[model.FieldStatus])

				return nil
			})

		err := svc.Complete(context.Background(), "b-1", "staff-1")

		assert.NoError(t, err)
	})

	t.Run("rooms still open block completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedBooking("b-1"), nil)
		m.assignRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Complete(context.Background(), "b-1", "staff-1")

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("terminal booking is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		booking := pendingBooking("b-1")
		booking.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.Complete(context.Background(), "b-1", "staff-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("pending booking cannot complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl, &config.Config{})

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("b-1"), nil)

		err := svc.Complete(context.Background(), "b-1", "staff-1")

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestBookingService_CheckOut_SettlesAndCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})
	allowAsync(m)

	booking := confirmedBooking("b-1")
	booking.Deposit = 200_000

	line := model.RoomTypeLine{
		ID: "l-1", BookingID: "b-1", RoomTypeName: "Deluxe", NightlyRate: 500_000,
		StartDate: date("2026-03-10"), EndDate: date("2026-03-12"), TotalRooms: 1,
	}
	assignment := pendingAssignment("a-1", "b-1", "l-1")
	assignment.EndDate = date("2026-03-12")
	assignment.Status = model.RoomStatusCheckedIn

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

	// Settlement inputs.
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomTypeLine{line}, nil)
	m.assignRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomAssignment{assignment}, nil)
	m.orders.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	m.assignRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, updated map[string]any, _ any) error {
			assert.Equal(t, model.RoomStatusCheckedOut, updated[model.AssignmentFieldStatus])

			return nil
		})
	m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, updated map[string]any, _ any) error {
			assert.Equal(t, model.StatusCompleted, updated[model.FieldStatus])
			assert.Equal(t, int64(1_000_000), updated[model.FieldTotal])
			assert.Equal(t, int64(800_000), updated[model.FieldAmountDue])

			return nil
		})
	m.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, payment paymentModel.Payment) error {
			assert.Equal(t, paymentModel.TypeCharge, payment.Type)
			assert.Equal(t, int64(800_000), payment.Amount)

			return nil
		})

	// Reload and assemble for the response.
	closed := booking
	closed.Status = model.StatusCompleted
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
	m.guestSvc.EXPECT().Get(gomock.Any(), "guest-1").Return(guestResponse("guest-1"), nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomTypeLine{line}, nil)
	m.assignRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomAssignment{assignment}, nil)
	m.guestLinks.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.CheckOut(context.Background(), dto.CheckOutRequest{FinalPayment: 800_000, PaymentMethod: "cash"}, "b-1", "staff-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(800_000), res.Settlement.Total)
	assert.Equal(t, int64(200_000), res.Settlement.DepositApplied)
}

func TestBookingService_Cancel_AlreadyCancelledIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	booking := pendingBooking("b-1")
	booking.Status = model.StatusCancelled

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

	err := svc.Cancel(context.Background(), dto.CancelBookingRequest{}, "b-1", "staff-1")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

// Stored quote totals win over the averaged nightly rate, both for assigned
// and unassigned lines, so no rounding remainder leaks out of the folio.
func TestBookingService_Settlement_UsesQuoteTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	booking := confirmedBooking("b-1")

	quoted := model.RoomTypeLine{
		ID: "l-1", BookingID: "b-1", RoomTypeName: "Deluxe", NightlyRate: 583_333,
		StartDate: date("2026-03-10"), EndDate: date("2026-03-13"), TotalRooms: 1,
		TotalPrice: 1_750_000,
	}
	unassigned := model.RoomTypeLine{
		ID: "l-2", BookingID: "b-1", RoomTypeName: "Suite", NightlyRate: 583_333,
		StartDate: date("2026-03-10"), EndDate: date("2026-03-13"), TotalRooms: 2,
		TotalPrice: 1_750_000,
	}
	assignment := pendingAssignment("a-1", "b-1", "l-1")

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomTypeLine{quoted, unassigned}, nil)
	m.assignRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomAssignment{assignment}, nil)
	m.orders.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.Settlement(context.Background(), "b-1")

	assert.NoError(t, err)
	// 1,750,000 for the assigned room plus 2 × 1,750,000 for the unassigned
	// quota; the 583,333 × 3 average would lose a unit per room.
	assert.Equal(t, int64(5_250_000), res.RoomCharges)
}
