package service

import (
	"context"
	"fmt"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	paymentModel "innkeeper/internal/domains/payment/model"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Confirm moves a pending booking to confirmed. Confirming twice is a no-op
// error so callers notice a stale view.
func (s *serviceImpl) Confirm(ctx context.Context, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.Unprocessable("only a pending booking can be confirmed, booking is " + booking.Status) // nolint:wrapcheck
	}

	if err := s.setStatus(ctx, id, model.StatusConfirmed, user); err != nil {
		return err
	}

	s.publishEvent(ctx, eventBookingConfirmed, id)
	s.invalidateBooking(ctx, id)

	return nil
}

// Complete closes a confirmed booking once every room still on it has been
// checked out. Rooms check out one by one; this is the booking-level seal.
func (s *serviceImpl) Complete(ctx context.Context, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Conflict("booking is already " + booking.Status) // nolint:wrapcheck
	}

	if booking.Status != model.StatusConfirmed {
		return failure.Unprocessable("only a confirmed booking can be completed, booking is " + booking.Status) // nolint:wrapcheck
	}

	open, err := s.assignRepo.Exist(ctx, openAssignmentFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room assignments")

		return fmt.Errorf("failed to check room assignments: %w", err)
	}

	if open {
		return failure.Unprocessable("some rooms have not checked out yet") // nolint:wrapcheck
	}

	if err := s.setStatus(ctx, id, model.StatusCompleted, user); err != nil {
		return err
	}

	s.publishEvent(ctx, eventBookingCompleted, id)
	s.invalidateBooking(ctx, id)

	return nil
}

// openAssignmentFilter matches rooms that are neither cancelled nor checked
// out, the ones still blocking completion.
func openAssignmentFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.AssignmentFieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.AssignmentTableName},
			gDto.Filter{Field: model.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.RoomStatusCancelled, Table: model.AssignmentTableName},
			gDto.Filter{Field: model.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.RoomStatusCheckedOut, Table: model.AssignmentTableName},
		},
	}
}

// Cancel ends a pending or confirmed booking. The refund plus any deducted
// fee can never exceed the deposit held; a refund is written to the payment
// ledger in the same transaction that releases the rooms.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Conflict("booking is already " + booking.Status) // nolint:wrapcheck
	}

	if req.RefundAmount+req.DeductAmount > booking.Deposit {
		return failure.Unprocessable(fmt.Sprintf("refund %d plus deduction %d exceeds the %d deposit held", req.RefundAmount, req.DeductAmount, booking.Deposit)) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.releaseRoomsTx(ctx, tx, id, user); err != nil {
			return err
		}

		updated := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if req.Reason != "" {
			updated[model.FieldAdditionalNote] = req.Reason
		}

		if err := s.repo.UpdateTx(ctx, tx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if req.RefundAmount > 0 {
			refund := paymentModel.Payment{
				ID:        uuid.NewString(),
				BookingID: id,
				Amount:    req.RefundAmount,
				Type:      paymentModel.TypeRefund,
				Note:      req.Reason,
				Metadata:  newMetadata(user),
			}

			if err := s.paymentRepo.InsertTx(ctx, tx, refund); err != nil {
				return fmt.Errorf("failed to record refund: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return err
	}

	s.publishEvent(ctx, eventBookingCancelled, id)
	s.invalidateBooking(ctx, id)

	return nil
}

// CheckIn marks one assigned room as checked in and places the handed-over
// guests in it. Rooms check in independently; the booking itself only has to
// be alive. An early arrival is allowed, the actual time just gets recorded.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest, id, assignmentID, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer check in") // nolint:wrapcheck
	}

	assignment, err := s.loadAssignment(ctx, id, assignmentID)
	if err != nil {
		return err
	}

	if assignment.Status != model.RoomStatusPending {
		return failure.Conflict("room " + assignment.RoomNumber + " is already " + assignment.Status) // nolint:wrapcheck
	}

	when := timezone.Now()

	if req.ActualTime != "" {
		when, err = timezone.Parse(constant.DateFormat, req.ActualTime)
		if err != nil {
			return failure.BadRequestFromString("invalid actual_time: " + req.ActualTime) // nolint:wrapcheck
		}
	}

	guests := make([]string, 0, len(req.Guests))

	for _, input := range req.Guests {
		guest, err := s.guestSvc.FindOrCreateByPhone(ctx, input, user)
		if err != nil {
			return err
		}

		guests = append(guests, guest.ID)
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		updated := map[string]any{
			model.AssignmentFieldStatus:      model.RoomStatusCheckedIn,
			model.AssignmentFieldCheckedInAt: when,
			constant.FieldModifiedAt:         timezone.Now(),
			constant.FieldModifiedBy:         user,
		}

		if err := s.assignRepo.UpdateTx(ctx, tx, updated, shared.FilterByID(assignment.ID, model.AssignmentFieldID, model.AssignmentTableName)); err != nil {
			return fmt.Errorf("failed to check in room: %w", err)
		}

		for _, guestID := range guests {
			if err := s.placeGuestTx(ctx, tx, []model.RoomAssignment{assignment}, guestID, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check in room")

		return err
	}

	s.publishEvent(ctx, eventBookingCheckedIn, id)
	s.invalidateBooking(ctx, id)

	return nil
}

// CheckOut settles the booking: rooms are released, the settlement computed
// against everything on file, and the booking closed as completed. A negative
// settlement reports a refund due unless the request forbids it.
func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest, id, user string) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed {
		return res, failure.Unprocessable("only a confirmed booking can check out, booking is " + booking.Status) // nolint:wrapcheck
	}

	extra := int64(0)
	note := booking.AdditionalNote

	for _, charge := range req.AdditionalCharges {
		extra += charge.Amount

		if note != "" {
			note += "; "
		}

		note += fmt.Sprintf("%s %d", charge.Label, charge.Amount)
	}

	discount := booking.Discount

	if req.DiscountCode != "" {
		promo, err := s.pricingSvc.Promotion(ctx, req.DiscountCode)
		if err != nil {
			return res, err
		}

		discount += promotionAmount(promo, booking.Total)
	}

	settlement, err := s.settle(ctx, booking, extra, discount)
	if err != nil {
		return res, err
	}

	if settlement.Total < 0 && req.RejectNegative {
		return res, failure.Unprocessable(fmt.Sprintf("settlement nets %d, a refund of %d would be due", settlement.Total, settlement.RefundDue)) // nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		updated := map[string]any{
			model.AssignmentFieldStatus:       model.RoomStatusCheckedOut,
			model.AssignmentFieldCheckedOutAt: now,
			constant.FieldModifiedAt:          now,
			constant.FieldModifiedBy:          user,
		}

		if err := s.assignRepo.UpdateTx(ctx, tx, updated, activeByBookingFilter(id)); err != nil {
			return fmt.Errorf("failed to check out rooms: %w", err)
		}

		bookingUpdate := map[string]any{
			model.FieldStatus:           model.StatusCompleted,
			model.FieldDiscount:         discount,
			model.FieldTotal:            settlement.Subtotal,
			model.FieldAmountDue:        settlement.Total,
			model.FieldAdditionalCharge: booking.AdditionalCharge + extra,
			model.FieldAdditionalNote:   note,
			constant.FieldModifiedAt:    now,
			constant.FieldModifiedBy:    user,
		}

		if err := s.repo.UpdateTx(ctx, tx, bookingUpdate, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to complete booking: %w", err)
		}

		if req.FinalPayment > 0 {
			payment := paymentModel.Payment{
				ID:        uuid.NewString(),
				BookingID: id,
				Amount:    req.FinalPayment,
				Type:      paymentModel.TypeCharge,
				Method:    req.PaymentMethod,
				Note:      "checkout payment",
				Metadata:  newMetadata(user),
			}

			if err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
				return fmt.Errorf("failed to record checkout payment: %w", err)
			}
		}

		if settlement.RefundDue > 0 {
			refund := paymentModel.Payment{
				ID:        uuid.NewString(),
				BookingID: id,
				Amount:    settlement.RefundDue,
				Type:      paymentModel.TypeRefund,
				Note:      "checkout refund",
				Metadata:  newMetadata(user),
			}

			if err := s.paymentRepo.InsertTx(ctx, tx, refund); err != nil {
				return fmt.Errorf("failed to record checkout refund: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		return res, err
	}

	s.publishEvent(ctx, eventBookingCheckedOut, id)
	s.invalidateBooking(ctx, id)

	booking, err = s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.Booking, err = s.assemble(ctx, booking)
	if err != nil {
		return res, err
	}

	res.Settlement = settlement

	return res, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status, user string) error {
	updated := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

// releaseRoomsTx cancels every non-cancelled assignment so the rooms become
// bookable again for the freed dates.
func (s *serviceImpl) releaseRoomsTx(ctx context.Context, tx *sqlx.Tx, bookingID, user string) error {
	updated := map[string]any{
		model.AssignmentFieldStatus: model.RoomStatusCancelled,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if err := s.assignRepo.UpdateTx(ctx, tx, updated, activeByBookingFilter(bookingID)); err != nil {
		return fmt.Errorf("failed to release rooms: %w", err)
	}

	return nil
}

// placeGuestTx puts a walk-up guest in the first room that has capacity left.
func (s *serviceImpl) placeGuestTx(ctx context.Context, tx *sqlx.Tx, assignments []model.RoomAssignment, guestID, user string) error {
	for _, assignment := range assignments {
		line, err := s.lineRepo.Get(ctx, shared.FilterByID(assignment.LineID, model.LineFieldID, model.LineTableName))
		if err != nil {
			return fmt.Errorf("failed to get room type line: %w", err)
		}

		occupants, err := s.guestLinkRepo.Count(ctx, byAssignmentGuestFilter(assignment.ID))
		if err != nil {
			return fmt.Errorf("failed to count room guests: %w", err)
		}

		if occupants >= line.Capacity {
			continue
		}

		link := model.GuestLink{
			ID:           uuid.NewString(),
			AssignmentID: assignment.ID,
			GuestID:      guestID,
			Metadata:     newMetadata(user),
		}

		if err := s.guestLinkRepo.InsertTx(ctx, tx, link); err != nil {
			return fmt.Errorf("failed to place guest in room: %w", err)
		}

		return nil
	}

	return failure.Unprocessable("no room has capacity left for an extra guest") // nolint:wrapcheck
}

func activeByBookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.AssignmentFieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.AssignmentTableName},
			gDto.Filter{Field: model.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.RoomStatusCancelled, Table: model.AssignmentTableName},
		},
	}
}
