package service

import (
	"context"
	"fmt"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/repository"
	roomModel "innkeeper/internal/domains/room/model"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// AddRoom assigns one more concrete room to a room-type line, within the
// line's quota and free of overlapping stays.
func (s *serviceImpl) AddRoom(ctx context.Context, req dto.AddRoomRequest, bookingID, lineID, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be edited") // nolint:wrapcheck
	}

	line, err := s.loadLine(ctx, bookingID, lineID)
	if err != nil {
		return err
	}

	assignment, err := s.buildAssignment(ctx, line, dto.RoomInput{RoomID: req.RoomID}, user)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return s.allocateTx(ctx, tx, assignment)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add room to booking")

		return err
	}

	s.invalidateBooking(ctx, bookingID)

	return nil
}

// ChangeRoom moves an assignment to another room of the same type, keeping
// its dates and guests. The target room is locked and overlap-checked the
// same way a fresh allocation is.
func (s *serviceImpl) ChangeRoom(ctx context.Context, req dto.ChangeRoomRequest, bookingID, assignmentID, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be edited") // nolint:wrapcheck
	}

	assignment, err := s.loadAssignment(ctx, bookingID, assignmentID)
	if err != nil {
		return err
	}

	if assignment.Status == model.RoomStatusCheckedOut {
		return failure.Unprocessable("the room has already been checked out") // nolint:wrapcheck
	}

	line, err := s.loadLine(ctx, bookingID, assignment.LineID)
	if err != nil {
		return err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.NewRoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return failure.BadRequestFromString("room does not exist: " + req.NewRoomID) // nolint:wrapcheck
	}

	if room.RoomTypeID != line.RoomTypeID {
		return failure.BadRequestFromString("room " + room.Number + " is not a " + line.RoomTypeName) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.roomRepo.LockTx(ctx, tx, room.ID); err != nil {
			return err
		}

		conflict, err := s.assignRepo.ExistTx(ctx, tx, repository.OverlapFilter(room.ID, assignment.StartDate, assignment.EndDate, assignment.ID))
		if err != nil {
			return fmt.Errorf("failed to check for overlapping stays: %w", err)
		}

		if conflict {
			return failure.Conflict("room " + room.Number + " is already booked for those dates") // nolint:wrapcheck
		}

		updated := map[string]any{
			model.AssignmentFieldRoomID:     room.ID,
			model.AssignmentFieldRoomNumber: room.Number,
			constant.FieldModifiedAt:        timezone.Now(),
			constant.FieldModifiedBy:        user,
		}

		if err := s.assignRepo.UpdateTx(ctx, tx, updated, shared.FilterByID(assignment.ID, model.AssignmentFieldID, model.AssignmentTableName)); err != nil {
			return fmt.Errorf("failed to move assignment to the new room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to change room")

		return err
	}

	s.invalidateBooking(ctx, bookingID)

	return nil
}

// ExtendStay pushes one assigned room's stay out to a later end date. The
// added nights are re-checked for conflicts on that room and priced through
// the rate calendar; the parent line's range stretches with its longest room.
func (s *serviceImpl) ExtendStay(ctx context.Context, req dto.ExtendStayRequest, bookingID, assignmentID, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtendStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be extended") // nolint:wrapcheck
	}

	assignment, err := s.loadAssignment(ctx, bookingID, assignmentID)
	if err != nil {
		return err
	}

	if assignment.Status == model.RoomStatusCheckedOut {
		return failure.Unprocessable("room " + assignment.RoomNumber + " has already checked out") // nolint:wrapcheck
	}

	newEnd, err := dto.ParseDate(req.NewEndDate)
	if err != nil {
		return err
	}

	if !newEnd.After(assignment.EndDate) {
		return failure.BadRequestFromString("new end date must be after " + timezone.Format(assignment.EndDate, constant.DateOnlyFormat)) // nolint:wrapcheck
	}

	line, err := s.loadLine(ctx, bookingID, assignment.LineID)
	if err != nil {
		return err
	}

	quote, err := s.pricingSvc.Quote(ctx, line.RoomTypeID, assignment.EndDate, newEnd)
	if err != nil {
		return err
	}

	added := quote.Total

	var promoDiscount int64

	if req.DiscountCode != "" {
		promo, err := s.pricingSvc.Promotion(ctx, req.DiscountCode)
		if err != nil {
			return err
		}

		promoDiscount = promotionAmount(promo, added)
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.roomRepo.LockTx(ctx, tx, assignment.RoomID); err != nil {
			return err
		}

		// Only the added nights can conflict, the current stay already holds
		// the room.
		conflict, err := s.assignRepo.ExistTx(ctx, tx, repository.OverlapFilter(assignment.RoomID, assignment.EndDate, newEnd, assignment.ID))
		if err != nil {
			return fmt.Errorf("failed to check for overlapping stays: %w", err)
		}

		if conflict {
			return failure.Conflict("room " + assignment.RoomNumber + " is already booked past " + timezone.Format(assignment.EndDate, constant.DateOnlyFormat)) // nolint:wrapcheck
		}

		updated := map[string]any{
			model.AssignmentFieldEndDate: newEnd,
			constant.FieldModifiedAt:     timezone.Now(),
			constant.FieldModifiedBy:     user,
		}

		if err := s.assignRepo.UpdateTx(ctx, tx, updated, shared.FilterByID(assignment.ID, model.AssignmentFieldID, model.AssignmentTableName)); err != nil {
			return fmt.Errorf("failed to extend room assignment: %w", err)
		}

		if newEnd.After(line.EndDate) {
			lineUpdate := map[string]any{
				model.LineFieldEndDate:    newEnd,
				model.LineFieldTotalPrice: line.TotalPrice + added,
				constant.FieldModifiedAt:  timezone.Now(),
				constant.FieldModifiedBy:  user,
			}

			if err := s.lineRepo.UpdateTx(ctx, tx, lineUpdate, shared.FilterByID(line.ID, model.LineFieldID, model.LineTableName)); err != nil {
				return fmt.Errorf("failed to extend room type line: %w", err)
			}
		}

		bookingUpdate := map[string]any{
			model.FieldTotal:         booking.Total + added,
			model.FieldDiscount:      booking.Discount + promoDiscount,
			model.FieldAmountDue:     booking.AmountDue + added - promoDiscount,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, bookingUpdate, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking totals: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to extend stay")

		return err
	}

	s.publishEvent(ctx, eventBookingExtended, bookingID)
	s.invalidateBooking(ctx, bookingID)

	return nil
}

// MoveGuest relocates one guest between two assigned rooms of the booking.
func (s *serviceImpl) MoveGuest(ctx context.Context, req dto.MoveGuestRequest, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MoveGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be edited") // nolint:wrapcheck
	}

	if req.FromBookingRoom == req.ToBookingRoom {
		return failure.BadRequestFromString("source and target room are the same") // nolint:wrapcheck
	}

	target, err := s.loadAssignment(ctx, id, req.ToBookingRoom)
	if err != nil {
		return err
	}

	// The source must be one of this booking's rooms too, or any booking's
	// guest could be pulled across by id.
	if _, err := s.loadAssignment(ctx, id, req.FromBookingRoom); err != nil {
		return err
	}

	link, err := s.guestLinkRepo.Get(ctx, guestInRoomFilter(req.GuestID, req.FromBookingRoom))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room guest")

		return fmt.Errorf("failed to get room guest: %w", err)
	}

	if link.ID == constant.Empty {
		return failure.NotFound("guest in the source room") // nolint:wrapcheck
	}

	line, err := s.loadLine(ctx, id, target.LineID)
	if err != nil {
		return err
	}

	occupants, err := s.guestLinkRepo.Count(ctx, byAssignmentGuestFilter(target.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to count room guests")

		return fmt.Errorf("failed to count room guests: %w", err)
	}

	if occupants >= line.Capacity {
		return failure.Unprocessable(fmt.Sprintf("room %s is full, capacity %d", target.RoomNumber, line.Capacity)) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.guestLinkRepo.DeleteTx(ctx, tx, shared.FilterByID(link.ID, model.GuestLinkFieldID, model.GuestLinkTableName)); err != nil {
			return fmt.Errorf("failed to remove guest from the source room: %w", err)
		}

		moved := model.GuestLink{
			ID:           uuid.NewString(),
			AssignmentID: target.ID,
			GuestID:      req.GuestID,
			Metadata:     newMetadata(user),
		}

		if err := s.guestLinkRepo.InsertTx(ctx, tx, moved); err != nil {
			return fmt.Errorf("failed to place guest in the target room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to move guest")

		return err
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// SwapGuests exchanges the rooms of two guests on the booking. Occupancy per
// room is unchanged, so no capacity check is needed.
func (s *serviceImpl) SwapGuests(ctx context.Context, req dto.SwapGuestsRequest, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SwapGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be edited") // nolint:wrapcheck
	}

	first, err := s.findGuestLink(ctx, id, req.FirstGuestID)
	if err != nil {
		return err
	}

	second, err := s.findGuestLink(ctx, id, req.SecondGuestID)
	if err != nil {
		return err
	}

	if first.AssignmentID == second.AssignmentID {
		return failure.BadRequestFromString("both guests are already in the same room") // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, link := range []model.GuestLink{first, second} {
			if err := s.guestLinkRepo.DeleteTx(ctx, tx, shared.FilterByID(link.ID, model.GuestLinkFieldID, model.GuestLinkTableName)); err != nil {
				return fmt.Errorf("failed to remove guest from room: %w", err)
			}
		}

		swapped := []model.GuestLink{
			{ID: uuid.NewString(), AssignmentID: second.AssignmentID, GuestID: first.GuestID, Metadata: newMetadata(user)},
			{ID: uuid.NewString(), AssignmentID: first.AssignmentID, GuestID: second.GuestID, Metadata: newMetadata(user)},
		}

		for _, link := range swapped {
			if err := s.guestLinkRepo.InsertTx(ctx, tx, link); err != nil {
				return fmt.Errorf("failed to place guest in room: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to swap guests")

		return err
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) loadLine(ctx context.Context, bookingID, lineID string) (model.RoomTypeLine, error) {
	line, err := s.lineRepo.Get(ctx, shared.FilterByID(lineID, model.LineFieldID, model.LineTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type line")

		return line, fmt.Errorf("failed to get room type line: %w", err)
	}

	if line.ID == constant.Empty || line.BookingID != bookingID {
		return line, failure.NotFound("room type line") // nolint:wrapcheck
	}

	return line, nil
}

func (s *serviceImpl) loadAssignment(ctx context.Context, bookingID, assignmentID string) (model.RoomAssignment, error) {
	assignment, err := s.assignRepo.Get(ctx, shared.FilterByID(assignmentID, model.AssignmentFieldID, model.AssignmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room assignment")

		return assignment, fmt.Errorf("failed to get room assignment: %w", err)
	}

	if assignment.ID == constant.Empty || assignment.BookingID != bookingID {
		return assignment, failure.NotFound("room assignment") // nolint:wrapcheck
	}

	if !assignment.Active() {
		return assignment, failure.Unprocessable("the room assignment has been cancelled") // nolint:wrapcheck
	}

	return assignment, nil
}

// findGuestLink locates the room a guest occupies within one booking.
func (s *serviceImpl) findGuestLink(ctx context.Context, bookingID, guestID string) (res model.GuestLink, err error) {
	assignments, err := s.assignRepo.GetAll(ctx, gDto.QueryParams{}, activeByBookingFilter(bookingID), model.AssignmentFieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room assignments")

		return res, fmt.Errorf("failed to get room assignments: %w", err)
	}

	ids := make([]string, len(assignments))
	for i, assignment := range assignments {
		ids[i] = assignment.ID
	}

	if len(ids) == 0 {
		return res, failure.NotFound("guest on this booking") // nolint:wrapcheck
	}

	link, err := s.guestLinkRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.GuestLinkFieldGuestID, Operator: gDto.FilterOperatorEq, Value: guestID, Table: model.GuestLinkTableName},
			gDto.Filter{Field: model.GuestLinkFieldAssignmentID, Operator: gDto.FilterOperatorIn, Value: ids, Table: model.GuestLinkTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room guest")

		return res, fmt.Errorf("failed to get room guest: %w", err)
	}

	if link.ID == constant.Empty {
		return res, failure.NotFound("guest on this booking") // nolint:wrapcheck
	}

	return link, nil
}

func guestInRoomFilter(guestID, assignmentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.GuestLinkFieldGuestID, Operator: gDto.FilterOperatorEq, Value: guestID, Table: model.GuestLinkTableName},
			gDto.Filter{Field: model.GuestLinkFieldAssignmentID, Operator: gDto.FilterOperatorEq, Value: assignmentID, Table: model.GuestLinkTableName},
		},
	}
}
