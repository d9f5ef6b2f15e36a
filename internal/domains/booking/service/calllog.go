package service

import (
	"context"
	"fmt"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AddCallLog records one confirmation-call attempt against a pending booking.
// A confirmed result confirms the booking, a cancelled result cancels it with
// the deposit retained; no_answer just logs the attempt.
func (s *serviceImpl) AddCallLog(ctx context.Context, req dto.AddCallLogRequest, bookingID, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCallLog")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !dto.ValidResult(req.Result) {
		return failure.BadRequestFromString("unknown call result: " + req.Result) // nolint:wrapcheck
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.Unprocessable("confirmation calls only apply to a pending booking, booking is " + booking.Status) // nolint:wrapcheck
	}

	calledAt := timezone.Now()

	if req.CalledAt != "" {
		calledAt, err = timezone.Parse(constant.DateFormat, req.CalledAt)
		if err != nil {
			return failure.BadRequestFromString("invalid called_at: " + req.CalledAt) // nolint:wrapcheck
		}
	}

	entry := model.CallLog{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		CalledAt:  calledAt,
		Result:    req.Result,
		Notes:     req.Notes,
		Metadata:  newMetadata(user),
	}

	if err := s.callLogRepo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to insert call log")

		return fmt.Errorf("failed to insert call log: %w", err)
	}

	switch req.Result {
	case model.CallResultConfirmed:
		return s.Confirm(ctx, bookingID, user)
	case model.CallResultCancelled:
		return s.Cancel(ctx, dto.CancelBookingRequest{Reason: "cancelled by guest over the phone"}, bookingID, user)
	default:
		return nil
	}
}

// GetCallLogs lists the booking's call attempts, newest first.
func (s *serviceImpl) GetCallLogs(ctx context.Context, bookingID string) (res dto.GetCallLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCallLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := s.loadBooking(ctx, bookingID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  model.CallLogFieldCalledAt,
		SortDir: gDto.SortDirDesc,
	}

	logs, err := s.callLogRepo.GetAll(ctx, params, byBookingCallLogFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get call logs")

		return res, fmt.Errorf("failed to get call logs: %w", err)
	}

	res.FromModels(logs)

	return res, nil
}

func byBookingCallLogFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.CallLogFieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.CallLogTableName},
		},
	}
}
