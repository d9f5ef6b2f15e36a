package service

import (
	"context"
	"fmt"
	"time"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"

	"github.com/rs/zerolog/log"
)

// CancelNoShows cancels every pending booking whose stay started before the
// cutoff and was never confirmed. Deposits stay on the booking; any refund is
// a separate staff decision.
func (s *serviceImpl) CancelNoShows(ctx context.Context, cutoff time.Time, user string) (res dto.SweepResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelNoShows")
	defer scope.End()
	defer scope.TraceIfError(err)

	pending, err := s.repo.GetAll(ctx, gDto.QueryParams{}, byStatusFilter(model.StatusPending))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending bookings")

		return res, fmt.Errorf("failed to get pending bookings: %w", err)
	}

	res.BookingIDs = []string{}

	for _, booking := range pending {
		lines, err := s.lineRepo.GetAll(ctx, gDto.QueryParams{}, byBookingLineFilter(booking.ID))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room type lines")

			return res, fmt.Errorf("failed to get room type lines: %w", err)
		}

		if len(lines) == 0 || !earliestStart(lines).Before(cutoff) {
			continue
		}

		if err := s.Cancel(ctx, dto.CancelBookingRequest{Reason: "no-show"}, booking.ID, user); err != nil {
			// One stuck booking must not stop the sweep.
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to cancel no-show booking")

			continue
		}

		res.BookingIDs = append(res.BookingIDs, booking.ID)
	}

	res.CancelledCount = len(res.BookingIDs)

	return res, nil
}

func earliestStart(lines []model.RoomTypeLine) time.Time {
	earliest := lines[0].StartDate

	for _, line := range lines[1:] {
		if line.StartDate.Before(earliest) {
			earliest = line.StartDate
		}
	}

	return earliest
}

func byStatusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName},
		},
	}
}
