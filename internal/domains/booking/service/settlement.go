package service

import (
	"context"
	"fmt"
	"time"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	orderModel "innkeeper/internal/domains/order/model"
	pricingModel "innkeeper/internal/domains/pricing/model"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"

	"github.com/rs/zerolog/log"
)

// settlementInput is everything the folio math needs, detached from storage
// so the computation stays a pure function.
type settlementInput struct {
	Lines        []model.RoomTypeLine
	Assignments  []model.RoomAssignment
	Orders       []orderModel.Order
	ExtraCharges int64
	ExtraNote    string
	Discount     int64
	Deposit      int64
}

// computeSettlement folds the whole folio into labelled lines. Room charges
// follow the actual assignments when rooms were assigned and fall back to the
// line's quota when none were. The discount only ever reduces a positive
// subtotal, and the deposit is applied in full; a total below zero surfaces
// as a refund due rather than being clamped away.
func computeSettlement(in settlementInput) dto.SettlementResponse {
	res := dto.SettlementResponse{Lines: []dto.SettlementLine{}}

	for _, line := range in.Lines {
		charge := int64(0)
		assigned := 0

		for _, assignment := range in.Assignments {
			if assignment.LineID != line.ID || !assignment.Active() {
				continue
			}

			assigned++

			// An assignment covering the whole line charges the stored quote
			// total, so calendar overrides and rounding remainders survive.
			// Shortened or extended stays are re-priced from the nightly rate.
			if assignment.StartDate.Equal(line.StartDate) && assignment.EndDate.Equal(line.EndDate) {
				charge += linePrice(line)
			} else {
				charge += line.NightlyRate * int64(model.Nights(assignment.StartDate, assignment.EndDate))
			}
		}

		if assigned == 0 {
			charge = linePrice(line) * int64(line.TotalRooms)
		}

		res.RoomCharges += charge
		res.Lines = append(res.Lines, dto.SettlementLine{
			Label:  line.RoomTypeName,
			Amount: charge,
		})
	}

	for _, order := range in.Orders {
		if order.Voided {
			continue
		}

		res.OrderCharges += order.Total
	}

	if res.OrderCharges > 0 {
		res.Lines = append(res.Lines, dto.SettlementLine{Label: "food & beverage", Amount: res.OrderCharges})
	}

	if in.ExtraCharges > 0 {
		res.ExtraCharges = in.ExtraCharges

		label := "additional charges"
		if in.ExtraNote != "" {
			label = in.ExtraNote
		}

		res.Lines = append(res.Lines, dto.SettlementLine{Label: label, Amount: in.ExtraCharges})
	}

	res.Subtotal = res.RoomCharges + res.OrderCharges + res.ExtraCharges

	if in.Discount > 0 && res.Subtotal > 0 {
		res.Discount = min(in.Discount, res.Subtotal)
		res.Lines = append(res.Lines, dto.SettlementLine{Label: "discount", Amount: -res.Discount})
	}

	if in.Deposit > 0 {
		res.DepositApplied = in.Deposit
		res.Lines = append(res.Lines, dto.SettlementLine{Label: "deposit applied", Amount: -in.Deposit})
	}

	res.Total = res.Subtotal - res.Discount - res.DepositApplied

	if res.Total < 0 {
		res.RefundDue = -res.Total
		res.Lines = append(res.Lines, dto.SettlementLine{Label: "refund due", Amount: res.RefundDue})
	}

	return res
}

// promotionAmount resolves a promotion against a base amount; percent and
// fixed promotions are mutually exclusive on the model.
func promotionAmount(promo pricingModel.Promotion, base int64) int64 {
	if promo.Percent > 0 {
		return base * int64(promo.Percent) / 100
	}

	return promo.Amount
}

// Settlement previews the folio as it stands, without touching the booking.
func (s *serviceImpl) Settlement(ctx context.Context, id string) (res dto.SettlementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settlement")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	return s.settle(ctx, booking, 0, booking.Discount)
}

func (s *serviceImpl) settle(ctx context.Context, booking model.Booking, extra, discount int64) (res dto.SettlementResponse, err error) {
	lines, err := s.lineRepo.GetAll(ctx, gDto.QueryParams{}, byBookingLineFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type lines")

		return res, fmt.Errorf("failed to get room type lines: %w", err)
	}

	assignments, err := s.assignRepo.GetAll(ctx, gDto.QueryParams{}, byBookingAssignmentFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room assignments")

		return res, fmt.Errorf("failed to get room assignments: %w", err)
	}

	orders, err := s.orderRepo.GetAll(ctx, gDto.QueryParams{}, byBookingOrderFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	return computeSettlement(settlementInput{
		Lines:        lines,
		Assignments:  assignments,
		Orders:       orders,
		ExtraCharges: booking.AdditionalCharge + extra,
		ExtraNote:    booking.AdditionalNote,
		Discount:     discount,
		Deposit:      booking.Deposit,
	}), nil
}

// EarlyCheckoutQuote prices cutting the stay short at actualEnd: the unused
// nights drop off the bill, less the configured penalty percentage.
func (s *serviceImpl) EarlyCheckoutQuote(ctx context.Context, id string, actualEnd time.Time) (res dto.EarlyCheckoutQuote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EarlyCheckoutQuote")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	lines, err := s.lineRepo.GetAll(ctx, gDto.QueryParams{}, byBookingLineFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type lines")

		return res, fmt.Errorf("failed to get room type lines: %w", err)
	}

	for _, line := range lines {
		booked := model.Nights(line.StartDate, line.EndDate)

		end := actualEnd
		if end.After(line.EndDate) {
			end = line.EndDate
		}

		used := model.Nights(line.StartDate, end)
		unused := booked - used

		res.NightsBooked += booked
		res.NightsUsed += used
		res.NightsUnused += unused
		res.UnusedCharges += line.NightlyRate * int64(unused) * int64(line.TotalRooms)
	}

	res.Penalty = res.UnusedCharges * int64(s.cfg.Booking.EarlyCheckoutPenaltyPct) / 100
	res.Saved = res.UnusedCharges - res.Penalty

	return res, nil
}

func byBookingOrderFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: orderModel.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: orderModel.TableName},
		},
	}
}
