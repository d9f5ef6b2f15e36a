package dto

import (
	"time"

	"innkeeper/internal/domains/booking/model"
	guestDto "innkeeper/internal/domains/guest/model/dto"
	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
)

// ParseDate parses a date-only wire value. Stay dates are date-granular; the
// half-open [start, end) convention means the end date is the checkout day.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD: " + value) // nolint:wrapcheck
	}

	return parsed, nil
}

type RoomInput struct {
	RoomID    string   `json:"room_id"    validate:"required"`
	StartDate string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
	GuestIDs  []string `json:"guest_ids"  validate:"omitempty"`
}

type RoomTypeLineInput struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	// NightlyRate overrides the pricing quote when set; nil means "quote it".
	NightlyRate *int64      `json:"nightly_rate" validate:"omitempty,min=0"`
	Capacity    int         `json:"capacity"     validate:"omitempty,min=0"`
	TotalRooms  int         `json:"total_rooms"  validate:"required,min=1"`
	StartDate   string      `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     string      `json:"end_date"     validate:"required,datetime=2006-01-02"`
	Rooms       []RoomInput `json:"rooms"        validate:"omitempty,dive"`
}

// DateRange validates and parses the line's stay interval.
func (l *RoomTypeLineInput) DateRange() (start, end time.Time, err error) {
	start, err = ParseDate(l.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = ParseDate(l.EndDate)
	if err != nil {
		return start, end, err
	}

	if !end.After(start) {
		return start, end, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	if len(l.Rooms) > l.TotalRooms {
		return start, end, failure.BadRequestFromString("more rooms requested than the line's room count") // nolint:wrapcheck
	}

	return start, end, nil
}

type CreateBookingRequest struct {
	HotelID  string              `json:"hotel_id"   validate:"required"`
	Guest    guestDto.GuestInput `json:"guest"      validate:"required"`
	Lines    []RoomTypeLineInput `json:"room_types" validate:"required,min=1,dive"`
	Deposit  int64               `json:"deposit"    validate:"omitempty,min=0"`
	Discount int64               `json:"discount"   validate:"omitempty,min=0"`
	Notes    string              `json:"notes"      validate:"omitempty"`
}

// UpdateBookingRequest mirrors create: the full room-type line set is
// replaced, guest and financial fields overwritten.
type UpdateBookingRequest struct {
	Guest    *guestDto.GuestInput `json:"guest"      validate:"omitempty"`
	Lines    []RoomTypeLineInput  `json:"room_types" validate:"required,min=1,dive"`
	Deposit  *int64               `json:"deposit"    validate:"omitempty,min=0"`
	Discount *int64               `json:"discount"   validate:"omitempty,min=0"`
	Notes    *string              `json:"notes"      validate:"omitempty"`
}

type CancelBookingRequest struct {
	RefundAmount int64  `json:"refund_amount" validate:"omitempty,min=0"`
	DeductAmount int64  `json:"deduct_amount" validate:"omitempty,min=0"`
	Reason       string `json:"reason"        validate:"omitempty"`
}

type AddRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type CheckInRequest struct {
	Guests []guestDto.GuestInput `json:"guests"      validate:"omitempty,dive"`
	// ActualTime defaults to now; an earlier time than the scheduled start is
	// flagged for settlement, never blocked.
	ActualTime string `json:"actual_time" validate:"omitempty"`
}

type ChargeInput struct {
	Label  string `json:"label"  validate:"required,max=100"`
	Amount int64  `json:"amount" validate:"required,min=0"`
}

type CheckOutRequest struct {
	DiscountCode      string        `json:"discount_code"      validate:"omitempty,max=32"`
	AdditionalCharges []ChargeInput `json:"additional_charges" validate:"omitempty,dive"`
	FinalPayment      int64         `json:"final_payment"      validate:"omitempty,min=0"`
	PaymentMethod     string        `json:"payment_method"     validate:"omitempty,max=32"`
	// RejectNegative makes a settlement that nets below zero fail instead of
	// reporting a refund due.
	RejectNegative bool `json:"reject_negative" validate:"omitempty"`
}

type ChangeRoomRequest struct {
	NewRoomID string `json:"new_room_id" validate:"required"`
}

type ExtendStayRequest struct {
	NewEndDate   string `json:"new_end_date"  validate:"required,datetime=2006-01-02"`
	DiscountCode string `json:"discount_code" validate:"omitempty,max=32"`
}

type MoveGuestRequest struct {
	GuestID         string `json:"guest_id"          validate:"required"`
	FromBookingRoom string `json:"from_booking_room" validate:"required"`
	ToBookingRoom   string `json:"to_booking_room"   validate:"required"`
}

type SwapGuestsRequest struct {
	FirstGuestID  string `json:"first_guest_id"  validate:"required"`
	SecondGuestID string `json:"second_guest_id" validate:"required"`
}

type AddCallLogRequest struct {
	CalledAt string `json:"called_at" validate:"omitempty"`
	Result   string `json:"result"    validate:"required,oneof=no_answer confirmed cancelled"`
	Notes    string `json:"notes"     validate:"omitempty"`
}

type NoShowSweepRequest struct {
	// Cutoff defaults to now minus the configured grace period.
	Cutoff string `json:"cutoff" validate:"omitempty"`
}

// ValidResult reports whether a call result value is one of the known ones.
func ValidResult(result string) bool {
	switch result {
	case model.CallResultNoAnswer, model.CallResultConfirmed, model.CallResultCancelled:
		return true
	default:
		return false
	}
}
