package dto

import (
	"time"

	"innkeeper/internal/domains/booking/model"
	guestDto "innkeeper/internal/domains/guest/model/dto"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
)

type RoomAssignmentResponse struct {
	ID           string     `json:"id"`
	RoomID       string     `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	Status       string     `json:"status"`
	GuestIDs     []string   `json:"guest_ids"`
}

func (r *RoomAssignmentResponse) FromModel(mod model.RoomAssignment, guestIDs []string) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.RoomNumber = mod.RoomNumber
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.CheckedInAt = mod.CheckedInAt
	r.CheckedOutAt = mod.CheckedOutAt
	r.Status = mod.Status
	r.GuestIDs = guestIDs
}

type RoomTypeLineResponse struct {
	ID           string                   `json:"id"`
	RoomTypeID   string                   `json:"room_type_id"`
	RoomTypeName string                   `json:"room_type_name"`
	Capacity     int                      `json:"capacity"`
	NightlyRate  int64                    `json:"nightly_rate"`
	TotalPrice   int64                    `json:"total_price"`
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	Nights       int                      `json:"nights"`
	TotalRooms   int                      `json:"total_rooms"`
	Rooms        []RoomAssignmentResponse `json:"rooms"`
}

func (r *RoomTypeLineResponse) FromModel(mod model.RoomTypeLine) {
	r.ID = mod.ID
	r.RoomTypeID = mod.RoomTypeID
	r.RoomTypeName = mod.RoomTypeName
	r.Capacity = mod.Capacity
	r.NightlyRate = mod.NightlyRate
	r.TotalPrice = mod.TotalPrice
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights(mod.StartDate, mod.EndDate)
	r.TotalRooms = mod.TotalRooms
	r.Rooms = []RoomAssignmentResponse{}
}

type CallLogResponse struct {
	ID       string    `json:"id"`
	CalledAt time.Time `json:"called_at"`
	Result   string    `json:"result"`
	Notes    string    `json:"notes"`
	CalledBy string    `json:"called_by"`
}

func (r *CallLogResponse) FromModel(mod model.CallLog) {
	r.ID = mod.ID
	r.CalledAt = mod.CalledAt
	r.Result = mod.Result
	r.Notes = mod.Notes
	r.CalledBy = mod.CreatedBy
}

type BookingResponse struct {
	ID               string                 `json:"id"`
	HotelID          string                 `json:"hotel_id"`
	Status           string                 `json:"status"`
	Guest            guestDto.GuestResponse `json:"guest"`
	Lines            []RoomTypeLineResponse `json:"room_types"`
	Deposit          int64                  `json:"deposit"`
	Discount         int64                  `json:"discount"`
	Total            int64                  `json:"total"`
	AmountDue        int64                  `json:"amount_due"`
	AdditionalCharge int64                  `json:"additional_charge"`
	AdditionalNote   string                 `json:"additional_note,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.Status = mod.Status
	r.Deposit = mod.Deposit
	r.Discount = mod.Discount
	r.Total = mod.Total
	r.AmountDue = mod.AmountDue
	r.AdditionalCharge = mod.AdditionalCharge
	r.AdditionalNote = mod.AdditionalNote
	r.Notes = mod.Notes
	r.Lines = []RoomTypeLineResponse{}
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetCallLogsResponse struct {
	CallLogs  []CallLogResponse `json:"call_logs"`
	TotalData int               `json:"total_data"`
}

func (r *GetCallLogsResponse) FromModels(models []model.CallLog) {
	r.TotalData = len(models)

	r.CallLogs = make([]CallLogResponse, len(models))
	for i, mod := range models {
		r.CallLogs[i].FromModel(mod)
	}
}

type SweepResponse struct {
	CancelledCount int      `json:"cancelled_count"`
	BookingIDs     []string `json:"booking_ids"`
}
