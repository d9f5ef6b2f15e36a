package model

import (
	"time"

	"innkeeper/shared/model"
)

const (
	AssignmentTableName  = "booking_rooms"
	AssignmentEntityName = "booking_room"

	AssignmentFieldID           = "id"
	AssignmentFieldLineID       = "line_id"
	AssignmentFieldBookingID    = "booking_id"
	AssignmentFieldRoomID       = "room_id"
	AssignmentFieldRoomNumber   = "room_number"
	AssignmentFieldStartDate    = "start_date"
	AssignmentFieldEndDate      = "end_date"
	AssignmentFieldCheckedInAt  = "checked_in_at"
	AssignmentFieldCheckedOutAt = "checked_out_at"
	AssignmentFieldStatus       = "status"
)

// Per-room stay status, independent of sibling rooms in the same booking.
const (
	RoomStatusPending    = "pending"
	RoomStatusCheckedIn  = "checked_in"
	RoomStatusCheckedOut = "checked_out"
	RoomStatusCancelled  = "cancelled"
)

// RoomAssignment binds one physical room to a room-type line for a date range
// that may be narrower than the line's. Rows with a non-cancelled status are
// the ones that count for overlap and quota checks.
type RoomAssignment struct {
	ID           string     `db:"id"`
	LineID       string     `db:"line_id"`
	BookingID    string     `db:"booking_id"`
	RoomID       string     `db:"room_id"`
	RoomNumber   string     `db:"room_number"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	CheckedInAt  *time.Time `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	Status       string     `db:"status"`
	model.Metadata
}

// Active reports whether the assignment still occupies its room.
func (a *RoomAssignment) Active() bool {
	return a.Status != RoomStatusCancelled
}
