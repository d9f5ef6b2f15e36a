package model

import (
	"time"

	"innkeeper/shared/model"
)

const (
	LineTableName  = "booking_room_types"
	LineEntityName = "booking_room_type"

	LineFieldID           = "id"
	LineFieldBookingID    = "booking_id"
	LineFieldRoomTypeID   = "room_type_id"
	LineFieldRoomTypeName = "room_type_name"
	LineFieldCapacity     = "capacity"
	LineFieldNightlyRate  = "nightly_rate"
	LineFieldStartDate    = "start_date"
	LineFieldEndDate      = "end_date"
	LineFieldTotalRooms   = "total_rooms"
	LineFieldTotalPrice   = "total_price"
)

// RoomTypeLine is one requested room type within a booking: N rooms of one
// type for a date range at a quoted nightly rate. The room type name is
// denormalized so history survives catalog edits.
type RoomTypeLine struct {
	ID           string    `db:"id"`
	BookingID    string    `db:"booking_id"`
	RoomTypeID   string    `db:"room_type_id"`
	RoomTypeName string    `db:"room_type_name"`
	Capacity     int       `db:"capacity"`
	NightlyRate  int64     `db:"nightly_rate"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	TotalRooms   int       `db:"total_rooms"`
	TotalPrice   int64     `db:"total_price"`
	model.Metadata
}

// Nights counts the nights of a half-open [start, end) stay.
func Nights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}

	return int(end.Sub(start).Hours() / 24)
}

// Overlaps is the single overlap predicate used everywhere: two half-open
// intervals share at least one instant iff start < otherEnd && end > otherStart.
// Back-to-back stays (end == next start) do not overlap.
func Overlaps(start, end, otherStart, otherEnd time.Time) bool {
	return start.Before(otherEnd) && end.After(otherStart)
}
