package model

import (
	"time"

	"innkeeper/shared/model"
)

const (
	TableName  = "rate_overrides"
	EntityName = "rate_override"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldDate       = "date"
	FieldRate       = "rate"
	FieldReason     = "reason"
)

// RateOverride replaces the room type's base rate for a single calendar date
// (weekends, holidays, promotions on specific nights).
type RateOverride struct {
	ID         string    `db:"id"`
	RoomTypeID string    `db:"room_type_id"`
	Date       time.Time `db:"date"`
	Rate       int64     `db:"rate"`
	Reason     string    `db:"reason"`
	model.Metadata
}
