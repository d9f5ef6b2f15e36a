package model

import "innkeeper/shared/model"

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	RoomTypeFieldID       = "id"
	RoomTypeFieldHotelID  = "hotel_id"
	RoomTypeFieldName     = "name"
	RoomTypeFieldCapacity = "capacity"
	RoomTypeFieldBaseRate = "base_rate"
	RoomTypeFieldActive   = "active"
)

type RoomType struct {
	ID       string `db:"id"`
	HotelID  string `db:"hotel_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	// BaseRate is the nightly rate in minor currency units, before any
	// calendar override from the rate calendar.
	BaseRate int64 `db:"base_rate"`
	Active   bool  `db:"active"`
	model.Metadata
}
