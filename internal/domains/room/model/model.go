package model

import "innkeeper/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomTypeID = "room_type_id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldActive     = "active"
)

// Physical room occupancy, distinct from the per-stay assignment status kept
// on the booking side.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string `db:"id"`
	HotelID    string `db:"hotel_id"`
	RoomTypeID string `db:"room_type_id"`
	Number     string `db:"number"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	Active     bool   `db:"active"`
	model.Metadata
}
