package model

import "innkeeper/shared/model"

const (
	TableName  = "fnb_orders"
	EntityName = "fnb_order"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldTotal     = "total"
	FieldVoided    = "voided"
	FieldNote      = "note"
)

// Order is a food-and-beverage order charged to a booking. Voided orders stay
// on file but never reach the settlement.
type Order struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	Total     int64  `db:"total"`
	Voided    bool   `db:"voided"`
	Note      string `db:"note"`
	model.Metadata
}
