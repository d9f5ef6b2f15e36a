package model

import "innkeeper/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldHotelID          = "hotel_id"
	FieldGuestID          = "guest_id"
	FieldStatus           = "status"
	FieldDeposit          = "deposit"
	FieldDiscount         = "discount"
	FieldTotal            = "total"
	FieldAmountDue        = "amount_due"
	FieldAdditionalCharge = "additional_charge"
	FieldAdditionalNote   = "additional_note"
	FieldNotes            = "notes"
)

// Booking status. Cancelled is terminal; a booking is never physically
// deleted, history stays queryable.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID      string `db:"id"`
	HotelID string `db:"hotel_id"`
	GuestID string `db:"guest_id"`
	Status  string `db:"status"`
	// Monetary fields are minor currency units.
	Deposit          int64  `db:"deposit"`
	Discount         int64  `db:"discount"`
	Total            int64  `db:"total"`
	AmountDue        int64  `db:"amount_due"`
	AdditionalCharge int64  `db:"additional_charge"`
	AdditionalNote   string `db:"additional_note"`
	Notes            string `db:"notes"`
	model.Metadata
}

// Terminal reports whether no further lifecycle transition is allowed.
func (b *Booking) Terminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}
