package model

import "innkeeper/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldType      = "type"
	FieldMethod    = "method"
	FieldNote      = "note"
)

const (
	TypeDeposit = "deposit"
	TypeCharge  = "charge"
	TypeRefund  = "refund"
)

// Payment rows are append-only: the ledger is never updated or deleted, a
// correction is a new row.
type Payment struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	Amount    int64  `db:"amount"`
	Type      string `db:"type"`
	Method    string `db:"method"`
	Note      string `db:"note"`
	model.Metadata
}
