package model

import (
	"time"

	"innkeeper/shared/model"
)

const (
	CallLogTableName  = "call_logs"
	CallLogEntityName = "call_log"

	CallLogFieldID        = "id"
	CallLogFieldBookingID = "booking_id"
	CallLogFieldCalledAt  = "called_at"
	CallLogFieldResult    = "result"
	CallLogFieldNotes     = "notes"
)

const (
	CallResultNoAnswer  = "no_answer"
	CallResultConfirmed = "confirmed"
	CallResultCancelled = "cancelled"
)

// CallLog is one outbound confirmation-call attempt. Logs are append-only;
// the staff identity lands in CreatedBy.
type CallLog struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	CalledAt  time.Time `db:"called_at"`
	Result    string    `db:"result"`
	Notes     string    `db:"notes"`
	model.Metadata
}
