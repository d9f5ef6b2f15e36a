package dto

// SettlementLine is one labelled amount of a settlement. Negative amounts are
// credits (deposit applied, discount).
type SettlementLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type SettlementResponse struct {
	Lines          []SettlementLine `json:"lines"`
	RoomCharges    int64            `json:"room_charges"`
	OrderCharges   int64            `json:"order_charges"`
	ExtraCharges   int64            `json:"extra_charges"`
	Subtotal       int64            `json:"subtotal"`
	Discount       int64            `json:"discount"`
	DepositApplied int64            `json:"deposit_applied"`
	// Total is the raw signed result. A negative value means a refund is due,
	// surfaced separately in RefundDue so callers never have to re-derive it.
	Total     int64 `json:"total"`
	RefundDue int64 `json:"refund_due"`
}

type EarlyCheckoutQuote struct {
	NightsUsed    int   `json:"nights_used"`
	NightsBooked  int   `json:"nights_booked"`
	NightsUnused  int   `json:"nights_unused"`
	UnusedCharges int64 `json:"unused_charges"`
	Penalty       int64 `json:"penalty"`
	// Saved is what the guest no longer owes after the penalty.
	Saved int64 `json:"saved"`
}

type CheckOutResponse struct {
	Booking    BookingResponse    `json:"booking"`
	Settlement SettlementResponse `json:"settlement"`
}
