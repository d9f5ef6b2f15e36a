package model

import (
	"time"

	"innkeeper/shared/model"
)

const (
	PromotionTableName  = "promotions"
	PromotionEntityName = "promotion"

	PromotionFieldID        = "id"
	PromotionFieldCode      = "code"
	PromotionFieldPercent   = "percent"
	PromotionFieldAmount    = "amount"
	PromotionFieldActive    = "active"
	PromotionFieldExpiresAt = "expires_at"
)

// Promotion is either a percentage discount (Percent > 0) or a fixed amount
// (Amount > 0), never both.
type Promotion struct {
	ID        string     `db:"id"`
	Code      string     `db:"code"`
	Percent   int        `db:"percent"`
	Amount    int64      `db:"amount"`
	Active    bool       `db:"active"`
	ExpiresAt *time.Time `db:"expires_at"`
	model.Metadata
}
