package model

import "innkeeper/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID           = "id"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldIDCardNumber = "id_card_number"
	FieldIDCardImage  = "id_card_image"
)

// Guest identity is deduplicated by phone number: creating a booking with a
// phone that already exists reuses the stored guest instead of inserting a
// duplicate. Guests outlive any individual booking.
type Guest struct {
	ID           string `db:"id"`
	FullName     string `db:"full_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	IDCardNumber string `db:"id_card_number"`
	IDCardImage  string `db:"id_card_image"`
	model.Metadata
}
