package model

import "innkeeper/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldRole     = "role"
	FieldHotelID  = "hotel_id"
	FieldActive   = "active"
)

type Staff struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	FullName string `db:"full_name"`
	Role     string `db:"role"`
	HotelID  string `db:"hotel_id"`
	Active   bool   `db:"active"`
	model.Metadata
}
