package model

import "innkeeper/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldActive  = "active"
)

type Hotel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Active  bool   `db:"active"`
	model.Metadata
}
