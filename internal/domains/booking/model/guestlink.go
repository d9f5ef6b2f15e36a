package model

import "innkeeper/shared/model"

const (
	GuestLinkTableName  = "booking_room_guests"
	GuestLinkEntityName = "booking_room_guest"

	GuestLinkFieldID           = "id"
	GuestLinkFieldAssignmentID = "booking_room_id"
	GuestLinkFieldGuestID      = "guest_id"
)

// GuestLink places a guest in a specific assigned room. The many-to-many link
// lets a guest move between rooms without recreating the guest record.
type GuestLink struct {
	ID           string `db:"id"`
	AssignmentID string `db:"booking_room_id"`
	GuestID      string `db:"guest_id"`
	model.Metadata
}
