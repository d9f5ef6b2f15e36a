package dto

// RoomMapEntry is one room in the hotel room map for a date range.
type RoomMapEntry struct {
	RoomID       string `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Floor        int    `json:"floor"`
	RoomStatus   string `json:"room_status"`
	// Occupied means a non-cancelled assignment overlaps the queried range.
	Occupied  bool   `json:"occupied"`
	BookingID string `json:"booking_id,omitempty"`
	GuestName string `json:"guest_name,omitempty"`
}

type RoomMapResponse struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Rooms     []RoomMapEntry `json:"rooms"`
}

type RoomAvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

// ScheduleEntry is one stay on a room's calendar.
type ScheduleEntry struct {
	BookingID  string `json:"booking_id"`
	GuestName  string `json:"guest_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

type RoomScheduleResponse struct {
	RoomID     string          `json:"room_id"`
	RoomNumber string          `json:"room_number"`
	Entries    []ScheduleEntry `json:"entries"`
}

type TypeAvailability struct {
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	TotalRooms   int    `json:"total_rooms"`
	FreeRooms    int    `json:"free_rooms"`
}

type HotelAvailabilityResponse struct {
	HotelID   string             `json:"hotel_id"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	RoomTypes []TypeAvailability `json:"room_types"`
}
