package dto

import "time"

// DailyRate is one night of a quote: the date of the night and the rate in
// minor currency units.
type DailyRate struct {
	Date time.Time `json:"date"`
	Rate int64     `json:"rate"`
}

type Quote struct {
	RoomTypeID string      `json:"room_type_id"`
	Nights     []DailyRate `json:"nights"`
	Total      int64       `json:"total"`
}
