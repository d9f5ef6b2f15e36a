package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeeper/internal/domains/booking/model"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single night", start: "2026-03-10", end: "2026-03-11", want: 1},
		{name: "week long stay", start: "2026-03-10", end: "2026-03-17", want: 7},
		{name: "same day is zero nights", start: "2026-03-10", end: "2026-03-10", want: 0},
		{name: "inverted range is zero nights", start: "2026-03-17", end: "2026-03-10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(date(tt.start), date(tt.end)))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		otherStart string
		otherEnd   string
		want       bool
	}{
		{name: "identical ranges", start: "2026-03-10", end: "2026-03-12", otherStart: "2026-03-10", otherEnd: "2026-03-12", want: true},
		{name: "partial overlap", start: "2026-03-10", end: "2026-03-12", otherStart: "2026-03-11", otherEnd: "2026-03-14", want: true},
		{name: "containment", start: "2026-03-10", end: "2026-03-20", otherStart: "2026-03-12", otherEnd: "2026-03-14", want: true},
		{name: "back to back stays do not overlap", start: "2026-03-10", end: "2026-03-12", otherStart: "2026-03-12", otherEnd: "2026-03-14", want: false},
		{name: "disjoint ranges", start: "2026-03-10", end: "2026-03-12", otherStart: "2026-03-20", otherEnd: "2026-03-22", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(date(tt.start), date(tt.end), date(tt.otherStart), date(tt.otherEnd))
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric.
			mirrored := model.Overlaps(date(tt.otherStart), date(tt.otherEnd), date(tt.start), date(tt.end))
			assert.Equal(t, tt.want, mirrored)
		})
	}
}

func TestBookingTerminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: model.StatusPending, want: false},
		{status: model.StatusConfirmed, want: false},
		{status: model.StatusCancelled, want: true},
		{status: model.StatusCompleted, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}
			assert.Equal(t, tt.want, booking.Terminal())
		})
	}
}

func TestRoomAssignmentActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: model.RoomStatusPending, want: true},
		{status: model.RoomStatusCheckedIn, want: true},
		{status: model.RoomStatusCheckedOut, want: true},
		{status: model.RoomStatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assignment := model.RoomAssignment{Status: tt.status}
			assert.Equal(t, tt.want, assignment.Active())
		})
	}
}
