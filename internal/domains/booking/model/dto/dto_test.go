package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		parsed, err := dto.ParseDate("2026-03-10")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("timestamp is rejected", func(t *testing.T) {
		_, err := dto.ParseDate("2026-03-10 15:04:05")

		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := dto.ParseDate("next tuesday")

		assert.Error(t, err)
	})
}

func TestRoomTypeLineInputDateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   dto.RoomTypeLineInput
		wantErr bool
	}{
		{
			name: "valid range",
			input: dto.RoomTypeLineInput{
				TotalRooms: 1,
				StartDate:  "2026-03-10",
				EndDate:    "2026-03-12",
			},
		},
		{
			name: "end equal to start is rejected",
			input: dto.RoomTypeLineInput{
				TotalRooms: 1,
				StartDate:  "2026-03-10",
				EndDate:    "2026-03-10",
			},
			wantErr: true,
		},
		{
			name: "end before start is rejected",
			input: dto.RoomTypeLineInput{
				TotalRooms: 1,
				StartDate:  "2026-03-12",
				EndDate:    "2026-03-10",
			},
			wantErr: true,
		},
		{
			name: "more room picks than the quota",
			input: dto.RoomTypeLineInput{
				TotalRooms: 1,
				StartDate:  "2026-03-10",
				EndDate:    "2026-03-12",
				Rooms: []dto.RoomInput{
					{RoomID: "r-1"},
					{RoomID: "r-2"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.input.DateRange()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, end.After(start))
		})
	}
}

func TestValidResult(t *testing.T) {
	assert.True(t, dto.ValidResult(model.CallResultNoAnswer))
	assert.True(t, dto.ValidResult(model.CallResultConfirmed))
	assert.True(t, dto.ValidResult(model.CallResultCancelled))
	assert.False(t, dto.ValidResult("voicemail"))
	assert.False(t, dto.ValidResult(""))
}
