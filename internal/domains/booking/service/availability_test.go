package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	bookingMocks "innkeeper/internal/domains/booking/mocks"
	"innkeeper/internal/domains/booking/service"
	guestServiceMocks "innkeeper/internal/domains/guest/service/mocks"
	hotelMocks "innkeeper/internal/domains/hotel/mocks"
	roomMocks "innkeeper/internal/domains/room/mocks"
	roomModel "innkeeper/internal/domains/room/model"
	cacheMocks "innkeeper/shared/cache/mocks"
)

type availabilityMockSet struct {
	assignRepo *bookingMocks.MockRoomAssignment
	repo       *bookingMocks.MockBooking
	roomRepo   *roomMocks.MockRoom
	typeRepo   *roomMocks.MockRoomType
	hotelRepo  *hotelMocks.MockHotel
	guestSvc   *guestServiceMocks.MockGuest
	cache      *cacheMocks.MockRedisCache
}

func newAvailabilityService(ctrl *gomock.Controller) (service.Availability, availabilityMockSet) {
	m := availabilityMockSet{
		assignRepo: bookingMocks.NewMockRoomAssignment(ctrl),
		repo:       bookingMocks.NewMockBooking(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		typeRepo:   roomMocks.NewMockRoomType(ctrl),
		hotelRepo:  hotelMocks.NewMockHotel(ctrl),
		guestSvc:   guestServiceMocks.NewMockGuest(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.NewAvailability(
		m.assignRepo, m.repo, m.roomRepo, m.typeRepo, m.hotelRepo, m.guestSvc,
		&config.Config{}, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func TestAvailabilityService_RoomAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		room     roomModel.Room
		occupied bool
		want     bool
	}{
		{
			name: "free room is available",
			room: roomModel.Room{ID: "r-1", Status: roomModel.StatusAvailable},
			want: true,
		},
		{
			name:     "overlapping stay blocks the room",
			room:     roomModel.Room{ID: "r-1", Status: roomModel.StatusAvailable},
			occupied: true,
			want:     false,
		},
		{
			name: "maintenance blocks even a free room",
			room: roomModel.Room{ID: "r-1", Status: roomModel.StatusMaintenance},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAvailabilityService(ctrl)

			m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.room, nil)
			m.assignRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.occupied, nil)

			res, err := svc.RoomAvailability(context.Background(), "r-1", date("2026-03-10"), date("2026-03-12"))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Available)
			assert.Equal(t, "2026-03-10", res.StartDate)
			assert.Equal(t, "2026-03-12", res.EndDate)
		})
	}

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc, _ := newAvailabilityService(ctrl)

		_, err := svc.RoomAvailability(context.Background(), "r-1", date("2026-03-12"), date("2026-03-10"))

		assert.Error(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, m := newAvailabilityService(ctrl)

		m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.RoomAvailability(context.Background(), "missing", date("2026-03-10"), date("2026-03-12"))

		assert.Error(t, err)
	})
}

func TestAvailabilityService_RoomMap_UnknownHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAvailabilityService(ctrl)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	m.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.RoomMap(context.Background(), "missing", date("2026-03-10"), date("2026-03-12"))

	assert.Error(t, err)
}
