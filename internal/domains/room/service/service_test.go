package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	hotelMocks "innkeeper/internal/domains/hotel/mocks"
	roomMocks "innkeeper/internal/domains/room/mocks"
	"innkeeper/internal/domains/room/model"
	"innkeeper/internal/domains/room/model/dto"
	"innkeeper/internal/domains/room/service"
	gDto "innkeeper/shared/dto"
)

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *roomMocks.MockRoomType, *hotelMocks.MockHotel) {
	repo := roomMocks.NewMockRoom(ctrl)
	typeRepo := roomMocks.NewMockRoomType(ctrl)
	hotelRepo := hotelMocks.NewMockHotel(ctrl)

	svc := service.New(repo, typeRepo, hotelRepo, &config.Config{}, mocks.NewOtel())

	return svc, repo, typeRepo, hotelRepo
}

func TestRoomService_CreateRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CreateRoomRequest{
		HotelID:    "hotel-1",
		RoomTypeID: "rt-1",
		Number:     "101",
		Floor:      1,
	}

	t.Run("success", func(t *testing.T) {
		svc, repo, typeRepo, _ := newRoomService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1", HotelID: "hotel-1"}, nil)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, room model.Room) error {
				assert.Equal(t, "101", room.Number)
				assert.Equal(t, "hotel-1", room.HotelID)
				return nil
			})

		err := svc.CreateRoom(context.Background(), req, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("unknown room type", func(t *testing.T) {
		svc, _, typeRepo, _ := newRoomService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		err := svc.CreateRoom(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})

	t.Run("room type from another hotel", func(t *testing.T) {
		svc, _, typeRepo, _ := newRoomService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1", HotelID: "hotel-2"}, nil)

		err := svc.CreateRoom(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		svc, repo, typeRepo, _ := newRoomService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1", HotelID: "hotel-1"}, nil)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.CreateRoom(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})
}

func TestRoomService_GetRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newRoomService(ctrl)

	rooms := []model.Room{
		{ID: "r-1", HotelID: "hotel-1", Number: "101"},
		{ID: "r-2", HotelID: "hotel-1", Number: "102"},
	}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)

	res, err := svc.GetRooms(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestRoomService_UpdateRoom_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newRoomService(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.UpdateRoom(context.Background(), dto.UpdateRoomRequest{}, "missing", "staff-1")

	assert.Error(t, err)
}

func TestRoomService_CreateRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CreateRoomTypeRequest{
		HotelID:  "hotel-1",
		Name:     "Deluxe",
		Capacity: 2,
		BaseRate: 800_000,
	}

	t.Run("success", func(t *testing.T) {
		svc, _, typeRepo, hotelRepo := newRoomService(ctrl)

		hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		typeRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.CreateRoomType(context.Background(), req, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		svc, _, _, hotelRepo := newRoomService(ctrl)

		hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.CreateRoomType(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})

	t.Run("hotel lookup failure", func(t *testing.T) {
		svc, _, _, hotelRepo := newRoomService(ctrl)

		hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		err := svc.CreateRoomType(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})
}
