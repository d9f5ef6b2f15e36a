package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeeper/config"
	"innkeeper/infras/otel"
	hotelModel "innkeeper/internal/domains/hotel/model"
	hotelRepo "innkeeper/internal/domains/hotel/repository"
	"innkeeper/internal/domains/room/model"
	"innkeeper/internal/domains/room/model/dto"
	"innkeeper/internal/domains/room/repository"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, user string) error
	GetRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	UpdateRoom(ctx context.Context, req dto.UpdateRoomRequest, id, user string) error
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest, user string) error
	GetRoomTypes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	UpdateRoomType(ctx context.Context, req dto.UpdateRoomTypeRequest, id, user string) error
}

type serviceImpl struct {
	repo         repository.Room
	roomTypeRepo repository.RoomType
	hotelRepo    hotelRepo.Hotel
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Room, roomTypeRepo repository.RoomType, hotelRepo hotelRepo.Hotel, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		hotelRepo:    hotelRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, model.RoomTypeFieldID, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || roomType.HotelID != req.HotelID {
		return failure.BadRequestFromString("room type does not exist in this hotel") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, roomNumberFilter(req.HotelID, req.Number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if duplicate {
		return failure.Conflict("room number " + req.Number + " already exists in this hotel") // nolint:wrapcheck
	}

	if err := s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, req dto.UpdateRoomRequest, id, user string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	if err := s.roomTypeRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return fmt.Errorf("failed to create room type: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRoomTypes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.roomTypeRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(roomTypes, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateRoomType(ctx context.Context, req dto.UpdateRoomTypeRequest, id, user string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomType")
	defer scope.End()

	filter := shared.FilterByID(id, model.RoomTypeFieldID, model.RoomTypeTableName)

	exist, err := s.roomTypeRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room type") // nolint:wrapcheck
	}

	if err := s.roomTypeRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	return nil
}

func roomNumberFilter(hotelID, number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldHotelID, Operator: gDto.FilterOperatorEq, Value: hotelID, Table: model.TableName},
			gDto.Filter{Field: model.FieldNumber, Operator: gDto.FilterOperatorEq, Value: number, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
		},
	}
}
