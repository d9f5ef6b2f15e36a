package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=./mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeeper/config"
	"innkeeper/infras/otel"
	bookingModel "innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/repository"
	guestService "innkeeper/internal/domains/guest/service"
	hotelModel "innkeeper/internal/domains/hotel/model"
	hotelRepo "innkeeper/internal/domains/hotel/repository"
	roomModel "innkeeper/internal/domains/room/model"
	roomRepo "innkeeper/internal/domains/room/repository"
	"innkeeper/shared"
	"innkeeper/shared/cache"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheRoomMap = "availability:map"

// Availability answers the read-side questions the front desk asks: is this
// room free, what does the floor look like, what is on a room's calendar.
type Availability interface {
	RoomAvailability(ctx context.Context, roomID string, start, end time.Time) (dto.RoomAvailabilityResponse, error)
	RoomMap(ctx context.Context, hotelID string, start, end time.Time) (dto.RoomMapResponse, error)
	RoomSchedule(ctx context.Context, roomID string) (dto.RoomScheduleResponse, error)
	HotelAvailability(ctx context.Context, hotelID string, start, end time.Time) (dto.HotelAvailabilityResponse, error)
}

type availabilityImpl struct {
	assignRepo   repository.RoomAssignment
	bookingRepo  repository.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomRepo.RoomType
	hotelRepo    hotelRepo.Hotel
	guestSvc     guestService.Guest
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func NewAvailability(
	assignRepo repository.RoomAssignment,
	bookingRepo repository.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomRepo.RoomType,
	hotelRepo hotelRepo.Hotel,
	guestSvc guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &availabilityImpl{
		assignRepo:   assignRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		hotelRepo:    hotelRepo,
		guestSvc:     guestSvc,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *availabilityImpl) RoomAvailability(ctx context.Context, roomID string, start, end time.Time) (res dto.RoomAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !end.After(start) {
		return res, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	occupied, err := s.assignRepo.Exist(ctx, repository.OverlapFilter(room.ID, start, end, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	res.RoomID = room.ID
	res.StartDate = start.Format(constant.DateOnlyFormat)
	res.EndDate = end.Format(constant.DateOnlyFormat)
	res.Available = !occupied && room.Status != roomModel.StatusMaintenance

	return res, nil
}

// RoomMap renders the whole hotel for a date range, one entry per room with
// the occupying booking when there is one.
func (s *availabilityImpl) RoomMap(ctx context.Context, hotelID string, start, end time.Time) (res dto.RoomMapResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomMap")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !end.After(start) {
		return res, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheRoomMap, hotelID, start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room map")

		return res, nil
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.NotFound("hotel") // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}, byHotelRoomFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	typeNames, err := s.typeNames(ctx, hotelID)
	if err != nil {
		return res, err
	}

	res.StartDate = start.Format(constant.DateOnlyFormat)
	res.EndDate = end.Format(constant.DateOnlyFormat)
	res.Rooms = make([]dto.RoomMapEntry, len(rooms))

	for i, room := range rooms {
		entry := dto.RoomMapEntry{
			RoomID:       room.ID,
			RoomNumber:   room.Number,
			RoomTypeID:   room.RoomTypeID,
			RoomTypeName: typeNames[room.RoomTypeID],
			Floor:        room.Floor,
			RoomStatus:   room.Status,
		}

		assignment, err := s.assignRepo.Get(ctx, repository.OverlapFilter(room.ID, start, end, ""))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room assignment")

			return res, fmt.Errorf("failed to get room assignment: %w", err)
		}

		if assignment.ID != constant.Empty {
			entry.Occupied = true
			entry.BookingID = assignment.BookingID

			if name, err := s.guestName(ctx, assignment.BookingID); err == nil {
				entry.GuestName = name
			}
		}

		res.Rooms[i] = entry
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room map to cache")
		}
	}()

	return res, nil
}

// RoomSchedule lists every upcoming and current stay on one room's calendar.
func (s *availabilityImpl) RoomSchedule(ctx context.Context, roomID string) (res dto.RoomScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: bookingModel.AssignmentFieldStartDate, SortDir: gDto.SortDirAsc}

	assignments, err := s.assignRepo.GetAll(ctx, params, activeByRoomFilter(room.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room assignments")

		return res, fmt.Errorf("failed to get room assignments: %w", err)
	}

	res.RoomID = room.ID
	res.RoomNumber = room.Number
	res.Entries = make([]dto.ScheduleEntry, len(assignments))

	for i, assignment := range assignments {
		entry := dto.ScheduleEntry{
			BookingID: assignment.BookingID,
			StartDate: assignment.StartDate.Format(constant.DateOnlyFormat),
			EndDate:   assignment.EndDate.Format(constant.DateOnlyFormat),
			Status:    assignment.Status,
		}

		if name, err := s.guestName(ctx, assignment.BookingID); err == nil {
			entry.GuestName = name
		}

		res.Entries[i] = entry
	}

	return res, nil
}

// HotelAvailability counts free rooms per room type over a date range.
func (s *availabilityImpl) HotelAvailability(ctx context.Context, hotelID string, start, end time.Time) (res dto.HotelAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !end.After(start) {
		return res, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, gDto.QueryParams{}, byHotelRoomTypeFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	if len(roomTypes) == 0 {
		return res, failure.NotFound("hotel") // nolint:wrapcheck
	}

	res.HotelID = hotelID
	res.StartDate = start.Format(constant.DateOnlyFormat)
	res.EndDate = end.Format(constant.DateOnlyFormat)
	res.RoomTypes = make([]dto.TypeAvailability, len(roomTypes))

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, byHotelRoomFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	for i, roomType := range roomTypes {
		availability := dto.TypeAvailability{
			RoomTypeID:   roomType.ID,
			RoomTypeName: roomType.Name,
		}

		for _, room := range rooms {
			if room.RoomTypeID != roomType.ID {
				continue
			}

			availability.TotalRooms++

			if room.Status == roomModel.StatusMaintenance {
				continue
			}

			occupied, err := s.assignRepo.Exist(ctx, repository.OverlapFilter(room.ID, start, end, ""))
			if err != nil {
				log.Error().Err(err).Msg("failed to check room availability")

				return res, fmt.Errorf("failed to check room availability: %w", err)
			}

			if !occupied {
				availability.FreeRooms++
			}
		}

		res.RoomTypes[i] = availability
	}

	return res, nil
}

func (s *availabilityImpl) loadRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room") // nolint:wrapcheck
	}

	return room, nil
}

func (s *availabilityImpl) guestName(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName), bookingModel.FieldGuestID)
	if err != nil || booking.GuestID == constant.Empty {
		return "", fmt.Errorf("failed to get booking guest: %w", err)
	}

	guest, err := s.guestSvc.Get(ctx, booking.GuestID)
	if err != nil {
		return "", err
	}

	return guest.FullName, nil
}

func (s *availabilityImpl) typeNames(ctx context.Context, hotelID string) (map[string]string, error) {
	roomTypes, err := s.roomTypeRepo.GetAll(ctx, gDto.QueryParams{}, byHotelRoomTypeFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	names := make(map[string]string, len(roomTypes))
	for _, roomType := range roomTypes {
		names[roomType.ID] = roomType.Name
	}

	return names, nil
}

func byHotelRoomFilter(hotelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldHotelID, Operator: gDto.FilterOperatorEq, Value: hotelID, Table: roomModel.TableName},
			gDto.Filter{Field: roomModel.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: roomModel.TableName},
		},
	}
}

func byHotelRoomTypeFilter(hotelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.RoomTypeFieldHotelID, Operator: gDto.FilterOperatorEq, Value: hotelID, Table: roomModel.RoomTypeTableName},
			gDto.Filter{Field: roomModel.RoomTypeFieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: roomModel.RoomTypeTableName},
		},
	}
}

func activeByRoomFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.AssignmentFieldRoomID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: bookingModel.AssignmentTableName},
			gDto.Filter{Field: bookingModel.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: bookingModel.RoomStatusCancelled, Table: bookingModel.AssignmentTableName},
		},
	}
}
