package room

import (
	"net/http"
	"time"

	"innkeeper/infras/otel"
	bookingDto "innkeeper/internal/domains/booking/model/dto"
	bookingService "innkeeper/internal/domains/booking/service"
	"innkeeper/internal/domains/room/model"
	"innkeeper/internal/domains/room/model/dto"
	"innkeeper/internal/domains/room/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramHotelID = "hotelID"

type Handler struct {
	service      service.Room
	availability bookingService.Availability
	otel         otel.Otel
}

func New(service service.Room, availability bookingService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Get("/{id}/availability", handler.GetRoomAvailability)
		routerGroup.Get("/{id}/schedule", handler.GetRoomSchedule)
	})

	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
	})

	router.Route("/hotels/{hotelID}", func(routerGroup chi.Router) {
		routerGroup.Get("/room-map", handler.GetRoomMap)
		routerGroup.Get("/availability", handler.GetHotelAvailability)
	})
}

// CreateRoom creates a physical room.
// @Summary Create a room
// @Description Create a physical room under a room type.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.CreateRoom(ctx, req, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully by staff " + staff)

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms lists rooms.
// @Summary Get all rooms
// @Description Retrieve rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Param room_type_id query string false "Filter by room type ID"
// @Param status query string false "Filter by status (available, occupied, maintenance)"
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldHotelID, model.FieldRoomTypeID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	rooms, err := handler.service.GetRooms(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// UpdateRoom updates a room's number, floor or status.
// @Summary Update a room by ID
// @Description Update a room's number, floor or status.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.UpdateRoom(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// GetRoomAvailability reports whether a room is free for a date range.
// @Summary Check room availability
// @Description Report whether the room is free for the half-open date range.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} bookingDto.RoomAvailabilityResponse "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	start, end, err := dateRangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	res, err := handler.availability.RoomAvailability(ctx, id, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomSchedule lists the stays on a room's calendar.
// @Summary Get a room's schedule
// @Description List every non-cancelled stay on the room's calendar.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} bookingDto.RoomScheduleResponse "Room schedule"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetRoomSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.availability.RoomSchedule(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRoomType creates a room type.
// @Summary Create a room type
// @Description Create a room type with its capacity and base nightly rate.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Message "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.CreateRoomType(ctx, req, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type created successfully by staff " + staff)

	response.WithMessage(w, http.StatusCreated, "Room type created successfully")
}

// GetRoomTypes lists room types.
// @Summary Get all room types
// @Description Retrieve room types with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Success 200 {object} dto.GetRoomTypesResponse "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if hotelID := r.URL.Query().Get(model.RoomTypeFieldHotelID); hotelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.RoomTypeFieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hotelID,
			Table:    model.RoomTypeTableName,
		})
	}

	roomTypes, err := handler.service.GetRoomTypes(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// UpdateRoomType updates a room type.
// @Summary Update a room type by ID
// @Description Update a room type's name, capacity or base rate.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.UpdateRoomType(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type updated successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// GetRoomMap renders the hotel's rooms for a date range.
// @Summary Get the hotel room map
// @Description Render every room of the hotel with its occupancy for the date range.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} bookingDto.RoomMapResponse "Room map"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/room-map [get]
// @Security BearerAuth
func (handler *Handler) GetRoomMap(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomMap")
	defer scope.End()

	hotelID := chi.URLParam(r, paramHotelID)

	start, end, err := dateRangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	res, err := handler.availability.RoomMap(ctx, hotelID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room map")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room map retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetHotelAvailability counts free rooms per room type.
// @Summary Get hotel availability
// @Description Count free rooms per room type over the date range.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} bookingDto.HotelAvailabilityResponse "Availability per room type"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetHotelAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelAvailability")
	defer scope.End()

	hotelID := chi.URLParam(r, paramHotelID)

	start, end, err := dateRangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	res, err := handler.availability.HotelAvailability(ctx, hotelID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

func dateRangeQuery(r *http.Request) (start, end time.Time, err error) {
	start, err = bookingDto.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return start, end, err
	}

	end, err = bookingDto.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}
