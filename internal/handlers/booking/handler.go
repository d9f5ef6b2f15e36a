package booking

import (
	"net/http"
	"time"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/service"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/timezone"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	paramLineID       = "lineID"
	paramAssignmentID = "assignmentID"
)

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/no-show-sweep", handler.SweepNoShows)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Get("/{id}/settlement", handler.GetSettlement)
		routerGroup.Get("/{id}/early-checkout", handler.GetEarlyCheckoutQuote)
		routerGroup.Post("/{id}/lines/{lineID}/rooms", handler.AddRoom)
		routerGroup.Post("/{id}/rooms/{assignmentID}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/rooms/{assignmentID}/extend", handler.ExtendStay)
		routerGroup.Post("/{id}/rooms/{assignmentID}/change", handler.ChangeRoom)
		routerGroup.Post("/{id}/guests/move", handler.MoveGuest)
		routerGroup.Post("/{id}/guests/swap", handler.SwapGuests)
		routerGroup.Post("/{id}/call-logs", handler.AddCallLog)
		routerGroup.Get("/{id}/call-logs", handler.GetCallLogs)
	})
}

// CreateBooking creates a booking with its room-type lines.
// @Summary Create a booking
// @Description Create a booking for a guest with one or more room-type lines and optional concrete room picks.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	res, err := handler.service.Create(ctx, req, staff)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by staff " + staff)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled)"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldHotelID, model.FieldGuestID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves one booking with its lines, rooms and guests.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking replaces the booking's details and room-type lines.
// @Summary Update a booking by ID
// @Description Replace the booking's guest, financial fields and room-type line set.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.Update(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// ConfirmBooking confirms a pending booking.
// @Summary Confirm a booking
// @Description Move a pending booking to confirmed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking confirmed successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.Confirm(ctx, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Booking confirmed successfully")
}

// CompleteBooking closes a booking whose rooms have all checked out.
// @Summary Complete a booking
// @Description Move a confirmed booking to completed once every remaining room has checked out.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking completed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.Complete(ctx, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking completed successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Booking completed successfully")
}

// CancelBooking cancels a booking and releases its rooms.
// @Summary Cancel a booking
// @Description Cancel a pending or confirmed booking, optionally refunding part of the deposit.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.Cancel(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// CheckIn checks one assigned room in.
// @Summary Check a room in
// @Description Mark one pending room assignment as checked in and register the guests arriving with it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param assignmentID path string true "Room Assignment ID"
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 200 {object} response.Message "Room checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rooms/{assignmentID}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	assignmentID := chi.URLParam(r, paramAssignmentID)

	req := dto.CheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.CheckIn(ctx, req, id, assignmentID, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room checked in successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Room checked in successfully")
}

// CheckOut settles and completes the booking.
// @Summary Check a booking out
// @Description Settle the booking's folio, close its rooms and complete the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest true "Check Out Request"
// @Success 200 {object} dto.CheckOutResponse "Booking checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CheckOutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	res, err := handler.service.CheckOut(ctx, req, id, staff)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking checked out successfully by staff " + staff)

	response.WithJSON(w, http.StatusOK, res)
}

// ExtendStay pushes one assigned room's end date out.
// @Summary Extend a room's stay
// @Description Extend one room assignment to a later end date, re-checking availability and pricing the added nights.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param assignmentID path string true "Room Assignment ID"
// @Param request body dto.ExtendStayRequest true "Extend Stay Request"
// @Success 200 {object} response.Message "Stay extended successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rooms/{assignmentID}/extend [post]
// @Security BearerAuth
func (handler *Handler) ExtendStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtendStay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	assignmentID := chi.URLParam(r, paramAssignmentID)

	req := dto.ExtendStayRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.ExtendStay(ctx, req, id, assignmentID, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay extended successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Stay extended successfully")
}

// GetSettlement previews the booking's folio.
// @Summary Get the settlement preview
// @Description Compute the booking's settlement as it currently stands.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.SettlementResponse "Settlement preview"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/settlement [get]
// @Security BearerAuth
func (handler *Handler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettlement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Settlement(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute settlement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settlement computed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetEarlyCheckoutQuote prices ending the stay early.
// @Summary Quote an early checkout
// @Description Price cutting the stay short at the given end date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param end_date query string true "Proposed end date (YYYY-MM-DD)"
// @Success 200 {object} dto.EarlyCheckoutQuote "Early checkout quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/early-checkout [get]
// @Security BearerAuth
func (handler *Handler) GetEarlyCheckoutQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarlyCheckoutQuote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	end, err := dto.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse end date")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.EarlyCheckoutQuote(ctx, id, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote early checkout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Early checkout quoted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// AddRoom assigns a concrete room to a room-type line.
// @Summary Assign a room
// @Description Assign one more concrete room to a booking's room-type line.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param lineID path string true "Room Type Line ID"
// @Param request body dto.AddRoomRequest true "Add Room Request"
// @Success 201 {object} response.Message "Room assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/lines/{lineID}/rooms [post]
// @Security BearerAuth
func (handler *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	lineID := chi.URLParam(r, paramLineID)

	req := dto.AddRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.AddRoom(ctx, req, id, lineID, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room assigned successfully by staff " + staff)

	response.WithMessage(w, http.StatusCreated, "Room assigned successfully")
}

// ChangeRoom moves an assignment to another room.
// @Summary Change a room
// @Description Move an assignment to another room of the same type, keeping dates and guests.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param assignmentID path string true "Booking Room ID"
// @Param request body dto.ChangeRoomRequest true "Change Room Request"
// @Success 200 {object} response.Message "Room changed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rooms/{assignmentID}/change [post]
// @Security BearerAuth
func (handler *Handler) ChangeRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	assignmentID := chi.URLParam(r, paramAssignmentID)

	req := dto.ChangeRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.ChangeRoom(ctx, req, id, assignmentID, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room changed successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Room changed successfully")
}

// MoveGuest relocates a guest between assigned rooms.
// @Summary Move a guest
// @Description Move a guest from one assigned room to another with capacity left.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.MoveGuestRequest true "Move Guest Request"
// @Success 200 {object} response.Message "Guest moved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/guests/move [post]
// @Security BearerAuth
func (handler *Handler) MoveGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MoveGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.MoveGuest(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest moved successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Guest moved successfully")
}

// SwapGuests exchanges the rooms of two guests.
// @Summary Swap two guests
// @Description Exchange the rooms of two guests on the same booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SwapGuestsRequest true "Swap Guests Request"
// @Success 200 {object} response.Message "Guests swapped successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/guests/swap [post]
// @Security BearerAuth
func (handler *Handler) SwapGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SwapGuests")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SwapGuestsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.SwapGuests(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to swap guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests swapped successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Guests swapped successfully")
}

// AddCallLog records a confirmation-call attempt.
// @Summary Add a call log
// @Description Record one confirmation-call attempt; a confirmed or cancelled result transitions the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddCallLogRequest true "Add Call Log Request"
// @Success 201 {object} response.Message "Call log recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/call-logs [post]
// @Security BearerAuth
func (handler *Handler) AddCallLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCallLog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddCallLogRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := handler.service.AddCallLog(ctx, req, id, staff); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add call log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Call log recorded successfully by staff " + staff)

	response.WithMessage(w, http.StatusCreated, "Call log recorded successfully")
}

// GetCallLogs lists a booking's call attempts, newest first.
// @Summary Get call logs
// @Description List the booking's confirmation-call attempts, newest first.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.GetCallLogsResponse "Call logs"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/call-logs [get]
// @Security BearerAuth
func (handler *Handler) GetCallLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCallLogs")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetCallLogs(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get call logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Call logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SweepNoShows cancels pending bookings past the grace period.
// @Summary Sweep no-show bookings
// @Description Cancel every pending booking whose stay started before the cutoff; defaults to now minus the configured grace period.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.NoShowSweepRequest true "No Show Sweep Request"
// @Success 200 {object} dto.SweepResponse "Sweep result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/no-show-sweep [post]
// @Security BearerAuth
func (handler *Handler) SweepNoShows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SweepNoShows")
	defer scope.End()

	req := dto.NoShowSweepRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cutoff := timezone.Now().Add(-time.Duration(handler.cfg.Booking.NoShowGraceHours) * time.Hour)

	if req.Cutoff != "" {
		parsed, err := dto.ParseDate(req.Cutoff)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse cutoff")

			response.WithError(w, err)

			return
		}

		cutoff = parsed
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	res, err := handler.service.CancelNoShows(ctx, cutoff, staff)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sweep no-show bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("No-show sweep completed by staff " + staff)

	response.WithJSON(w, http.StatusOK, res)
}
