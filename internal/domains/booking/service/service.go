package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeeper/config"
	"innkeeper/infras/kafka"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/repository"
	guestService "innkeeper/internal/domains/guest/service"
	hotelModel "innkeeper/internal/domains/hotel/model"
	hotelRepo "innkeeper/internal/domains/hotel/repository"
	orderRepo "innkeeper/internal/domains/order/repository"
	paymentModel "innkeeper/internal/domains/payment/model"
	paymentRepo "innkeeper/internal/domains/payment/repository"
	pricingService "innkeeper/internal/domains/pricing/service"
	roomModel "innkeeper/internal/domains/room/model"
	roomRepo "innkeeper/internal/domains/room/repository"
	"innkeeper/shared"
	"innkeeper/shared/cache"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, user string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id, user string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)

	Confirm(ctx context.Context, id, user string) error
	Complete(ctx context.Context, id, user string) error
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id, user string) error
	CheckIn(ctx context.Context, req dto.CheckInRequest, id, assignmentID, user string) error
	CheckOut(ctx context.Context, req dto.CheckOutRequest, id, user string) (dto.CheckOutResponse, error)

	AddRoom(ctx context.Context, req dto.AddRoomRequest, bookingID, lineID, user string) error
	ChangeRoom(ctx context.Context, req dto.ChangeRoomRequest, bookingID, assignmentID, user string) error
	ExtendStay(ctx context.Context, req dto.ExtendStayRequest, bookingID, assignmentID, user string) error
	MoveGuest(ctx context.Context, req dto.MoveGuestRequest, id, user string) error
	SwapGuests(ctx context.Context, req dto.SwapGuestsRequest, id, user string) error

	Settlement(ctx context.Context, id string) (dto.SettlementResponse, error)
	EarlyCheckoutQuote(ctx context.Context, id string, actualEnd time.Time) (dto.EarlyCheckoutQuote, error)

	AddCallLog(ctx context.Context, req dto.AddCallLogRequest, bookingID, user string) error
	GetCallLogs(ctx context.Context, bookingID string) (dto.GetCallLogsResponse, error)

	CancelNoShows(ctx context.Context, cutoff time.Time, user string) (dto.SweepResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	lineRepo      repository.RoomTypeLine
	assignRepo    repository.RoomAssignment
	guestLinkRepo repository.GuestLink
	callLogRepo   repository.CallLog
	roomRepo      roomRepo.Room
	roomTypeRepo  roomRepo.RoomType
	hotelRepo     hotelRepo.Hotel
	paymentRepo   paymentRepo.Payment
	orderRepo     orderRepo.Order
	guestSvc      guestService.Guest
	pricingSvc    pricingService.Pricing
	db            postgres.Transactor
	producer      kafka.Client
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	lineRepo repository.RoomTypeLine,
	assignRepo repository.RoomAssignment,
	guestLinkRepo repository.GuestLink,
	callLogRepo repository.CallLog,
	roomRepo roomRepo.Room,
	roomTypeRepo roomRepo.RoomType,
	hotelRepo hotelRepo.Hotel,
	paymentRepo paymentRepo.Payment,
	orderRepo orderRepo.Order,
	guestSvc guestService.Guest,
	pricingSvc pricingService.Pricing,
	db postgres.Transactor,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		lineRepo:      lineRepo,
		assignRepo:    assignRepo,
		guestLinkRepo: guestLinkRepo,
		callLogRepo:   callLogRepo,
		roomRepo:      roomRepo,
		roomTypeRepo:  roomTypeRepo,
		hotelRepo:     hotelRepo,
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		guestSvc:      guestSvc,
		pricingSvc:    pricingSvc,
		db:            db,
		producer:      producer,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, user string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	guest, err := s.guestSvc.FindOrCreateByPhone(ctx, req.Guest, user)
	if err != nil {
		return res, err
	}

	booking := model.Booking{
		ID:       uuid.NewString(),
		HotelID:  req.HotelID,
		GuestID:  guest.ID,
		Status:   model.StatusPending,
		Deposit:  req.Deposit,
		Discount: req.Discount,
		Notes:    req.Notes,
		Metadata: newMetadata(user),
	}

	lines, assignments, err := s.buildLines(ctx, booking.ID, req.Lines, user)
	if err != nil {
		return res, err
	}

	booking.Total = linesTotal(lines)
	booking.AmountDue = booking.Total - booking.Deposit - booking.Discount

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		for _, line := range lines {
			if err := s.lineRepo.InsertTx(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to insert room type line: %w", err)
			}
		}

		for _, assignment := range assignments {
			if err := s.allocateTx(ctx, tx, assignment); err != nil {
				return err
			}
		}

		if booking.Deposit > 0 {
			if err := s.paymentRepo.InsertTx(ctx, tx, depositPayment(booking, user)); err != nil {
				return fmt.Errorf("failed to record deposit: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.publishEvent(ctx, eventBookingCreated, booking.ID)
	s.invalidateBooking(ctx, booking.ID)

	return s.assemble(ctx, booking)
}

// Update replaces the booking's room-type lines wholesale. Assignments of
// removed lines are deleted with them, so an edited booking re-assigns rooms
// explicitly afterwards.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.Unprocessable("booking is " + booking.Status + " and can no longer be edited") // nolint:wrapcheck
	}

	if req.Guest != nil {
		guest, err := s.guestSvc.FindOrCreateByPhone(ctx, *req.Guest, user)
		if err != nil {
			return err
		}

		booking.GuestID = guest.ID
	}

	if req.Deposit != nil {
		booking.Deposit = *req.Deposit
	}

	if req.Discount != nil {
		booking.Discount = *req.Discount
	}

	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	lines, assignments, err := s.buildLines(ctx, booking.ID, req.Lines, user)
	if err != nil {
		return err
	}

	booking.Total = linesTotal(lines)
	booking.AmountDue = booking.Total - booking.Deposit - booking.Discount

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		// Existing guest placements go with the old assignments.
		if err := s.deleteGuestLinksTx(ctx, tx, booking.ID); err != nil {
			return err
		}

		if err := s.assignRepo.DeleteTx(ctx, tx, byBookingAssignmentFilter(booking.ID)); err != nil {
			return fmt.Errorf("failed to delete room assignments: %w", err)
		}

		if err := s.lineRepo.DeleteTx(ctx, tx, byBookingLineFilter(booking.ID)); err != nil {
			return fmt.Errorf("failed to delete room type lines: %w", err)
		}

		for _, line := range lines {
			if err := s.lineRepo.InsertTx(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to insert room type line: %w", err)
			}
		}

		for _, assignment := range assignments {
			if err := s.allocateTx(ctx, tx, assignment); err != nil {
				return err
			}
		}

		updated := map[string]any{
			model.FieldGuestID:    booking.GuestID,
			model.FieldDeposit:    booking.Deposit,
			model.FieldDiscount:   booking.Discount,
			model.FieldTotal:      booking.Total,
			model.FieldAmountDue:  booking.AmountDue,
			model.FieldNotes:      booking.Notes,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return err
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res, err = s.assemble(ctx, booking)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// loadBooking fetches one booking or a typed not-found failure.
func (s *serviceImpl) loadBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking") // nolint:wrapcheck
	}

	return booking, nil
}

// buildLines parses and prices the requested room-type lines and their
// optional explicit room picks. Rates come from the pricing quote unless the
// request pins one.
// pendingAssignment pairs a new assignment with the guests to place in it;
// the links are only written once the assignment survives the overlap check.
type pendingAssignment struct {
	model.RoomAssignment

	guestIDs []string
	// Quota data rides along because the line may not be committed yet when
	// the allocation runs.
	totalRooms   int
	roomTypeName string
}

func (s *serviceImpl) buildLines(ctx context.Context, bookingID string, inputs []dto.RoomTypeLineInput, user string) ([]model.RoomTypeLine, []pendingAssignment, error) {
	lines := make([]model.RoomTypeLine, 0, len(inputs))

	var assignments []pendingAssignment

	for _, input := range inputs {
		start, end, err := input.DateRange()
		if err != nil {
			return nil, nil, err
		}

		roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(input.RoomTypeID, roomModel.RoomTypeFieldID, roomModel.RoomTypeTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room type")

			return nil, nil, fmt.Errorf("failed to get room type: %w", err)
		}

		if roomType.ID == constant.Empty || !roomType.Active {
			return nil, nil, failure.BadRequestFromString("room type does not exist: " + input.RoomTypeID) // nolint:wrapcheck
		}

		rate := roomType.BaseRate
		total := rate * int64(model.Nights(start, end))

		if input.NightlyRate != nil {
			rate = *input.NightlyRate
			total = rate * int64(model.Nights(start, end))
		} else {
			quote, err := s.pricingSvc.Quote(ctx, input.RoomTypeID, start, end)
			if err != nil {
				return nil, nil, err
			}

			// The quote total is kept as-is so calendar overrides and the
			// division remainder survive; the nightly rate is only a display
			// average.
			total = quote.Total

			if nights := len(quote.Nights); nights > 0 {
				rate = quote.Total / int64(nights)
			}
		}

		capacity := roomType.Capacity
		if input.Capacity > 0 {
			capacity = input.Capacity
		}

		line := model.RoomTypeLine{
			ID:           uuid.NewString(),
			BookingID:    bookingID,
			RoomTypeID:   roomType.ID,
			RoomTypeName: roomType.Name,
			Capacity:     capacity,
			NightlyRate:  rate,
			StartDate:    start,
			EndDate:      end,
			TotalRooms:   input.TotalRooms,
			TotalPrice:   total,
			Metadata:     newMetadata(user),
		}
		lines = append(lines, line)

		for _, roomInput := range input.Rooms {
			assignment, err := s.buildAssignment(ctx, line, roomInput, user)
			if err != nil {
				return nil, nil, err
			}

			assignments = append(assignments, assignment)
		}
	}

	return lines, assignments, nil
}

// buildAssignment validates a requested room against its line: the room must
// exist, belong to the line's room type, and its dates must fit inside the
// line's range.
func (s *serviceImpl) buildAssignment(ctx context.Context, line model.RoomTypeLine, input dto.RoomInput, user string) (res pendingAssignment, err error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(input.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.BadRequestFromString("room does not exist: " + input.RoomID) // nolint:wrapcheck
	}

	if room.RoomTypeID != line.RoomTypeID {
		return res, failure.BadRequestFromString("room " + room.Number + " is not a " + line.RoomTypeName) // nolint:wrapcheck
	}

	start, end := line.StartDate, line.EndDate

	if input.StartDate != "" {
		if start, err = dto.ParseDate(input.StartDate); err != nil {
			return res, err
		}
	}

	if input.EndDate != "" {
		if end, err = dto.ParseDate(input.EndDate); err != nil {
			return res, err
		}
	}

	if !end.After(start) || start.Before(line.StartDate) || end.After(line.EndDate) {
		return res, failure.Unprocessable("room dates must fall within the room type's date range") // nolint:wrapcheck
	}

	if len(input.GuestIDs) > line.Capacity {
		return res, failure.Unprocessable(fmt.Sprintf("room %s holds %d guests, got %d", room.Number, line.Capacity, len(input.GuestIDs))) // nolint:wrapcheck
	}

	return pendingAssignment{
		RoomAssignment: model.RoomAssignment{
			ID:         uuid.NewString(),
			LineID:     line.ID,
			BookingID:  line.BookingID,
			RoomID:     room.ID,
			RoomNumber: room.Number,
			StartDate:  start,
			EndDate:    end,
			Status:     model.RoomStatusPending,
			Metadata:   newMetadata(user),
		},
		guestIDs:     input.GuestIDs,
		totalRooms:   line.TotalRooms,
		roomTypeName: line.RoomTypeName,
	}, nil
}

// allocateTx is the single write path for a room assignment: lock the room
// row, re-check for overlapping stays under the lock, then insert. The
// database exclusion constraint backstops the same rule at commit.
func (s *serviceImpl) allocateTx(ctx context.Context, tx *sqlx.Tx, assignment pendingAssignment) error {
	if err := s.roomRepo.LockTx(ctx, tx, assignment.RoomID); err != nil {
		return err
	}

	conflict, err := s.assignRepo.ExistTx(ctx, tx, repository.OverlapFilter(assignment.RoomID, assignment.StartDate, assignment.EndDate, assignment.ID))
	if err != nil {
		return fmt.Errorf("failed to check for overlapping stays: %w", err)
	}

	if conflict {
		return failure.Conflict("room " + assignment.RoomNumber + " is already booked for those dates") // nolint:wrapcheck
	}

	taken, err := s.assignRepo.CountTx(ctx, tx, repository.ActiveByLineFilter(assignment.LineID))
	if err != nil {
		return fmt.Errorf("failed to count assigned rooms: %w", err)
	}

	if taken >= assignment.totalRooms {
		return failure.Conflict(fmt.Sprintf("all %d %s rooms are already assigned", assignment.totalRooms, assignment.roomTypeName)) // nolint:wrapcheck
	}

	if err := s.assignRepo.InsertTx(ctx, tx, assignment.RoomAssignment); err != nil {
		return fmt.Errorf("failed to insert room assignment: %w", err)
	}

	for _, guestID := range assignment.guestIDs {
		link := model.GuestLink{
			ID:           uuid.NewString(),
			AssignmentID: assignment.ID,
			GuestID:      guestID,
			Metadata:     assignment.Metadata,
		}

		if err := s.guestLinkRepo.InsertTx(ctx, tx, link); err != nil {
			return fmt.Errorf("failed to place guest in room: %w", err)
		}
	}

	return nil
}

// assemble builds the full booking response: guest, lines, their assignments
// and the guests placed in each room.
func (s *serviceImpl) assemble(ctx context.Context, booking model.Booking) (res dto.BookingResponse, err error) {
	res.FromModel(booking)

	guest, err := s.guestSvc.Get(ctx, booking.GuestID)
	if err != nil {
		return res, err
	}

	res.Guest = guest

	lines, err := s.lineRepo.GetAll(ctx, gDto.QueryParams{}, byBookingLineFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type lines")

		return res, fmt.Errorf("failed to get room type lines: %w", err)
	}

	assignments, err := s.assignRepo.GetAll(ctx, gDto.QueryParams{}, byBookingAssignmentFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room assignments")

		return res, fmt.Errorf("failed to get room assignments: %w", err)
	}

	res.Lines = make([]dto.RoomTypeLineResponse, len(lines))

	for i, line := range lines {
		res.Lines[i].FromModel(line)

		for _, assignment := range assignments {
			if assignment.LineID != line.ID {
				continue
			}

			guestIDs, err := s.guestIDs(ctx, assignment.ID)
			if err != nil {
				return res, err
			}

			var room dto.RoomAssignmentResponse

			room.FromModel(assignment, guestIDs)

			res.Lines[i].Rooms = append(res.Lines[i].Rooms, room)
		}
	}

	return res, nil
}

func (s *serviceImpl) guestIDs(ctx context.Context, assignmentID string) ([]string, error) {
	links, err := s.guestLinkRepo.GetAll(ctx, gDto.QueryParams{}, byAssignmentGuestFilter(assignmentID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room guests")

		return nil, fmt.Errorf("failed to get room guests: %w", err)
	}

	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = link.GuestID
	}

	return ids, nil
}

func (s *serviceImpl) deleteGuestLinksTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	assignments, err := s.assignRepo.GetAll(ctx, gDto.QueryParams{}, byBookingAssignmentFilter(bookingID), model.AssignmentFieldID)
	if err != nil {
		return fmt.Errorf("failed to get room assignments: %w", err)
	}

	for _, assignment := range assignments {
		if err := s.guestLinkRepo.DeleteTx(ctx, tx, byAssignmentGuestFilter(assignment.ID)); err != nil {
			return fmt.Errorf("failed to delete room guests: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func linesTotal(lines []model.RoomTypeLine) (total int64) {
	for _, line := range lines {
		total += linePrice(line) * int64(line.TotalRooms)
	}

	return total
}

// linePrice is the quoted price for one room over the line's full range.
// Lines written before quote totals were stored fall back to the averaged
// nightly rate.
func linePrice(line model.RoomTypeLine) int64 {
	if line.TotalPrice > 0 {
		return line.TotalPrice
	}

	return line.NightlyRate * int64(model.Nights(line.StartDate, line.EndDate))
}

func depositPayment(booking model.Booking, user string) paymentModel.Payment {
	return paymentModel.Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Amount:    booking.Deposit,
		Type:      paymentModel.TypeDeposit,
		Metadata:  newMetadata(user),
	}
}

func byBookingLineFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.LineFieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.LineTableName},
		},
	}
}

func byBookingAssignmentFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.AssignmentFieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.AssignmentTableName},
		},
	}
}

func byAssignmentGuestFilter(assignmentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.GuestLinkFieldAssignmentID, Operator: gDto.FilterOperatorEq, Value: assignmentID, Table: model.GuestLinkTableName},
		},
	}
}
