package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	kafkaMocks "innkeeper/infras/kafka/mocks"
	"innkeeper/infras/otel/mocks"
	bookingMocks "innkeeper/internal/domains/booking/mocks"
	"innkeeper/internal/domains/booking/model"
	"innkeeper/internal/domains/booking/model/dto"
	"innkeeper/internal/domains/booking/service"
	guestDto "innkeeper/internal/domains/guest/model/dto"
	guestServiceMocks "innkeeper/internal/domains/guest/service/mocks"
	hotelMocks "innkeeper/internal/domains/hotel/mocks"
	orderMocks "innkeeper/internal/domains/order/mocks"
	orderModel "innkeeper/internal/domains/order/model"
	paymentMocks "innkeeper/internal/domains/payment/mocks"
	pricingServiceMocks "innkeeper/internal/domains/pricing/service/mocks"
	roomMocks "innkeeper/internal/domains/room/mocks"
	cacheMocks "innkeeper/shared/cache/mocks"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

// txRunner stands in for the database transactor: the callback runs with a
// nil transaction, which the repo mocks accept via gomock.Any().
type txRunner struct{}

func (txRunner) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type bookingMockSet struct {
	repo       *bookingMocks.MockBooking
	lineRepo   *bookingMocks.MockRoomTypeLine
	assignRepo *bookingMocks.MockRoomAssignment
	guestLinks *bookingMocks.MockGuestLink
	callLogs   *bookingMocks.MockCallLog
	roomRepo   *roomMocks.MockRoom
	typeRepo   *roomMocks.MockRoomType
	hotelRepo  *hotelMocks.MockHotel
	payments   *paymentMocks.MockPayment
	orders     *orderMocks.MockOrder
	guestSvc   *guestServiceMocks.MockGuest
	pricing    *pricingServiceMocks.MockPricing
	producer   *kafkaMocks.MockClient
	cache      *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller, cfg *config.Config) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:       bookingMocks.NewMockBooking(ctrl),
		lineRepo:   bookingMocks.NewMockRoomTypeLine(ctrl),
		assignRepo: bookingMocks.NewMockRoomAssignment(ctrl),
		guestLinks: bookingMocks.NewMockGuestLink(ctrl),
		callLogs:   bookingMocks.NewMockCallLog(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		typeRepo:   roomMocks.NewMockRoomType(ctrl),
		hotelRepo:  hotelMocks.NewMockHotel(ctrl),
		payments:   paymentMocks.NewMockPayment(ctrl),
		orders:     orderMocks.NewMockOrder(ctrl),
		guestSvc:   guestServiceMocks.NewMockGuest(ctrl),
		pricing:    pricingServiceMocks.NewMockPricing(ctrl),
		producer:   kafkaMocks.NewMockClient(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(
		m.repo, m.lineRepo, m.assignRepo, m.guestLinks, m.callLogs,
		m.roomRepo, m.typeRepo, m.hotelRepo, m.payments, m.orders,
		m.guestSvc, m.pricing,
		txRunner{}, m.producer, cfg, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

// publishEvent and cache invalidation run on detached goroutines, so the
// expectations have to tolerate the test finishing first.
func allowAsync(m bookingMockSet) {
	m.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func pendingBooking(id string) model.Booking {
	return model.Booking{
		ID:      id,
		HotelID: "hotel-1",
		GuestID: "guest-1",
		Status:  model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "staff-1",
			ModifiedBy: "staff-1",
		},
	}
}

func TestBookingService_Settlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}

	tests := []struct {
		name        string
		booking     model.Booking
		lines       []model.RoomTypeLine
		assignments []model.RoomAssignment
		orders      []orderModel.Order
		wantTotal   int64
		wantRefund  int64
	}{
		{
			name: "rooms plus minibar minus deposit",
			booking: model.Booking{
				ID: "b-1", Status: model.StatusConfirmed,
				Deposit: 200_000, AdditionalCharge: 50_000, AdditionalNote: "minibar",
			},
			lines: []model.RoomTypeLine{
				{ID: "l-1", BookingID: "b-1", RoomTypeName: "Standard", NightlyRate: 500_000,
					StartDate: date("2026-03-10"), EndDate: date("2026-03-12"), TotalRooms: 1},
				{ID: "l-2", BookingID: "b-1", RoomTypeName: "Deluxe", NightlyRate: 800_000,
					StartDate: date("2026-03-10"), EndDate: date("2026-03-11"), TotalRooms: 1},
			},
			assignments: []model.RoomAssignment{
				{ID: "a-1", LineID: "l-1", StartDate: date("2026-03-10"), EndDate: date("2026-03-12"), Status: model.RoomStatusCheckedIn},
				{ID: "a-2", LineID: "l-2", StartDate: date("2026-03-10"), EndDate: date("2026-03-11"), Status: model.RoomStatusCheckedIn},
			},
			wantTotal: 1_650_000,
		},
		{
			name: "no assignments fall back to the line quota",
			booking: model.Booking{
				ID: "b-2", Status: model.StatusPending, Deposit: 0,
			},
			lines: []model.RoomTypeLine{
				{ID: "l-1", BookingID: "b-2", RoomTypeName: "Standard", NightlyRate: 400_000,
					StartDate: date("2026-03-10"), EndDate: date("2026-03-13"), TotalRooms: 2},
			},
			wantTotal: 2_400_000,
		},
		{
			name: "deposit above charges surfaces as refund due",
			booking: model.Booking{
				ID: "b-3", Status: model.StatusConfirmed, Deposit: 1_000_000,
			},
			lines: []model.RoomTypeLine{
				{ID: "l-1", BookingID: "b-3", RoomTypeName: "Standard", NightlyRate: 300_000,
					StartDate: date("2026-03-10"), EndDate: date("2026-03-11"), TotalRooms: 1},
			},
			wantTotal:  -700_000,
			wantRefund: 700_000,
		},
		{
			name: "voided orders are excluded",
			booking: model.Booking{
				ID: "b-4", Status: model.StatusConfirmed,
			},
			lines: []model.RoomTypeLine{
				{ID: "l-1", BookingID: "b-4", RoomTypeName: "Standard", NightlyRate: 100_000,
					StartDate: date("2026-03-10"), EndDate: date("2026-03-11"), TotalRooms: 1},
			},
			orders: []orderModel.Order{
				{ID: "o-1", BookingID: "b-4", Total: 75_000},
				{ID: "o-2", BookingID: "b-4", Total: 999_000, Voided: true},
			},
			wantTotal: 175_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl, cfg)

			m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.lines, nil)
			m.assignRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.assignments, nil)
			m.orders.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.orders, nil)

			res, err := svc.Settlement(context.Background(), tt.booking.ID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantRefund, res.RefundDue)
		})
	}
}

func TestBookingService_Settlement_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := svc.Settlement(context.Background(), "missing")

	assert.Error(t, err)
}

func TestBookingService_EarlyCheckoutQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Booking.EarlyCheckoutPenaltyPct = 20

	svc, m := newBookingService(ctrl, cfg)

	booking := pendingBooking("b-1")
	booking.Status = model.StatusConfirmed

	lines := []model.RoomTypeLine{
		{ID: "l-1", BookingID: "b-1", RoomTypeName: "Standard", NightlyRate: 500_000,
			StartDate: date("2026-03-10"), EndDate: date("2026-03-15"), TotalRooms: 1},
	}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(lines, nil)

	res, err := svc.EarlyCheckoutQuote(context.Background(), "b-1", date("2026-03-13"))

	assert.NoError(t, err)
	assert.Equal(t, 5, res.NightsBooked)
	assert.Equal(t, 3, res.NightsUsed)
	assert.Equal(t, 2, res.NightsUnused)
	assert.Equal(t, int64(1_000_000), res.UnusedCharges)
	assert.Equal(t, int64(200_000), res.Penalty)
	assert.Equal(t, int64(800_000), res.Saved)
}

func TestBookingService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "pending booking confirms", status: model.StatusPending},
		{name: "confirmed booking is rejected", status: model.StatusConfirmed, wantErr: true},
		{name: "cancelled booking is rejected", status: model.StatusCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl, &config.Config{})
			allowAsync(m)

			booking := pendingBooking("b-1")
			booking.Status = tt.status

			m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

			if !tt.wantErr {
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Confirm(context.Background(), "b-1", "staff-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel_RefundBoundedByDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	booking := pendingBooking("b-1")
	booking.Deposit = 500_000

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

	err := svc.Cancel(context.Background(), dto.CancelBookingRequest{
		RefundAmount: 300_000,
		DeductAmount: 300_000,
	}, "b-1", "staff-1")

	assert.Error(t, err)
}

func TestBookingService_Cancel_TerminalBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	booking := pendingBooking("b-1")
	booking.Status = model.StatusCompleted

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

	err := svc.Cancel(context.Background(), dto.CancelBookingRequest{}, "b-1", "staff-1")

	assert.Error(t, err)
}

func TestBookingService_AddCallLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown result is rejected", func(t *testing.T) {
		svc, _ := newBookingService(ctrl, &config.Config{})

		err := svc.AddCallLog(context.Background(), dto.AddCallLogRequest{Result: "voicemail"}, "b-1", "staff-1")

		assert.Error(t, err)
	})

	t.Run("no answer only records the attempt", func(t *testing.T) {
		svc, m := newBookingService(ctrl, &config.Config{})

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("b-1"), nil)
		m.callLogs.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry model.CallLog) error {
				assert.Equal(t, "b-1", entry.BookingID)
				assert.Equal(t, model.CallResultNoAnswer, entry.Result)
				return nil
			})

		err := svc.AddCallLog(context.Background(), dto.AddCallLogRequest{Result: model.CallResultNoAnswer}, "b-1", "staff-1")

		assert.NoError(t, err)
	})

	t.Run("confirmed result confirms the booking", func(t *testing.T) {
		svc, m := newBookingService(ctrl, &config.Config{})
		allowAsync(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("b-1"), nil).Times(2)
		m.callLogs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.AddCallLog(context.Background(), dto.AddCallLogRequest{Result: model.CallResultConfirmed}, "b-1", "staff-1")

		assert.NoError(t, err)
	})

	t.Run("non pending booking is rejected", func(t *testing.T) {
		svc, m := newBookingService(ctrl, &config.Config{})

		booking := pendingBooking("b-1")
		booking.Status = model.StatusConfirmed

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.AddCallLog(context.Background(), dto.AddCallLogRequest{Result: model.CallResultNoAnswer}, "b-1", "staff-1")

		assert.Error(t, err)
	})
}

func TestBookingService_GetCallLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	logs := []model.CallLog{
		{ID: "c-1", BookingID: "b-1", Result: model.CallResultNoAnswer, CalledAt: timezone.Now()},
	}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("b-1"), nil)
	m.callLogs.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(logs, nil)

	res, err := svc.GetCallLogs(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Len(t, res.CallLogs, 1)
	assert.Equal(t, model.CallResultNoAnswer, res.CallLogs[0].Result)
}

func TestBookingService_CancelNoShows_SkipsFutureStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	cutoff := date("2026-03-10")

	pending := []model.Booking{pendingBooking("b-future"), pendingBooking("b-unlined")}

	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomTypeLine{
		{ID: "l-1", BookingID: "b-future", StartDate: date("2026-03-20"), EndDate: date("2026-03-22"), TotalRooms: 1},
	}, nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomTypeLine{}, nil)

	res, err := svc.CancelNoShows(context.Background(), cutoff, "staff-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, res.CancelledCount)
	assert.Empty(t, res.BookingIDs)
}

func TestBookingService_CancelNoShows_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.CancelNoShows(context.Background(), timezone.Now(), "staff-1")

	assert.Error(t, err)
}

func TestBookingService_Get_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl, &config.Config{})

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.BookingResponse)
			assert.True(t, ok)
			res.ID = "b-cached"
			return nil
		})

	res, err := svc.Get(context.Background(), "b-cached")

	assert.NoError(t, err)
	assert.Equal(t, "b-cached", res.ID)
}

func TestBookingService_Get_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc, m := newBookingService(ctrl, cfg)
	allowAsync(m)

	booking := pendingBooking("b-1")

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	m.guestSvc.EXPECT().Get(gomock.Any(), "guest-1").Return(guestDto.GuestResponse{ID: "guest-1", FullName: "Jamie Guest"}, nil)
	m.lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomTypeLine{
		{ID: "l-1", BookingID: "b-1", RoomTypeName: "Standard", NightlyRate: 500_000,
			StartDate: date("2026-03-10"), EndDate: date("2026-03-12"), TotalRooms: 1},
	}, nil)
	m.assignRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomAssignment{
		{ID: "a-1", LineID: "l-1", BookingID: "b-1", RoomID: "r-1", RoomNumber: "101",
			StartDate: date("2026-03-10"), EndDate: date("2026-03-12"), Status: model.RoomStatusPending},
	}, nil)
	m.guestLinks.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.Get(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, "b-1", res.ID)
	assert.Equal(t, "Jamie Guest", res.Guest.FullName)
	assert.Len(t, res.Lines, 1)
	assert.Len(t, res.Lines[0].Rooms, 1)
	assert.Equal(t, "101", res.Lines[0].Rooms[0].RoomNumber)
}
