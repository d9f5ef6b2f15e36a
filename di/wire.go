//go:build wireinject
// +build wireinject

package di

import (
	"innkeeper/config"
	"innkeeper/infras/jwt"
	"innkeeper/infras/kafka"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/infras/redis"
	"innkeeper/infras/s3"
	"innkeeper/permissions"
	"innkeeper/shared/cache"
	"innkeeper/transport/http"
	"innkeeper/transport/http/middleware"
	"innkeeper/transport/http/router"

	authService "innkeeper/internal/domains/auth/service"
	bookingRepository "innkeeper/internal/domains/booking/repository"
	bookingService "innkeeper/internal/domains/booking/service"
	guestRepository "innkeeper/internal/domains/guest/repository"
	guestService "innkeeper/internal/domains/guest/service"
	hotelRepository "innkeeper/internal/domains/hotel/repository"
	orderRepository "innkeeper/internal/domains/order/repository"
	paymentRepository "innkeeper/internal/domains/payment/repository"
	pricingRepository "innkeeper/internal/domains/pricing/repository"
	pricingService "innkeeper/internal/domains/pricing/service"
	roomRepository "innkeeper/internal/domains/room/repository"
	roomService "innkeeper/internal/domains/room/service"
	staffRepository "innkeeper/internal/domains/staff/repository"

	authHandler "innkeeper/internal/handlers/auth"
	bookingHandler "innkeeper/internal/handlers/booking"
	guestHandler "innkeeper/internal/handlers/guest"
	healthHandler "innkeeper/internal/handlers/health"
	roomHandler "innkeeper/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	staffRepository.New,
	authService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingRepository.NewPromotion,
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewLine,
	bookingRepository.NewAssignment,
	bookingRepository.NewGuestLink,
	bookingRepository.NewCallLog,
	hotelRepository.New,
	paymentRepository.New,
	orderRepository.New,
	bookingService.New,
	bookingService.NewAvailability,
)

var domains = wire.NewSet(
	authDomain,
	guestDomain,
	roomDomain,
	pricingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
