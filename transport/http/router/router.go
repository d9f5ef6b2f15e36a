package router

import (
	_ "innkeeper/docs"
	"innkeeper/internal/handlers/auth"
	"innkeeper/internal/handlers/booking"
	"innkeeper/internal/handlers/guest"
	"innkeeper/internal/handlers/health"
	"innkeeper/internal/handlers/room"
	"innkeeper/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit())

	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthRole.Auth)
			protected.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
