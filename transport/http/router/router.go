package router

import (
	"hotelier/internal/handlers/auditlog"
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/guest"
	"hotelier/internal/handlers/health"
	"hotelier/internal/handlers/payment"
	"hotelier/internal/handlers/report"
	"hotelier/internal/handlers/reservation"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/roomtype"
	"hotelier/internal/handlers/staff"
	"hotelier/internal/handlers/user"
	"hotelier/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Guest       guest.Handler
	Staff       staff.Handler
	RoomType    roomtype.Handler
	Room        room.Handler
	Reservation reservation.Handler
	Payment     payment.Handler
	Report      report.Handler
	AuditLog    auditlog.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.Logging)

	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AppMiddleware.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.AuditLog.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
