//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	auditlogRepository "hotelier/internal/domains/auditlog/repository"
	auditlogService "hotelier/internal/domains/auditlog/service"
	authService "hotelier/internal/domains/auth/service"
	guestRepository "hotelier/internal/domains/guest/repository"
	guestService "hotelier/internal/domains/guest/service"
	paymentRepository "hotelier/internal/domains/payment/repository"
	paymentService "hotelier/internal/domains/payment/service"
	reportRepository "hotelier/internal/domains/report/repository"
	reportService "hotelier/internal/domains/report/service"
	reservationRepository "hotelier/internal/domains/reservation/repository"
	reservationService "hotelier/internal/domains/reservation/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	roomtypeRepository "hotelier/internal/domains/roomtype/repository"
	roomtypeService "hotelier/internal/domains/roomtype/service"
	staffRepository "hotelier/internal/domains/staff/repository"
	staffService "hotelier/internal/domains/staff/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	auditlogHandler "hotelier/internal/handlers/auditlog"
	authHandler "hotelier/internal/handlers/auth"
	guestHandler "hotelier/internal/handlers/guest"
	healthHandler "hotelier/internal/handlers/health"
	paymentHandler "hotelier/internal/handlers/payment"
	reportHandler "hotelier/internal/handlers/report"
	reservationHandler "hotelier/internal/handlers/reservation"
	roomHandler "hotelier/internal/handlers/room"
	roomtypeHandler "hotelier/internal/handlers/roomtype"
	staffHandler "hotelier/internal/handlers/staff"
	userHandler "hotelier/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditlogDomain = wire.NewSet(
	auditlogRepository.New,
	auditlogService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var roomTypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	auditlogDomain,
	userDomain,
	authDomain,
	guestDomain,
	staffDomain,
	roomTypeDomain,
	roomDomain,
	reservationDomain,
	paymentDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	guestHandler.New,
	staffHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	reservationHandler.New,
	paymentHandler.New,
	reportHandler.New,
	auditlogHandler.New,
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
