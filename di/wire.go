//go:build wireinject
// +build wireinject

package di

import (
	"campusbook/config"
	"campusbook/infras/jwt"
	"campusbook/infras/kafka"
	"campusbook/infras/mailer"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/infras/qrcode"
	"campusbook/infras/redis"
	"campusbook/infras/s3"
	"campusbook/permissions"
	"campusbook/shared/cache"
	"campusbook/transport/http"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/router"

	authService "campusbook/internal/domains/auth/service"
	bookingRepository "campusbook/internal/domains/booking/repository"
	bookingService "campusbook/internal/domains/booking/service"
	scheduleRepository "campusbook/internal/domains/schedule/repository"
	scheduleService "campusbook/internal/domains/schedule/service"
	userRepository "campusbook/internal/domains/user/repository"
	userService "campusbook/internal/domains/user/service"
	venueRepository "campusbook/internal/domains/venue/repository"
	venueService "campusbook/internal/domains/venue/service"
	authHandler "campusbook/internal/handlers/auth"
	bookingHandler "campusbook/internal/handlers/booking"
	healthHandler "campusbook/internal/handlers/health"
	scheduleHandler "campusbook/internal/handlers/schedule"
	userHandler "campusbook/internal/handlers/user"
	venueHandler "campusbook/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
	qrcode.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	venueDomain,
	scheduleDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	venueHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
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
