//go:build wireinject
// +build wireinject

package di

import (
	"catalog/config"
	"catalog/infras/jwt"
	"catalog/infras/kafka"
	"catalog/infras/otel"
	"catalog/infras/postgres"
	"catalog/infras/redis"
	"catalog/internal/listeners/booking"
	"catalog/shared/cache"
	"catalog/transport/http"
	"catalog/transport/http/middleware"
	"catalog/transport/http/router"

	resourceRepository "catalog/internal/domains/resource/repository"
	resourceService "catalog/internal/domains/resource/service"

	resourcePublisher "catalog/internal/domains/resource/publisher"
	resourceHandler "catalog/internal/handlers/resource"

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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourcePublisher.New,
	resourceService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	resourceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		resourceDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeBookingListener() *booking.Listener {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		resourceDomain,
		booking.New,
	)

	return &booking.Listener{}
}
