//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/infras/redis"
	generalHandler "todoapi/internal/handlers/general"
	todoHandler "todoapi/internal/handlers/todo"
	"todoapi/shared/cache"
	"todoapi/shared/identifier"
	"todoapi/transport/http"
	"todoapi/transport/http/middleware"
	"todoapi/transport/http/router"
	"todoapi/transport/http/state"

	todoRepository "todoapi/internal/domains/todo/repository"
	todoService "todoapi/internal/domains/todo/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	identifier.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	generalHandler.New,
	todoHandler.New,
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
		state.New,
		http.New,
	)

	return &http.HTTP{}
}
