//go:build wireinject
// +build wireinject

package di

import (
	"fieldserve/config"
	"fieldserve/infras/jwt"
	"fieldserve/infras/metrics"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/infras/redis"
	"fieldserve/permissions"
	"fieldserve/shared/cache"
	"fieldserve/shared/lock"
	"fieldserve/transport/http"
	"fieldserve/transport/http/middleware"
	"fieldserve/transport/http/router"

	availabilityRepository "fieldserve/internal/domains/availability/repository"
	availabilityService "fieldserve/internal/domains/availability/service"
	billingRepository "fieldserve/internal/domains/billing/repository"
	billingService "fieldserve/internal/domains/billing/service"
	bookingRepository "fieldserve/internal/domains/booking/repository"
	bookingService "fieldserve/internal/domains/booking/service"
	pricingService "fieldserve/internal/domains/pricing/service"
	refdataRepository "fieldserve/internal/domains/refdata/repository"
	refdataService "fieldserve/internal/domains/refdata/service"

	availabilityHandler "fieldserve/internal/handlers/availability"
	billingHandler "fieldserve/internal/handlers/billing"
	bookingHandler "fieldserve/internal/handlers/booking"
	pricingHandler "fieldserve/internal/handlers/pricing"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
	provideDispatcher,
	provideArchiver,
)

var refdataDomain = wire.NewSet(
	refdataRepository.New,
	refdataService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.NewConfig,
	pricingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	refdataDomain,
	pricingDomain,
	availabilityDomain,
	billingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	availabilityHandler.New,
	billingHandler.New,
	pricingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
