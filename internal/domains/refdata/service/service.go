package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldserve/config"
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/refdata/model"
	"fieldserve/internal/domains/refdata/repository"
	"fieldserve/shared"
	"fieldserve/shared/cache"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/timezone"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheService     = "refdata:service"
	cacheServiceType = "refdata:service_type"
	cacheLocation    = "refdata:location"
	cacheTaxRate     = "refdata:tax_rate"
	cacheDiscount    = "refdata:discount"
	cacheCustomer    = "refdata:customer"
	cacheProvider    = "refdata:provider"
)

// Lookup resolves reference data by id. Unknown references fail with InvalidInput,
// except discount codes which fail with DiscountInapplicable.
type Lookup interface {
	ResolveService(ctx context.Context, id string) (model.Service, error)
	ResolveServiceType(ctx context.Context, id string) (model.ServiceType, error)
	ResolveLocation(ctx context.Context, pincode string) (model.Location, error)
	ResolveTaxRate(ctx context.Context, stateID string, on time.Time) (rate decimal.Decimal, found bool, err error)
	ResolveDiscount(ctx context.Context, code string) (model.Discount, error)
	ResolveCustomer(ctx context.Context, id string) (model.Customer, error)
	ResolveProvider(ctx context.Context, id string) (model.Provider, error)
}

type serviceImpl struct {
	repo  repository.Refdata
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Refdata, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Lookup {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// cached is the cache-aside read shared by every resolver. A zero-id result means not found
// and is never cached.
func cached[T any](ctx context.Context, s *serviceImpl, cacheKey string, load func(ctx context.Context) (T, error), found func(T) bool) (res T, ok bool, err error) {
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reference data")

		return res, true, nil
	}

	res, err = load(ctx)
	if err != nil {
		return res, false, err
	}

	if !found(res) {
		return res, false, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save reference data to cache")
		}
	}()

	return res, true, nil
}

func (s *serviceImpl) ResolveService(ctx context.Context, id string) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheService, id), func(ctx context.Context) (model.Service, error) {
		return s.repo.GetService(ctx, id)
	}, func(m model.Service) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("serviceID", id).Msg("failed to resolve service")

		return res, fmt.Errorf("failed to resolve service: %w", err)
	}

	if !ok || !res.Active {
		return res, failure.Newf(failure.KindInvalidInput, "unknown service %s", id) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ResolveServiceType(ctx context.Context, id string) (res model.ServiceType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveServiceType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheServiceType, id), func(ctx context.Context) (model.ServiceType, error) {
		return s.repo.GetServiceType(ctx, id)
	}, func(m model.ServiceType) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("serviceTypeID", id).Msg("failed to resolve service type")

		return res, fmt.Errorf("failed to resolve service type: %w", err)
	}

	if !ok || !res.Active {
		return res, failure.Newf(failure.KindInvalidInput, "unknown service type %s", id) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ResolveLocation(ctx context.Context, pincode string) (res model.Location, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheLocation, pincode), func(ctx context.Context) (model.Location, error) {
		return s.repo.GetLocation(ctx, pincode)
	}, func(m model.Location) bool { return m.Pincode != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("pincode", pincode).Msg("failed to resolve location")

		return res, fmt.Errorf("failed to resolve location: %w", err)
	}

	if !ok || !res.Active {
		return res, failure.Newf(failure.KindInvalidInput, "unknown pincode %s", pincode) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ResolveTaxRate(ctx context.Context, stateID string, on time.Time) (rate decimal.Decimal, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveTaxRate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day := timezone.BusinessDate(on)
	cacheKey := shared.BuildCacheKey(cacheTaxRate, stateID, day.Format(constant.BusinessDateFormat))

	res, ok, err := cached(ctx, s, cacheKey, func(ctx context.Context) (model.TaxRate, error) {
		return s.repo.GetTaxRate(ctx, stateID, day)
	}, func(m model.TaxRate) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("stateID", stateID).Msg("failed to resolve tax rate")

		return decimal.Zero, false, fmt.Errorf("failed to resolve tax rate: %w", err)
	}

	if !ok {
		return decimal.Zero, false, nil
	}

	return res.Rate, true, nil
}

func (s *serviceImpl) ResolveDiscount(ctx context.Context, code string) (res model.Discount, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveDiscount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code = strings.ToUpper(strings.TrimSpace(code))

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheDiscount, code), func(ctx context.Context) (model.Discount, error) {
		return s.repo.GetDiscount(ctx, code)
	}, func(m model.Discount) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to resolve discount")

		return res, fmt.Errorf("failed to resolve discount: %w", err)
	}

	if !ok {
		return res, failure.Newf(failure.KindDiscountInapplicable, "unknown discount code %s", code) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ResolveCustomer(ctx context.Context, id string) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheCustomer, id), func(ctx context.Context) (model.Customer, error) {
		return s.repo.GetCustomer(ctx, id)
	}, func(m model.Customer) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("customerID", id).Msg("failed to resolve customer")

		return res, fmt.Errorf("failed to resolve customer: %w", err)
	}

	if !ok {
		return res, failure.Newf(failure.KindInvalidInput, "unknown customer %s", id) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ResolveProvider(ctx context.Context, id string) (res model.Provider, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok, err := cached(ctx, s, shared.BuildCacheKey(cacheProvider, id), func(ctx context.Context) (model.Provider, error) {
		return s.repo.GetProvider(ctx, id)
	}, func(m model.Provider) bool { return m.ID != constant.Empty })
	if err != nil {
		log.Error().Err(err).Str("providerID", id).Msg("failed to resolve provider")

		return res, fmt.Errorf("failed to resolve provider: %w", err)
	}

	if !ok || !res.Active {
		return res, failure.Newf(failure.KindInvalidInput, "unknown provider %s", id) // nolint:wrapcheck
	}

	return res, nil
}
