package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/pricing/model"
	"fieldserve/internal/domains/pricing/model/dto"
	refdataService "fieldserve/internal/domains/refdata/service"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Quoter resolves reference data for a request and prices it with Calculate.
type Quoter interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (model.PriceBreakdown, error)
	Config() model.Config
}

type serviceImpl struct {
	lookup refdataService.Lookup
	cfg    model.Config
	otel   otel.Otel
}

func New(lookup refdataService.Lookup, cfg model.Config, otel otel.Otel) Quoter {
	return &serviceImpl{
		lookup: lookup,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Config() model.Config {
	return s.cfg
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res model.PriceBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	preferredDate, err := timezone.ParseBusinessDate(req.PreferredDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid preferred date") // nolint:wrapcheck
	}

	service, err := s.lookup.ResolveService(ctx, req.ServiceID)
	if err != nil {
		return res, fmt.Errorf("failed to quote: %w", err)
	}

	basePrice := service.BasePrice

	if req.ServiceTypeID != constant.Empty {
		serviceType, err := s.lookup.ResolveServiceType(ctx, req.ServiceTypeID)
		if err != nil {
			return res, fmt.Errorf("failed to quote: %w", err)
		}

		if serviceType.ServiceID != service.ID {
			return res, failure.Newf(failure.KindInvalidInput, "service type %s does not belong to service %s", serviceType.ID, service.ID) // nolint:wrapcheck
		}

		if serviceType.Price.Valid {
			basePrice = serviceType.Price.Decimal
		}
	}

	location, err := s.lookup.ResolveLocation(ctx, req.Pincode)
	if err != nil {
		return res, fmt.Errorf("failed to quote: %w", err)
	}

	rate, found, err := s.lookup.ResolveTaxRate(ctx, location.StateID, preferredDate)
	if err != nil {
		return res, fmt.Errorf("failed to quote: %w", err)
	}

	input := model.Input{
		BasePrice:          basePrice,
		LocationAdjustment: location.LocationAdjustment,
		CustomerStateID:    location.StateID,
		TaxRate:            decimal.NullDecimal{Decimal: rate, Valid: found},
		At:                 timezone.Now(),
	}

	if req.DiscountCode != constant.Empty {
		discount, err := s.lookup.ResolveDiscount(ctx, req.DiscountCode)
		if err != nil {
			return res, fmt.Errorf("failed to quote: %w", err)
		}

		input.Discount = &model.DiscountTerms{
			ID:                discount.ID,
			Code:              discount.Code,
			Type:              discount.Type,
			Value:             discount.Value,
			MinOrderValue:     discount.MinOrderValue,
			MaxDiscountAmount: discount.MaxDiscountAmount,
			ValidFrom:         discount.ValidFrom,
			ValidTo:           discount.ValidTo,
			Active:            discount.Active,
		}
	}

	res, err = Calculate(s.cfg, input)
	if err != nil {
		log.Warn().Err(err).Str("serviceID", req.ServiceID).Str("pincode", req.Pincode).Msg("quote rejected")

		return res, fmt.Errorf("failed to quote: %w", err)
	}

	return res, nil
}
