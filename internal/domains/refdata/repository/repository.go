package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/refdata/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	gRepo "fieldserve/shared/repository"
	"fmt"
	"time"
)

type Refdata interface {
	GetService(ctx context.Context, id string) (model.Service, error)
	GetServiceType(ctx context.Context, id string) (model.ServiceType, error)
	GetLocation(ctx context.Context, pincode string) (model.Location, error)
	GetTaxRate(ctx context.Context, stateID string, on time.Time) (model.TaxRate, error)
	GetDiscount(ctx context.Context, code string) (model.Discount, error)
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	GetProvider(ctx context.Context, id string) (model.Provider, error)
}

type repositoryImpl struct {
	services     gRepo.Repository[model.Service]
	serviceTypes gRepo.Repository[model.ServiceType]
	locations    gRepo.Repository[model.Location]
	taxRates     gRepo.Repository[model.TaxRate]
	discounts    gRepo.Repository[model.Discount]
	customers    gRepo.Repository[model.Customer]
	providers    gRepo.Repository[model.Provider]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Refdata {
	return &repositoryImpl{
		services:     gRepo.NewRepository[model.Service](model.EntityService, model.TableServices, model.FieldID, db, otel),
		serviceTypes: gRepo.NewRepository[model.ServiceType](model.EntityServiceType, model.TableServiceTypes, model.FieldID, db, otel),
		locations:    gRepo.NewRepository[model.Location](model.EntityLocation, model.TablePincodes, model.FieldPincode, db, otel),
		taxRates:     gRepo.NewRepository[model.TaxRate](model.EntityTaxRate, model.TableTaxRates, model.FieldID, db, otel),
		discounts:    gRepo.NewRepository[model.Discount](model.EntityDiscount, model.TableDiscounts, model.FieldID, db, otel),
		customers:    gRepo.NewRepository[model.Customer](model.EntityCustomer, model.TableCustomers, model.FieldID, db, otel),
		providers:    gRepo.NewRepository[model.Provider](model.EntityProvider, model.TableProviders, model.FieldID, db, otel),
		otel:         otel,
	}
}

func (r *repositoryImpl) GetService(ctx context.Context, id string) (model.Service, error) {
	return r.services.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableServices)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetServiceType(ctx context.Context, id string) (model.ServiceType, error) {
	return r.serviceTypes.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableServiceTypes)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLocation(ctx context.Context, pincode string) (model.Location, error) {
	return r.locations.Get(ctx, shared.FilterByID(pincode, model.FieldPincode, model.TablePincodes)) //nolint:wrapcheck
}

// GetTaxRate returns the most recent rate effective on the given date, or a zero TaxRate.
func (r *repositoryImpl) GetTaxRate(ctx context.Context, stateID string, on time.Time) (model.TaxRate, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetTaxRate")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStateID, Value: stateID, Operator: gDto.FilterOperatorEq, Table: model.TableTaxRates},
			gDto.Filter{
				ArgName:  "effective_on_from",
				Field:    model.FieldEffectiveFrom,
				Value:    on,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableTaxRates,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldEffectiveTo, Operator: gDto.FilterIsNull, Table: model.TableTaxRates},
					gDto.Filter{
						ArgName:  "effective_on_to",
						Field:    model.FieldEffectiveTo,
						Value:    on,
						Operator: gDto.FilterOperatorGreaterEq,
						Table:    model.TableTaxRates,
					},
				},
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  fmt.Sprintf("%s.%s", model.TableTaxRates, model.FieldEffectiveFrom),
		SortDir: gDto.SortDirDesc,
	}

	rates, err := r.taxRates.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return model.TaxRate{}, fmt.Errorf("failed to get tax rate: %w", err)
	}

	if len(rates) == 0 {
		return model.TaxRate{}, nil
	}

	return rates[0], nil
}

func (r *repositoryImpl) GetDiscount(ctx context.Context, code string) (model.Discount, error) {
	return r.discounts.Get(ctx, shared.FilterByID(code, model.FieldCode, model.TableDiscounts)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	return r.customers.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableCustomers)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetProvider(ctx context.Context, id string) (model.Provider, error) {
	return r.providers.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableProviders)) //nolint:wrapcheck
}
