package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldserve/infras/otel/mocks"
	"fieldserve/internal/domains/pricing/model/dto"
	"fieldserve/internal/domains/pricing/service"
	refdataMocks "fieldserve/internal/domains/refdata/mocks"
	refdataModel "fieldserve/internal/domains/refdata/model"
	"fieldserve/shared/failure"
)

func TestQuoter_Quote(t *testing.T) {
	deepCleaning := refdataModel.Service{ID: "svc-deep", Name: "Deep Cleaning", BasePrice: dec("1000"), Active: true}
	bengaluru := refdataModel.Location{Pincode: "560001", StateID: "KA", Active: true}

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func(lookup *refdataMocks.MockLookup)
		wantFinal string
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "statutory rate when no state rate is configured",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", Pincode: "560001", PreferredDate: "2025-06-12"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(deepCleaning, nil)
				lookup.EXPECT().ResolveLocation(gomock.Any(), "560001").Return(bengaluru, nil)
				lookup.EXPECT().ResolveTaxRate(gomock.Any(), "KA", gomock.Any()).Return(decimal.Zero, false, nil)
			},
			wantFinal: "1180",
		},
		{
			name: "service type price replaces the base price",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", ServiceTypeID: "type-3bhk", Pincode: "560001", PreferredDate: "2025-06-12"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(deepCleaning, nil)
				lookup.EXPECT().ResolveServiceType(gomock.Any(), "type-3bhk").Return(refdataModel.ServiceType{
					ID: "type-3bhk", ServiceID: "svc-deep", Price: decimal.NewNullDecimal(dec("2000")), Active: true,
				}, nil)
				lookup.EXPECT().ResolveLocation(gomock.Any(), "560001").Return(bengaluru, nil)
				lookup.EXPECT().ResolveTaxRate(gomock.Any(), "KA", gomock.Any()).Return(dec("18"), true, nil)
			},
			wantFinal: "2360",
		},
		{
			name: "service type of another service",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", ServiceTypeID: "type-ac", Pincode: "560001", PreferredDate: "2025-06-12"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(deepCleaning, nil)
				lookup.EXPECT().ResolveServiceType(gomock.Any(), "type-ac").
					Return(refdataModel.ServiceType{ID: "type-ac", ServiceID: "svc-ac", Active: true}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "unknown discount code",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", Pincode: "560001", PreferredDate: "2025-06-12", DiscountCode: "NOPE"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(deepCleaning, nil)
				lookup.EXPECT().ResolveLocation(gomock.Any(), "560001").Return(bengaluru, nil)
				lookup.EXPECT().ResolveTaxRate(gomock.Any(), "KA", gomock.Any()).Return(decimal.Zero, false, nil)
				lookup.EXPECT().ResolveDiscount(gomock.Any(), "NOPE").
					Return(refdataModel.Discount{}, failure.New(failure.KindDiscountInapplicable, "unknown discount code NOPE"))
			},
			wantErr:  true,
			wantKind: failure.KindDiscountInapplicable,
		},
		{
			name: "unknown pincode",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", Pincode: "999999", PreferredDate: "2025-06-12"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(deepCleaning, nil)
				lookup.EXPECT().ResolveLocation(gomock.Any(), "999999").
					Return(refdataModel.Location{}, failure.New(failure.KindInvalidInput, "unknown pincode 999999"))
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "lookup infrastructure error",
			req:  dto.QuoteRequest{ServiceID: "svc-deep", Pincode: "560001", PreferredDate: "2025-06-12"},
			setupMock: func(lookup *refdataMocks.MockLookup) {
				lookup.EXPECT().ResolveService(gomock.Any(), "svc-deep").Return(refdataModel.Service{}, errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
		{
			name:      "malformed preferred date",
			req:       dto.QuoteRequest{ServiceID: "svc-deep", Pincode: "560001", PreferredDate: "12/06/2025"},
			setupMock: func(_ *refdataMocks.MockLookup) {},
			wantErr:   true,
			wantKind:  failure.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookup := refdataMocks.NewMockLookup(ctrl)
			tt.setupMock(lookup)

			svc := service.New(lookup, pricingConfig("0", "0"), mocks.NewOtel())

			got, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, got.FinalPrice.Equal(dec(tt.wantFinal)), got.FinalPrice.String())
		})
	}
}
