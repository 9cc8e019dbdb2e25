package service_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/config"
	"fieldserve/internal/domains/pricing/model"
	"fieldserve/internal/domains/pricing/service"
	"fieldserve/shared/failure"
	"fieldserve/shared/money"
)

var quoteTime = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pricingConfig(serviceCharge, platformCharge string) model.Config {
	return model.Config{
		CompanyStateID:   "KA",
		StatutoryTaxRate: dec("18"),
		ServiceCharge:    dec(serviceCharge),
		PlatformCharge:   dec(platformCharge),
		Precision:        money.Precision,
	}
}

func tenPercentOff() *model.DiscountTerms {
	return &model.DiscountTerms{
		ID:            "disc-1",
		Code:          "SAVE10",
		Type:          model.DiscountTypePercentage,
		Value:         dec("10"),
		MinOrderValue: dec("500"),
		ValidFrom:     quoteTime.AddDate(0, -1, 0),
		ValidTo:       quoteTime.AddDate(0, 1, 0),
		Active:        true,
	}
}

func TestNewConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Billing.CompanyStateID = "KA"
	cfg.Billing.StatutoryTaxRate = "18"
	cfg.Billing.ServiceCharge = "49"
	cfg.Billing.PlatformCharge = ""

	got, err := service.NewConfig(cfg)

	require.NoError(t, err)
	assert.True(t, got.StatutoryTaxRate.Equal(dec("18")))
	assert.True(t, got.ServiceCharge.Equal(dec("49")))
	assert.True(t, got.PlatformCharge.IsZero())

	cfg.Billing.ServiceCharge = "-1"
	_, err = service.NewConfig(cfg)
	assert.Error(t, err)

	cfg.Billing.ServiceCharge = "abc"
	_, err = service.NewConfig(cfg)
	assert.Error(t, err)
}

func TestCalculate_DeepCleaningSameState(t *testing.T) {
	cfg := pricingConfig("49", "10")

	got, err := service.Calculate(cfg, model.Input{
		BasePrice:       dec("1000"),
		CustomerStateID: "KA",
		At:              quoteTime,
	})

	require.NoError(t, err)
	assert.Equal(t, model.JurisdictionIntraState, got.Jurisdiction)
	assert.True(t, got.CGST.Equal(dec("90")), got.CGST.String())
	assert.True(t, got.SGST.Equal(dec("90")), got.SGST.String())
	assert.True(t, got.IGST.IsZero())
	assert.True(t, got.TotalTax.Equal(dec("180")))
	assert.True(t, got.FinalPrice.Equal(dec("1239")), got.FinalPrice.String())
	assert.Nil(t, got.Discount)
}

func TestCalculate_TenPercentDiscount(t *testing.T) {
	got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:       dec("1000"),
		CustomerStateID: "KA",
		Discount:        tenPercentOff(),
		At:              quoteTime,
	})

	require.NoError(t, err)
	assert.True(t, got.DiscountAmount.Equal(dec("100")))
	assert.True(t, got.TaxableAmount.Equal(dec("900")))
	assert.True(t, got.TotalTax.Equal(dec("162")))
	assert.True(t, got.FinalPrice.Equal(dec("1062")))
	require.NotNil(t, got.Discount)
	assert.Equal(t, "SAVE10", got.Discount.Code)
	assert.True(t, got.Discount.Amount.Equal(dec("100")))
}

func TestCalculate_InterState(t *testing.T) {
	got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:       dec("1000"),
		CustomerStateID: "MH",
		At:              quoteTime,
	})

	require.NoError(t, err)
	assert.Equal(t, model.JurisdictionInterState, got.Jurisdiction)
	assert.True(t, got.IGST.Equal(dec("180")))
	assert.True(t, got.CGST.IsZero())
	assert.True(t, got.SGST.IsZero())
}

func TestCalculate_ResolvedTaxRate(t *testing.T) {
	got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:       dec("1000"),
		CustomerStateID: "KA",
		TaxRate:         decimal.NewNullDecimal(dec("12")),
		At:              quoteTime,
	})

	require.NoError(t, err)
	assert.True(t, got.TaxRate.Equal(dec("12")))
	assert.True(t, got.CGST.Equal(dec("60")))
	assert.True(t, got.FinalPrice.Equal(dec("1120")))
}

func TestCalculate_LocationAdjustment(t *testing.T) {
	got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:          dec("1000"),
		LocationAdjustment: dec("150"),
		CustomerStateID:    "MH",
		At:                 quoteTime,
	})

	require.NoError(t, err)
	assert.True(t, got.TaxableAmount.Equal(dec("1150")))
	assert.True(t, got.FinalPrice.Equal(dec("1357")))

	_, err = service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:          dec("100"),
		LocationAdjustment: dec("-150"),
		At:                 quoteTime,
	})

	assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
}

func TestCalculate_DiscountCaps(t *testing.T) {
	t.Run("flat discount never exceeds the adjusted base", func(t *testing.T) {
		discount := tenPercentOff()
		discount.Type = model.DiscountTypeFlat
		discount.Value = dec("1500")

		got, err := service.Calculate(pricingConfig("20", "5"), model.Input{
			BasePrice:       dec("1000"),
			CustomerStateID: "KA",
			Discount:        discount,
			At:              quoteTime,
		})

		require.NoError(t, err)
		assert.True(t, got.DiscountAmount.Equal(dec("1000")))
		assert.True(t, got.TaxableAmount.IsZero())
		assert.True(t, got.FinalPrice.Equal(dec("25")))
	})

	t.Run("max discount amount", func(t *testing.T) {
		discount := tenPercentOff()
		discount.MaxDiscountAmount = decimal.NewNullDecimal(dec("40"))

		got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
			BasePrice:       dec("1000"),
			CustomerStateID: "KA",
			Discount:        discount,
			At:              quoteTime,
		})

		require.NoError(t, err)
		assert.True(t, got.DiscountAmount.Equal(dec("40")))
		assert.True(t, got.TaxableAmount.Equal(dec("960")))
	})
}

func TestCalculate_DiscountInapplicable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *model.DiscountTerms)
		base   string
	}{
		{name: "expired", mutate: func(d *model.DiscountTerms) { d.ValidTo = quoteTime.Add(-time.Hour) }, base: "1000"},
		{name: "not yet valid", mutate: func(d *model.DiscountTerms) { d.ValidFrom = quoteTime.Add(time.Hour) }, base: "1000"},
		{name: "below minimum order value", mutate: func(_ *model.DiscountTerms) {}, base: "499.99"},
		{name: "inactive", mutate: func(d *model.DiscountTerms) { d.Active = false }, base: "1000"},
		{name: "unsupported type", mutate: func(d *model.DiscountTerms) { d.Type = "bogo" }, base: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := tenPercentOff()
			tt.mutate(discount)

			_, err := service.Calculate(pricingConfig("0", "0"), model.Input{
				BasePrice:       dec(tt.base),
				CustomerStateID: "KA",
				Discount:        discount,
				At:              quoteTime,
			})

			assert.True(t, failure.IsKind(err, failure.KindDiscountInapplicable), "got %v", err)
		})
	}
}

func TestCalculate_RoundsOnce(t *testing.T) {
	got, err := service.Calculate(pricingConfig("0", "0"), model.Input{
		BasePrice:       dec("99.99"),
		CustomerStateID: "KA",
		At:              quoteTime,
	})

	require.NoError(t, err)
	assert.True(t, got.CGST.Equal(dec("8.9991")), "components keep full precision")
	assert.True(t, got.FinalPrice.Equal(dec("117.99")), got.FinalPrice.String())
}

func TestCalculate_IsPure(t *testing.T) {
	cfg := pricingConfig("49", "10")
	input := model.Input{
		BasePrice:          dec("1234.56"),
		LocationAdjustment: dec("-34.56"),
		CustomerStateID:    "KA",
		Discount:           tenPercentOff(),
		At:                 quoteTime,
	}

	first, err := service.Calculate(cfg, input)
	require.NoError(t, err)

	for range 5 {
		again, err := service.Calculate(cfg, input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalculate_RandomizedInvariants(t *testing.T) {
	rnd := rand.New(rand.NewPCG(20250610, 42))
	states := []string{"KA", "MH", "TN"}
	half := dec("0.005")

	for i := range 10000 {
		cfg := pricingConfig(
			decimal.New(rnd.Int64N(10000), -2).String(),
			decimal.New(rnd.Int64N(5000), -2).String(),
		)
		cfg.StatutoryTaxRate = decimal.New(rnd.Int64N(2800), -2)

		base := decimal.New(rnd.Int64N(10_000_000), -int32(rnd.IntN(4)))
		input := model.Input{
			BasePrice:          base,
			LocationAdjustment: decimal.New(rnd.Int64N(20000)-5000, -2),
			CustomerStateID:    states[rnd.IntN(len(states))],
			At:                 quoteTime,
		}

		if rnd.IntN(2) == 0 {
			discount := tenPercentOff()
			discount.MinOrderValue = money.Zero
			discount.Value = decimal.New(rnd.Int64N(5000), -2)

			if rnd.IntN(2) == 0 {
				discount.Type = model.DiscountTypeFlat
			}

			input.Discount = discount
		}

		got, err := service.Calculate(cfg, input)
		if base.Add(input.LocationAdjustment).IsNegative() {
			require.True(t, failure.IsKind(err, failure.KindInvalidInput), "iteration %d", i)

			continue
		}

		require.NoError(t, err, "iteration %d", i)

		raw := got.TaxableAmount.Add(got.TotalTax).Add(got.ServiceCharge).Add(got.PlatformCharge)

		assert.True(t, got.FinalPrice.Equal(got.FinalPrice.Round(2)), "iteration %d: %s has more than two decimals", i, got.FinalPrice)
		assert.True(t, got.FinalPrice.Sub(raw).Abs().LessThanOrEqual(half), "iteration %d: %s vs %s", i, got.FinalPrice, raw)
		assert.True(t, got.FinalPrice.Equal(money.Round(raw)), "iteration %d", i)
		assert.False(t, got.TaxableAmount.IsNegative(), "iteration %d", i)

		intra := !got.CGST.IsZero() || !got.SGST.IsZero()
		inter := !got.IGST.IsZero()
		assert.False(t, intra && inter, "iteration %d: both CGST/SGST and IGST set", i)
		assert.True(t, got.CGST.Equal(got.SGST), "iteration %d", i)
	}
}

func TestReprice(t *testing.T) {
	cfg := pricingConfig("0", "0")

	prior, err := service.Calculate(cfg, model.Input{
		BasePrice:       dec("1000"),
		CustomerStateID: "KA",
		Discount:        tenPercentOff(),
		At:              quoteTime,
	})
	require.NoError(t, err)

	got, err := service.Reprice(cfg, prior, dec("1200"))

	require.NoError(t, err)
	assert.True(t, got.DiscountAmount.Equal(dec("120")))
	assert.True(t, got.TaxableAmount.Equal(dec("1080")))
	assert.True(t, got.TotalTax.Equal(dec("194.4")))
	assert.True(t, got.FinalPrice.Equal(dec("1274.4")))
	assert.Equal(t, prior.Jurisdiction, got.Jurisdiction)
	assert.True(t, prior.Discount.Amount.Equal(dec("100")), "prior breakdown is not mutated")

	_, err = service.Reprice(cfg, prior, dec("-1"))
	assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
}
