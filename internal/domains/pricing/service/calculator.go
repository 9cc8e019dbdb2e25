package service

import (
	"errors"
	"fieldserve/config"
	"fieldserve/internal/domains/pricing/model"
	"fieldserve/shared/failure"
	"fieldserve/shared/money"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var errNegativeBilling = errors.New("billing rates and charges must not be negative")

// NewConfig reads the billing section into a calculator configuration.
func NewConfig(cfg *config.Config) (model.Config, error) {
	rate, err := money.Parse(cfg.Billing.StatutoryTaxRate)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid statutory tax rate: %w", err)
	}

	serviceCharge, err := money.Parse(cfg.Billing.ServiceCharge)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid service charge: %w", err)
	}

	platformCharge, err := money.Parse(cfg.Billing.PlatformCharge)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid platform charge: %w", err)
	}

	if rate.IsNegative() || serviceCharge.IsNegative() || platformCharge.IsNegative() {
		return model.Config{}, errNegativeBilling
	}

	return model.Config{
		CompanyStateID:   cfg.Billing.CompanyStateID,
		StatutoryTaxRate: rate,
		ServiceCharge:    serviceCharge,
		PlatformCharge:   platformCharge,
		Precision:        money.Precision,
	}, nil
}

// Calculate derives the payable breakdown. It is deterministic and performs no I/O.
func Calculate(cfg model.Config, in model.Input) (model.PriceBreakdown, error) {
	if in.BasePrice.IsNegative() {
		return model.PriceBreakdown{}, failure.BadRequestFromString("base price must not be negative") // nolint:wrapcheck
	}

	adjusted := in.BasePrice.Add(in.LocationAdjustment)
	if adjusted.IsNegative() {
		return model.PriceBreakdown{}, failure.BadRequestFromString("location adjustment exceeds base price") // nolint:wrapcheck
	}

	var applied *model.AppliedDiscount

	if in.Discount != nil {
		if err := checkDiscount(*in.Discount, in); err != nil {
			return model.PriceBreakdown{}, err
		}

		applied = &model.AppliedDiscount{
			ID:        in.Discount.ID,
			Code:      in.Discount.Code,
			Type:      in.Discount.Type,
			Value:     in.Discount.Value,
			MaxAmount: in.Discount.MaxDiscountAmount,
		}
	}

	rate := cfg.StatutoryTaxRate
	if in.TaxRate.Valid {
		rate = in.TaxRate.Decimal
	}

	jurisdiction := model.JurisdictionInterState
	if cfg.CompanyStateID != "" && strings.EqualFold(cfg.CompanyStateID, in.CustomerStateID) {
		jurisdiction = model.JurisdictionIntraState
	}

	return compose(cfg, composition{
		base:            in.BasePrice,
		adjustment:      in.LocationAdjustment,
		discount:        applied,
		rate:            rate,
		jurisdiction:    jurisdiction,
		customerStateID: in.CustomerStateID,
		serviceCharge:   cfg.ServiceCharge,
		platformCharge:  cfg.PlatformCharge,
	}), nil
}

// Reprice recomputes prior for an adjusted base price, keeping its frozen rate,
// jurisdiction, charges and discount terms.
func Reprice(cfg model.Config, prior model.PriceBreakdown, newBase decimal.Decimal) (model.PriceBreakdown, error) {
	if newBase.IsNegative() {
		return model.PriceBreakdown{}, failure.BadRequestFromString("final price must not be negative") // nolint:wrapcheck
	}

	if newBase.Add(prior.LocationAdjustment).IsNegative() {
		return model.PriceBreakdown{}, failure.BadRequestFromString("location adjustment exceeds final price") // nolint:wrapcheck
	}

	var applied *model.AppliedDiscount

	if prior.Discount != nil {
		copied := *prior.Discount
		applied = &copied
	}

	return compose(cfg, composition{
		base:            newBase,
		adjustment:      prior.LocationAdjustment,
		discount:        applied,
		rate:            prior.TaxRate,
		jurisdiction:    prior.Jurisdiction,
		customerStateID: prior.CustomerStateID,
		serviceCharge:   prior.ServiceCharge,
		platformCharge:  prior.PlatformCharge,
	}), nil
}

// Taxes splits tax on taxable by jurisdiction. Exactly one of (cgst+sgst) or igst is non-zero.
func Taxes(taxable, rate decimal.Decimal, jurisdiction string) (cgst, sgst, igst decimal.Decimal) {
	if jurisdiction == model.JurisdictionIntraState {
		half := rate.Div(money.Two)

		return money.Percent(taxable, half), money.Percent(taxable, half), money.Zero
	}

	return money.Zero, money.Zero, money.Percent(taxable, rate)
}

type composition struct {
	base            decimal.Decimal
	adjustment      decimal.Decimal
	discount        *model.AppliedDiscount
	rate            decimal.Decimal
	jurisdiction    string
	customerStateID string
	serviceCharge   decimal.Decimal
	platformCharge  decimal.Decimal
}

func compose(cfg model.Config, c composition) model.PriceBreakdown {
	adjusted := c.base.Add(c.adjustment)
	discountAmount := money.Zero

	if c.discount != nil {
		discountAmount = discountFor(*c.discount, adjusted)
		c.discount.Amount = discountAmount
	}

	taxable := adjusted.Sub(discountAmount)
	cgst, sgst, igst := Taxes(taxable, c.rate, c.jurisdiction)
	totalTax := cgst.Add(sgst).Add(igst)

	precision := cfg.Precision
	if precision <= 0 {
		precision = money.Precision
	}

	final := money.RoundHalfUp(taxable.Add(totalTax).Add(c.serviceCharge).Add(c.platformCharge), precision)

	return model.PriceBreakdown{
		BasePrice:          c.base,
		LocationAdjustment: c.adjustment,
		Discount:           c.discount,
		DiscountAmount:     discountAmount,
		TaxableAmount:      taxable,
		TaxRate:            c.rate,
		Jurisdiction:       c.jurisdiction,
		CompanyStateID:     cfg.CompanyStateID,
		CustomerStateID:    c.customerStateID,
		CGST:               cgst,
		SGST:               sgst,
		IGST:               igst,
		TotalTax:           totalTax,
		ServiceCharge:      c.serviceCharge,
		PlatformCharge:     c.platformCharge,
		FinalPrice:         final,
	}
}

// discountFor applies the optional cap and never lets the discount exceed the adjusted base.
func discountFor(d model.AppliedDiscount, adjusted decimal.Decimal) decimal.Decimal {
	amount := d.Value
	if d.Type == model.DiscountTypePercentage {
		amount = money.Percent(adjusted, d.Value)
	}

	if d.MaxAmount.Valid && amount.GreaterThan(d.MaxAmount.Decimal) {
		amount = d.MaxAmount.Decimal
	}

	return money.Clamp(amount, money.Zero, adjusted)
}

func checkDiscount(d model.DiscountTerms, in model.Input) error {
	switch {
	case !d.Active:
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s is inactive", d.Code) // nolint:wrapcheck
	case d.Type != model.DiscountTypeFlat && d.Type != model.DiscountTypePercentage:
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s has unsupported type %s", d.Code, d.Type) // nolint:wrapcheck
	case d.Value.IsNegative():
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s has a negative value", d.Code) // nolint:wrapcheck
	case in.At.Before(d.ValidFrom):
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s is not yet valid", d.Code) // nolint:wrapcheck
	case in.At.After(d.ValidTo):
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s has expired", d.Code) // nolint:wrapcheck
	case in.BasePrice.LessThan(d.MinOrderValue):
		return failure.Newf(failure.KindDiscountInapplicable, "discount %s requires a minimum order value of %s", d.Code, d.MinOrderValue.StringFixed(money.Precision)) // nolint:wrapcheck
	}

	return nil
}
