package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	JurisdictionIntraState = "intra_state"
	JurisdictionInterState = "inter_state"

	DiscountTypeFlat       = "flat"
	DiscountTypePercentage = "percentage"
)

var errUnsupportedScan = errors.New("unsupported scan source for price breakdown")

// Config carries every tunable the calculator reads. It is passed explicitly on each call.
type Config struct {
	CompanyStateID   string
	StatutoryTaxRate decimal.Decimal
	ServiceCharge    decimal.Decimal
	PlatformCharge   decimal.Decimal
	Precision        int32
}

// DiscountTerms is a resolved discount code as the calculator sees it.
type DiscountTerms struct {
	ID                string
	Code              string
	Type              string
	Value             decimal.Decimal
	MinOrderValue     decimal.Decimal
	MaxDiscountAmount decimal.NullDecimal
	ValidFrom         time.Time
	ValidTo           time.Time
	Active            bool
}

// Input is fully resolved: the calculator performs no lookups.
type Input struct {
	BasePrice          decimal.Decimal
	LocationAdjustment decimal.Decimal
	CustomerStateID    string
	// TaxRate is the rate resolved for the customer state and date. Invalid falls back to the statutory rate.
	TaxRate  decimal.NullDecimal
	Discount *DiscountTerms
	At       time.Time
}

type AppliedDiscount struct {
	ID        string              `json:"id"`
	Code      string              `json:"code"`
	Type      string              `json:"type"`
	Value     decimal.Decimal     `json:"value"`
	MaxAmount decimal.NullDecimal `json:"max_amount"`
	Amount    decimal.Decimal     `json:"amount"`
}

// PriceBreakdown is frozen onto bookings and invoices. Components keep full precision;
// only FinalPrice is rounded.
type PriceBreakdown struct {
	BasePrice          decimal.Decimal  `json:"base_price"`
	LocationAdjustment decimal.Decimal  `json:"location_adjustment"`
	Discount           *AppliedDiscount `json:"discount,omitempty"`
	DiscountAmount     decimal.Decimal  `json:"discount_amount"`
	TaxableAmount      decimal.Decimal  `json:"taxable_amount"`
	TaxRate            decimal.Decimal  `json:"tax_rate"`
	Jurisdiction       string           `json:"jurisdiction"`
	CompanyStateID     string           `json:"company_state_id"`
	CustomerStateID    string           `json:"customer_state_id"`
	CGST               decimal.Decimal  `json:"cgst"`
	SGST               decimal.Decimal  `json:"sgst"`
	IGST               decimal.Decimal  `json:"igst"`
	TotalTax           decimal.Decimal  `json:"total_tax"`
	ServiceCharge      decimal.Decimal  `json:"service_charge"`
	PlatformCharge     decimal.Decimal  `json:"platform_charge"`
	FinalPrice         decimal.Decimal  `json:"final_price"`
}

// Value stores the breakdown as JSONB.
func (p PriceBreakdown) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal price breakdown: %w", err)
	}

	return b, nil
}

func (p *PriceBreakdown) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	case nil:
		*p = PriceBreakdown{}

		return nil
	default:
		return errUnsupportedScan
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to unmarshal price breakdown: %w", err)
	}

	return nil
}

// IsIntraState reports whether CGST and SGST apply instead of IGST.
func (p PriceBreakdown) IsIntraState() bool {
	return p.Jurisdiction == JurisdictionIntraState
}
