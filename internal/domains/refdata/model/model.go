package model

import (
	"fieldserve/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityService     = "service"
	EntityServiceType = "service_type"
	EntityLocation    = "location"
	EntityTaxRate     = "tax_rate"
	EntityDiscount    = "discount"
	EntityCustomer    = "customer"
	EntityProvider    = "provider"

	TableServices     = "services"
	TableServiceTypes = "service_types"
	TablePincodes     = "pincodes"
	TableTaxRates     = "tax_rates"
	TableDiscounts    = "discounts"
	TableCustomers    = "customers"
	TableProviders    = "providers"

	FieldID            = "id"
	FieldPincode       = "pincode"
	FieldCode          = "code"
	FieldStateID       = "state_id"
	FieldEffectiveFrom = "effective_from"
	FieldEffectiveTo   = "effective_to"
)

const (
	DiscountTypeFlat       = "flat"
	DiscountTypePercentage = "percentage"
)

type Service struct {
	ID              string          `db:"id"               json:"id"`
	Name            string          `db:"name"             json:"name"`
	BasePrice       decimal.Decimal `db:"base_price"       json:"base_price"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Active          bool            `db:"active"           json:"active"`
	model.Metadata
}

type ServiceType struct {
	ID        string              `db:"id"         json:"id"`
	ServiceID string              `db:"service_id" json:"service_id"`
	Name      string              `db:"name"       json:"name"`
	Price     decimal.NullDecimal `db:"price"      json:"price"`
	Active    bool                `db:"active"     json:"active"`
	model.Metadata
}

// Location is the pricing view of a pincode.
type Location struct {
	Pincode            string          `db:"pincode"             json:"pincode"`
	StateID            string          `db:"state_id"            json:"state_id"`
	City               string          `db:"city"                json:"city"`
	RegionTier         string          `db:"region_tier"         json:"region_tier"`
	LocationAdjustment decimal.Decimal `db:"location_adjustment" json:"location_adjustment"`
	Active             bool            `db:"active"              json:"active"`
	model.Metadata
}

type TaxRate struct {
	ID            string          `db:"id"             json:"id"`
	StateID       string          `db:"state_id"       json:"state_id"`
	Rate          decimal.Decimal `db:"rate"           json:"rate"`
	EffectiveFrom time.Time       `db:"effective_from" json:"effective_from"`
	EffectiveTo   *time.Time      `db:"effective_to"   json:"effective_to"`
	model.Metadata
}

type Discount struct {
	ID                string              `db:"id"                  json:"id"`
	Code              string              `db:"code"                json:"code"`
	Type              string              `db:"type"                json:"type"`
	Value             decimal.Decimal     `db:"value"               json:"value"`
	MinOrderValue     decimal.Decimal     `db:"min_order_value"     json:"min_order_value"`
	MaxDiscountAmount decimal.NullDecimal `db:"max_discount_amount" json:"max_discount_amount"`
	ValidFrom         time.Time           `db:"valid_from"          json:"valid_from"`
	ValidTo           time.Time           `db:"valid_to"            json:"valid_to"`
	Active            bool                `db:"active"              json:"active"`
	model.Metadata
}

type Customer struct {
	ID    string `db:"id"    json:"id"`
	Name  string `db:"name"  json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
	GSTIN string `db:"gstin" json:"gstin"`
	model.Metadata
}

type Provider struct {
	ID     string `db:"id"     json:"id"`
	Name   string `db:"name"   json:"name"`
	Email  string `db:"email"  json:"email"`
	Phone  string `db:"phone"  json:"phone"`
	GSTIN  string `db:"gstin"  json:"gstin"`
	Active bool   `db:"active" json:"active"`
	model.Metadata
}
