package dto

import (
	"fieldserve/internal/domains/pricing/model"
)

type QuoteRequest struct {
	ServiceID     string `json:"service_id"      validate:"required"`
	ServiceTypeID string `json:"service_type_id" validate:"omitempty"`
	Pincode       string `json:"pincode"         validate:"required,pincode"`
	PreferredDate string `json:"preferred_date"  validate:"required,businessdate"`
	DiscountCode  string `json:"discount_code"   validate:"omitempty,max=50"`
}

type QuoteResponse struct {
	ServiceID     string               `json:"service_id"`
	ServiceTypeID string               `json:"service_type_id,omitempty"`
	Pincode       string               `json:"pincode"`
	PreferredDate string               `json:"preferred_date"`
	Currency      string               `json:"currency"`
	Breakdown     model.PriceBreakdown `json:"breakdown"`
}

func (r *QuoteResponse) FromModel(req QuoteRequest, currency string, breakdown model.PriceBreakdown) {
	r.ServiceID = req.ServiceID
	r.ServiceTypeID = req.ServiceTypeID
	r.Pincode = req.Pincode
	r.PreferredDate = req.PreferredDate
	r.Currency = currency
	r.Breakdown = breakdown
}
