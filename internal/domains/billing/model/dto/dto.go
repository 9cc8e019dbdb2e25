package dto

import (
	"fieldserve/internal/domains/billing/model"
	pricingModel "fieldserve/internal/domains/pricing/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/timezone"
)

type IssueInvoiceRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type IssueCreditNoteRequest struct {
	InvoiceID  string `json:"invoice_id"  validate:"required"`
	CreditType string `json:"credit_type" validate:"required,oneof=full_reversal partial"`
	Reason     string `json:"reason"      validate:"required,max=500"`
	// Subtotal, Discount and AddOns are read for partial credits only.
	Subtotal string `json:"subtotal" validate:"omitempty,decimal=positive,cents"`
	Discount string `json:"discount" validate:"omitempty,decimal=nonnegative,cents"`
	AddOns   string `json:"add_ons"  validate:"omitempty,decimal=nonnegative,cents"`
}

type ApplyCreditNoteRequest struct {
	Amount    string `json:"amount"    validate:"required,decimal=positive,cents"`
	Reference string `json:"reference" validate:"omitempty,max=100"`
}

type CancelCreditNoteRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type SummaryRequest struct {
	From string `validate:"omitempty,businessdate"`
	To   string `validate:"omitempty,businessdate"`
}

type InvoiceResponse struct {
	ID            string                      `json:"id"`
	Number        string                      `json:"number"`
	BookingID     string                      `json:"booking_id"`
	Customer      model.PartySnapshot         `json:"customer"`
	Provider      model.PartySnapshot         `json:"provider"`
	Service       model.ServiceSnapshot       `json:"service"`
	Breakdown     pricingModel.PriceBreakdown `json:"breakdown"`
	Total         string                      `json:"total"`
	Currency      string                      `json:"currency"`
	IssueDate     string                      `json:"issue_date"`
	PaymentStatus string                      `json:"payment_status"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.BookingID = mod.BookingID
	r.Customer = mod.Customer
	r.Provider = mod.Provider
	r.Service = mod.Service
	r.Breakdown = mod.Breakdown
	r.Total = mod.Total.StringFixed(2)
	r.Currency = mod.Currency
	r.IssueDate = timezone.Format(mod.IssueDate, constant.BusinessDateFormat)
	r.PaymentStatus = mod.PaymentStatus
	r.Metadata.FromModel(mod.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}

type ApplicationResponse struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Reference string `json:"reference,omitempty"`
	AppliedAt string `json:"applied_at"`
	AppliedBy string `json:"applied_by"`
}

type CreditNoteResponse struct {
	ID                 string                `json:"id"`
	Number             string                `json:"number"`
	InvoiceID          string                `json:"invoice_id"`
	CreditType         string                `json:"credit_type"`
	Reason             string                `json:"reason"`
	Subtotal           string                `json:"subtotal"`
	Discount           string                `json:"discount"`
	TaxableAmount      string                `json:"taxable_amount"`
	CGST               string                `json:"cgst"`
	SGST               string                `json:"sgst"`
	IGST               string                `json:"igst"`
	AddOns             string                `json:"add_ons"`
	Total              string                `json:"total"`
	AppliedAmount      string                `json:"applied_amount"`
	Remaining          string                `json:"remaining"`
	Status             string                `json:"status"`
	CancellationReason string                `json:"cancellation_reason,omitempty"`
	CancelledAt        string                `json:"cancelled_at,omitempty"`
	Applications       []ApplicationResponse `json:"applications,omitempty"`
	gDto.Metadata
}

func (r *CreditNoteResponse) FromModel(mod model.CreditNote, applications []model.Application) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.InvoiceID = mod.InvoiceID
	r.CreditType = mod.CreditType
	r.Reason = mod.Reason
	r.Subtotal = mod.Subtotal.StringFixed(2)
	r.Discount = mod.Discount.StringFixed(2)
	r.TaxableAmount = mod.TaxableAmount.StringFixed(2)
	r.CGST = mod.CGST.StringFixed(2)
	r.SGST = mod.SGST.StringFixed(2)
	r.IGST = mod.IGST.StringFixed(2)
	r.AddOns = mod.AddOns.StringFixed(2)
	r.Total = mod.Total.StringFixed(2)
	r.AppliedAmount = mod.AppliedAmount.StringFixed(2)
	r.Remaining = mod.Remaining().StringFixed(2)
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)

	if mod.CancellationReason != nil {
		r.CancellationReason = *mod.CancellationReason
	}

	if mod.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*mod.CancelledAt, constant.DateFormat)
	}

	for _, application := range applications {
		r.Applications = append(r.Applications, ApplicationResponse{
			ID:        application.ID,
			Amount:    application.Amount.StringFixed(2),
			Reference: application.Reference,
			AppliedAt: timezone.Format(application.AppliedAt, constant.DateFormat),
			AppliedBy: application.AppliedBy,
		})
	}
}

type SummaryResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	Currency        string `json:"currency"`
	InvoiceCount    int    `json:"invoice_count"`
	Invoiced        string `json:"invoiced"`
	CreditNoteCount int    `json:"credit_note_count"`
	Credited        string `json:"credited"`
	Applied         string `json:"applied"`
	Net             string `json:"net"`
}

func (r *SummaryResponse) FromModel(mod model.Summary) {
	r.InvoiceCount = mod.InvoiceCount
	r.Invoiced = mod.Invoiced.StringFixed(2)
	r.CreditNoteCount = mod.CreditNoteCount
	r.Credited = mod.Credited.StringFixed(2)
	r.Applied = mod.Applied.StringFixed(2)
	r.Net = mod.Invoiced.Sub(mod.Credited).StringFixed(2)
}
