package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	pricingModel "fieldserve/internal/domains/pricing/model"
	"fieldserve/shared/model"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableInvoices     = "invoices"
	TableCreditNotes  = "credit_notes"
	TableApplications = "credit_note_applications"

	EntityInvoice     = "invoice"
	EntityCreditNote  = "credit_note"
	EntityApplication = "credit_note_application"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldInvoiceID     = "invoice_id"
	FieldCreditNoteID  = "credit_note_id"
	FieldIssueDate     = "issue_date"
	FieldStatus        = "status"
	FieldAppliedAmount = "applied_amount"
	FieldAppliedAt     = "applied_at"
	FieldCancelledAt   = "cancelled_at"
	FieldCancellation  = "cancellation_reason"
	FieldCreatedAt     = "created_at"

	// InvoiceBookingConstraint allows one invoice per booking.
	InvoiceBookingConstraint = "invoices_booking_id_key"
)

// Document types key the document_sequences table.
const (
	DocumentTypeInvoice    = "INV"
	DocumentTypeCreditNote = "CN"
)

const (
	PaymentStatusUnpaid = "unpaid"

	CreditNoteStatusIssued    = "issued"
	CreditNoteStatusApplied   = "applied"
	CreditNoteStatusCancelled = "cancelled"

	CreditTypeFullReversal = "full_reversal"
	CreditTypePartial      = "partial"
)

var errUnsupportedScan = errors.New("unsupported snapshot source type")

// PartySnapshot freezes a customer or provider as they were when the invoice was issued.
type PartySnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	GSTIN string `json:"gstin,omitempty"`
}

func (p PartySnapshot) Value() (driver.Value, error) {
	return marshalJSON(p)
}

func (p *PartySnapshot) Scan(src any) error {
	return scanJSON(src, p)
}

// ServiceSnapshot freezes what was delivered and where.
type ServiceSnapshot struct {
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	ServiceTypeID   string `json:"service_type_id,omitempty"`
	ServiceTypeName string `json:"service_type_name,omitempty"`
	Pincode         string `json:"pincode"`
	Address         string `json:"address"`
	CompletedAt     string `json:"completed_at,omitempty"`
}

func (s ServiceSnapshot) Value() (driver.Value, error) {
	return marshalJSON(s)
}

func (s *ServiceSnapshot) Scan(src any) error {
	return scanJSON(src, s)
}

// Invoice is written once and never updated.
type Invoice struct {
	ID            string                      `db:"id"             json:"id"`
	Number        string                      `db:"number"         json:"number"`
	Sequence      int64                       `db:"sequence"       json:"sequence"`
	BookingID     string                      `db:"booking_id"     json:"booking_id"`
	Customer      PartySnapshot               `db:"customer"       json:"customer"`
	Provider      PartySnapshot               `db:"provider"       json:"provider"`
	Service       ServiceSnapshot             `db:"service"        json:"service"`
	Breakdown     pricingModel.PriceBreakdown `db:"breakdown"      json:"breakdown"`
	Total         decimal.Decimal             `db:"total"          json:"total"`
	Currency      string                      `db:"currency"       json:"currency"`
	IssueDate     time.Time                   `db:"issue_date"     json:"issue_date"`
	PaymentStatus string                      `db:"payment_status" json:"payment_status"`
	model.Metadata
}

type CreditNote struct {
	ID                 string          `db:"id"                  json:"id"`
	Number             string          `db:"number"              json:"number"`
	Sequence           int64           `db:"sequence"            json:"sequence"`
	InvoiceID          string          `db:"invoice_id"          json:"invoice_id"`
	CreditType         string          `db:"credit_type"         json:"credit_type"`
	Reason             string          `db:"reason"              json:"reason"`
	Subtotal           decimal.Decimal `db:"subtotal"            json:"subtotal"`
	Discount           decimal.Decimal `db:"discount"            json:"discount"`
	TaxableAmount      decimal.Decimal `db:"taxable_amount"      json:"taxable_amount"`
	CGST               decimal.Decimal `db:"cgst"                json:"cgst"`
	SGST               decimal.Decimal `db:"sgst"                json:"sgst"`
	IGST               decimal.Decimal `db:"igst"                json:"igst"`
	AddOns             decimal.Decimal `db:"add_ons"             json:"add_ons"`
	Total              decimal.Decimal `db:"total"               json:"total"`
	AppliedAmount      decimal.Decimal `db:"applied_amount"      json:"applied_amount"`
	Status             string          `db:"status"              json:"status"`
	CancellationReason *string         `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time      `db:"cancelled_at"        json:"cancelled_at,omitempty"`
	model.Metadata
}

// Remaining is the amount still available for application.
func (c CreditNote) Remaining() decimal.Decimal {
	return c.Total.Sub(c.AppliedAmount)
}

type Application struct {
	ID           string          `db:"id"             json:"id"`
	CreditNoteID string          `db:"credit_note_id" json:"credit_note_id"`
	Amount       decimal.Decimal `db:"amount"         json:"amount"`
	Reference    string          `db:"reference"      json:"reference"`
	AppliedAt    time.Time       `db:"applied_at"     json:"applied_at"`
	AppliedBy    string          `db:"applied_by"     json:"applied_by"`
}

// Summary aggregates issued documents over a date range.
type Summary struct {
	InvoiceCount    int             `db:"invoice_count"`
	Invoiced        decimal.Decimal `db:"invoiced"`
	CreditNoteCount int             `db:"credit_note_count"`
	Credited        decimal.Decimal `db:"credited"`
	Applied         decimal.Decimal `db:"applied"`
}

func marshalJSON(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return b, nil
}

func scanJSON(src, dest any) error {
	var raw []byte

	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	case nil:
		return nil
	default:
		return errUnsupportedScan
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return nil
}
