package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/billing/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/logger"
	gRepo "fieldserve/shared/repository"
	"fieldserve/shared/timezone"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	queryNextSequence = `UPDATE document_sequences SET last_value = last_value + 1
		WHERE document_type = $1 RETURNING last_value`

	querySumCredited = `SELECT COALESCE(SUM(total), 0) FROM credit_notes
		WHERE invoice_id = $1 AND status <> $2`

	querySummary = `SELECT
		(SELECT COUNT(*) FROM invoices WHERE issue_date BETWEEN $1::date AND $2::date) AS invoice_count,
		(SELECT COALESCE(SUM(total), 0) FROM invoices WHERE issue_date BETWEEN $1::date AND $2::date) AS invoiced,
		(SELECT COUNT(*) FROM credit_notes
			WHERE status <> $3 AND created_at >= $4 AND created_at < $5) AS credit_note_count,
		(SELECT COALESCE(SUM(total), 0) FROM credit_notes
			WHERE status <> $3 AND created_at >= $4 AND created_at < $5) AS credited,
		(SELECT COALESCE(SUM(amount), 0) FROM credit_note_applications
			WHERE applied_at >= $4 AND applied_at < $5) AS applied`
)

type Billing interface {
	// NextSequenceTx allocates the next number for documentType. The row stays locked until tx
	// ends, so numbers are gapless unless tx rolls back.
	NextSequenceTx(ctx context.Context, tx *sqlx.Tx, documentType string) (int64, error)

	InsertInvoiceTx(ctx context.Context, tx *sqlx.Tx, invoice model.Invoice) error
	GetInvoice(ctx context.Context, id string) (model.Invoice, error)
	GetInvoiceForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Invoice, error)
	GetInvoiceByBooking(ctx context.Context, bookingID string) (model.Invoice, error)
	ExistInvoiceForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (bool, error)
	GetInvoices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Invoice, error)
	CountInvoices(ctx context.Context, filter gDto.FilterGroup) (int, error)

	InsertCreditNoteTx(ctx context.Context, tx *sqlx.Tx, creditNote model.CreditNote) error
	GetCreditNote(ctx context.Context, id string) (model.CreditNote, error)
	GetCreditNoteForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.CreditNote, error)
	GetCreditNotes(ctx context.Context, invoiceID string) ([]model.CreditNote, error)
	UpdateCreditNoteTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error
	// SumCreditedTx totals the invoice's credit notes that are not cancelled.
	SumCreditedTx(ctx context.Context, tx *sqlx.Tx, invoiceID string) (decimal.Decimal, error)

	InsertApplicationTx(ctx context.Context, tx *sqlx.Tx, application model.Application) error
	GetApplications(ctx context.Context, creditNoteID string) ([]model.Application, error)
	CountApplicationsTx(ctx context.Context, tx *sqlx.Tx, creditNoteID string) (int, error)

	// Summary totals documents of the business days from through to, inclusive.
	Summary(ctx context.Context, from, to time.Time) (model.Summary, error)
}

type repositoryImpl struct {
	invoices     gRepo.Repository[model.Invoice]
	creditNotes  gRepo.Repository[model.CreditNote]
	applications gRepo.Repository[model.Application]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billing {
	return &repositoryImpl{
		invoices:     gRepo.NewRepository[model.Invoice](model.EntityInvoice, model.TableInvoices, model.FieldID, db, otel),
		creditNotes:  gRepo.NewRepository[model.CreditNote](model.EntityCreditNote, model.TableCreditNotes, model.FieldID, db, otel),
		applications: gRepo.NewRepository[model.Application](model.EntityApplication, model.TableApplications, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func (r *repositoryImpl) NextSequenceTx(ctx context.Context, tx *sqlx.Tx, documentType string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".NextSequenceTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNextSequence)

	var next int64

	if err := tx.GetContext(ctx, &next, queryNextSequence, documentType); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to allocate %s sequence: %w", documentType, err)
	}

	return next, nil
}

func (r *repositoryImpl) InsertInvoiceTx(ctx context.Context, tx *sqlx.Tx, invoice model.Invoice) error {
	return r.invoices.InsertTx(ctx, tx, invoice) //nolint:wrapcheck
}

func (r *repositoryImpl) GetInvoice(ctx context.Context, id string) (model.Invoice, error) {
	return r.invoices.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableInvoices)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetInvoiceForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Invoice, error) {
	return r.invoices.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableInvoices)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetInvoiceByBooking(ctx context.Context, bookingID string) (model.Invoice, error) {
	return r.invoices.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableInvoices)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistInvoiceForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (bool, error) {
	return r.invoices.ExistTx(ctx, tx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableInvoices)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetInvoices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Invoice, error) {
	return r.invoices.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountInvoices(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.invoices.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertCreditNoteTx(ctx context.Context, tx *sqlx.Tx, creditNote model.CreditNote) error {
	return r.creditNotes.InsertTx(ctx, tx, creditNote) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCreditNote(ctx context.Context, id string) (model.CreditNote, error) {
	return r.creditNotes.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableCreditNotes)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCreditNoteForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.CreditNote, error) {
	return r.creditNotes.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableCreditNotes)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCreditNotes(ctx context.Context, invoiceID string) ([]model.CreditNote, error) {
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableCreditNotes, model.FieldCreatedAt),
		SortDir: gDto.SortDirAsc,
	}

	return r.creditNotes.GetAll(ctx, params, shared.FilterByID(invoiceID, model.FieldInvoiceID, model.TableCreditNotes)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateCreditNoteTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error {
	return r.creditNotes.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableCreditNotes)) //nolint:wrapcheck
}

func (r *repositoryImpl) SumCreditedTx(ctx context.Context, tx *sqlx.Tx, invoiceID string) (decimal.Decimal, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SumCreditedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySumCredited)

	var total decimal.Decimal

	if err := tx.GetContext(ctx, &total, querySumCredited, invoiceID, model.CreditNoteStatusCancelled); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum credit notes: %w", err)
	}

	return total, nil
}

func (r *repositoryImpl) InsertApplicationTx(ctx context.Context, tx *sqlx.Tx, application model.Application) error {
	return r.applications.InsertTx(ctx, tx, application) //nolint:wrapcheck
}

func (r *repositoryImpl) GetApplications(ctx context.Context, creditNoteID string) ([]model.Application, error) {
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableApplications, model.FieldAppliedAt),
		SortDir: gDto.SortDirAsc,
	}

	return r.applications.GetAll(ctx, params, shared.FilterByID(creditNoteID, model.FieldCreditNoteID, model.TableApplications)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountApplicationsTx(ctx context.Context, tx *sqlx.Tx, creditNoteID string) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountApplicationsTx")
	defer scope.End()

	query := `SELECT COUNT(*) FROM credit_note_applications WHERE credit_note_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	if err := tx.GetContext(ctx, &total, query, creditNoteID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count credit note applications: %w", err)
	}

	return total, nil
}

func (r *repositoryImpl) Summary(ctx context.Context, from, to time.Time) (model.Summary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Summary")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummary)

	var summary model.Summary

	start, end := timezone.DayRange(from, to)

	if err := r.db.Read.GetContext(ctx, &summary, querySummary,
		timezone.Format(from, constant.BusinessDateFormat), timezone.Format(to, constant.BusinessDateFormat),
		model.CreditNoteStatusCancelled, start, end); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize billing: %w", err)
	}

	return summary, nil
}
