package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldserve/config"
	"fieldserve/infras/metrics"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/billing/model"
	"fieldserve/internal/domains/billing/model/dto"
	"fieldserve/internal/domains/billing/repository"
	bookingModel "fieldserve/internal/domains/booking/model"
	bookingRepo "fieldserve/internal/domains/booking/repository"
	documentService "fieldserve/internal/domains/document/service"
	notificationModel "fieldserve/internal/domains/notification/model"
	notificationService "fieldserve/internal/domains/notification/service"
	pricingService "fieldserve/internal/domains/pricing/service"
	refdataService "fieldserve/internal/domains/refdata/service"
	"fieldserve/shared"
	"fieldserve/shared/actor"
	"fieldserve/shared/cache"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/failure"
	sharedModel "fieldserve/shared/model"
	"fieldserve/shared/money"
	"fieldserve/shared/timezone"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetInvoice          = "billing:invoice"
	cacheGetInvoiceByBooking = "billing:invoice_booking"
	cacheGetAllInvoices      = "billing:invoices"
	cacheCountInvoices       = "billing:invoices_count"
)

// Ledger issues invoices and credit notes. Issued documents are immutable except for
// a credit note's applied amount and status, which only move forward.
type Ledger interface {
	IssueInvoice(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetInvoiceByBooking(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	GetInvoices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)

	IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest) (dto.CreditNoteResponse, error)
	ApplyCreditNote(ctx context.Context, id string, req dto.ApplyCreditNoteRequest) (dto.CreditNoteResponse, error)
	CancelCreditNote(ctx context.Context, id string, req dto.CancelCreditNoteRequest) (dto.CreditNoteResponse, error)
	GetCreditNote(ctx context.Context, id string) (dto.CreditNoteResponse, error)
	GetCreditNotes(ctx context.Context, invoiceID string) ([]dto.CreditNoteResponse, error)

	Summary(ctx context.Context, req dto.SummaryRequest) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo        repository.Billing
	bookingRepo bookingRepo.Booking
	lookup      refdataService.Lookup
	transactor  postgres.Transactor
	dispatcher  notificationService.Dispatcher
	archiver    documentService.Archiver
	metrics     metrics.Recorder
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Billing,
	bookingRepo bookingRepo.Booking,
	lookup refdataService.Lookup,
	transactor postgres.Transactor,
	dispatcher notificationService.Dispatcher,
	archiver documentService.Archiver,
	recorder metrics.Recorder,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Ledger {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		lookup:      lookup,
		transactor:  transactor,
		dispatcher:  dispatcher,
		archiver:    archiver,
		metrics:     recorder,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) IssueInvoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookingRepo.Get(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(bookingModel.EntityName) // nolint:wrapcheck
	}

	if err = checkInvoiceable(booking); err != nil {
		return res, err
	}

	invoice, err := s.draftInvoice(ctx, booking)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.bookingRepo.GetForUpdateTx(ctx, tx, bookingID)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if err = checkInvoiceable(locked); err != nil {
			return err
		}

		exist, err := s.repo.ExistInvoiceForBookingTx(ctx, tx, bookingID)
		if err != nil {
			return fmt.Errorf("failed to check existing invoice: %w", err)
		}

		if exist {
			return failure.Newf(failure.KindAlreadyInvoiced, "booking %s is already invoiced", bookingID) // nolint:wrapcheck
		}

		seq, err := s.repo.NextSequenceTx(ctx, tx, model.DocumentTypeInvoice)
		if err != nil {
			return err // nolint:wrapcheck
		}

		invoice.Sequence = seq

		invoice.Number, err = model.FormatNumber(s.cfg.Billing.InvoiceNumberTemplate, invoice.IssueDate, seq)
		if err != nil {
			return fmt.Errorf("failed to format invoice number: %w", err)
		}

		return s.repo.InsertInvoiceTx(ctx, tx, invoice) // nolint:wrapcheck
	})
	if postgres.IsUniqueViolation(err, model.InvoiceBookingConstraint) {
		return res, failure.Newf(failure.KindAlreadyInvoiced, "booking %s is already invoiced", bookingID) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to issue invoice")

		return res, err // nolint:wrapcheck
	}

	s.metrics.DocumentIssued(metrics.DocumentInvoice)
	s.archiver.ArchiveInvoice(ctx, invoice)
	s.dispatcher.Publish(ctx, notificationModel.Event{
		Type:        notificationModel.EventInvoiceIssued,
		AggregateID: invoice.ID,
		ActorID:     invoice.CreatedBy,
		Payload: map[string]any{
			"booking_id": bookingID,
			"number":     invoice.Number,
			"total":      invoice.Total.StringFixed(money.Precision),
		},
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoices, cacheCountInvoices)
	}()

	res.FromModel(invoice)

	return res, nil
}

func checkInvoiceable(booking bookingModel.Booking) error {
	if booking.Status != bookingModel.StatusCompleted || booking.FinalBreakdown == nil {
		return failure.Newf(failure.KindNotCompleted, "booking %s is %s, not completed", booking.ID, booking.Status) // nolint:wrapcheck
	}

	return nil
}

// draftInvoice snapshots the parties and service outside the transaction; sequence and number
// are filled in under the sequence row lock.
func (s *serviceImpl) draftInvoice(ctx context.Context, booking bookingModel.Booking) (model.Invoice, error) {
	customer, err := s.lookup.ResolveCustomer(ctx, booking.CustomerID)
	if err != nil {
		return model.Invoice{}, err // nolint:wrapcheck
	}

	provider, err := s.lookup.ResolveProvider(ctx, booking.ProviderID())
	if err != nil {
		return model.Invoice{}, err // nolint:wrapcheck
	}

	svc, err := s.lookup.ResolveService(ctx, booking.ServiceID)
	if err != nil {
		return model.Invoice{}, err // nolint:wrapcheck
	}

	snapshot := model.ServiceSnapshot{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Pincode:     booking.Pincode,
		Address:     booking.Address,
	}

	if booking.ServiceTypeID != nil {
		serviceType, err := s.lookup.ResolveServiceType(ctx, *booking.ServiceTypeID)
		if err != nil {
			return model.Invoice{}, err // nolint:wrapcheck
		}

		snapshot.ServiceTypeID = serviceType.ID
		snapshot.ServiceTypeName = serviceType.Name
	}

	if booking.CompletedAt != nil {
		snapshot.CompletedAt = timezone.Format(*booking.CompletedAt, constant.DateFormat)
	}

	now := timezone.Now()
	breakdown := *booking.FinalBreakdown

	return model.Invoice{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Customer: model.PartySnapshot{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
			GSTIN: customer.GSTIN,
		},
		Provider: model.PartySnapshot{
			ID:    provider.ID,
			Name:  provider.Name,
			Email: provider.Email,
			Phone: provider.Phone,
			GSTIN: provider.GSTIN,
		},
		Service:       snapshot,
		Breakdown:     breakdown,
		Total:         breakdown.FinalPrice,
		Currency:      s.cfg.Billing.Currency,
		IssueDate:     timezone.BusinessDate(now),
		PaymentStatus: model.PaymentStatusUnpaid,
		Metadata:      sharedModel.NewMetadata(actorID(ctx), now),
	}, nil
}

func (s *serviceImpl) GetInvoice(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedInvoice(ctx, shared.BuildCacheKey(cacheGetInvoice, id), func(ctx context.Context) (model.Invoice, error) {
		return s.repo.GetInvoice(ctx, id) // nolint:wrapcheck
	})
}

func (s *serviceImpl) GetInvoiceByBooking(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoiceByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedInvoice(ctx, shared.BuildCacheKey(cacheGetInvoiceByBooking, bookingID), func(ctx context.Context) (model.Invoice, error) {
		return s.repo.GetInvoiceByBooking(ctx, bookingID) // nolint:wrapcheck
	})
}

// cachedInvoice is safe to cache without invalidation because invoices are never updated.
func (s *serviceImpl) cachedInvoice(ctx context.Context, cacheKey string, load func(ctx context.Context) (model.Invoice, error)) (res dto.InvoiceResponse, err error) {
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice")

		return res, nil
	}

	invoice, err := load(ctx)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.New(failure.KindInvoiceNotFound, "invoice not found") // nolint:wrapcheck
	}

	res.FromModel(invoice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetInvoices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoices, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.repo.CountInvoices(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	invoices, err := s.repo.GetInvoices(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(invoices, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest) (res dto.CreditNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueCreditNote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	amounts, err := parseCreditAmounts(req)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	creditNote := model.CreditNote{
		ID:            uuid.NewString(),
		InvoiceID:     req.InvoiceID,
		CreditType:    req.CreditType,
		Reason:        req.Reason,
		AppliedAmount: money.Zero,
		Status:        model.CreditNoteStatusIssued,
		Metadata:      sharedModel.NewMetadata(actorID(ctx), now),
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		invoice, err := s.repo.GetInvoiceForUpdateTx(ctx, tx, req.InvoiceID)
		if err != nil {
			return fmt.Errorf("failed to lock invoice: %w", err)
		}

		if invoice.ID == constant.Empty {
			return failure.Newf(failure.KindInvoiceNotFound, "invoice %s not found", req.InvoiceID) // nolint:wrapcheck
		}

		if req.CreditType == model.CreditTypeFullReversal {
			fullReversal(&creditNote, invoice)
		} else if err = partialCredit(&creditNote, invoice, amounts); err != nil {
			return err
		}

		credited, err := s.repo.SumCreditedTx(ctx, tx, invoice.ID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		if credited.Add(creditNote.Total).GreaterThan(invoice.Total) {
			return failure.Newf(failure.KindCreditExceedsInvoice, // nolint:wrapcheck
				"credit of %s exceeds the %s left on invoice %s",
				creditNote.Total.StringFixed(money.Precision),
				invoice.Total.Sub(credited).StringFixed(money.Precision),
				invoice.Number)
		}

		seq, err := s.repo.NextSequenceTx(ctx, tx, model.DocumentTypeCreditNote)
		if err != nil {
			return err // nolint:wrapcheck
		}

		creditNote.Sequence = seq

		creditNote.Number, err = model.FormatNumber(s.cfg.Billing.CreditNumberTemplate, now, seq)
		if err != nil {
			return fmt.Errorf("failed to format credit note number: %w", err)
		}

		return s.repo.InsertCreditNoteTx(ctx, tx, creditNote) // nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("invoiceID", req.InvoiceID).Msg("failed to issue credit note")

		return res, err // nolint:wrapcheck
	}

	s.metrics.DocumentIssued(metrics.DocumentCreditNote)
	s.archiver.ArchiveCreditNote(ctx, creditNote)
	s.publishCreditNote(ctx, notificationModel.EventCreditNoteIssued, creditNote)

	res.FromModel(creditNote, nil)

	return res, nil
}

type creditAmounts struct {
	subtotal decimal.Decimal
	discount decimal.Decimal
	addOns   decimal.Decimal
}

func parseCreditAmounts(req dto.IssueCreditNoteRequest) (creditAmounts, error) {
	amounts := creditAmounts{subtotal: money.Zero, discount: money.Zero, addOns: money.Zero}

	if req.CreditType != model.CreditTypePartial {
		return amounts, nil
	}

	if req.Subtotal == constant.Empty {
		return amounts, failure.BadRequestFromString("subtotal is required for a partial credit") // nolint:wrapcheck
	}

	var err error

	for _, field := range []struct {
		value string
		dest  *decimal.Decimal
		name  string
	}{
		{req.Subtotal, &amounts.subtotal, "subtotal"},
		{req.Discount, &amounts.discount, "discount"},
		{req.AddOns, &amounts.addOns, "add_ons"},
	} {
		if field.value == constant.Empty {
			continue
		}

		if *field.dest, err = money.ParseAmount(field.value); err != nil {
			return amounts, failure.Newf(failure.KindInvalidInput, "invalid %s: %v", field.name, err) // nolint:wrapcheck
		}

		if field.dest.IsNegative() {
			return amounts, failure.Newf(failure.KindInvalidInput, "%s must not be negative", field.name) // nolint:wrapcheck
		}
	}

	if !amounts.subtotal.IsPositive() {
		return amounts, failure.BadRequestFromString("subtotal must be positive") // nolint:wrapcheck
	}

	if amounts.discount.GreaterThan(amounts.subtotal) {
		return amounts, failure.BadRequestFromString("discount exceeds subtotal") // nolint:wrapcheck
	}

	return amounts, nil
}

// fullReversal credits the invoice exactly as issued.
func fullReversal(creditNote *model.CreditNote, invoice model.Invoice) {
	b := invoice.Breakdown

	creditNote.Subtotal = money.Round(b.BasePrice.Add(b.LocationAdjustment))
	creditNote.Discount = money.Round(b.DiscountAmount)
	creditNote.TaxableAmount = money.Round(b.TaxableAmount)
	creditNote.CGST = money.Round(b.CGST)
	creditNote.SGST = money.Round(b.SGST)
	creditNote.IGST = money.Round(b.IGST)
	creditNote.AddOns = money.Round(b.ServiceCharge.Add(b.PlatformCharge))
	creditNote.Total = invoice.Total
}

// partialCredit taxes the credited amount with the invoice's frozen rate and jurisdiction.
func partialCredit(creditNote *model.CreditNote, invoice model.Invoice, amounts creditAmounts) error {
	taxable := amounts.subtotal.Sub(amounts.discount)
	cgst, sgst, igst := pricingService.Taxes(taxable, invoice.Breakdown.TaxRate, invoice.Breakdown.Jurisdiction)
	total := money.Round(taxable.Add(cgst).Add(sgst).Add(igst).Add(amounts.addOns))

	if !total.IsPositive() {
		return failure.BadRequestFromString("credit total must be positive") // nolint:wrapcheck
	}

	creditNote.Subtotal = money.Round(amounts.subtotal)
	creditNote.Discount = money.Round(amounts.discount)
	creditNote.TaxableAmount = money.Round(taxable)
	creditNote.CGST = money.Round(cgst)
	creditNote.SGST = money.Round(sgst)
	creditNote.IGST = money.Round(igst)
	creditNote.AddOns = money.Round(amounts.addOns)
	creditNote.Total = total

	return nil
}

func (s *serviceImpl) ApplyCreditNote(ctx context.Context, id string, req dto.ApplyCreditNoteRequest) (res dto.CreditNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyCreditNote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !amount.IsPositive() {
		return res, failure.BadRequestFromString("amount must be positive") // nolint:wrapcheck
	}

	now := timezone.Now()
	applicant := actorID(ctx)

	var creditNote model.CreditNote

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		creditNote, err = s.lockCreditNote(ctx, tx, id)
		if err != nil {
			return err
		}

		switch {
		case creditNote.Status == model.CreditNoteStatusCancelled:
			return failure.Newf(failure.KindNotIssued, "credit note %s is cancelled", creditNote.Number) // nolint:wrapcheck
		case creditNote.Status == model.CreditNoteStatusApplied || !creditNote.Remaining().IsPositive():
			return failure.Newf(failure.KindAlreadySettled, "credit note %s is fully applied", creditNote.Number) // nolint:wrapcheck
		case amount.GreaterThan(creditNote.Remaining()):
			return failure.Newf(failure.KindOverApplication, // nolint:wrapcheck
				"amount %s exceeds the remaining %s on credit note %s",
				amount.StringFixed(money.Precision), creditNote.Remaining().StringFixed(money.Precision), creditNote.Number)
		}

		application := model.Application{
			ID:           uuid.NewString(),
			CreditNoteID: creditNote.ID,
			Amount:       amount,
			Reference:    req.Reference,
			AppliedAt:    now,
			AppliedBy:    applicant,
		}

		if err = s.repo.InsertApplicationTx(ctx, tx, application); err != nil {
			return err // nolint:wrapcheck
		}

		creditNote.AppliedAmount = creditNote.AppliedAmount.Add(amount)
		if creditNote.AppliedAmount.Equal(creditNote.Total) {
			creditNote.Status = model.CreditNoteStatusApplied
		}

		creditNote.ModifiedAt = now
		creditNote.ModifiedBy = applicant

		return s.repo.UpdateCreditNoteTx(ctx, tx, map[string]any{ // nolint:wrapcheck
			model.FieldAppliedAmount: creditNote.AppliedAmount,
			model.FieldStatus:        creditNote.Status,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: applicant,
		}, creditNote.ID)
	})
	if err != nil {
		log.Error().Err(err).Str("creditNoteID", id).Msg("failed to apply credit note")

		return res, err // nolint:wrapcheck
	}

	s.publishCreditNote(ctx, notificationModel.EventCreditNoteApplied, creditNote)

	return s.creditNoteResponse(ctx, creditNote)
}

func (s *serviceImpl) CancelCreditNote(ctx context.Context, id string, req dto.CancelCreditNoteRequest) (res dto.CreditNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelCreditNote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	canceller := actorID(ctx)

	var creditNote model.CreditNote

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		creditNote, err = s.lockCreditNote(ctx, tx, id)
		if err != nil {
			return err
		}

		if creditNote.Status == model.CreditNoteStatusCancelled {
			return failure.Newf(failure.KindNotIssued, "credit note %s is already cancelled", creditNote.Number) // nolint:wrapcheck
		}

		applications, err := s.repo.CountApplicationsTx(ctx, tx, creditNote.ID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		if applications > 0 || creditNote.AppliedAmount.IsPositive() {
			return failure.Newf(failure.KindHasApplications, "credit note %s has been applied", creditNote.Number) // nolint:wrapcheck
		}

		creditNote.Status = model.CreditNoteStatusCancelled
		creditNote.CancellationReason = &req.Reason
		creditNote.CancelledAt = &now
		creditNote.ModifiedAt = now
		creditNote.ModifiedBy = canceller

		return s.repo.UpdateCreditNoteTx(ctx, tx, map[string]any{ // nolint:wrapcheck
			model.FieldStatus:        creditNote.Status,
			model.FieldCancellation:  req.Reason,
			model.FieldCancelledAt:   now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: canceller,
		}, creditNote.ID)
	})
	if err != nil {
		log.Error().Err(err).Str("creditNoteID", id).Msg("failed to cancel credit note")

		return res, err // nolint:wrapcheck
	}

	s.publishCreditNote(ctx, notificationModel.EventCreditNoteCancelled, creditNote)

	res.FromModel(creditNote, nil)

	return res, nil
}

func (s *serviceImpl) lockCreditNote(ctx context.Context, tx *sqlx.Tx, id string) (model.CreditNote, error) {
	creditNote, err := s.repo.GetCreditNoteForUpdateTx(ctx, tx, id)
	if err != nil {
		return creditNote, fmt.Errorf("failed to lock credit note: %w", err)
	}

	if creditNote.ID == constant.Empty {
		return creditNote, failure.NotFound(model.EntityCreditNote) // nolint:wrapcheck
	}

	return creditNote, nil
}

func (s *serviceImpl) GetCreditNote(ctx context.Context, id string) (res dto.CreditNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCreditNote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	creditNote, err := s.repo.GetCreditNote(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("creditNoteID", id).Msg("failed to get credit note")

		return res, fmt.Errorf("failed to get credit note: %w", err)
	}

	if creditNote.ID == constant.Empty {
		return res, failure.NotFound(model.EntityCreditNote) // nolint:wrapcheck
	}

	return s.creditNoteResponse(ctx, creditNote)
}

func (s *serviceImpl) creditNoteResponse(ctx context.Context, creditNote model.CreditNote) (res dto.CreditNoteResponse, err error) {
	applications, err := s.repo.GetApplications(ctx, creditNote.ID)
	if err != nil {
		log.Error().Err(err).Str("creditNoteID", creditNote.ID).Msg("failed to get credit note applications")

		return res, fmt.Errorf("failed to get credit note applications: %w", err)
	}

	res.FromModel(creditNote, applications)

	return res, nil
}

func (s *serviceImpl) GetCreditNotes(ctx context.Context, invoiceID string) (res []dto.CreditNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCreditNotes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.GetInvoice(ctx, invoiceID); err != nil {
		return res, err
	}

	creditNotes, err := s.repo.GetCreditNotes(ctx, invoiceID)
	if err != nil {
		log.Error().Err(err).Str("invoiceID", invoiceID).Msg("failed to get credit notes")

		return res, fmt.Errorf("failed to get credit notes: %w", err)
	}

	res = make([]dto.CreditNoteResponse, len(creditNotes))
	for i, creditNote := range creditNotes {
		res[i].FromModel(creditNote, nil)
	}

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context, req dto.SummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := summaryRange(req)
	if err != nil {
		return res, err
	}

	summary, err := s.repo.Summary(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize billing")

		return res, fmt.Errorf("failed to summarize billing: %w", err)
	}

	res.FromModel(summary)
	res.From = timezone.Format(from, constant.BusinessDateFormat)
	res.To = timezone.Format(to, constant.BusinessDateFormat)
	res.Currency = s.cfg.Billing.Currency

	return res, nil
}

// summaryRange defaults to the current month up to today.
func summaryRange(req dto.SummaryRequest) (from, to time.Time, err error) {
	to = timezone.Today()
	if req.To != constant.Empty {
		if to, err = timezone.ParseBusinessDate(req.To); err != nil {
			return from, to, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	from = to.AddDate(0, 0, 1-to.Day())
	if req.From != constant.Empty {
		if from, err = timezone.ParseBusinessDate(req.From); err != nil {
			return from, to, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	if from.After(to) {
		return from, to, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	return from, to, nil
}

func (s *serviceImpl) publishCreditNote(ctx context.Context, eventType notificationModel.EventType, creditNote model.CreditNote) {
	caller := actor.FromContext(ctx)

	s.dispatcher.Publish(ctx, notificationModel.Event{
		Type:        eventType,
		AggregateID: creditNote.ID,
		ActorID:     caller.ID,
		ActorRole:   caller.Role,
		Payload: map[string]any{
			"invoice_id":     creditNote.InvoiceID,
			"number":         creditNote.Number,
			"status":         creditNote.Status,
			"total":          creditNote.Total.StringFixed(money.Precision),
			"applied_amount": creditNote.AppliedAmount.StringFixed(money.Precision),
		},
	})
}

// actorID falls back to the system actor when the ledger runs after a lifecycle commit.
func actorID(ctx context.Context) string {
	if caller := actor.FromContext(ctx); !caller.IsZero() {
		return caller.ID
	}

	return actor.System.ID
}
