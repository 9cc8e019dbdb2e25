package billing

import (
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/billing/model"
	"fieldserve/internal/domains/billing/model/dto"
	"fieldserve/internal/domains/billing/service"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/validator"
	"fieldserve/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamFrom = "from"
	requestParamTo   = "to"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.IssueInvoice)
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/booking/{booking_id}", handler.GetInvoiceByBooking)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Get("/{id}/credit-notes", handler.GetCreditNotes)
	})

	router.Route("/credit-notes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.IssueCreditNote)
		routerGroup.Get("/{id}", handler.GetCreditNoteByID)
		routerGroup.Post("/{id}/apply", handler.ApplyCreditNote)
		routerGroup.Post("/{id}/cancel", handler.CancelCreditNote)
	})
}

// IssueInvoice issues the invoice of a completed booking.
// @Summary Issue an invoice
// @Description Normally issued on completion; this retries issuance. A booking is invoiced at most once.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.IssueInvoiceRequest true "Issue Invoice Request"
// @Success 201 {object} response.Data[dto.InvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
// @Security BearerAuth
func (handler *Handler) IssueInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueInvoice")
	defer scope.End()

	req := dto.IssueInvoiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	invoice, err := handler.service.IssueInvoice(ctx, req.BookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to issue invoice")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Invoice issued " + invoice.Number)

	response.WithJSON(writer, http.StatusCreated, invoice)
}

// GetInvoices lists invoices.
// @Summary Get all invoices
// @Tags Billing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param from query string false "Issued on or after (YYYY-MM-DD)"
// @Param to query string false "Issued on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()

	filterGroup := gDto.And()

	if bookingID := query.Get(constant.RequestParamBookingID); bookingID != "" {
		filterGroup.Add(gDto.Where(model.TableInvoices, model.FieldBookingID, gDto.FilterOperatorEq, bookingID))
	}

	for _, bound := range []struct {
		param    string
		operator string
	}{
		{requestParamFrom, gDto.FilterOperatorGreaterEq},
		{requestParamTo, gDto.FilterOperatorLessEq},
	} {
		value := query.Get(bound.param)
		if value == "" {
			continue
		}

		if err := validator.ValidateVar(value, "businessdate"); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request query")

			response.WithError(writer, err)

			return
		}

		filterGroup.Add(gDto.Where(model.TableInvoices, model.FieldIssueDate, bound.operator, value).
			As(model.FieldIssueDate + "_" + bound.param))
	}

	invoices, err := handler.service.GetInvoices(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, invoices)
}

// GetSummary totals invoices and credit notes issued in a date range.
// @Summary Billing summary
// @Description Defaults to the current month up to today.
// @Tags Billing
// @Produce json
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	req := dto.SummaryRequest{
		From: request.URL.Query().Get(requestParamFrom),
		To:   request.URL.Query().Get(requestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(writer, err)

		return
	}

	summary, err := handler.service.Summary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billing summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GetInvoiceByID retrieves an invoice.
// @Summary Get an invoice by ID
// @Tags Billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvoiceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	invoice, err := handler.service.GetInvoice(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, invoice)
}

// GetInvoiceByBooking retrieves the invoice of a booking.
// @Summary Get a booking's invoice
// @Tags Billing
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/booking/{booking_id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvoiceByBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByBooking")
	defer scope.End()

	invoice, err := handler.service.GetInvoiceByBooking(ctx, chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, invoice)
}

// GetCreditNotes lists the credit notes raised against an invoice.
// @Summary Get an invoice's credit notes
// @Tags Billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[[]dto.CreditNoteResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/credit-notes [get]
// @Security BearerAuth
func (handler *Handler) GetCreditNotes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditNotes")
	defer scope.End()

	creditNotes, err := handler.service.GetCreditNotes(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit notes")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, creditNotes)
}

// IssueCreditNote raises a full reversal or a partial credit against an invoice.
// @Summary Issue a credit note
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.IssueCreditNoteRequest true "Issue Credit Note Request"
// @Success 201 {object} response.Data[dto.CreditNoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/credit-notes [post]
// @Security BearerAuth
func (handler *Handler) IssueCreditNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueCreditNote")
	defer scope.End()

	req := dto.IssueCreditNoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	creditNote, err := handler.service.IssueCreditNote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("invoiceID", req.InvoiceID).Msg("failed to issue credit note")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Credit note issued " + creditNote.Number)

	response.WithJSON(writer, http.StatusCreated, creditNote)
}

// GetCreditNoteByID retrieves a credit note with its applications.
// @Summary Get a credit note by ID
// @Tags Billing
// @Produce json
// @Param id path string true "Credit Note ID"
// @Success 200 {object} response.Data[dto.CreditNoteResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/credit-notes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCreditNoteByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditNoteByID")
	defer scope.End()

	creditNote, err := handler.service.GetCreditNote(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit note")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, creditNote)
}

// ApplyCreditNote applies part or all of a credit note's remaining amount.
// @Summary Apply a credit note
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Credit Note ID"
// @Param request body dto.ApplyCreditNoteRequest true "Apply Credit Note Request"
// @Success 200 {object} response.Data[dto.CreditNoteResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/credit-notes/{id}/apply [post]
// @Security BearerAuth
func (handler *Handler) ApplyCreditNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyCreditNote")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.ApplyCreditNoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	creditNote, err := handler.service.ApplyCreditNote(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("creditNoteID", id).Msg("failed to apply credit note")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, creditNote)
}

// CancelCreditNote cancels a credit note that has not been applied.
// @Summary Cancel a credit note
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Credit Note ID"
// @Param request body dto.CancelCreditNoteRequest true "Cancel Credit Note Request"
// @Success 200 {object} response.Data[dto.CreditNoteResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/credit-notes/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelCreditNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelCreditNote")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.CancelCreditNoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	creditNote, err := handler.service.CancelCreditNote(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("creditNoteID", id).Msg("failed to cancel credit note")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, creditNote)
}
