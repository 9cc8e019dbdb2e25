package booking

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/booking/model"
	"fieldserve/internal/domains/booking/model/dto"
	"fieldserve/internal/domains/booking/service"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/validator"
	"fieldserve/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lifecycle
	otel    otel.Otel
}

func New(service service.Lifecycle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/history", handler.GetBookingHistory)
		routerGroup.Post("/{id}/assign", handler.AssignBooking)
		routerGroup.Post("/{id}/start", handler.StartBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/hold", handler.HoldBooking)
		routerGroup.Post("/{id}/resume", handler.ResumeBooking)
		routerGroup.Post("/{id}/reject", handler.RejectBooking)
		routerGroup.Post("/{id}/reschedule", handler.ProposeReschedule)
		routerGroup.Post("/{id}/reschedule/respond", handler.RespondReschedule)
		routerGroup.Post("/{id}/rating", handler.RateBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Quote and create a pending booking. The price breakdown is frozen onto the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer ID"
// @Param provider_id query string false "Filter by assigned provider ID"
// @Param service_id query string false "Filter by service ID"
// @Param date query string false "Filter by preferred date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup, err := bookingFilter(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking filters")

		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}

func bookingFilter(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if value := query.Get(constant.RequestParamStatus); value != "" {
		status, err := model.ParseStatus(value)
		if err != nil {
			return filterGroup, err // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, eq(model.FieldStatus, string(status)))
	}

	if value := query.Get(model.FieldCustomerID); value != "" {
		filterGroup.Filters = append(filterGroup.Filters, eq(model.FieldCustomerID, value))
	}

	if value := query.Get(constant.RequestParamProviderID); value != "" {
		filterGroup.Filters = append(filterGroup.Filters, eq(model.FieldAssignedProviderID, value))
	}

	if value := query.Get(constant.RequestParamServiceID); value != "" {
		filterGroup.Filters = append(filterGroup.Filters, eq(model.FieldServiceID, value))
	}

	if value := query.Get(constant.RequestParamDate); value != "" {
		if err := validator.ValidateVar(value, "businessdate"); err != nil {
			return filterGroup, err // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, eq(model.FieldPreferredDate, value))
	}

	return filterGroup, nil
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    value,
		Table:    model.TableName,
	}
}

// GetMyBookings retrieves the bookings the caller placed or is assigned to.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetDashboard counts bookings per status.
// @Summary Booking counters per status
// @Description Counts every status, optionally for one provider. Lapsed reschedule proposals count as cancelled.
// @Tags Booking
// @Produce json
// @Param provider_id query string false "Provider ID"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx, request.URL.Query().Get(constant.RequestParamProviderID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dashboard)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookingHistory lists the booking's status changes, oldest first.
// @Summary Get booking status history
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.HistoryResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	history, err := handler.service.GetHistory(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, history)
}

// AssignBooking assigns a provider.
// @Summary Assign a provider
// @Description Fails with PROVIDER_UNAVAILABLE when the provider cannot serve the booking's window.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AssignBookingRequest true "Assign Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/assign [post]
// @Security BearerAuth
func (handler *Handler) AssignBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "AssignBooking", handler.service.Assign)
}

// StartBooking marks the booking in progress.
// @Summary Start a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartBooking")
	defer scope.End()

	booking, err := handler.service.Start(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CompleteBooking completes the booking and issues its invoice.
// @Summary Complete a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CompleteBookingRequest false "Complete Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "CompleteBooking", handler.service.Complete)
}

// CancelBooking cancels the booking and releases its provider.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "CancelBooking", handler.service.Cancel)
}

// HoldBooking puts the booking on hold.
// @Summary Hold a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.HoldBookingRequest true "Hold Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/hold [post]
// @Security BearerAuth
func (handler *Handler) HoldBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "HoldBooking", handler.service.Hold)
}

// ResumeBooking reassigns a held booking.
// @Summary Resume a held booking
// @Description Without provider_id the previously assigned provider is kept.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ResumeBookingRequest false "Resume Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/resume [post]
// @Security BearerAuth
func (handler *Handler) ResumeBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "ResumeBooking", handler.service.Resume)
}

// RejectBooking rejects a held booking.
// @Summary Reject a held booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RejectBookingRequest true "Reject Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "RejectBooking", handler.service.Reject)
}

// ProposeReschedule proposes a new window to the customer.
// @Summary Propose a reschedule
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ProposeRescheduleRequest true "Propose Reschedule Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) ProposeReschedule(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "ProposeReschedule", handler.service.ProposeReschedule)
}

// RespondReschedule accepts or declines a reschedule proposal.
// @Summary Respond to a reschedule proposal
// @Description Accepting moves the booking to the proposed window; declining cancels it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RespondRescheduleRequest true "Respond Reschedule Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/reschedule/respond [post]
// @Security BearerAuth
func (handler *Handler) RespondReschedule(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "RespondReschedule", handler.service.RespondReschedule)
}

// RateBooking records the customer's rating of a completed booking.
// @Summary Rate a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RateBookingRequest true "Rate Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/rating [post]
// @Security BearerAuth
func (handler *Handler) RateBooking(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "RateBooking", handler.service.Rate)
}

type transitionFunc[T any] func(ctx context.Context, id string, req T) (dto.BookingResponse, error)

// withBody decodes and validates T, then runs a transition on the booking in the path.
// An empty body is accepted for requests whose fields are all optional.
func withBody[T any](handler *Handler, writer http.ResponseWriter, request *http.Request, name string, fn transitionFunc[T]) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req T

	var err error
	if request.ContentLength == 0 {
		err = validator.ValidateStruct(&req)
	} else {
		err = validator.Validate(request.Body, &req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := fn(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Str("operation", name).Msg("failed to run booking operation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(name + " succeeded for booking " + id)

	response.WithJSON(writer, http.StatusOK, booking)
}
