package availability

import (
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/availability/model/dto"
	"fieldserve/internal/domains/availability/service"
	"fieldserve/shared/actor"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/failure"
	"fieldserve/shared/timezone"
	"fieldserve/shared/validator"
	"fieldserve/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Matcher
	otel    otel.Otel
}

func New(service service.Matcher, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.IsAvailable)
		routerGroup.Get("/providers", handler.GetActiveProviders)
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Post("/check-out", handler.CheckOut)
		routerGroup.Get("/windows", handler.GetWindows)
		routerGroup.Post("/leaves", handler.CreateLeave)
		routerGroup.Get("/leaves", handler.GetLeaves)
		routerGroup.Delete("/leaves/{id}", handler.CancelLeave)
	})
}

// providerOrSelf defaults an omitted provider to the caller, so providers act on their own schedule.
func providerOrSelf(request *http.Request, providerID string) string {
	if providerID != constant.Empty {
		return providerID
	}

	return actor.FromContext(request.Context()).ID
}

// IsAvailable reports whether any provider can take the service at the pincode on the date.
// @Summary Check service availability
// @Tags Availability
// @Produce json
// @Param service_id query string true "Service ID"
// @Param pincode query string true "Pincode"
// @Param date query string false "Business date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.IsAvailableResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
// @Security BearerAuth
func (handler *Handler) IsAvailable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IsAvailable")
	defer scope.End()

	query := dto.AvailabilityQuery{
		ServiceID:    request.URL.Query().Get(constant.RequestParamServiceID),
		Pincode:      request.URL.Query().Get(constant.RequestParamPincode),
		BusinessDate: request.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(writer, err)

		return
	}

	date, err := dto.BusinessDateOrToday(query.BusinessDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	available, err := handler.service.IsAvailable(ctx, query.ServiceID, query.Pincode, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.IsAvailableResponse{
		ServiceID:    query.ServiceID,
		Pincode:      query.Pincode,
		BusinessDate: timezone.Format(date, constant.BusinessDateFormat),
		Available:    available,
	})
}

// GetActiveProviders lists providers checked in at the pincode.
// @Summary List active providers
// @Tags Availability
// @Produce json
// @Param pincode query string true "Pincode"
// @Param date query string false "Business date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[[]dto.ActiveProviderResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/providers [get]
// @Security BearerAuth
func (handler *Handler) GetActiveProviders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveProviders")
	defer scope.End()

	pincode := request.URL.Query().Get(constant.RequestParamPincode)
	if err := validator.ValidateVar(pincode, "required,pincode"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(writer, err)

		return
	}

	date, err := dto.BusinessDateOrToday(request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	providers, err := handler.service.ActiveProviders(ctx, pincode, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list active providers")

		response.WithError(writer, err)

		return
	}

	res := make([]dto.ActiveProviderResponse, len(providers))
	for i, provider := range providers {
		res[i].FromModel(provider)
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckIn opens an availability window at a pincode.
// @Summary Provider check-in
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 201 {object} response.Data[dto.WindowResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/availability/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.ProviderID = providerOrSelf(request, req.ProviderID)

	window, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to check in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, window)
}

// CheckOut closes the provider's open window.
// @Summary Provider check-out
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Check Out Request"
// @Success 200 {object} response.Data[dto.WindowResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/availability/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.ProviderID = providerOrSelf(request, req.ProviderID)

	window, err := handler.service.CheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to check out")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, window)
}

// GetWindows lists a provider's availability windows.
// @Summary List availability windows
// @Tags Availability
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param provider_id query string false "Provider ID, defaults to the caller"
// @Success 200 {object} response.Data[dto.GetWindowsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/availability/windows [get]
// @Security BearerAuth
func (handler *Handler) GetWindows(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWindows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	windows, err := handler.service.GetWindows(ctx, queryParams,
		providerOrSelf(request, request.URL.Query().Get(constant.RequestParamProviderID)))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability windows")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, windows)
}

// CreateLeave records a leave and returns the bookings that now need reassignment.
// @Summary Create a leave
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateLeaveRequest true "Create Leave Request"
// @Success 201 {object} response.Data[dto.LeaveResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/leaves [post]
// @Security BearerAuth
func (handler *Handler) CreateLeave(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLeave")
	defer scope.End()

	req := dto.CreateLeaveRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.ProviderID = providerOrSelf(request, req.ProviderID)

	leave, err := handler.service.CreateLeave(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to create leave")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, leave)
}

// GetLeaves lists a provider's leaves.
// @Summary List leaves
// @Tags Availability
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param provider_id query string false "Provider ID, defaults to the caller"
// @Success 200 {object} response.Data[dto.GetLeavesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/availability/leaves [get]
// @Security BearerAuth
func (handler *Handler) GetLeaves(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeaves")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	leaves, err := handler.service.GetLeaves(ctx, queryParams,
		providerOrSelf(request, request.URL.Query().Get(constant.RequestParamProviderID)))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get leaves")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, leaves)
}

// CancelLeave cancels a leave.
// @Summary Cancel a leave
// @Tags Availability
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/leaves/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelLeave(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelLeave")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.CancelLeave(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("leaveID", id).Msg("failed to cancel leave")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Leave cancelled successfully")
}
