package pricing

import (
	"fieldserve/config"
	"fieldserve/infras/otel"
	"fieldserve/internal/domains/pricing/model/dto"
	"fieldserve/internal/domains/pricing/service"
	"fieldserve/shared/constant"
	"fieldserve/shared/validator"
	"fieldserve/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quoter
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Quoter, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quotes", handler.Quote)
}

// Quote prices a service without creating a booking.
// @Summary Quote a service
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotes [post]
// @Security BearerAuth
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	breakdown, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("serviceID", req.ServiceID).Msg("failed to quote")

		response.WithError(writer, err)

		return
	}

	res := dto.QuoteResponse{}
	res.FromModel(req, handler.cfg.Billing.Currency, breakdown)

	response.WithJSON(writer, http.StatusOK, res)
}
