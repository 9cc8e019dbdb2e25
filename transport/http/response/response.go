package response

import (
	"encoding/json"
	"errors"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/logger"
	"net/http"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string       `json:"error,omitempty"`
	Kind  *failure.Kind `json:"kind,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

var statusByKind = map[failure.Kind]int{
	failure.KindInvalidInput:         http.StatusBadRequest,
	failure.KindInvalidTransition:    http.StatusConflict,
	failure.KindProviderUnavailable:  http.StatusConflict,
	failure.KindDiscountInapplicable: http.StatusUnprocessableEntity,
	failure.KindAlreadyInvoiced:      http.StatusConflict,
	failure.KindOverApplication:      http.StatusUnprocessableEntity,
	failure.KindAlreadySettled:       http.StatusConflict,
	failure.KindNotCompleted:         http.StatusConflict,
	failure.KindHasApplications:      http.StatusConflict,
	failure.KindNotIssued:            http.StatusConflict,
	failure.KindInvoiceNotFound:      http.StatusNotFound,
	failure.KindCreditExceedsInvoice: http.StatusUnprocessableEntity,
	failure.KindAlreadyCheckedIn:     http.StatusConflict,
	failure.KindNoOpenWindow:         http.StatusConflict,
	failure.KindNotFound:             http.StatusNotFound,
	failure.KindUnauthorized:         http.StatusUnauthorized,
	failure.KindForbidden:            http.StatusForbidden,
	failure.KindConflict:             http.StatusConflict,
	failure.KindInternal:             http.StatusInternalServerError,
	failure.KindUnimplemented:        http.StatusNotImplemented,
}

// StatusCode maps an error to its HTTP status. Errors that are not failures are 500.
func StatusCode(err error) int {
	code, ok := statusByKind[failure.KindOf(err)]
	if !ok {
		return http.StatusInternalServerError
	}

	return code
}

// WithMessage writes {"message": message}.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON writes {"data": payload}.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError writes {"error": message, "kind": kind}. Messages of internal errors are replaced
// with the generic status text.
func WithError(writer http.ResponseWriter, err error) {
	kind := failure.KindOf(err)
	errMsg := http.StatusText(http.StatusInternalServerError)

	var f *failure.Failure
	if errors.As(err, &f) && kind != failure.KindInternal {
		errMsg = f.Message
	}

	write(writer, StatusCode(err), Error{Error: &errMsg, Kind: &kind})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown answers health checks during the grace period.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
