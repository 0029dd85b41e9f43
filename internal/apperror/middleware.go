package apperror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type handler func(w http.ResponseWriter, r *http.Request) error

// Middleware adapts an error-returning screen handler. Screens report expected failures themselves,
// so anything that reaches this point ends the request with a plain status page.
func Middleware(logger *zap.Logger, h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)

		var appErr *AppError
		if errors.As(err, &appErr) {
			http.Error(w, appErr.Message, statusOf(appErr))
			return
		}

		http.Error(w, internalError().Message, http.StatusInternalServerError)
	}
}

func statusOf(err *AppError) int {
	switch err.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindServer:
		if err.Status >= http.StatusBadRequest {
			return err.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// Status is the HTTP status a screen answers with when it re-renders after err.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return statusOf(appErr)
	}
	return http.StatusInternalServerError
}
