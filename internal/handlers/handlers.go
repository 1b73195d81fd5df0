package handlers

import (
	"net/http"

	"portal/internal/helpers"
	"portal/internal/middlewares"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func requestLogger(r *http.Request) *zap.Logger {
	return zap.L().With(
		zap.String("request_id", uuid.New().String()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

// BodyHandler adapts a service method taking a validated body and returning a
// response payload. The body must have been parsed by the Validate middleware.
func BodyHandler[B any, R any](
	fn func(logger *zap.Logger, r *http.Request, body B) (R, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)

		body, ok := middlewares.GetValidatedBody[B](r.Context())
		if !ok {
			logger.Error("Validated body missing from context")
			helpers.RespondWithError(w, 500, []string{"INTERNAL_SERVER_ERROR"})
			return
		}

		response, err := fn(logger, r, body)
		if err != nil {
			helpers.RespondWithAPIError(w, err)
			return
		}

		helpers.RespondWithJSON(w, 200, response)
	}
}

// GetHandler adapts a service method with no request body.
func GetHandler[R any](
	fn func(logger *zap.Logger, r *http.Request) (R, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)

		response, err := fn(logger, r)
		if err != nil {
			helpers.RespondWithAPIError(w, err)
			return
		}

		helpers.RespondWithJSON(w, 200, response)
	}
}
