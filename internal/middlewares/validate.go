package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"portal/internal/helpers"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func InitValidator() {
	validate = validator.New()
}

type validatedBodyKey struct{}

// Validate parses and validates the JSON request body as T and stores it in
// the request context for the handler adapters.
func Validate[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body T

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&body); err != nil {
			helpers.RespondWithError(w, 400, []string{"BAD_REQUEST"})
			return
		}

		if err := validate.Struct(body); err != nil {
			helpers.RespondWithError(w, 400, []string{"BAD_REQUEST"})
			return
		}

		ctx := context.WithValue(r.Context(), validatedBodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetValidatedBody retrieves the body stored by Validate.
func GetValidatedBody[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(validatedBodyKey{}).(T)
	return body, ok
}
