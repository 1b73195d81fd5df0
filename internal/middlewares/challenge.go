package middlewares

import (
	"context"
	"net/http"

	"portal/internal/helpers"
	"portal/internal/models"
)

// ChallengeAuth authenticates the phase 2 request with the challenge token
// issued by phase 1 and places the conversation claims in the context.
func ChallengeAuth(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			claims, err := helpers.ParseChallengeToken(jwtSecret, token)
			if err != nil {
				helpers.RespondWithError(w, 403, []string{"FORBIDDEN"})
				return
			}

			ctx := context.WithValue(r.Context(), models.ConversationClaimKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// OperatorAuth guards operator-only routes with a static bearer token.
func OperatorAuth(operatorToken string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if operatorToken == "" || r.Header.Get("Authorization") != "Bearer "+operatorToken {
				helpers.RespondWithError(w, 403, []string{"FORBIDDEN"})
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
