package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "portal/internal/errors"

	"go.uber.org/zap"
)

// ErrorResponse is the JSON error envelope. Redirect, when set, names the
// entry point the caller should restart the flow at.
type ErrorResponse struct {
	Errors   []string `json:"errors"`
	Message  string   `json:"message"`
	Redirect string   `json:"redirect,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, codes []string) {
	message := ""
	if len(codes) > 0 {
		message = apierrors.MessageFor(codes[0])
	}
	RespondWithJSON(w, status, ErrorResponse{Errors: codes, Message: message})
}

// RespondWithAPIError writes an APIError; any other error becomes an opaque
// 500 so upstream failure details never leak to the end user.
func RespondWithAPIError(w http.ResponseWriter, err error) {
	var apiErr apierrors.APIError
	if errors.As(err, &apiErr) {
		RespondWithJSON(w, apiErr.Status, ErrorResponse{
			Errors:   []string{apiErr.Code},
			Message:  apierrors.MessageFor(apiErr.Code),
			Redirect: apiErr.Redirect,
		})
		return
	}
	RespondWithError(w, 500, []string{apierrors.ErrInternalServerError})
}
