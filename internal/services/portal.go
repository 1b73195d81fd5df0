package services

import (
	"net/http"

	"portal/internal/flow"
	"portal/internal/handlers"
	"portal/internal/helpers"
	"portal/internal/middlewares"
	"portal/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PortalService exposes the two-phase verification workflow over HTTP.
type PortalService struct {
	Controller *flow.Controller
	JWTSecret  string
}

func NewPortalService(controller *flow.Controller, jwtSecret string) *PortalService {
	return &PortalService{Controller: controller, JWTSecret: jwtSecret}
}

func (s *PortalService) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middlewares.Validate[models.PortalRequestBody]).
		Post("/request", handlers.BodyHandler(s.request))

	router.With(middlewares.ChallengeAuth(s.JWTSecret), middlewares.Validate[models.PortalVerifyBody]).
		Post("/verify", handlers.BodyHandler(s.verify))

	return router
}

func (s *PortalService) request(
	logger *zap.Logger,
	r *http.Request,
	body models.PortalRequestBody,
) (models.PortalRequestResponse, error) {
	logger.Info("Identity submitted", zap.String("intent", string(body.Intent)))
	return s.Controller.SubmitIdentity(r.Context(), body)
}

func (s *PortalService) verify(
	logger *zap.Logger,
	r *http.Request,
	body models.PortalVerifyBody,
) (models.PortalVerifyResponse, error) {
	claims, err := helpers.GetConversationClaims(r.Context())
	if err != nil {
		logger.Error("Conversation claims missing from context", zap.Error(err))
		return models.PortalVerifyResponse{}, err
	}

	logger.Info("Challenge code submitted",
		zap.String("conversation_id", claims.ConversationID.String()),
	)
	return s.Controller.SubmitCode(r.Context(), claims, body)
}
