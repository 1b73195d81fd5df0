package services

import (
	"net/http"

	"portal/internal/audit"
	"portal/internal/handlers"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuditService exposes the audit trail to operators.
type AuditService struct {
	Audit audit.ILogger
}

func NewAuditService(auditLogger audit.ILogger) *AuditService {
	return &AuditService{Audit: auditLogger}
}

func (s *AuditService) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handlers.GetHandler(s.search))
	return router
}

func (s *AuditService) search(
	logger *zap.Logger,
	r *http.Request,
) ([]map[string]interface{}, error) {
	criteria := map[string][]string(r.URL.Query())

	entries, err := s.Audit.Search(criteria)
	if err != nil {
		logger.Error("Audit search failed", zap.Error(err))
		return nil, err
	}

	return entries, nil
}
