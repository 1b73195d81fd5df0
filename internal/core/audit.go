package core

import (
	"portal/internal/audit"
	"portal/internal/models"

	"go.uber.org/zap"
)

func NewAuditLogger(config models.AuditConfiguration) audit.ILogger {
	switch config.Type {
	case "filesystem":
		return audit.NewFilesystemClient(*config.Filesystem)
	default:
		zap.L().Fatal("Unknown audit logger type", zap.String("type", config.Type))
		return nil
	}
}
