package main

import (
	"context"

	"portal/internal/configuration"
	"portal/internal/core"
	"portal/internal/directory"
	"portal/internal/erp"
	"portal/internal/flow"
	"portal/internal/identity"
	"portal/internal/ratelimit"
	"portal/internal/sms"
	"portal/internal/vpn"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	shutdownTelemetry := core.NewTelemetry(context.Background(), config.Tracing)
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			zap.L().Error("Failed to shut down telemetry", zap.Error(err))
		}
	}()

	cache := core.NewCache(config.Cache)
	sessions := core.NewSessionStore(config.Sessions, cache)
	auditLogger := core.NewAuditLogger(config.Audit)
	notify := core.NewNotifier(config.Notifier)

	verifier := &identity.Verifier{
		Directory: directory.NewLDAPDirectory(config.Directory),
		Records:   erp.NewClient(config.Records),
	}

	controller := &flow.Controller{
		Identity:  verifier,
		Limiter:   ratelimit.NewDailyLimiter(core.NewSMSCounter(cache)),
		Issuer:    flow.NewIssuer(sms.NewGateway(config.SMS), sessions, auditLogger),
		Verifier:  flow.NewVerifier(),
		Sessions:  sessions,
		VPN:       vpn.NewClient(config.VPN),
		Audit:     auditLogger,
		Notifier:  notify,
		JWTSecret: config.App.JWTSecret,
	}

	core.StartHTTPServer(config, controller)
}
