package vpn

import (
	"strings"

	"portal/internal/models"
)

// severityRules is the explicit message-to-severity mapping. The VPN system
// exposes no structured status for these conditions, so classification keys
// on its known message wording; rules are evaluated in order, first match
// wins.
var severityRules = []struct {
	substring string
	severity  models.Severity
}{
	{"Error", models.SeverityDanger},
	{"Unknown Failure", models.SeverityWarning},
	{"is not present", models.SeverityWarning},
}

// ClassifySeverity derives the user-facing severity of a VPN management
// message.
func ClassifySeverity(message string) models.Severity {
	for _, rule := range severityRules {
		if strings.Contains(message, rule.substring) {
			return rule.severity
		}
	}
	return models.SeveritySuccess
}
