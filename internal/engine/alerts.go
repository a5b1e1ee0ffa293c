package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// buildAlerts summarizes a detection pass: at most one fraud_detected
// alert covering every non-system rule that fired, and at most one
// system_error alert regardless of how many detectors degraded.
func buildAlerts(findings []models.DetectedFinding, level models.RiskLevel, now time.Time) []models.SecurityAlert {
	var fraudRules []string
	degraded := false
	for _, f := range findings {
		if rules.Category(f.RuleID) == models.CategorySystem {
			degraded = true
			continue
		}
		fraudRules = append(fraudRules, f.RuleID)
	}

	alerts := make([]models.SecurityAlert, 0, 2)
	if len(fraudRules) > 0 {
		alerts = append(alerts, models.SecurityAlert{
			ID:        uuid.NewString(),
			Type:      models.AlertFraudDetected,
			Severity:  severityFor(level),
			Message:   fmt.Sprintf("%d fraud rule(s) fired", len(fraudRules)),
			RuleIDs:   fraudRules,
			CreatedAt: now,
		})
	}
	if degraded {
		alerts = append(alerts, models.SecurityAlert{
			ID:        uuid.NewString(),
			Type:      models.AlertSystemError,
			Severity:  models.SeverityError,
			Message:   "one or more detectors degraded on an unavailable dependency",
			CreatedAt: now,
		})
	}
	return alerts
}

func severityFor(level models.RiskLevel) models.AlertSeverity {
	switch level {
	case models.RiskLevelHigh:
		return models.SeverityError
	case models.RiskLevelMedium:
		return models.SeverityWarning
	default:
		return models.SeverityInfo
	}
}
