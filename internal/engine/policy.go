package engine

import (
	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// actionFor maps the risk level to an enforcement action. A system
// finding overrides the mapping to review: the decision was made on
// incomplete signal and must not be auto-allowed. block stays reserved
// for future policy.
func actionFor(level models.RiskLevel, findings []models.DetectedFinding) models.Action {
	if hasSystemFinding(findings) {
		return models.ActionReview
	}
	switch level {
	case models.RiskLevelHigh:
		return models.ActionReview
	case models.RiskLevelMedium:
		return models.ActionChallenge
	default:
		return models.ActionAllow
	}
}

func hasSystemFinding(findings []models.DetectedFinding) bool {
	for _, f := range findings {
		if rules.Category(f.RuleID) == models.CategorySystem {
			return true
		}
	}
	return false
}
