package detector

import (
	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// degradedFinding builds the synthetic system finding substituted when a
// detector's collaborator call fails. The fixed weight lands an otherwise
// clean decision in the medium band, and the system category forces the
// action policy to review.
func degradedFinding(detectorName string, err error) models.DetectedFinding {
	return models.DetectedFinding{
		RuleID: rules.SystemError,
		Weight: rules.Weight(rules.SystemError),
		Evidence: map[string]interface{}{
			"detector": detectorName,
			"error":    err.Error(),
		},
	}
}
