package engine

import (
	"github.com/ModawnAI/everything-backend-sub009/internal/detector"
	"github.com/ModawnAI/everything-backend-sub009/internal/models"
)

// maxRiskScore caps the aggregate; individual weights are additive up to
// this bound.
const maxRiskScore = 100

// Risk band thresholds (closed lower bound). Fixed policy constants, not
// per-request configuration.
const (
	mediumThreshold = 40
	highThreshold   = 80
)

// combineFindings merges detector results in dispatch order and drops
// duplicate rule IDs, keeping the first occurrence. A rule fires at most
// once per pass even when several detectors reference it.
func combineFindings(results []detector.Result) []models.DetectedFinding {
	seen := make(map[string]struct{})
	findings := make([]models.DetectedFinding, 0)
	for _, res := range results {
		for _, f := range res.Findings {
			if _, dup := seen[f.RuleID]; dup {
				continue
			}
			seen[f.RuleID] = struct{}{}
			findings = append(findings, f)
		}
	}
	return findings
}

// riskScore sums the applied weights, capped at maxRiskScore.
func riskScore(findings []models.DetectedFinding) int {
	total := 0
	for _, f := range findings {
		total += f.Weight
	}
	if total > maxRiskScore {
		total = maxRiskScore
	}
	return total
}

// riskLevelFor maps a score to its band.
func riskLevelFor(score int) models.RiskLevel {
	switch {
	case score >= highThreshold:
		return models.RiskLevelHigh
	case score >= mediumThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
