package engine

import (
	"testing"

	"github.com/ModawnAI/everything-backend-sub009/internal/detector"
	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  models.RiskLevel
	}{
		{"zero", 0, models.RiskLevelLow},
		{"just below medium", 39, models.RiskLevelLow},
		{"medium lower bound", 40, models.RiskLevelMedium},
		{"just below high", 79, models.RiskLevelMedium},
		{"high lower bound", 80, models.RiskLevelHigh},
		{"maximum", 100, models.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := riskLevelFor(tt.score); got != tt.want {
				t.Errorf("riskLevelFor(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestRiskScoreCapsAt100(t *testing.T) {
	findings := []models.DetectedFinding{
		{RuleID: rules.VelocityPaymentAmount, Weight: 80},
		{RuleID: rules.DeviceSuspicious, Weight: 85},
		{RuleID: rules.VPNDetection, Weight: 45},
	}

	if got := riskScore(findings); got != 100 {
		t.Errorf("riskScore() = %d, want 100", got)
	}
	if got := riskScore(nil); got != 0 {
		t.Errorf("riskScore(nil) = %d, want 0", got)
	}
}

func TestCombineFindingsDedupesByRuleID(t *testing.T) {
	results := []detector.Result{
		{Detector: "velocity", Findings: []models.DetectedFinding{
			{RuleID: rules.SystemError, Weight: 50},
		}},
		{Detector: "geolocation", Findings: []models.DetectedFinding{
			{RuleID: rules.VPNDetection, Weight: 45},
			{RuleID: rules.SystemError, Weight: 50},
		}},
		{Detector: "device_fingerprint", Findings: []models.DetectedFinding{
			{RuleID: rules.SystemError, Weight: 50},
		}},
	}

	findings := combineFindings(results)
	if len(findings) != 2 {
		t.Fatalf("combineFindings() returned %d findings, want 2", len(findings))
	}
	if findings[0].RuleID != rules.SystemError || findings[1].RuleID != rules.VPNDetection {
		t.Errorf("combineFindings() order = [%s, %s], want dispatch order with first occurrence kept",
			findings[0].RuleID, findings[1].RuleID)
	}
}
