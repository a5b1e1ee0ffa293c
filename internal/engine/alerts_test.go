package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

func TestBuildAlertsFraudSeverityFollowsRiskLevel(t *testing.T) {
	now := time.Now()
	findings := []models.DetectedFinding{
		{RuleID: rules.GeolocationMismatch, Weight: 45},
		{RuleID: rules.VPNDetection, Weight: 45},
	}

	tests := []struct {
		level models.RiskLevel
		want  models.AlertSeverity
	}{
		{models.RiskLevelLow, models.SeverityInfo},
		{models.RiskLevelMedium, models.SeverityWarning},
		{models.RiskLevelHigh, models.SeverityError},
	}
	for _, tt := range tests {
		alerts := buildAlerts(findings, tt.level, now)
		require.Len(t, alerts, 1)
		assert.Equal(t, models.AlertFraudDetected, alerts[0].Type)
		assert.Equal(t, tt.want, alerts[0].Severity)
		assert.Equal(t, []string{rules.GeolocationMismatch, rules.VPNDetection}, alerts[0].RuleIDs)
		assert.NotEmpty(t, alerts[0].ID)
	}
}

func TestBuildAlertsSystemFindingAddsSingleErrorAlert(t *testing.T) {
	now := time.Now()
	findings := []models.DetectedFinding{
		{RuleID: rules.VelocityPaymentAmount, Weight: 80},
		{RuleID: rules.SystemError, Weight: 50},
	}

	alerts := buildAlerts(findings, models.RiskLevelHigh, now)
	require.Len(t, alerts, 2)
	assert.Equal(t, models.AlertFraudDetected, alerts[0].Type)
	assert.Equal(t, []string{rules.VelocityPaymentAmount}, alerts[0].RuleIDs,
		"system rules must not appear in the fraud alert")
	assert.Equal(t, models.AlertSystemError, alerts[1].Type)
	assert.Equal(t, models.SeverityError, alerts[1].Severity)
	assert.Empty(t, alerts[1].RuleIDs)
}

func TestBuildAlertsEmptyWhenNothingFired(t *testing.T) {
	alerts := buildAlerts(nil, models.RiskLevelLow, time.Now())
	assert.Empty(t, alerts)
}

func TestBuildAlertsSystemOnlyPass(t *testing.T) {
	findings := []models.DetectedFinding{
		{RuleID: rules.SystemError, Weight: 50},
	}

	alerts := buildAlerts(findings, models.RiskLevelMedium, time.Now())
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertSystemError, alerts[0].Type)
}
