package detector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

func behavioralRequest(metadata map[string]interface{}) *models.FraudCheckRequest {
	return &models.FraudCheckRequest{
		PaymentID: "pay_b",
		UserID:    "user_b",
		Amount:    1000,
		Currency:  "KRW",
		Metadata:  metadata,
	}
}

func TestBehavioralDetectorUnusualBand(t *testing.T) {
	tests := []struct {
		name  string
		hour  int
		fires bool
	}{
		{"midnight", 0, true},
		{"three am", 3, true},
		{"band upper edge", 5, true},
		{"just past band", 6, false},
		{"afternoon", 14, false},
		{"late evening", 23, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultBehavioralDetector()
			ts := time.Date(2025, 3, 10, tt.hour, 30, 0, 0, time.UTC)
			req := behavioralRequest(map[string]interface{}{
				MetadataPaymentTimestamp: ts.Format(time.RFC3339),
			})

			result := d.Detect(context.Background(), req)
			if tt.fires {
				require.Len(t, result.Findings, 1)
				assert.Equal(t, rules.UnusualPaymentTime, result.Findings[0].RuleID)
				assert.Equal(t, 45, result.Findings[0].Weight)
				assert.Equal(t, tt.hour, result.Findings[0].Evidence["hour"])
			} else {
				assert.Empty(t, result.Findings)
			}
		})
	}
}

func TestBehavioralDetectorFallsBackToDetectionTime(t *testing.T) {
	d := DefaultBehavioralDetector()
	d.now = func() time.Time {
		return time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)
	}

	result := d.Detect(context.Background(), behavioralRequest(nil))
	require.Len(t, result.Findings, 1)
	assert.Equal(t, rules.UnusualPaymentTime, result.Findings[0].RuleID)
}

func TestBehavioralDetectorIgnoresMalformedTimestamp(t *testing.T) {
	d := DefaultBehavioralDetector()
	d.now = func() time.Time {
		return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	}

	req := behavioralRequest(map[string]interface{}{
		MetadataPaymentTimestamp: "not-a-timestamp",
	})
	result := d.Detect(context.Background(), req)
	assert.Empty(t, result.Findings, "unparseable declared time falls back to the clock")
}

func TestBehavioralDetectorNeverDegrades(t *testing.T) {
	d := DefaultBehavioralDetector()
	result := d.Detect(context.Background(), behavioralRequest(nil))
	assert.False(t, result.Degraded)
}
