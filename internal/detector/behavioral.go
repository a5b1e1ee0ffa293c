package detector

import (
	"context"
	"time"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// MetadataPaymentTimestamp is the metadata key carrying a declared
// payment time, RFC 3339 formatted. When absent the detection time is
// used instead.
const MetadataPaymentTimestamp = "payment_timestamp"

// BehavioralDetector flags payments made during the unusual-hours band.
// It is a pure function of the request and the clock: no collaborator,
// so it can never degrade.
type BehavioralDetector struct {
	startHour int
	endHour   int
	now       func() time.Time
}

// NewBehavioralDetector flags hours in [startHour, endHour] inclusive.
func NewBehavioralDetector(startHour, endHour int) *BehavioralDetector {
	return &BehavioralDetector{startHour: startHour, endHour: endHour, now: time.Now}
}

// DefaultBehavioralDetector uses the 00:00–05:59 band.
func DefaultBehavioralDetector() *BehavioralDetector {
	return NewBehavioralDetector(0, 5)
}

func (d *BehavioralDetector) Name() string { return "behavioral" }

func (d *BehavioralDetector) Detect(ctx context.Context, req *models.FraudCheckRequest) Result {
	result := Result{Detector: d.Name()}

	hour := d.transactionHour(req)
	if hour < d.startHour || hour > d.endHour {
		return result
	}

	result.Findings = append(result.Findings, models.DetectedFinding{
		RuleID: rules.UnusualPaymentTime,
		Weight: rules.Weight(rules.UnusualPaymentTime),
		Evidence: map[string]interface{}{
			"hour": hour,
		},
	})
	return result
}

func (d *BehavioralDetector) transactionHour(req *models.FraudCheckRequest) int {
	if raw, ok := req.Metadata[MetadataPaymentTimestamp]; ok {
		if s, ok := raw.(string); ok {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return ts.Hour()
			}
		}
	}
	return d.now().Hour()
}
