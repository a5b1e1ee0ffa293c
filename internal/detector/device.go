package detector

import (
	"context"

	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// DefaultDeviceSuspicionThreshold is the registry score at which a
// fingerprint is treated as suspicious.
const DefaultDeviceSuspicionThreshold = 70

// DeviceFingerprintDetector flags devices the registry already considers
// risky. The applied weight is the registry score itself, not the catalog
// weight, so a near-certain-fraud device can carry the decision into the
// high band on its own.
type DeviceFingerprintDetector struct {
	registry  DeviceRegistry
	threshold int
	logger    *zap.Logger
}

func NewDeviceFingerprintDetector(registry DeviceRegistry, threshold int, logger *zap.Logger) *DeviceFingerprintDetector {
	return &DeviceFingerprintDetector{registry: registry, threshold: threshold, logger: logger}
}

func (d *DeviceFingerprintDetector) Name() string { return "device_fingerprint" }

func (d *DeviceFingerprintDetector) Detect(ctx context.Context, req *models.FraudCheckRequest) Result {
	result := Result{Detector: d.Name()}
	if req.DeviceFingerprint == "" {
		return result
	}

	score, found, err := d.registry.RiskScoreFor(ctx, req.DeviceFingerprint)
	if err != nil {
		d.logger.Warn("device registry unavailable, degrading",
			zap.Error(err),
			zap.String("payment_id", req.PaymentID))
		result.Degraded = true
		result.Findings = append(result.Findings, degradedFinding(d.Name(), err))
		return result
	}
	if !found || score < d.threshold {
		return result
	}

	result.Findings = append(result.Findings, models.DetectedFinding{
		RuleID: rules.DeviceSuspicious,
		Weight: score,
		Evidence: map[string]interface{}{
			"registry_score": score,
			"fingerprint":    req.DeviceFingerprint,
		},
	})
	return result
}
