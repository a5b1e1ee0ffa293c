package detector

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// VelocityConfig bounds the rolling-window checks. Amounts are in minor
// currency units.
type VelocityConfig struct {
	Window         time.Duration
	AmountCeiling  int64
	CountThreshold int
	Statuses       []string
}

// DefaultVelocityConfig matches production policy: trailing 24 hours,
// ceiling 3,000,000, five payments, cancelled payments excluded.
func DefaultVelocityConfig() VelocityConfig {
	return VelocityConfig{
		Window:         24 * time.Hour,
		AmountCeiling:  3_000_000,
		CountThreshold: 5,
		Statuses:       []string{"completed", "pending"},
	}
}

// VelocityDetector flags abnormal payment amount or frequency inside a
// rolling window. Both predicates are evaluated from one history query.
type VelocityDetector struct {
	history TransactionHistory
	cfg     VelocityConfig
	logger  *zap.Logger
	now     func() time.Time
}

func NewVelocityDetector(history TransactionHistory, cfg VelocityConfig, logger *zap.Logger) *VelocityDetector {
	return &VelocityDetector{
		history: history,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

func (d *VelocityDetector) Name() string { return "velocity" }

func (d *VelocityDetector) Detect(ctx context.Context, req *models.FraudCheckRequest) Result {
	result := Result{Detector: d.Name()}

	now := d.now()
	records, err := d.history.Query(ctx, req.UserID, now.Add(-d.cfg.Window), now, d.cfg.Statuses)
	if err != nil {
		d.logger.Warn("transaction history unavailable, degrading",
			zap.Error(err),
			zap.String("payment_id", req.PaymentID))
		result.Degraded = true
		result.Findings = append(result.Findings, degradedFinding(d.Name(), err))
		return result
	}

	var sum int64
	for _, rec := range records {
		sum += rec.Amount
	}

	if sum+req.Amount > d.cfg.AmountCeiling {
		result.Findings = append(result.Findings, models.DetectedFinding{
			RuleID: rules.VelocityPaymentAmount,
			Weight: rules.Weight(rules.VelocityPaymentAmount),
			Evidence: map[string]interface{}{
				"window_amount": sum + req.Amount,
				"record_count":  len(records),
			},
		})
	}

	if len(records) >= d.cfg.CountThreshold {
		result.Findings = append(result.Findings, models.DetectedFinding{
			RuleID: rules.PaymentFrequencyHigh,
			Weight: rules.Weight(rules.PaymentFrequencyHigh),
			Evidence: map[string]interface{}{
				"record_count": len(records),
			},
		})
	}

	return result
}
