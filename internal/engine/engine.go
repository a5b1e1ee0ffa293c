// Package engine orchestrates one detection pass: Dispatch → Collect →
// Aggregate → Decide → Emit. The orchestrator itself cannot fail for
// downstream reasons; it always returns a decision, degraded or not.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/detector"
	"github.com/ModawnAI/everything-backend-sub009/internal/metrics"
	"github.com/ModawnAI/everything-backend-sub009/internal/models"
)

// FraudEngine fans a request out to every detector, waits for all of
// them, and derives one decision from the collected findings.
type FraudEngine struct {
	detectors []detector.Detector
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewFraudEngine(detectors []detector.Detector, logger *zap.Logger, m *metrics.Metrics) *FraudEngine {
	return &FraudEngine{
		detectors: detectors,
		logger:    logger,
		metrics:   m,
		now:       time.Now,
	}
}

// Evaluate runs one detection pass. It returns an error only for
// malformed input; every dependency failure resolves into a valid
// decision carrying a system finding instead.
func (e *FraudEngine) Evaluate(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudDecision, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := e.now()

	// Dispatch all detectors; Collect is a fan-in barrier. Results land
	// in a fixed slot per detector so the finding order is deterministic
	// regardless of goroutine scheduling.
	results := make([]detector.Result, len(e.detectors))
	var wg sync.WaitGroup
	for i, d := range e.detectors {
		wg.Add(1)
		go func(i int, d detector.Detector) {
			defer wg.Done()
			results[i] = d.Detect(ctx, req)
		}(i, d)
	}
	wg.Wait()

	for _, res := range results {
		if res.Degraded {
			e.metrics.ObserveDegraded(res.Detector)
		}
	}

	findings := combineFindings(results)
	score := riskScore(findings)
	level := riskLevelFor(score)
	action := actionFor(level, findings)
	alerts := buildAlerts(findings, level, e.now())

	decision := &models.FraudDecision{
		PaymentID:    req.PaymentID,
		RiskScore:    score,
		RiskLevel:    level,
		Action:       action,
		Findings:     findings,
		Alerts:       alerts,
		EvaluatedAt:  start,
		ProcessingMS: time.Since(start).Milliseconds(),
	}

	e.metrics.ObserveEvaluation(string(level), string(action), time.Since(start))
	e.logger.Info("fraud evaluation completed",
		zap.String("payment_id", req.PaymentID),
		zap.Int("risk_score", score),
		zap.String("risk_level", string(level)),
		zap.String("action", string(action)),
		zap.Int("findings", len(findings)))

	return decision, nil
}
