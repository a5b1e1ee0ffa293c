package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
)

// Evaluator is the single operation the core exposes to its callers.
type Evaluator interface {
	Evaluate(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudDecision, error)
}

// DecisionStore is the caller-side persistence for decision summaries.
type DecisionStore interface {
	Save(ctx context.Context, rec *models.DecisionRecord) error
	GetByPaymentID(ctx context.Context, paymentID string) (*models.DecisionRecord, error)
	Stats(ctx context.Context, from, to time.Time) (*models.DecisionStats, error)
}

type RiskHandler struct {
	engine    Evaluator
	decisions DecisionStore
	logger    *zap.Logger
}

func NewRiskHandler(engine Evaluator, decisions DecisionStore, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		engine:    engine,
		decisions: decisions,
		logger:    logger,
	}
}

// EvaluateRisk runs a detection pass and records the decision.
func (h *RiskHandler) EvaluateRisk(c *gin.Context) {
	var req models.FraudCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.engine.Evaluate(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("failed to evaluate fraud risk", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate fraud risk"})
		return
	}

	// Persisting the decision is the caller's concern; a log failure must
	// not block the payment path.
	ruleIDs := make([]string, 0, len(decision.Findings))
	for _, f := range decision.Findings {
		ruleIDs = append(ruleIDs, f.RuleID)
	}
	rec := &models.DecisionRecord{
		ID:           uuid.NewString(),
		PaymentID:    decision.PaymentID,
		UserID:       req.UserID,
		RiskScore:    decision.RiskScore,
		RiskLevel:    string(decision.RiskLevel),
		Action:       string(decision.Action),
		RuleIDs:      ruleIDs,
		ProcessingMS: decision.ProcessingMS,
		CreatedAt:    decision.EvaluatedAt,
	}
	if err := h.decisions.Save(c.Request.Context(), rec); err != nil {
		h.logger.Error("failed to save decision", zap.Error(err),
			zap.String("payment_id", decision.PaymentID))
	}

	c.JSON(http.StatusOK, decision)
}

// GetDecision returns the most recent decision for a payment.
func (h *RiskHandler) GetDecision(c *gin.Context) {
	paymentID := c.Param("payment_id")

	rec, err := h.decisions.GetByPaymentID(c.Request.Context(), paymentID)
	if err != nil {
		h.logger.Error("failed to load decision", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load decision"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "decision not found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetStats returns decision-log aggregates for the trailing 24 hours,
// or for an explicit RFC 3339 from/to range.
func (h *RiskHandler) GetStats(c *gin.Context) {
	to := time.Now()
	from := to.Add(-24 * time.Hour)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		to = t
	}

	stats, err := h.decisions.Stats(c.Request.Context(), from, to)
	if err != nil {
		h.logger.Error("failed to load stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
