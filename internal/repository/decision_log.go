package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/pkg/database"
)

// DecisionLog persists decision summaries on behalf of the caller. The
// engine itself keeps nothing between requests.
type DecisionLog struct {
	db *database.PostgresDB
}

func NewDecisionLog(db *database.PostgresDB) *DecisionLog {
	return &DecisionLog{db: db}
}

func (l *DecisionLog) Save(ctx context.Context, rec *models.DecisionRecord) error {
	query := `
		INSERT INTO fraud_decisions (id, payment_id, user_id, risk_score, risk_level, action, rule_ids, processing_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := l.db.ExecContext(ctx, query,
		rec.ID,
		rec.PaymentID,
		rec.UserID,
		rec.RiskScore,
		rec.RiskLevel,
		rec.Action,
		pq.Array(rec.RuleIDs),
		rec.ProcessingMS,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}
	return nil
}

func (l *DecisionLog) GetByPaymentID(ctx context.Context, paymentID string) (*models.DecisionRecord, error) {
	query := `
		SELECT id, payment_id, user_id, risk_score, risk_level, action, rule_ids, processing_ms, created_at
		FROM fraud_decisions
		WHERE payment_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rec models.DecisionRecord
	err := l.db.QueryRowContext(ctx, query, paymentID).Scan(
		&rec.ID,
		&rec.PaymentID,
		&rec.UserID,
		&rec.RiskScore,
		&rec.RiskLevel,
		&rec.Action,
		pq.Array(&rec.RuleIDs),
		&rec.ProcessingMS,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load decision: %w", err)
	}
	return &rec, nil
}

// Stats aggregates the decision log over [from, to).
func (l *DecisionLog) Stats(ctx context.Context, from, to time.Time) (*models.DecisionStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_checks,
			COUNT(CASE WHEN risk_level = 'high' THEN 1 END) AS high_risk_count,
			COUNT(CASE WHEN action = 'review' THEN 1 END) AS review_count,
			COUNT(CASE WHEN action = 'challenge' THEN 1 END) AS challenge_count
		FROM fraud_decisions
		WHERE created_at >= $1 AND created_at < $2
	`

	var stats models.DecisionStats
	err := l.db.QueryRowContext(ctx, query, from, to).Scan(
		&stats.TotalChecks,
		&stats.HighRiskCount,
		&stats.ReviewCount,
		&stats.ChallengeCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision stats: %w", err)
	}
	return &stats, nil
}
