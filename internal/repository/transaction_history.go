package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/pkg/database"
)

// TransactionHistoryStore reads prior payments from the ledger database.
type TransactionHistoryStore struct {
	db *database.PostgresDB
}

func NewTransactionHistoryStore(db *database.PostgresDB) *TransactionHistoryStore {
	return &TransactionHistoryStore{db: db}
}

// Query returns the user's payments inside [from, to) with one of the
// given statuses, newest first.
func (s *TransactionHistoryStore) Query(ctx context.Context, userID string, from, to time.Time, statuses []string) ([]models.PaymentRecord, error) {
	query := `
		SELECT amount, status, created_at
		FROM payments
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at < $3
		  AND status = ANY($4)
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to query payment history: %w", err)
	}
	defer rows.Close()

	records := make([]models.PaymentRecord, 0)
	for rows.Next() {
		var rec models.PaymentRecord
		if err := rows.Scan(&rec.Amount, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment history: %w", err)
	}

	return records, nil
}
