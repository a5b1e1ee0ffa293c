package repository

import (
	"context"
	"fmt"

	"github.com/ModawnAI/everything-backend-sub009/pkg/database"
)

// GeoHistoryStore reads the countries a user's completed payments have
// originated from.
type GeoHistoryStore struct {
	db *database.PostgresDB
}

func NewGeoHistoryStore(db *database.PostgresDB) *GeoHistoryStore {
	return &GeoHistoryStore{db: db}
}

func (s *GeoHistoryStore) KnownCountries(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT country_code
		FROM payment_geolocations
		WHERE user_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query known countries: %w", err)
	}
	defer rows.Close()

	countries := make([]string, 0)
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read known countries: %w", err)
	}

	return countries, nil
}
