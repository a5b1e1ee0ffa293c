package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeviceRegistryStore reads device risk scores from the fingerprint
// registry collection. A fingerprint with no record is unknown but not
// flagged.
type DeviceRegistryStore struct {
	collection *mongo.Collection
}

func NewDeviceRegistryStore(db *mongo.Database) *DeviceRegistryStore {
	return &DeviceRegistryStore{collection: db.Collection("device_fingerprints")}
}

func (s *DeviceRegistryStore) RiskScoreFor(ctx context.Context, fingerprint string) (int, bool, error) {
	var doc struct {
		RiskScore int `bson:"risk_score"`
	}

	err := s.collection.FindOne(ctx, bson.M{"fingerprint": fingerprint}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query device registry: %w", err)
	}

	return doc.RiskScore, true, nil
}
