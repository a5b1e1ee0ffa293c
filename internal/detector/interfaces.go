// Package detector contains the independent fraud detectors and the
// collaborator contracts they consume. Detectors are stateless, share no
// mutable state and absorb their own dependency failures: a failed
// collaborator call degrades into a system-category finding instead of an
// error, so the payment path never blocks on a misbehaving dependency.
package detector

import (
	"context"
	"time"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
)

// TransactionHistory is the ledger collaborator. Query returns the user's
// payments inside [from, to) restricted to the given statuses, newest first.
type TransactionHistory interface {
	Query(ctx context.Context, userID string, from, to time.Time, statuses []string) ([]models.PaymentRecord, error)
}

// GeoHistory returns the country codes previously seen for a user.
// An empty slice means no history on record, which is not an error.
type GeoHistory interface {
	KnownCountries(ctx context.Context, userID string) ([]string, error)
}

// DeviceRegistry looks up the stored risk score for a device fingerprint.
// found is false when the fingerprint has never been seen.
type DeviceRegistry interface {
	RiskScoreFor(ctx context.Context, fingerprint string) (score int, found bool, err error)
}

// Result is one detector's contribution to a pass. Degraded marks that a
// required collaborator call failed and a system finding was substituted.
type Result struct {
	Detector string
	Findings []models.DetectedFinding
	Degraded bool
}

// Detector is the unit the engine fans out to. Detect never returns an
// error: failures are folded into the Result per the degradation policy.
type Detector interface {
	Name() string
	Detect(ctx context.Context, req *models.FraudCheckRequest) Result
}
