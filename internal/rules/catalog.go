// Package rules holds the static detection-rule catalog. The catalog is
// loaded once at process start and never mutated afterwards, so it can be
// read from every detector goroutine without locking.
package rules

import (
	"sort"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
)

// Rule IDs referenced by detectors and tests.
const (
	VelocityPaymentAmount = "velocity_payment_amount"
	PaymentFrequencyHigh  = "payment_frequency_high"
	GeolocationMismatch   = "geolocation_mismatch"
	VPNDetection          = "vpn_detection"
	DeviceSuspicious      = "device_fingerprint_suspicious"
	UnusualPaymentTime    = "unusual_payment_time"
	SystemError           = "system_error"
)

// Rule is one catalog entry. Weight is the nominal severity weight; the
// device rule applies the registry's own score instead (pass-through).
type Rule struct {
	ID          string
	Category    models.RuleCategory
	Weight      int
	Description string
}

var catalog = map[string]Rule{
	VelocityPaymentAmount: {
		ID:          VelocityPaymentAmount,
		Category:    models.CategoryVelocity,
		Weight:      80,
		Description: "payment amount sum in the rolling window exceeds the ceiling",
	},
	PaymentFrequencyHigh: {
		ID:          PaymentFrequencyHigh,
		Category:    models.CategoryVelocity,
		Weight:      45,
		Description: "payment count in the rolling window at or above the threshold",
	},
	GeolocationMismatch: {
		ID:          GeolocationMismatch,
		Category:    models.CategoryGeolocation,
		Weight:      45,
		Description: "origin country outside the user's known countries and the allow-list",
	},
	VPNDetection: {
		ID:          VPNDetection,
		Category:    models.CategoryGeolocation,
		Weight:      45,
		Description: "request originates from a VPN, proxy or Tor exit",
	},
	DeviceSuspicious: {
		ID:          DeviceSuspicious,
		Category:    models.CategoryDevice,
		Weight:      70,
		Description: "device fingerprint carries an elevated registry risk score",
	},
	UnusualPaymentTime: {
		ID:          UnusualPaymentTime,
		Category:    models.CategoryBehavioral,
		Weight:      45,
		Description: "transaction hour falls in the unusual band",
	},
	SystemError: {
		ID:          SystemError,
		Category:    models.CategorySystem,
		Weight:      50,
		Description: "a detector dependency was unavailable; decision made on incomplete signal",
	},
}

// Get returns the catalog entry for a rule ID.
func Get(id string) (Rule, bool) {
	r, ok := catalog[id]
	return r, ok
}

// Weight returns the nominal weight for a rule ID, 0 if unknown.
func Weight(id string) int {
	return catalog[id].Weight
}

// Category returns the category for a rule ID.
func Category(id string) models.RuleCategory {
	return catalog[id].Category
}

// All returns the catalog entries sorted by ID.
func All() []Rule {
	out := make([]Rule, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
