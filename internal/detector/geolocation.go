package detector

import (
	"context"

	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

// GeolocationDetector flags network-origin anomalies: a country the user
// has never paid from and VPN/proxy/Tor exits. The VPN predicate reads
// only the request snapshot and cannot degrade; only the known-country
// lookup depends on a collaborator.
type GeolocationDetector struct {
	geo       GeoHistory
	allowlist map[string]struct{}
	logger    *zap.Logger
}

// DefaultGeoAllowlist covers the platform's home market.
func DefaultGeoAllowlist() []string { return []string{"KR"} }

func NewGeolocationDetector(geo GeoHistory, allowlist []string, logger *zap.Logger) *GeolocationDetector {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, c := range allowlist {
		allowed[c] = struct{}{}
	}
	return &GeolocationDetector{geo: geo, allowlist: allowed, logger: logger}
}

func (d *GeolocationDetector) Name() string { return "geolocation" }

func (d *GeolocationDetector) Detect(ctx context.Context, req *models.FraudCheckRequest) Result {
	result := Result{Detector: d.Name()}
	snap := req.Geolocation

	if snap.IsVPN || snap.IsProxy || snap.IsTor {
		result.Findings = append(result.Findings, models.DetectedFinding{
			RuleID: rules.VPNDetection,
			Weight: rules.Weight(rules.VPNDetection),
			Evidence: map[string]interface{}{
				"is_vpn":   snap.IsVPN,
				"is_proxy": snap.IsProxy,
				"is_tor":   snap.IsTor,
			},
		})
	}

	if snap.Country == "" {
		return result
	}
	if _, allowed := d.allowlist[snap.Country]; allowed {
		return result
	}

	known, err := d.geo.KnownCountries(ctx, req.UserID)
	if err != nil {
		d.logger.Warn("geo history unavailable, degrading",
			zap.Error(err),
			zap.String("payment_id", req.PaymentID))
		result.Degraded = true
		result.Findings = append(result.Findings, degradedFinding(d.Name(), err))
		return result
	}

	for _, c := range known {
		if c == snap.Country {
			return result
		}
	}

	result.Findings = append(result.Findings, models.DetectedFinding{
		RuleID: rules.GeolocationMismatch,
		Weight: rules.Weight(rules.GeolocationMismatch),
		Evidence: map[string]interface{}{
			"country":         snap.Country,
			"known_countries": known,
		},
	})
	return result
}
