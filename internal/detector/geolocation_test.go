package detector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/models"
	"github.com/ModawnAI/everything-backend-sub009/internal/rules"
)

type geoMock struct {
	mock.Mock
}

func (m *geoMock) KnownCountries(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	countries, _ := args.Get(0).([]string)
	return countries, args.Error(1)
}

func geoRequest(country string, vpn, proxy, tor bool) *models.FraudCheckRequest {
	return &models.FraudCheckRequest{
		PaymentID: "pay_g",
		UserID:    "user_g",
		Amount:    1000,
		Currency:  "KRW",
		Geolocation: models.GeolocationSnapshot{
			Country: country,
			IsVPN:   vpn,
			IsProxy: proxy,
			IsTor:   tor,
		},
	}
}

func TestGeolocationDetectorMismatch(t *testing.T) {
	geo := new(geoMock)
	geo.On("KnownCountries", mock.Anything, "user_g").Return([]string{"JP", "KR"}, nil)

	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())
	result := d.Detect(context.Background(), geoRequest("US", false, false, false))

	require.Len(t, result.Findings, 1)
	assert.Equal(t, rules.GeolocationMismatch, result.Findings[0].RuleID)
	assert.Equal(t, "US", result.Findings[0].Evidence["country"])
}

func TestGeolocationDetectorKnownCountryPasses(t *testing.T) {
	geo := new(geoMock)
	geo.On("KnownCountries", mock.Anything, "user_g").Return([]string{"US"}, nil)

	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())
	result := d.Detect(context.Background(), geoRequest("US", false, false, false))

	assert.Empty(t, result.Findings)
}

func TestGeolocationDetectorAllowlistSkipsLookup(t *testing.T) {
	geo := new(geoMock)

	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())
	result := d.Detect(context.Background(), geoRequest("KR", false, false, false))

	assert.Empty(t, result.Findings)
	geo.AssertNotCalled(t, "KnownCountries", mock.Anything, mock.Anything)
}

func TestGeolocationDetectorNoHistoryOutsideAllowlistFlags(t *testing.T) {
	geo := new(geoMock)
	geo.On("KnownCountries", mock.Anything, "user_g").Return([]string{}, nil)

	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())
	result := d.Detect(context.Background(), geoRequest("BR", false, false, false))

	require.Len(t, result.Findings, 1)
	assert.Equal(t, rules.GeolocationMismatch, result.Findings[0].RuleID)
}

func TestGeolocationDetectorVPNFlags(t *testing.T) {
	tests := []struct {
		name            string
		vpn, proxy, tor bool
	}{
		{"vpn", true, false, false},
		{"proxy", false, true, false},
		{"tor", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(geoMock)
			d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())

			// Allow-listed country isolates the VPN predicate.
			result := d.Detect(context.Background(), geoRequest("KR", tt.vpn, tt.proxy, tt.tor))

			require.Len(t, result.Findings, 1)
			assert.Equal(t, rules.VPNDetection, result.Findings[0].RuleID)
			assert.Equal(t, 45, result.Findings[0].Weight)
		})
	}
}

func TestGeolocationDetectorDegradedLookupKeepsVPNFinding(t *testing.T) {
	geo := new(geoMock)
	geo.On("KnownCountries", mock.Anything, "user_g").Return(nil, errors.New("geo store down"))

	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())
	result := d.Detect(context.Background(), geoRequest("US", true, false, false))

	assert.True(t, result.Degraded)
	require.Len(t, result.Findings, 2)
	assert.Equal(t, rules.VPNDetection, result.Findings[0].RuleID,
		"the VPN predicate does not depend on the history lookup")
	assert.Equal(t, rules.SystemError, result.Findings[1].RuleID)
}

func TestGeolocationDetectorEmptyCountrySkipsLookup(t *testing.T) {
	geo := new(geoMock)
	d := NewGeolocationDetector(geo, DefaultGeoAllowlist(), zap.NewNop())

	result := d.Detect(context.Background(), geoRequest("", false, false, false))

	assert.Empty(t, result.Findings)
	geo.AssertNotCalled(t, "KnownCountries", mock.Anything, mock.Anything)
}
