package models

import "time"

type RiskLevel string
type Action string
type RuleCategory string
type AlertType string
type AlertSeverity string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"

	ActionAllow     Action = "allow"
	ActionChallenge Action = "challenge"
	ActionReview    Action = "review"
	// ActionBlock is reserved for future policy extension; the base rule
	// set never reaches it.
	ActionBlock Action = "block"

	CategoryVelocity    RuleCategory = "velocity"
	CategoryGeolocation RuleCategory = "geolocation"
	CategoryDevice      RuleCategory = "device"
	CategoryBehavioral  RuleCategory = "behavioral"
	CategorySystem      RuleCategory = "system"

	AlertFraudDetected AlertType = "fraud_detected"
	AlertSystemError   AlertType = "system_error"

	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityError   AlertSeverity = "error"
)

// FraudCheckRequest is the immutable input to one detection pass.
// Amount is in minor currency units (e.g. KRW has none, USD cents).
type FraudCheckRequest struct {
	PaymentID         string                 `json:"payment_id" binding:"required"`
	UserID            string                 `json:"user_id" binding:"required"`
	Amount            int64                  `json:"amount" binding:"required,gt=0"`
	Currency          string                 `json:"currency" binding:"required,len=3"`
	PaymentMethod     string                 `json:"payment_method"`
	IPAddress         string                 `json:"ip_address"`
	UserAgent         string                 `json:"user_agent"`
	Geolocation       GeolocationSnapshot    `json:"geolocation"`
	DeviceFingerprint string                 `json:"device_fingerprint"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// GeolocationSnapshot is a point-in-time fact from the IP reputation
// provider; the engine never re-validates it.
type GeolocationSnapshot struct {
	IPAddress   string    `json:"ip_address"`
	Country     string    `json:"country"`
	Region      string    `json:"region"`
	City        string    `json:"city"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Timezone    string    `json:"timezone"`
	ISP         string    `json:"isp"`
	IsProxy     bool      `json:"is_proxy"`
	IsVPN       bool      `json:"is_vpn"`
	IsTor       bool      `json:"is_tor"`
	RiskScore   int       `json:"risk_score"`
	CollectedAt time.Time `json:"collected_at"`
}

// DetectedFinding records one rule firing. Weight is the score actually
// applied, which for pass-through rules may differ from the catalog weight.
type DetectedFinding struct {
	RuleID   string                 `json:"rule_id"`
	Weight   int                    `json:"weight"`
	Evidence map[string]interface{} `json:"evidence,omitempty"`
}

type SecurityAlert struct {
	ID        string        `json:"id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	RuleIDs   []string      `json:"rule_ids,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// FraudDecision is the single output of a detection pass. It is always
// fully populated: a request with no findings yields score 0, level low,
// action allow and no alerts.
type FraudDecision struct {
	PaymentID    string            `json:"payment_id"`
	RiskScore    int               `json:"risk_score"`
	RiskLevel    RiskLevel         `json:"risk_level"`
	Action       Action            `json:"action"`
	Findings     []DetectedFinding `json:"findings"`
	Alerts       []SecurityAlert   `json:"alerts"`
	EvaluatedAt  time.Time         `json:"evaluated_at"`
	ProcessingMS int64             `json:"processing_ms"`
}

// PaymentRecord is one prior payment returned by the transaction-history
// collaborator.
type PaymentRecord struct {
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DecisionRecord is the persisted summary of a decision. Persistence is
// the caller's concern; the engine itself stores nothing.
type DecisionRecord struct {
	ID           string    `json:"id" db:"id"`
	PaymentID    string    `json:"payment_id" db:"payment_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	RiskScore    int       `json:"risk_score" db:"risk_score"`
	RiskLevel    string    `json:"risk_level" db:"risk_level"`
	Action       string    `json:"action" db:"action"`
	RuleIDs      []string  `json:"rule_ids" db:"rule_ids"`
	ProcessingMS int64     `json:"processing_ms" db:"processing_ms"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DecisionStats aggregates the decision log for the stats endpoint.
type DecisionStats struct {
	TotalChecks    int64 `json:"total_checks"`
	HighRiskCount  int64 `json:"high_risk_count"`
	ReviewCount    int64 `json:"review_count"`
	ChallengeCount int64 `json:"challenge_count"`
}
