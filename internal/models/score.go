// internal/models/score.go
package models

// RiskLevel is the three-tier classification derived from a credit score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ScoreResult is returned to the caller and never stored.
type ScoreResult struct {
	ApplicantID int64     `json:"applicant_id"`
	CreditScore int       `json:"credit_score"`
	Explanation string    `json:"explanation"`
	RiskLevel   RiskLevel `json:"risk_level"`
}
