package models

// EmergencyFundStatus categorizes how many months of expenses current savings cover
type EmergencyFundStatus string

const (
	EmergencyFundExcellent        EmergencyFundStatus = "excellent"
	EmergencyFundGood             EmergencyFundStatus = "good"
	EmergencyFundFair             EmergencyFundStatus = "fair"
	EmergencyFundNeedsImprovement EmergencyFundStatus = "needs_improvement"
	EmergencyFundUnknown          EmergencyFundStatus = "unknown"
)

// OverallHealth is the two-valued summary label of an assessment
type OverallHealth string

const (
	OverallHealthGood             OverallHealth = "good"
	OverallHealthNeedsImprovement OverallHealth = "needs_improvement"
)

// HealthAssessment contains the metrics derived from a FinancialProfile.
// Percentages are pre-formatted with one decimal place, e.g. "40.0%".
type HealthAssessment struct {
	SavingsRate   string              `json:"savings_rate"`
	EmergencyFund EmergencyFundStatus `json:"emergency_fund"`
	DebtRatio     string              `json:"debt_ratio"`
	OverallHealth OverallHealth       `json:"overall_health"`
}
