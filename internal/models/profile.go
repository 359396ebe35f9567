package models

// Risk tolerance labels accepted on a profile
const (
	RiskToleranceLow    = "low"
	RiskToleranceMedium = "medium"
	RiskToleranceHigh   = "high"
)

// FinancialProfile holds the user-supplied financial facts for one tips request.
// It is built once from the request body and never mutated afterwards.
type FinancialProfile struct {
	MonthlyIncome      float64            `json:"monthly_income"`
	MonthlyExpenses    float64            `json:"monthly_expenses"`
	SavingsGoal        float64            `json:"savings_goal"`
	CurrentSavings     float64            `json:"current_savings"`
	DebtAmount         float64            `json:"debt_amount"`
	Age                int                `json:"age"`
	FinancialGoals     []string           `json:"financial_goals"`
	SpendingCategories map[string]float64 `json:"spending_categories"`
	RiskTolerance      string             `json:"risk_tolerance"`
}
