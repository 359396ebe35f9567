package dto

import (
	"finwise-tips/internal/models"
)

const (
	DefaultTipType       = "general"
	DefaultRiskTolerance = models.RiskToleranceMedium
)

// Tips Request DTOs

// FinancialProfileRequest is the wire form of a financial profile.
// Required values are pointers so a missing field is distinguishable from zero.
type FinancialProfileRequest struct {
	MonthlyIncome      *float64           `json:"monthly_income" validate:"required,gte=0"`
	MonthlyExpenses    *float64           `json:"monthly_expenses" validate:"required,gte=0"`
	SavingsGoal        *float64           `json:"savings_goal" validate:"required"`
	CurrentSavings     *float64           `json:"current_savings" validate:"omitempty"`
	DebtAmount         *float64           `json:"debt_amount" validate:"omitempty"`
	Age                *int               `json:"age" validate:"required"`
	FinancialGoals     []string           `json:"financial_goals"`
	SpendingCategories map[string]float64 `json:"spending_categories"`
	RiskTolerance      *string            `json:"risk_tolerance" validate:"omitempty,risk_tolerance"`
}

// GenerateTipsRequest represents the request payload for POST /generate-tips
type GenerateTipsRequest struct {
	Profile *FinancialProfileRequest `json:"profile" validate:"required"`
	TipType *string                  `json:"tip_type"`
	Context *string                  `json:"context"`
}

// ToProfile converts a validated request into the immutable domain profile, applying defaults.
func (r *FinancialProfileRequest) ToProfile() models.FinancialProfile {
	profile := models.FinancialProfile{
		MonthlyIncome:      derefFloat(r.MonthlyIncome),
		MonthlyExpenses:    derefFloat(r.MonthlyExpenses),
		SavingsGoal:        derefFloat(r.SavingsGoal),
		CurrentSavings:     derefFloat(r.CurrentSavings),
		DebtAmount:         derefFloat(r.DebtAmount),
		FinancialGoals:     append([]string{}, r.FinancialGoals...),
		SpendingCategories: make(map[string]float64, len(r.SpendingCategories)),
		RiskTolerance:      DefaultRiskTolerance,
	}

	if r.Age != nil {
		profile.Age = *r.Age
	}
	for name, amount := range r.SpendingCategories {
		profile.SpendingCategories[name] = amount
	}
	if r.RiskTolerance != nil {
		profile.RiskTolerance = *r.RiskTolerance
	}

	return profile
}

// TipTypeOrDefault returns the requested tip type, or "general" when it was omitted.
// An explicit empty string is passed through.
func (r *GenerateTipsRequest) TipTypeOrDefault() string {
	if r.TipType == nil {
		return DefaultTipType
	}
	return *r.TipType
}

// ContextOrEmpty returns the optional free-text context.
func (r *GenerateTipsRequest) ContextOrEmpty() string {
	if r.Context == nil {
		return ""
	}
	return *r.Context
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
