package services

import (
	"finwise-tips/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	goodSavingRate = decimal.NewFromInt(20)
	maxDebtRatio   = decimal.NewFromInt(30)
)

type financialHealthAssessor struct{}

// NewFinancialHealthAssessor returns the stateless rules engine used by the tips endpoint.
func NewFinancialHealthAssessor() FinancialHealthAssessorInterface {
	return &financialHealthAssessor{}
}

// Assess derives the health metrics for a profile. It never fails for finite inputs.
func (a *financialHealthAssessor) Assess(profile models.FinancialProfile) models.HealthAssessment {
	savingsRate := SavingsRate(profile.MonthlyIncome, profile.MonthlyExpenses)
	debtRatio := DebtToIncomeRatio(profile.DebtAmount, profile.MonthlyIncome)

	return models.HealthAssessment{
		SavingsRate:   formatPercent(savingsRate),
		EmergencyFund: EmergencyFundStatus(profile.CurrentSavings, profile.MonthlyExpenses),
		DebtRatio:     formatPercent(debtRatio),
		OverallHealth: OverallHealth(savingsRate, debtRatio),
	}
}

// SavingsRate returns (income - expenses) / income * 100, or 0 when income <= 0.
func SavingsRate(income, expenses float64) decimal.Decimal {
	if income <= 0 {
		return decimal.Zero
	}
	inc := decimal.NewFromFloat(income)
	return inc.Sub(decimal.NewFromFloat(expenses)).Div(inc).Mul(hundred)
}

// EmergencyFundStatus classifies how many months of expenses the savings cover.
func EmergencyFundStatus(savings, expenses float64) models.EmergencyFundStatus {
	if expenses <= 0 {
		return models.EmergencyFundUnknown
	}

	sav := decimal.NewFromFloat(savings)
	exp := decimal.NewFromFloat(expenses)
	covers := func(months int64) bool {
		return sav.GreaterThanOrEqual(exp.Mul(decimal.NewFromInt(months)))
	}

	switch {
	case covers(6):
		return models.EmergencyFundExcellent
	case covers(3):
		return models.EmergencyFundGood
	case covers(1):
		return models.EmergencyFundFair
	default:
		return models.EmergencyFundNeedsImprovement
	}
}

// DebtToIncomeRatio returns debt / (income * 12) * 100, or 0 when income <= 0.
func DebtToIncomeRatio(debt, income float64) decimal.Decimal {
	if income <= 0 {
		return decimal.Zero
	}
	annual := decimal.NewFromFloat(income).Mul(monthsPerYear)
	return decimal.NewFromFloat(debt).Div(annual).Mul(hundred)
}

// OverallHealth is good only when the savings rate is at least 20 and the debt ratio under 30.
// Both inputs are the unrounded values.
func OverallHealth(savingsRate, debtRatio decimal.Decimal) models.OverallHealth {
	if savingsRate.GreaterThanOrEqual(goodSavingRate) && debtRatio.LessThan(maxDebtRatio) {
		return models.OverallHealthGood
	}
	return models.OverallHealthNeedsImprovement
}

// formatPercent renders one decimal place, rounding exact ties to even.
func formatPercent(v decimal.Decimal) string {
	return v.StringFixedBank(1) + "%"
}
