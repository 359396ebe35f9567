package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"finwise-tips/internal/models"
)

const defaultPromptContext = "General financial advice"

const tipsPromptTemplate = `
You are a professional financial advisor AI. Based on the profile and health assessment below, generate a pure JSON response with:

- tips: A list of 3-5 concise actionable financial suggestions. Each tip should be tailored using the actual numbers (e.g. income, debt, savings).
- priority_level: "High", "Medium", or "Low", based on financial urgency.
- estimated_impact: Short string explaining potential financial improvement.
- action_items: 3-5 detailed steps that apply those tips directly to the user's data. These should not be generic; use the user's income, debt, expenses, etc. All amounts must be in Indian Rupees (₹), and use the ₹ symbol in responses. Do not use dollar signs.
- personalized_message: A short motivating sentence.

The response MUST be strictly valid JSON with exactly these five fields. Do NOT use markdown formatting or ` + "```json" + `. No comments. No headings.

User profile:
{
  "monthly_income": {{.MonthlyIncome}},
  "monthly_expenses": {{.MonthlyExpenses}},
  "savings_goal": {{.SavingsGoal}},
  "current_savings": {{.CurrentSavings}},
  "debt_amount": {{.DebtAmount}},
  "age": {{.Age}},
  "financial_goals": "{{.FinancialGoals}}",
  "spending_categories": "{{.SpendingCategories}}",
  "risk_tolerance": "{{.RiskTolerance}}",
  "health_assessment": "{{.HealthAssessment}}",
  "tip_type": "{{.TipType}}",
  "context": "{{.Context}}"
}
`

type promptVariables struct {
	MonthlyIncome      string
	MonthlyExpenses    string
	SavingsGoal        string
	CurrentSavings     string
	DebtAmount         string
	Age                int
	FinancialGoals     string
	SpendingCategories string
	RiskTolerance      string
	HealthAssessment   string
	TipType            string
	Context            string
}

type promptComposer struct {
	tmpl *template.Template
}

// NewPromptComposer parses the tips prompt template once; composing is then read-only.
func NewPromptComposer() PromptComposerInterface {
	return &promptComposer{
		tmpl: template.Must(template.New("tips").Option("missingkey=error").Parse(tipsPromptTemplate)),
	}
}

// Compose renders the instruction sent to the model. Values are embedded verbatim.
func (p *promptComposer) Compose(req models.TipRequest, assessment models.HealthAssessment) (string, error) {
	vars := promptVariables{
		MonthlyIncome:      formatAmount(req.Profile.MonthlyIncome),
		MonthlyExpenses:    formatAmount(req.Profile.MonthlyExpenses),
		SavingsGoal:        formatAmount(req.Profile.SavingsGoal),
		CurrentSavings:     formatAmount(req.Profile.CurrentSavings),
		DebtAmount:         formatAmount(req.Profile.DebtAmount),
		Age:                req.Profile.Age,
		FinancialGoals:     strings.Join(req.Profile.FinancialGoals, ", "),
		SpendingCategories: formatCategories(req.Profile.SpendingCategories),
		RiskTolerance:      req.Profile.RiskTolerance,
		HealthAssessment:   formatAssessment(assessment),
		TipType:            req.TipType,
		Context:            req.Context,
	}
	if vars.Context == "" {
		vars.Context = defaultPromptContext
	}

	var sb strings.Builder
	if err := p.tmpl.Execute(&sb, vars); err != nil {
		return "", fmt.Errorf("render tips prompt: %w", err)
	}
	return sb.String(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCategories renders "name: amount" pairs sorted by name
func formatCategories(categories map[string]float64) string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+formatAmount(categories[name]))
	}
	return strings.Join(parts, ", ")
}

func formatAssessment(a models.HealthAssessment) string {
	return fmt.Sprintf("savings_rate: %s, emergency_fund: %s, debt_ratio: %s, overall_health: %s",
		a.SavingsRate, a.EmergencyFund, a.DebtRatio, a.OverallHealth)
}
