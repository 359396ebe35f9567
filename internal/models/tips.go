package models

// Priority levels the model may assign to a set of tips
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// TipResponse is the structured advice returned to the caller.
// It is only ever produced from a fully validated model completion.
type TipResponse struct {
	Tips                []string `json:"tips"`
	PriorityLevel       string   `json:"priority_level"`
	EstimatedImpact     string   `json:"estimated_impact"`
	ActionItems         []string `json:"action_items"`
	PersonalizedMessage string   `json:"personalized_message"`
}
