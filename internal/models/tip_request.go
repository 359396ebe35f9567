package models

// TipRequest is a validated request for tips: a profile, the kind of advice wanted
// and optional free-text context from the caller.
type TipRequest struct {
	Profile FinancialProfile
	TipType string
	Context string
}
