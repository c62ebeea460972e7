package model

import "time"

// DecisionType classifies the outcome of one purchase evaluation.
type DecisionType string

const (
	DecisionBuy        DecisionType = "buy"
	DecisionDontBuy    DecisionType = "dont_buy"
	DecisionSave       DecisionType = "save"
	DecisionLetMeThink DecisionType = "let_me_think"
)

// Valid reports whether t is one of the four known decision types.
func (t DecisionType) Valid() bool {
	switch t {
	case DecisionBuy, DecisionDontBuy, DecisionSave, DecisionLetMeThink:
		return true
	}
	return false
}

// SalaryType selects how a configured salary amount is interpreted.
type SalaryType string

const (
	SalaryMonthly SalaryType = "monthly"
	SalaryAnnual  SalaryType = "annual"
)

// SpendingDecision is one recorded buy / don't-buy / save / let-me-think
// entry in the local ledger. ID and CreatedAt are assigned at append time
// and never change afterwards.
type SpendingDecision struct {
	ID              string
	ItemName        string
	ItemPrice       float64
	WorkHours       float64
	InvestmentValue float64
	DecisionType    DecisionType
	RemindAt        *time.Time // set only for pending let_me_think entries
	Categories      []string
	CreatedAt       time.Time
}

// PendingReminder reports whether the decision is an unresolved
// let_me_think entry whose reminder has not yet passed at the given time.
func (d SpendingDecision) PendingReminder(now time.Time) bool {
	return d.DecisionType == DecisionLetMeThink &&
		d.RemindAt != nil &&
		d.RemindAt.After(now)
}

// DecisionStats holds the aggregate counters derived from the full ledger.
// It is never authoritative: every field is recomputable from the decisions
// themselves, and the four per-type counts always sum to TotalDecisions.
type DecisionStats struct {
	TotalMoneySaved float64
	TotalHoursSaved float64
	TotalDecisions  int
	BuyCount        int
	DontBuyCount    int
	SaveCount       int
	LetMeThinkCount int
}

// IsZero reports whether every counter is zero, i.e. the empty-ledger state.
func (s DecisionStats) IsZero() bool {
	return s == DecisionStats{}
}
