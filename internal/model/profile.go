package model

import "time"

// QuestionnaireAnswers holds the seven yes/no spending-habit answers
// collected during onboarding.
type QuestionnaireAnswers struct {
	UnplannedPurchases bool `json:"q1_unplanned_purchases"`
	SaleUrgency        bool `json:"q2_sale_urgency"`
	PurchaseRegret     bool `json:"q3_purchase_regret"`
	EmotionalShopping  bool `json:"q4_emotional_shopping"`
	NoPriceComparison  bool `json:"q5_no_price_comparison"`
	RewardJustify      bool `json:"q6_reward_justification"`
	UnusedItems        bool `json:"q7_unused_items"`
}

// Score counts the answers that indicate an impulsive spending habit.
func (q QuestionnaireAnswers) Score() int {
	score := 0
	for _, yes := range []bool{
		q.UnplannedPurchases, q.SaleUrgency, q.PurchaseRegret,
		q.EmotionalShopping, q.NoPriceComparison, q.RewardJustify,
		q.UnusedItems,
	} {
		if yes {
			score++
		}
	}
	return score
}

// UserProfile is the remote per-user row. The ledger core only ever writes
// the six stat columns; salary, currency and onboarding fields are owned by
// the setup flow.
type UserProfile struct {
	ID                   string                `json:"id,omitempty"`
	UserID               string                `json:"user_id"`
	SalaryAmount         float64               `json:"salary_amount"`
	SalaryType           SalaryType            `json:"salary_type"`
	HourlyWage           float64               `json:"hourly_wage"`
	Currency             string                `json:"currency"`
	Region               string                `json:"region,omitempty"`
	QuestionnaireScore   int                   `json:"questionnaire_score"`
	QuestionnaireAnswers *QuestionnaireAnswers `json:"questionnaire_answers,omitempty"`
	OnboardingCompleted  bool                  `json:"onboarding_completed"`

	TotalMoneySaved float64 `json:"total_money_saved"`
	TotalHoursSaved float64 `json:"total_hours_saved"`
	TotalDecisions  int     `json:"total_decisions"`
	BuyCount        int     `json:"buy_count"`
	DontBuyCount    int     `json:"dont_buy_count"`
	SaveCount       int     `json:"save_count"`
	LetMeThinkCount int     `json:"let_me_think_count"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Stats extracts the six aggregate counters from the profile row.
func (p UserProfile) Stats() DecisionStats {
	return DecisionStats{
		TotalMoneySaved: p.TotalMoneySaved,
		TotalHoursSaved: p.TotalHoursSaved,
		TotalDecisions:  p.TotalDecisions,
		BuyCount:        p.BuyCount,
		DontBuyCount:    p.DontBuyCount,
		SaveCount:       p.SaveCount,
		LetMeThinkCount: p.LetMeThinkCount,
	}
}
