// Package stats derives aggregate counters from the full decision ledger
// and reconciles them with the remote user profile.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/saveup-app/saveup/internal/model"
)

// Compute folds the full ledger into its aggregate counters. It is pure
// and deterministic: the same snapshot always yields the same stats, and
// the four per-type counts always sum to TotalDecisions.
//
// Money and hours saved count only dont_buy and save decisions; a deferred
// let_me_think entry contributes nothing until it is resolved.
func Compute(decisions []model.SpendingDecision) model.DecisionStats {
	stats := model.DecisionStats{TotalDecisions: len(decisions)}

	moneySaved := decimal.Zero
	hoursSaved := decimal.Zero

	for _, d := range decisions {
		switch d.DecisionType {
		case model.DecisionBuy:
			stats.BuyCount++
		case model.DecisionDontBuy:
			stats.DontBuyCount++
			moneySaved = moneySaved.Add(decimal.NewFromFloat(d.ItemPrice))
			hoursSaved = hoursSaved.Add(decimal.NewFromFloat(d.WorkHours))
		case model.DecisionSave:
			stats.SaveCount++
			moneySaved = moneySaved.Add(decimal.NewFromFloat(d.ItemPrice))
			hoursSaved = hoursSaved.Add(decimal.NewFromFloat(d.WorkHours))
		case model.DecisionLetMeThink:
			stats.LetMeThinkCount++
		}
	}

	stats.TotalMoneySaved, _ = moneySaved.Round(2).Float64()
	stats.TotalHoursSaved, _ = hoursSaved.Round(2).Float64()

	return stats
}
