// Package tips serves the rotating money-management advice shown alongside
// stats output.
package tips

import "time"

// Tip is one piece of saving advice.
type Tip struct {
	Title string
	Text  string
}

var all = []Tip{
	{
		Title: "The 24-Hour Rule",
		Text:  "Wait 24 hours before buying non-essential items. You'll often forget about them!",
	},
	{
		Title: "Track Your Spending",
		Text:  "Keep a record of every purchase for a month. You'll be surprised where your money goes.",
	},
	{
		Title: "Automate Your Savings",
		Text:  "Set up automatic transfers to savings right after payday. Pay yourself first!",
	},
	{
		Title: "Use the 50/30/20 Rule",
		Text:  "Allocate 50% to needs, 30% to wants, and 20% to savings and debt repayment.",
	},
	{
		Title: "Avoid Impulse Buying",
		Text:  "Make a shopping list and stick to it. Don't shop when you're emotional or hungry.",
	},
	{
		Title: "Compare Prices",
		Text:  "Before buying, check at least 2-3 stores or websites. Small savings add up!",
	},
	{
		Title: "Think in Work Hours",
		Text:  "Convert prices into hours of your life. A $200 gadget at $25/hour costs a full workday.",
	},
	{
		Title: "Invest the Difference",
		Text:  "Money you don't spend can grow. $1,000 at 7% becomes almost $2,000 in ten years.",
	},
}

// All returns every tip.
func All() []Tip {
	return all
}

// OfTheDay returns a deterministic tip for the given day, so repeated runs
// on the same date show the same advice.
func OfTheDay(now time.Time) Tip {
	day := now.YearDay() + now.Year()
	return all[day%len(all)]
}
