// Package calc holds the pure money-to-time arithmetic behind every
// decision: hourly wage, work hours per purchase, and projected investment
// growth. All functions are total: invalid input degrades to zero rather
// than returning an error.
package calc

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/saveup-app/saveup/internal/model"
)

const (
	WeeksPerYear  = 52
	HoursPerWeek  = 40
	MonthsPerYear = 12

	// Defaults for the "what if you invested it instead" projection.
	DefaultAnnualReturn    = 0.07
	DefaultInvestmentYears = 10
)

// workHoursPerYear is the fixed annualization divisor (52 weeks x 40 hours).
const workHoursPerYear = WeeksPerYear * HoursPerWeek

// HourlyWage converts a salary into an hourly rate, rounded to 2 decimal
// places. Monthly salaries are annualized first. Non-positive or
// non-finite amounts yield 0.
func HourlyWage(salaryAmount float64, salaryType model.SalaryType) float64 {
	if !positiveFinite(salaryAmount) {
		return 0
	}

	annual := decimal.NewFromFloat(salaryAmount)
	if salaryType == model.SalaryMonthly {
		annual = annual.Mul(decimal.NewFromInt(MonthsPerYear))
	}

	wage := annual.Div(decimal.NewFromInt(workHoursPerYear))
	return round2(wage)
}

// WorkHours returns how many hours of work the item costs, rounded to
// 2 decimal places. Zero if either input is non-positive or non-finite.
func WorkHours(itemCost, hourlyWage float64) float64 {
	if !positiveFinite(itemCost) || !positiveFinite(hourlyWage) {
		return 0
	}

	hours := decimal.NewFromFloat(itemCost).Div(decimal.NewFromFloat(hourlyWage))
	return round2(hours)
}

// InvestmentValue projects compound growth of amount at annualReturn over
// the given number of years, rounded to 2 decimal places. Non-positive or
// non-finite amounts yield 0.
func InvestmentValue(amount, annualReturn float64, years int) float64 {
	if !positiveFinite(amount) {
		return 0
	}
	if math.IsNaN(annualReturn) || math.IsInf(annualReturn, 0) || years < 0 {
		return 0
	}

	future := amount * math.Pow(1+annualReturn, float64(years))
	if math.IsNaN(future) || math.IsInf(future, 0) {
		return 0
	}
	return round2(decimal.NewFromFloat(future))
}

// ProjectedInvestment applies the default 7% / 10 year projection.
func ProjectedInvestment(amount float64) float64 {
	return InvestmentValue(amount, DefaultAnnualReturn, DefaultInvestmentYears)
}

// round2 rounds half away from zero to 2 decimal places.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
