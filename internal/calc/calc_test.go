package calc

import (
	"math"
	"testing"

	"github.com/saveup-app/saveup/internal/model"
)

func TestHourlyWage_Annual(t *testing.T) {
	// 52000 / (52 * 40) = 25.00
	got := HourlyWage(52000, model.SalaryAnnual)
	if got != 25.00 {
		t.Errorf("HourlyWage(52000, annual) = %.2f, want 25.00", got)
	}
}

func TestHourlyWage_MonthlyAnnualizes(t *testing.T) {
	monthly := HourlyWage(4000, model.SalaryMonthly)
	annual := HourlyWage(4000*12, model.SalaryAnnual)
	if math.Abs(monthly-annual) > 0.01 {
		t.Errorf("monthly %.2f != annualized %.2f", monthly, annual)
	}
}

func TestHourlyWage_Rounding(t *testing.T) {
	// 55000 / 2080 = 26.44230... -> 26.44
	got := HourlyWage(55000, model.SalaryAnnual)
	if got != 26.44 {
		t.Errorf("HourlyWage(55000, annual) = %.2f, want 26.44", got)
	}
}

func TestHourlyWage_InvalidInputs(t *testing.T) {
	for _, amount := range []float64{0, -1000, math.NaN(), math.Inf(1)} {
		if got := HourlyWage(amount, model.SalaryAnnual); got != 0 {
			t.Errorf("HourlyWage(%v) = %v, want 0", amount, got)
		}
	}
}

func TestWorkHours(t *testing.T) {
	if got := WorkHours(100, 25); got != 4.00 {
		t.Errorf("WorkHours(100, 25) = %.2f, want 4.00", got)
	}
	// 99.99 / 26.44 = 3.7817... -> 3.78
	if got := WorkHours(99.99, 26.44); got != 3.78 {
		t.Errorf("WorkHours(99.99, 26.44) = %.2f, want 3.78", got)
	}
}

func TestWorkHours_InvalidInputs(t *testing.T) {
	cases := []struct {
		name       string
		cost, wage float64
	}{
		{"zero cost", 0, 25},
		{"zero wage", 100, 0},
		{"negative cost", -5, 25},
		{"negative wage", 100, -25},
		{"nan cost", math.NaN(), 25},
		{"nan wage", 100, math.NaN()},
	}
	for _, tc := range cases {
		if got := WorkHours(tc.cost, tc.wage); got != 0 {
			t.Errorf("%s: WorkHours(%v, %v) = %v, want 0", tc.name, tc.cost, tc.wage, got)
		}
	}
}

func TestInvestmentValue_Default(t *testing.T) {
	// 1000 * 1.07^10 = 1967.15
	got := InvestmentValue(1000, 0.07, 10)
	if math.Abs(got-1967.15) > 0.01 {
		t.Errorf("InvestmentValue(1000, 0.07, 10) = %.2f, want 1967.15", got)
	}
}

func TestProjectedInvestment_UsesDefaults(t *testing.T) {
	if got, want := ProjectedInvestment(1000), InvestmentValue(1000, 0.07, 10); got != want {
		t.Errorf("ProjectedInvestment(1000) = %.2f, want %.2f", got, want)
	}
}

func TestInvestmentValue_InvalidInputs(t *testing.T) {
	if got := InvestmentValue(0, 0.07, 10); got != 0 {
		t.Errorf("zero amount: got %v, want 0", got)
	}
	if got := InvestmentValue(-100, 0.07, 10); got != 0 {
		t.Errorf("negative amount: got %v, want 0", got)
	}
	if got := InvestmentValue(math.NaN(), 0.07, 10); got != 0 {
		t.Errorf("NaN amount: got %v, want 0", got)
	}
	if got := InvestmentValue(1000, math.NaN(), 10); got != 0 {
		t.Errorf("NaN return: got %v, want 0", got)
	}
	if got := InvestmentValue(1000, 0.07, -1); got != 0 {
		t.Errorf("negative years: got %v, want 0", got)
	}
}

func TestInvestmentValue_ZeroYears(t *testing.T) {
	// No growth period leaves the principal unchanged.
	if got := InvestmentValue(500, 0.07, 0); got != 500 {
		t.Errorf("InvestmentValue(500, 0.07, 0) = %.2f, want 500.00", got)
	}
}
