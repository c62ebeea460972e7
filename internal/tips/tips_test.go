package tips

import (
	"testing"
	"time"
)

func TestOfTheDay_Deterministic(t *testing.T) {
	day := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 15, 22, 30, 0, 0, time.UTC)

	if OfTheDay(day) != OfTheDay(later) {
		t.Error("tip changed within the same day")
	}
}

func TestOfTheDay_RotatesAcrossDays(t *testing.T) {
	a := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, 1)

	if OfTheDay(a) == OfTheDay(b) {
		t.Error("consecutive days returned the same tip")
	}
}

func TestAll_NonEmpty(t *testing.T) {
	for i, tip := range All() {
		if tip.Title == "" || tip.Text == "" {
			t.Errorf("tip %d has empty fields: %+v", i, tip)
		}
	}
}
