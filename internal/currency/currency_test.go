package currency

import "testing"

func TestByCode(t *testing.T) {
	c, ok := ByCode("EUR")
	if !ok {
		t.Fatal("ByCode(EUR) not found")
	}
	if c.Symbol != "€" {
		t.Errorf("Symbol = %q, want %q", c.Symbol, "€")
	}

	if _, ok := ByCode("XXX"); ok {
		t.Error("ByCode(XXX) = found, want not found")
	}
}

func TestSymbolFallback(t *testing.T) {
	if got := Symbol("GBP"); got != "£" {
		t.Errorf("Symbol(GBP) = %q, want %q", got, "£")
	}
	if got := Symbol("XXX"); got != "$" {
		t.Errorf("Symbol(XXX) = %q, want %q", got, "$")
	}
}

func TestDefaultForRegion(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"JP", "JPY"},
		{"DE", "EUR"},
		{"TR", "TRY"},
		{"ZZ", "USD"},
	}
	for _, tt := range tests {
		if got := DefaultForRegion(tt.region); got != tt.want {
			t.Errorf("DefaultForRegion(%s) = %s, want %s", tt.region, got, tt.want)
		}
	}
}

func TestRegionCurrenciesExist(t *testing.T) {
	for _, r := range Regions {
		if _, ok := ByCode(r.Currency); !ok {
			t.Errorf("region %s references unknown currency %s", r.Code, r.Currency)
		}
	}
}
