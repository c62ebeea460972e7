package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saveup-app/saveup/internal/model"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile.Currency != "USD" {
		t.Errorf("default currency = %q, want USD", cfg.Profile.Currency)
	}
	if cfg.Profile.SalaryType != model.SalaryAnnual {
		t.Errorf("default salary type = %q, want annual", cfg.Profile.SalaryType)
	}
	if cfg.Investment.AnnualReturn != 0.07 || cfg.Investment.Years != 10 {
		t.Errorf("default investment = %+v, want 7%% over 10y", cfg.Investment)
	}
	if cfg.Remote.Backend != "supabase" {
		t.Errorf("default backend = %q, want supabase", cfg.Remote.Backend)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Profile.SalaryAmount = 52000
	cfg.Profile.Currency = "EUR"
	cfg.Profile.Region = "DE"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Profile.SalaryAmount != 52000 || loaded.Profile.Currency != "EUR" {
		t.Errorf("loaded profile = %+v", loaded.Profile)
	}
}

func TestEnvOverridesRemote(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SAVEUP_SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SAVEUP_ANON_KEY", "env-anon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.BaseURL != "https://example.supabase.co" {
		t.Errorf("BaseURL = %q, want env value", cfg.Remote.BaseURL)
	}
	if cfg.Remote.AnonKey != "env-anon" {
		t.Errorf("AnonKey = %q, want env value", cfg.Remote.AnonKey)
	}
}

func TestLedgerPath_NamespacedByUser(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	a := LedgerPath("user-a")
	b := LedgerPath("user-b")
	if a == b {
		t.Errorf("ledger paths not namespaced: %q == %q", a, b)
	}
	if filepath.Base(a) != "decisions-user-a.db" {
		t.Errorf("LedgerPath(user-a) = %q", a)
	}
	if filepath.Base(LedgerPath("")) != "decisions-local.db" {
		t.Errorf("anonymous LedgerPath = %q", LedgerPath(""))
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "saveup") {
		t.Errorf("ConfigDir = %q", got)
	}
	_ = os.Unsetenv("XDG_CONFIG_HOME")
}
