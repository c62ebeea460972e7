// Package config loads and persists saveup configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/saveup-app/saveup/internal/model"
)

// Config holds all saveup configuration.
type Config struct {
	Profile    ProfileConfig    `toml:"profile"`
	Remote     RemoteConfig     `toml:"remote"`
	Investment InvestmentConfig `toml:"investment"`
}

// ProfileConfig holds the user's earning and currency settings collected
// during setup.
type ProfileConfig struct {
	SalaryAmount float64          `toml:"salary_amount"`
	SalaryType   model.SalaryType `toml:"salary_type"`
	Currency     string           `toml:"currency"`
	Region       string           `toml:"region,omitempty"`
}

// RemoteConfig selects and configures the remote profile store.
type RemoteConfig struct {
	Backend  string `toml:"backend"` // "supabase" or "mongo"
	BaseURL  string `toml:"base_url,omitempty"`
	AnonKey  string `toml:"anon_key,omitempty"`
	MongoURI string `toml:"mongo_uri,omitempty"`
	MongoDB  string `toml:"mongo_db,omitempty"`
}

// InvestmentConfig overrides the growth-projection defaults.
type InvestmentConfig struct {
	AnnualReturn float64 `toml:"annual_return"`
	Years        int     `toml:"years"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			SalaryType: model.SalaryAnnual,
			Currency:   "USD",
		},
		Remote: RemoteConfig{
			Backend: "supabase",
		},
		Investment: InvestmentConfig{
			AnnualReturn: 0.07,
			Years:        10,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "saveup")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "saveup")
}

// DataDir returns the XDG-compliant data directory holding the per-user
// ledger databases.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "saveup")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "saveup")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// SessionPath returns the full path to the persisted auth session.
func SessionPath() string {
	return filepath.Join(ConfigDir(), "session.toml")
}

// LedgerPath returns the sqlite path for the given user's ledger. Each
// authenticated user gets their own database file so accounts sharing a
// device never mix decisions; the anonymous ledger is "local".
func LedgerPath(userID string) string {
	if userID == "" {
		userID = "local"
	}
	return filepath.Join(DataDir(), "decisions-"+userID+".db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory is honored for the env overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return applyEnv(cfg), nil
}

// applyEnv lets deploy-time env vars override the remote settings so the
// anon key never has to live in the config file.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("SAVEUP_SUPABASE_URL"); v != "" {
		cfg.Remote.BaseURL = v
	}
	if v := os.Getenv("SAVEUP_ANON_KEY"); v != "" {
		cfg.Remote.AnonKey = v
	}
	if v := os.Getenv("SAVEUP_MONGO_URI"); v != "" {
		cfg.Remote.MongoURI = v
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
