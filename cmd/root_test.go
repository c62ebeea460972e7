package cmd

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saveup-app/saveup/internal/config"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	if err := os.MkdirAll(config.ConfigDir(), 0o700); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(config.ConfigDir(), "config.toml"), []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestOpenAppLogsUnavailableRemote(t *testing.T) {
	// base_url without anon_key is a misconfigured supabase backend.
	writeConfig(t, "[remote]\nbackend = \"supabase\"\nbase_url = \"https://example.invalid\"\n")
	buf := captureLog(t)

	a, err := openApp(context.Background())
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	if a.remote != nil {
		t.Error("remote = non-nil, want nil for misconfigured backend")
	}
	if !strings.Contains(buf.String(), "remote store unavailable") {
		t.Errorf("log output = %q, want remote-unavailable warning", buf.String())
	}
}

func TestOpenAppLocalOnlyStaysQuiet(t *testing.T) {
	writeConfig(t, "")
	buf := captureLog(t)

	a, err := openApp(context.Background())
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	if a.remote != nil {
		t.Error("remote = non-nil, want nil for a default local-only config")
	}
	if buf.Len() != 0 {
		t.Errorf("log output = %q, want none for a local-only install", buf.String())
	}
}

func TestRemoteConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.RemoteConfig
		want bool
	}{
		{"default", config.RemoteConfig{Backend: "supabase"}, false},
		{"empty backend", config.RemoteConfig{}, false},
		{"partial supabase", config.RemoteConfig{Backend: "supabase", BaseURL: "https://x"}, true},
		{"mongo", config.RemoteConfig{Backend: "mongo"}, true},
		{"unknown backend", config.RemoteConfig{Backend: "dynamo"}, true},
	}
	for _, tc := range cases {
		got := remoteConfigured(config.Config{Remote: tc.cfg})
		if got != tc.want {
			t.Errorf("%s: remoteConfigured = %v, want %v", tc.name, got, tc.want)
		}
	}
}
