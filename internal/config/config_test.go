package config

import (
	"testing"
	"time"
)

func TestParseDevIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"empty", "", nil},
		{"single", "123", []int64{123}},
		{"multiple", "123,456,789", []int64{123, 456, 789}},
		{"with spaces", " 123 , 456 , 789 ", []int64{123, 456, 789}},
		{"invalid entries skipped", "123,abc,456", []int64{123, 456}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDevIDs(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseDevIDs(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseDevIDs(%q)[%d] = %d, want %d", tt.raw, i, v, tt.want[i])
				}
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOT_TOKEN", "DB_PATH", "DEV_IDS", "SNAPSHOT_STORE", "REDIS_ADDR", "RULES_PATH",
		"ACTIVE_PATH", "SPIN_DELAY", "SECRET_TAPS", "TIMEZONE", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	// keep a stray .env in the working directory out of the picture
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "casino.db" || cfg.SnapshotStore != StoreSQLite || cfg.RulesPath != "rules.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SpinDelay != 2*time.Second {
		t.Errorf("SpinDelay = %v, want 2s", cfg.SpinDelay)
	}
	if cfg.SecretTaps != 7 {
		t.Errorf("SecretTaps = %d, want 7", cfg.SecretTaps)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Location)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DEV_IDS", "1,2")
	t.Setenv("SNAPSHOT_STORE", "redis")
	t.Setenv("SPIN_DELAY", "500ms")
	t.Setenv("SECRET_TAPS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SnapshotStore != StoreRedis || cfg.SpinDelay != 500*time.Millisecond || cfg.SecretTaps != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.IsDev(2) || cfg.IsDev(3) {
		t.Errorf("IsDev mismatch for %v", cfg.DevIDs)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{}},
		{"bad store", map[string]string{"BOT_TOKEN": "x", "SNAPSHOT_STORE": "mongo"}},
		{"bad delay", map[string]string{"BOT_TOKEN": "x", "SPIN_DELAY": "soon"}},
		{"zero taps", map[string]string{"BOT_TOKEN": "x", "SECRET_TAPS": "0"}},
		{"bad timezone", map[string]string{"BOT_TOKEN": "x", "TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() succeeded")
			}
		})
	}
}
