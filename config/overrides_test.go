package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func snapshot(t *testing.T) {
	t.Helper()
	c, g, n, l, d := *C, Gameplay, Network, Logging, Debug
	t.Cleanup(func() {
		*C, Gameplay, Network, Logging, Debug = c, g, n, l, d
	})
}

func TestApplyOverrides(t *testing.T) {
	snapshot(t)

	undecoded, err := ApplyOverrides(`
[window]
width = 1050

[gameplay]
start_lives = 5
enemy_move_ticks = 8

[network]
score_api_url = "http://scores.example:5000/api/"
request_timeout = "2s"

[logging]
level = "debug"
format = "json"

[debug]
seed = 42
bogus = true
`)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}

	if C.Width != 1050 || C.Height != 400 {
		t.Errorf("window = %dx%d, want 1050x400", C.Width, C.Height)
	}
	if Gameplay.StartLives != 5 || Gameplay.EnemyMoveTicks != 8 {
		t.Errorf("gameplay = %+v", Gameplay)
	}
	if Gameplay.HitScore != 40 {
		t.Errorf("untouched HitScore = %d, want 40", Gameplay.HitScore)
	}
	if Network.ScoreAPIURL != "http://scores.example:5000/api" {
		t.Errorf("ScoreAPIURL = %q", Network.ScoreAPIURL)
	}
	if Network.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v", Network.RequestTimeout)
	}
	if Logging.Level != "debug" || Logging.Format != "json" {
		t.Errorf("logging = %+v", Logging)
	}
	if Debug.Seed != 42 {
		t.Errorf("Seed = %d", Debug.Seed)
	}
	if len(undecoded) != 1 || undecoded[0] != "debug.bogus" {
		t.Errorf("undecoded = %v, want [debug.bogus]", undecoded)
	}
}

func TestApplyOverridesRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[window\nwidth = 1"},
		{"zero lives", "[gameplay]\nstart_lives = 0"},
		{"negative width", "[window]\nwidth = -1"},
		{"bad timeout", "[network]\nrequest_timeout = \"soon\""},
		{"bad format", "[logging]\nformat = \"xml\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			before := Gameplay
			if _, err := ApplyOverrides(tt.data); err == nil {
				t.Fatal("expected error")
			}
			if Gameplay != before {
				t.Error("globals changed after a rejected file")
			}
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	undecoded, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil || undecoded != nil {
		t.Fatalf("LoadOverrides() = %v, %v; want nil, nil", undecoded, err)
	}
}

func TestLoadOverridesFile(t *testing.T) {
	snapshot(t)
	path := filepath.Join(t.TempDir(), DefaultOverridesPath)
	if err := os.WriteFile(path, []byte("[debug]\nskip_menu = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if !Debug.SkipMenu {
		t.Error("SkipMenu not applied")
	}
}

func TestSchemeFor(t *testing.T) {
	if SchemeFor(0) != ControlSchemeArrows || SchemeFor(1) != ControlSchemeWASD {
		t.Error("players 1 and 2 should get distinct schemes")
	}
	for id := range ControlSchemeBindings {
		if len(ControlSchemeBindings[id][ActionFire]) == 0 {
			t.Errorf("scheme %d has no fire key", id)
		}
	}
}
