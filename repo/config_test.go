package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"StageDJ/audio"
	"StageDJ/emulator"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), configName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), configName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.PollEvery() != 10*time.Millisecond || cfg.BackoffEvery() != time.Second {
		t.Fatalf("unexpected intervals %s %s", cfg.PollEvery(), cfg.BackoffEvery())
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
process: dolphin-emu
pollInterval: 16
volume: 0.8
hooks: hooks.lua
layout:
  version: v1-custom
  physicalBase: 0x7FFF0000
  paused: 0x8046B6A9
playlists:
  8:
    - songs/battlefield.mp3
    - path: /music/battlefield-remix.mp3
  0x20:
    - fod.mp3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Process != "dolphin-emu" || cfg.PollInterval != 16 || cfg.Volume != 0.8 {
		t.Fatalf("unexpected scalars %+v", cfg)
	}
	if cfg.ReconnectBackoff != 1000 || cfg.PausedMultiplier != 0.2 {
		t.Fatalf("defaults not kept for absent keys: %+v", cfg)
	}
	if got, want := cfg.HooksPath(), filepath.Join(filepath.Dir(path), "hooks.lua"); got != want {
		t.Fatalf("hooks path %q, want %q", got, want)
	}

	l := cfg.MemoryLayout()
	if l.Version != "v1-custom" || l.Paused != 0x8046B6A9 || l.Stage != emulator.DefaultLayout().Stage {
		t.Fatalf("unexpected layout %+v", l)
	}

	want := map[int][]Song{
		8: {
			{Source: audio.Source{Path: "songs/battlefield.mp3"}},
			{Source: audio.Source{Path: "/music/battlefield-remix.mp3"}},
		},
		32: {{Source: audio.Source{Path: "fod.mp3"}}},
	}
	if diff := cmp.Diff(want, cfg.Playlists); diff != "" {
		t.Fatalf("playlists mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPausedMultiplierAndTimer(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
volume: 0.6
pausedMultiplier: 0.5
layout:
  timer: 0
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.PausedMultiplier != 0.5 {
		t.Fatalf("paused multiplier %v, want 0.5", cfg.PausedMultiplier)
	}

	want := emulator.DefaultLayout()
	want.Timer = 0
	if diff := cmp.Diff(want, cfg.MemoryLayout()); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: "process: [unterminated"},
		{name: "volume", body: "volume: 1.5"},
		{name: "interval", body: "pollInterval: 0"},
		{name: "paused multiplier", body: "pausedMultiplier: 2"},
		{name: "stage", body: "playlists:\n  300: [a.mp3]"},
		{name: "layout", body: "layout:\n  stage: 0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPick(t *testing.T) {
	path := writeConfig(t, `
playlists:
  8:
    - a.mp3
    - /abs/b.mp3
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := cfg.Pick(9); ok {
		t.Fatalf("stage without songs must not pick")
	}

	allowed := map[string]bool{
		filepath.Join(filepath.Dir(path), "a.mp3"): true,
		"/abs/b.mp3": true,
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		src, ok := cfg.Pick(8)
		if !ok {
			t.Fatalf("stage 8 has songs")
		}
		if !allowed[src.Path] {
			t.Fatalf("picked unexpected %q", src.Path)
		}
		seen[src.Path] = true
	}
	if len(seen) != len(allowed) {
		t.Fatalf("random pick never chose some songs: %v", seen)
	}
}
