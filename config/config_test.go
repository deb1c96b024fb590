package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"terraglow/constant"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Missing file must not error, got %v", err)
	}
	if cfg.FPS != constant.DefaultFPS {
		t.Errorf("Expected default FPS %d, got %d", constant.DefaultFPS, cfg.FPS)
	}
	if cfg.FallbackDeadline() != constant.FallbackDeadline {
		t.Errorf("Expected default deadline %v, got %v", constant.FallbackDeadline, cfg.FallbackDeadline())
	}
	if cfg.Audio {
		t.Error("Expected audio off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terraglow.toml")
	body := "fps = 60\nfallback_deadline_ms = 2500\naudio = true\ncolor_mode = \"256\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected clean parse, got %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("Expected FPS 60, got %d", cfg.FPS)
	}
	if cfg.FallbackDeadline() != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s deadline, got %v", cfg.FallbackDeadline())
	}
	if !cfg.Audio {
		t.Error("Expected audio enabled")
	}
	if cfg.ColorMode != "256" {
		t.Errorf("Expected color mode 256, got %q", cfg.ColorMode)
	}
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("fps = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("Expected parse error to be reported")
	}
	if cfg.FPS != constant.DefaultFPS {
		t.Errorf("Expected defaults on parse failure, got FPS %d", cfg.FPS)
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := Default()
	cfg.FPS = 30
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("Expected %v, got %v", time.Second/30, cfg.FrameInterval())
	}
}
