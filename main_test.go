package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/pixel-cam-go/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":1`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.json")
	file := config.DefaultConfig()
	file.FPS = 15
	file.Interp = "area"
	file.OutputHeight = 480
	if err := file.Save(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig([]string{"-config", path, "-fps", "24", "-post", "greyscale,blur", "-backend", "screen"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.FPS != 24 || cfg.PostProcess != "greyscale,blur" || cfg.Backend != "screen" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Interp != "area" || cfg.OutputHeight != 480 {
		t.Fatalf("file values lost: %+v", cfg)
	}
}

func TestLoadConfig_InvalidFlagValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	cfg, err := loadConfig([]string{"-config", path, "-fps", "0", "-interp", "bogus"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	def := config.DefaultConfig()
	if cfg.FPS != def.FPS || cfg.Interp != def.Interp {
		t.Fatalf("got fps=%d interp=%q", cfg.FPS, cfg.Interp)
	}
	if _, err := loadConfig([]string{"-nope"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}

func TestLoadConfig_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	if _, err := loadConfig([]string{"-config", path, "-save", "-device", "2"}); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil || cfg.DeviceID != 2 {
		t.Fatalf("saved config %+v, %v", cfg, err)
	}
}
