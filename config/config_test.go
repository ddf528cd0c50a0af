package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	want := *cfg
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if *cfg != want {
		t.Fatalf("Validate changed defaults: %+v", cfg)
	}
	if cfg.CaptureSize() != dcap.Native {
		t.Fatalf("default capture size %v", cfg.CaptureSize())
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{
		LogLevel:      " WARN ",
		Backend:       "v4l2",
		Resizer:       "ffmpeg",
		DeviceID:      -2,
		CaptureWidth:  640,
		CaptureHeight: 0,
		FPS:           -5,
		Interp:        "bicubic",
		OutputHeight:  -1,
		PostProcess:   "sepia",
		PreviewFPS:    0,
	}
	_ = cfg.Validate()
	def := DefaultConfig()
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Backend != def.Backend || cfg.Resizer != def.Resizer {
		t.Errorf("names not reset: %q %q", cfg.Backend, cfg.Resizer)
	}
	if cfg.DeviceID != 0 || cfg.OutputHeight != 0 {
		t.Errorf("negatives not clamped: %d %d", cfg.DeviceID, cfg.OutputHeight)
	}
	if cfg.CaptureWidth != 0 || cfg.CaptureHeight != 0 {
		t.Errorf("half capture size kept: %dx%d", cfg.CaptureWidth, cfg.CaptureHeight)
	}
	if cfg.FPS != def.FPS || cfg.PreviewFPS != def.PreviewFPS {
		t.Errorf("rates not reset: %d %d", cfg.FPS, cfg.PreviewFPS)
	}
	if cfg.Interp != def.Interp || cfg.PostProcess != def.PostProcess {
		t.Errorf("interp/post not reset: %q %q", cfg.Interp, cfg.PostProcess)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{fps: 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if cfg == nil || cfg.FPS != dcap.DefaultFPS {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel-cam.json")
	cfg := DefaultConfig()
	cfg.Backend = "screen"
	cfg.FPS = 12
	cfg.Interp = "area"
	cfg.OutputHeight = 360
	cfg.PostProcess = "greyscale"
	cfg.CaptureWidth, cfg.CaptureHeight = 1280, 720
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("loaded %+v, saved %+v", got, cfg)
	}
	if got.CaptureSize() != (dcap.Size{Width: 1280, Height: 720}) {
		t.Fatalf("capture size %v", got.CaptureSize())
	}
}

func TestSaveLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel-cam.yaml")
	cfg := DefaultConfig()
	cfg.Backend = "gst"
	cfg.PostProcess = "fliplr,zoom"
	cfg.Dark = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "backend: gst") {
		t.Fatalf("not YAML:\n%s", data)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("loaded %+v, saved %+v", got, cfg)
	}
}

func TestLoad_YAMLPartialAndEmpty(t *testing.T) {
	dir := t.TempDir()
	partial := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(partial, []byte("fps: 12\ninterp: cubic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(partial)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 12 || cfg.Interp != "cubic" || cfg.Backend != DefaultConfig().Backend {
		t.Fatalf("partial yaml %+v", cfg)
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, err := Load(empty); err != nil || *cfg != *DefaultConfig() {
		t.Fatalf("empty yaml: %+v, %v", cfg, err)
	}
}

func TestValidate_InterpNamesAndCodes(t *testing.T) {
	tests := []struct{ in, want string }{
		{"cubic", "cubic"},
		{"2", "cubic"},
		{"0", "nearest"},
		{"4", "lanczos4"},
		{"5", "linear"},
		{"-1", "linear"},
		{"bicubic", "linear"},
		{"", "linear"},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		cfg.Interp = tc.in
		_ = cfg.Validate()
		if cfg.Interp != tc.want {
			t.Errorf("Interp %q validated to %q, want %q", tc.in, cfg.Interp, tc.want)
		}
	}
}
