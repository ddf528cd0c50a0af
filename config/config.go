package config

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
	"github.com/soocke/pixel-cam-go/domain/postprocess"
)

// DefaultPath is the config file read when no -config flag is given.
const DefaultPath = "pixel-cam.json"

// Backend and resizer names understood by the capture package.
var (
	backends = []string{"webcam", "screen", "gst"}
	resizers = []string{"opencv", "go"}
)

// Config holds runtime configuration for the capture source and the preview.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Device
	Backend       string `json:"backend" yaml:"backend"`
	DeviceID      int    `json:"device_id" yaml:"device_id"`
	CaptureWidth  int    `json:"capture_width" yaml:"capture_width"`
	CaptureHeight int    `json:"capture_height" yaml:"capture_height"`

	// Frames
	FPS          int    `json:"fps" yaml:"fps"`
	Interp       string `json:"interp" yaml:"interp"`
	Resizer      string `json:"resizer" yaml:"resizer"`
	OutputHeight int    `json:"output_height" yaml:"output_height"`
	PostProcess  string `json:"post_process" yaml:"post_process"`

	// Preview
	PreviewFPS int  `json:"preview_fps" yaml:"preview_fps"`
	Dark       bool `json:"dark" yaml:"dark"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		LogLevel:      "info",
		Backend:       "webcam",
		DeviceID:      0,
		CaptureWidth:  0,
		CaptureHeight: 0,
		FPS:           dcap.DefaultFPS,
		Interp:        dcap.DefaultInterpolation,
		Resizer:       "opencv",
		OutputHeight:  0,
		PostProcess:   "",
		PreviewFPS:    60,
	}
}

// Validate clamps/normalizes values to safe ranges. Unknown names fall back
// to their defaults.
func (c *Config) Validate() error {
	def := DefaultConfig()
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
	if !slices.Contains(backends, c.Backend) {
		c.Backend = def.Backend
	}
	if !slices.Contains(resizers, c.Resizer) {
		c.Resizer = def.Resizer
	}
	if c.DeviceID < 0 {
		c.DeviceID = 0
	}
	// A capture size only makes sense with both dimensions.
	if c.CaptureWidth <= 0 || c.CaptureHeight <= 0 {
		c.CaptureWidth, c.CaptureHeight = 0, 0
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	c.Interp = normalizeInterp(c.Interp, def.Interp)
	if c.OutputHeight < 0 {
		c.OutputHeight = 0
	}
	if _, err := postprocess.Lookup(c.PostProcess); err != nil {
		c.PostProcess = def.PostProcess
	}
	if c.PreviewFPS <= 0 {
		c.PreviewFPS = def.PreviewFPS
	}
	return nil
}

// CaptureSize is the requested native capture resolution, dcap.Native when unset.
func (c *Config) CaptureSize() dcap.Size {
	return dcap.Size{Width: c.CaptureWidth, Height: c.CaptureHeight}
}

// isYAML reports whether path names a YAML file; anything else is JSON.
func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load attempts to read configuration from the given JSON or YAML file path
// (chosen by extension). If the file does not exist it returns DefaultConfig().
// On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if isYAML(path) {
		err = yaml.NewDecoder(f).Decode(cfg)
		if errors.Is(err, io.EOF) { // empty document
			err = nil
		}
	} else {
		err = json.NewDecoder(f).Decode(cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path, as YAML for .yaml/.yml
// paths and indented JSON otherwise.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// normalizeInterp accepts an interpolation name or its numeric code ("0".."4")
// and returns the canonical name, or fallback when neither parses.
func normalizeInterp(s, fallback string) string {
	var token any = s
	if n, err := strconv.Atoi(s); err == nil {
		token = n
	}
	interp, err := dcap.ParseInterpolation(token)
	if err != nil {
		return fallback
	}
	return interp.String()
}
