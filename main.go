package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/soocke/pixel-cam-go/app"
	"github.com/soocke/pixel-cam-go/config"
	"github.com/soocke/pixel-cam-go/debug"
	"github.com/soocke/pixel-cam-go/domain/postprocess"
	"github.com/soocke/pixel-cam-go/ui/model"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pixel-cam:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stdout, parseLevel(cfg.LogLevel))
	if cfg.Debug {
		logger = NewLogger(os.Stdout, slog.LevelDebug)
	}

	src, err := app.OpenSource(cfg, logger)
	if err != nil {
		return err
	}

	// The source belongs to the Tk thread; the debug loggers read the frame
	// count from the playback model instead.
	playback := &model.PlaybackModel{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, logger)
		debug.StartMemLogger(ctx, 5*time.Second, playback, logger)
	}

	return app.Preview(src, app.Options{
		Title:    fmt.Sprintf("Pixel Cam - %s %d", cfg.Backend, cfg.DeviceID),
		MaxFPS:   cfg.PreviewFPS,
		Dark:     cfg.Dark,
		Playback: playback,
		Logger:   logger,
	})
}

// loadConfig reads the config file named by -config and applies the other
// flags on top. Only flags given on the command line override file values.
func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("pixel-cam", flag.ContinueOnError)
	path := fs.String("config", config.DefaultPath, "path to JSON or YAML (.yaml, .yml) config file")
	save := fs.Bool("save", false, "write the effective config back to -config")
	backend := fs.String("backend", "", "capture backend: webcam, screen or gst")
	device := fs.Int("device", 0, "device index")
	fps := fs.Int("fps", 0, "target capture frames per second")
	interp := fs.String("interp", "", "resize interpolation: nearest, linear, cubic, area, lanczos4 (or 0-4)")
	resizer := fs.String("resizer", "", "resize implementation: opencv or go")
	width := fs.Int("capture-width", 0, "requested capture width")
	height := fs.Int("capture-height", 0, "requested capture height")
	outHeight := fs.Int("height", 0, "output height; width follows the aspect ratio")
	post := fs.String("post", "", "post-processing, comma separated: "+strings.Join(postprocess.Names(), ", "))
	previewFPS := fs.Int("preview-fps", 0, "maximum preview refresh rate")
	level := fs.String("log-level", "", "log level: debug, info, warn, error")
	dbg := fs.Bool("debug", false, "enable debug logging and runtime loggers")
	dark := fs.Bool("dark", false, "dark window theme")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", *path, err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "device":
			cfg.DeviceID = *device
		case "fps":
			cfg.FPS = *fps
		case "interp":
			cfg.Interp = *interp
		case "resizer":
			cfg.Resizer = *resizer
		case "capture-width":
			cfg.CaptureWidth = *width
		case "capture-height":
			cfg.CaptureHeight = *height
		case "height":
			cfg.OutputHeight = *outHeight
		case "post":
			cfg.PostProcess = *post
		case "preview-fps":
			cfg.PreviewFPS = *previewFPS
		case "log-level":
			cfg.LogLevel = *level
		case "debug":
			cfg.Debug = *dbg
		case "dark":
			cfg.Dark = *dark
		}
	})
	_ = cfg.Validate()
	if *save {
		if err := cfg.Save(*path); err != nil {
			return nil, fmt.Errorf("save config %s: %w", *path, err)
		}
	}
	return cfg, nil
}
