package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/marcus/contrastcolors/internal/config"
	"github.com/marcus/contrastcolors/internal/output"
	"github.com/marcus/contrastcolors/internal/styles"
	"github.com/marcus/contrastcolors/internal/watch"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath     = flag.String("config", "", "path to config file")
	keysFlag       = flag.String("keys", "", "comma-separated key colors (defines an ad-hoc ramp)")
	baseFlag       = flag.String("base", "", "base color")
	ratiosFlag     = flag.String("ratios", "", "comma-separated signed contrast ratios")
	colorspaceFlag = flag.String("colorspace", "", "interpolation colorspace: CAM02, LAB, LCH, HSL, HSLuv, HSV, RGB")
	rampFlag       = flag.String("ramp", "", "generate only this configured ramp")
	keepOrderFlag  = flag.Bool("keep-order", false, "walk key colors in the given order without white/black anchors")
	swatchesFlag   = flag.Int("swatches", 0, "also print a scale of n swatches")
	formatFlag     = flag.String("format", "", "output format: text, json, markdown")
	previewFlag    = flag.Bool("preview", true, "render color swatches in text output")
	copyFlag       = flag.Bool("copy", false, "copy generated colors to the clipboard")
	watchFlag      = flag.Bool("watch", false, "regenerate when the config file changes")
	initFlag       = flag.Bool("init", false, "write the default config file and exit")
	saveFlag       = flag.String("save", "", "save the generated ramp to the config under this name")
	debugFlag      = flag.Bool("debug", false, "enable debug logging")
	versionFlag    = flag.Bool("version", false, "print version and exit")
	shortVersion   = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *shortVersion {
		fmt.Printf("contrastcolors version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if *initFlag {
		path := resolvedConfigPath(*configPath)
		if err := config.SaveTo(config.Default(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	opts, err := optionsFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	opts.color = output.IsTerminal(os.Stdout)
	if opts.color {
		styles.ApplyTheme(styles.DetectTheme())
	}

	results, err := run(os.Stdout, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveFlag != "" {
		if err := saveRamp(resolvedConfigPath(*configPath), *saveFlag, results); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save ramp: %v\n", err)
			os.Exit(1)
		}
		logger.Info("saved ramp", "name", *saveFlag)
	}

	if !*watchFlag {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watchConfig(ctx, os.Stdout, resolvedConfigPath(*configPath), opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
		os.Exit(1)
	}
}

// watchConfig regenerates after every settled change to the config file.
// Generation errors are logged and do not end the loop.
func watchConfig(ctx context.Context, w io.Writer, path string, opts runOptions, logger *slog.Logger) error {
	events, err := watch.File(ctx, path)
	if err != nil {
		return err
	}
	logger.Info("watching config", "path", path)

	for ev := range events {
		if ev.Type == watch.EventRemoved {
			logger.Warn("config removed, using defaults", "path", ev.Path)
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			logger.Error("reload config", "err", err)
			continue
		}
		if _, err := run(w, cfg, opts); err != nil {
			logger.Error("generate", "err", err)
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func resolvedConfigPath(path string) string {
	if path != "" {
		return config.ExpandPath(path)
	}
	return config.ConfigPath()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	// Try to get version from Go build info
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	// Check module version
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	// Customize usage output
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: contrastcolors [options]\n\n")
		fmt.Fprintf(os.Stderr, "Generate colors that hit target contrast ratios against a base color.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
