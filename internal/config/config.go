package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/app"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// ListLanguages prints the language table and exits.
	ListLanguages bool
}

type Logging struct {
	FilePath  string
	MaxSizeMB int
	Trace     bool
}

const (
	envFont        = "FMCB_INSTALLER_FONT"
	envSubFont     = "FMCB_INSTALLER_SUB_FONT"
	envLang        = "FMCB_INSTALLER_LANG"
	envLogFile     = "FMCB_INSTALLER_LOG_FILE"
	envLogMaxSize  = "FMCB_INSTALLER_LOG_MAX_SIZE"
	envTrace       = "FMCB_INSTALLER_TRACE"
	envFPS         = "FMCB_INSTALLER_FPS"
	envRepeatDelay = "FMCB_INSTALLER_REPEAT_DELAY"
	envRepeatRate  = "FMCB_INSTALLER_REPEAT_RATE"
	envSwapButtons = "FMCB_INSTALLER_SWAP_BUTTONS"
	envWidth       = "FMCB_INSTALLER_WIDTH"
	envHeight      = "FMCB_INSTALLER_HEIGHT"
)

const (
	defaultFPS    = 60
	maxFPS        = 240
	defaultWidth  = 640
	defaultHeight = 448
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("fmcb-installer", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fontPath := fs.String("font", envOrDefault(env, envFont, ""), "path to the main font (falls back to the built-in face)")
	subFont := fs.String("sub-font", envOrDefault(env, envSubFont, ""), "path to a font consulted for glyphs the main font lacks")
	language := fs.String("lang", envOrDefault(env, envLang, "english"), "interface language, matched by code or fuzzy name")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logMax := fs.Int("log-max-size", envOrInt(env, envLogMaxSize, 5), "rotate the log after this many megabytes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fps := fs.Int("fps", envOrInt(env, envFPS, defaultFPS), "frames per second")
	repeatDelay := fs.Int("repeat-delay", envOrInt(env, envRepeatDelay, 20), "frames a direction is held before it repeats")
	repeatRate := fs.Int("repeat-rate", envOrInt(env, envRepeatRate, 4), "frames between repeats")
	swap := fs.Bool("swap-buttons", envOrBool(env, envSwapButtons, false), "confirm with circle and cancel with cross")
	width := fs.Int("width", envOrInt(env, envWidth, defaultWidth), "framebuffer width in pixels")
	height := fs.Int("height", envOrInt(env, envHeight, defaultHeight), "framebuffer height in pixels")
	listLangs := fs.Bool("list-langs", false, "print the supported languages and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			FontPath:    *fontPath,
			SubFontPath: *subFont,
			Language:    *language,
			FPS:         *fps,
			RepeatDelay: *repeatDelay,
			RepeatRate:  *repeatRate,
			SwapButtons: *swap,
			Width:       *width,
			Height:      *height,
		},
		Logging: Logging{
			FilePath:  *logFile,
			MaxSizeMB: *logMax,
			Trace:     *trace,
		},
		Flags: map[string]string{
			"font":        *fontPath,
			"subFont":     *subFont,
			"lang":        *language,
			"logFile":     *logFile,
			"logMaxSize":  strconv.Itoa(*logMax),
			"trace":       strconv.FormatBool(*trace),
			"fps":         strconv.Itoa(*fps),
			"repeatDelay": strconv.Itoa(*repeatDelay),
			"repeatRate":  strconv.Itoa(*repeatRate),
			"swapButtons": strconv.FormatBool(*swap),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
		},
		Args:          append([]string(nil), args...),
		ListLanguages: *listLangs,
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks ranges and that the language resolves.
func Validate(cfg Config) error {
	a := cfg.App
	if a.FPS < 1 || a.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d (got %d)", maxFPS, a.FPS)
	}
	if a.RepeatDelay <= 0 {
		return fmt.Errorf("repeat-delay must be > 0 (got %d)", a.RepeatDelay)
	}
	if a.RepeatRate <= 0 {
		return fmt.Errorf("repeat-rate must be > 0 (got %d)", a.RepeatRate)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("framebuffer size must be positive (got %dx%d)", a.Width, a.Height)
	}
	if cfg.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("log-max-size must be > 0 (got %d)", cfg.Logging.MaxSizeMB)
	}
	if _, ok := lang.Find(a.Language); !ok {
		return fmt.Errorf("unknown language %q", a.Language)
	}
	return nil
}
