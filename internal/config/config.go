package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/hovermenu/internal/app"
	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// ErrHelp is returned by Load when --help was requested.
var ErrHelp = pflag.ErrHelp

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuPath   = "HOVERMENU_MENU"
	envLabelsPath = "HOVERMENU_LABELS"
	envLocale     = "HOVERMENU_LOCALE"
	envCurrent    = "HOVERMENU_CURRENT"
	envOpenDelay  = "HOVERMENU_OPEN_DELAY"
	envReload     = "HOVERMENU_RELOAD"
	envWidth      = "HOVERMENU_WIDTH"
	envHeight     = "HOVERMENU_HEIGHT"
	envShowFooter = "HOVERMENU_FOOTER"
	envTrace      = "HOVERMENU_TRACE"
	envLogFile    = "HOVERMENU_LOG_FILE"
)

const (
	defaultOpenDelay = 120 * time.Millisecond
	defaultReload    = 1500 * time.Millisecond
)

type flagValues struct {
	menuPath   *string
	labelsPath *string
	locale     *string
	current    *string
	openDelay  *time.Duration
	reload     *time.Duration
	width      *int
	height     *int
	footer     *bool
	trace      *bool
	logFile    *string
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet("hovermenu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	values := flagValues{
		menuPath:   fs.String("menu", envOrDefault(env, envMenuPath, ""), "menu tree file (.yaml, .yml, .json, .jsonc); built-in menu when empty"),
		labelsPath: fs.String("labels", envOrDefault(env, envLabelsPath, ""), "label catalog file (.yaml); built-in labels when empty"),
		locale:     fs.StringP("locale", "l", envOrDefault(env, envLocale, "en"), "display locale, also used as the link prefix"),
		current:    fs.String("current", envOrDefault(env, envCurrent, ""), "path of the current page, highlighted in the menu"),
		openDelay:  fs.Duration("open-delay", envOrDuration(env, envOpenDelay, defaultOpenDelay), "delay before a hovered submenu opens"),
		reload:     fs.Duration("reload", envOrDuration(env, envReload, defaultReload), "poll interval for menu and label files (0 disables reload)"),
		width:      fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:     fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:     fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
	fs.BoolP("help", "h", false, "show help")
	return fs, values
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if help, _ := fs.GetBool("help"); help {
		return Config{}, ErrHelp
	}

	cfg := Config{
		App: app.Config{
			MenuPath:       *v.menuPath,
			LabelsPath:     *v.labelsPath,
			Locale:         *v.locale,
			Current:        *v.current,
			OpenDelay:      *v.openDelay,
			ReloadInterval: *v.reload,
			Width:          *v.width,
			Height:         *v.height,
			ShowFooter:     *v.footer,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Flags: map[string]string{
			"menu":      *v.menuPath,
			"labels":    *v.labelsPath,
			"locale":    *v.locale,
			"current":   *v.current,
			"openDelay": v.openDelay.String(),
			"reload":    v.reload.String(),
			"width":     strconv.Itoa(*v.width),
			"height":    strconv.Itoa(*v.height),
			"footer":    strconv.FormatBool(*v.footer),
			"trace":     strconv.FormatBool(*v.trace),
			"logFile":   *v.logFile,
		},
		Args: fs.Args(),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Usage renders the flag help text.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return fs.FlagUsages()
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprintf(os.Stdout, "Usage: hovermenu [flags]\n\n%s", Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects negative sizes and durations, unknown file types and
// malformed locales.
func Validate(cfg Config) error {
	var errs []error
	a := cfg.App
	if a.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", a.Width))
	}
	if a.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", a.Height))
	}
	if a.OpenDelay < 0 {
		errs = append(errs, fmt.Errorf("open-delay must be >= 0 (got %s)", a.OpenDelay))
	}
	if a.ReloadInterval < 0 {
		errs = append(errs, fmt.Errorf("reload must be >= 0 (got %s)", a.ReloadInterval))
	}
	if a.MenuPath != "" {
		if _, err := menu.FormatForPath(a.MenuPath); err != nil {
			errs = append(errs, fmt.Errorf("menu: %w", err))
		}
	}
	if a.LabelsPath != "" {
		switch strings.ToLower(filepath.Ext(a.LabelsPath)) {
		case ".yaml", ".yml":
		default:
			errs = append(errs, fmt.Errorf("labels: unsupported file type %q", filepath.Ext(a.LabelsPath)))
		}
	}
	if _, err := language.Parse(a.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", a.Locale, err))
	}
	return errors.Join(errs...)
}
