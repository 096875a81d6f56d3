package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ferrovax/zeroscope/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Help    bool
	Usage   string
	Version bool
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDomain     = "ZEROSCOPE_DOMAIN"
	envPrefsPath  = "ZEROSCOPE_PREFS"
	envShowFooter = "ZEROSCOPE_FOOTER"
	envTrace      = "ZEROSCOPE_TRACE"
	envLogFile    = "ZEROSCOPE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	var usage strings.Builder
	fs := flag.NewFlagSet("zeroscope", flag.ContinueOnError)
	fs.SetOutput(&usage)

	domain := fs.String("domain", envOrDefault(env, envDomain, ""), "mDNS domain to browse (defaults to local.)")
	prefsPath := fs.String("prefs", envOrDefault(env, envPrefsPath, ""), "path to the preferences file")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show key hints in the status line")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	version := fs.Bool("version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{Help: true, Usage: usage.String()}, nil
		}
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Domain:     *domain,
			PrefsPath:  *prefsPath,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Version: *version,
		Flags: map[string]string{
			"domain":  *domain,
			"prefs":   *prefsPath,
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.ContainsAny(cfg.App.Domain, " \t") {
		return fmt.Errorf("domain must not contain whitespace (got %q)", cfg.App.Domain)
	}
	return nil
}
