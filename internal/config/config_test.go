package config

import (
	"strings"
	"testing"
)

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"ZEROSCOPE_DOMAIN=fromenv.",
		"ZEROSCOPE_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"--domain", "custom.", "--footer"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Domain != "custom." {
		t.Fatalf("expected flag to win, got %q", cfg.App.Domain)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled")
	}
	if cfg.Flags["domain"] != "custom." {
		t.Fatalf("expected flags map to record domain, got %v", cfg.Flags)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	environ := []string{
		"ZEROSCOPE_DOMAIN=home.arpa.",
		"ZEROSCOPE_LOG_FILE=/tmp/z.log",
		"ZEROSCOPE_FOOTER=true",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Domain != "home.arpa." {
		t.Fatalf("expected env domain, got %q", cfg.App.Domain)
	}
	if cfg.Logging.FilePath != "/tmp/z.log" {
		t.Fatalf("expected env log file, got %q", cfg.Logging.FilePath)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected env footer")
	}
}

func TestLoadArgsMalformedEnvBoolFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"ZEROSCOPE_TRACE=sometimes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected malformed bool to fall back to false")
	}
}

func TestLoadArgsHelpCapturesUsage(t *testing.T) {
	cfg, err := LoadArgs([]string{"-h"}, nil)
	if err != nil {
		t.Fatalf("expected help to be reported without error, got %v", err)
	}
	if !cfg.Help {
		t.Fatalf("expected Help set")
	}
	for _, name := range []string{"-domain", "-prefs", "-footer", "-trace", "-log-file", "-version"} {
		if !strings.Contains(cfg.Usage, name) {
			t.Fatalf("expected usage to mention %s, got:\n%s", name, cfg.Usage)
		}
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag to error")
	}
}

func TestLoadArgsVersion(t *testing.T) {
	cfg, err := LoadArgs([]string{"--version"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Version {
		t.Fatalf("expected Version set")
	}
}

func TestValidateRejectsWhitespaceDomain(t *testing.T) {
	cfg, err := LoadArgs([]string{"--domain", "bad domain"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected whitespace domain rejected")
	}
	good, _ := LoadArgs([]string{"--domain", "local."}, nil)
	if err := Validate(good); err != nil {
		t.Fatalf("expected clean domain accepted, got %v", err)
	}
}
