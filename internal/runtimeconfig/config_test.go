package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://docs.example.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.ContentDir = " "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("err = %v, want ErrContentDirRequired", err)
	}
}

func TestValidateRejectsInvalidBasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.Enabled = false
	cfg.Site.BasePath = "//docs"
	if err := cfg.Validate(); !errors.Is(err, ErrBasePathInvalid) {
		t.Fatalf("err = %v, want ErrBasePathInvalid", err)
	}

	cfg.Site.BasePath = "/docs?x=1"
	if err := cfg.Validate(); !errors.Is(err, ErrBasePathInvalid) {
		t.Fatalf("err = %v, want ErrBasePathInvalid", err)
	}
}

func TestValidateGeneratorRequirements(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrOutputDirRequired) {
		t.Fatalf("err = %v, want ErrOutputDirRequired", err)
	}

	cfg = DefaultConfig()
	cfg.Generator.GenerateSitemap = true
	cfg.Site.BaseURL = ""
	if err := cfg.Validate(); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("err = %v, want ErrBaseURLRequired", err)
	}

	cfg = DefaultConfig()
	cfg.Generator.Enabled = false
	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled generator must not require output dir: %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://docs.example.com"

	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("err = %v, want ErrLoggingProviderRequired", err)
	}

	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("err = %v, want ErrLoggingProviderUnknown", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("err = %v, want ErrLoggingLevelInvalid", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("err = %v, want ErrLoggingFormatInvalid", err)
	}

	cfg.Logging.Format = "console"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.Logging.Provider = "noop"
	cfg.Logging.Format = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate with noop provider: %v", err)
	}
}
