package artifact

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Mode string

const (
	ModeLocal       Mode = "local"
	ModeGCS         Mode = "gcs"
	ModeGCSEmulator Mode = "gcs_emulator"
)

type Config struct {
	Mode         Mode
	Dir          string
	Bucket       string
	EmulatorHost string
	// CompatibilityFallback is set when the emulator mode was inferred from
	// STORAGE_EMULATOR_HOST rather than requested.
	CompatibilityFallback bool
}

func (cfg Config) ModeSource() string {
	if cfg.CompatibilityFallback {
		return "compatibility_fallback"
	}
	return "explicit_or_default"
}

type ConfigErrorCode string

const (
	ConfigErrorInvalidMode         ConfigErrorCode = "invalid_mode"
	ConfigErrorMissingDir          ConfigErrorCode = "missing_dir"
	ConfigErrorMissingBucket       ConfigErrorCode = "missing_bucket"
	ConfigErrorMissingEmulatorHost ConfigErrorCode = "missing_emulator_host"
	ConfigErrorInvalidEmulatorHost ConfigErrorCode = "invalid_emulator_host"
)

type ConfigError struct {
	Code         ConfigErrorCode
	Mode         string
	EmulatorHost string
	Cause        error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid artifact store config"
	}
	switch e.Code {
	case ConfigErrorInvalidMode:
		return fmt.Sprintf("invalid ARTIFACT_STORE=%q (allowed: %q, %q, %q)", e.Mode, ModeLocal, ModeGCS, ModeGCSEmulator)
	case ConfigErrorMissingDir:
		return "ARTIFACT_STORE=local requires ARTIFACT_DIR"
	case ConfigErrorMissingBucket:
		return fmt.Sprintf("ARTIFACT_STORE=%q requires ARTIFACT_GCS_BUCKET", e.Mode)
	case ConfigErrorMissingEmulatorHost:
		return fmt.Sprintf("ARTIFACT_STORE=%q requires STORAGE_EMULATOR_HOST to be set", ModeGCSEmulator)
	case ConfigErrorInvalidEmulatorHost:
		return fmt.Sprintf("invalid STORAGE_EMULATOR_HOST=%q; expected absolute URL like http://fake-gcs:4443", e.EmulatorHost)
	default:
		return "invalid artifact store config"
	}
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ResolveConfigFromEnv reads ARTIFACT_STORE, ARTIFACT_DIR, ARTIFACT_GCS_BUCKET
// and STORAGE_EMULATOR_HOST. With no explicit mode the store is local, unless
// an emulator host and bucket are both configured.
func ResolveConfigFromEnv() (Config, error) {
	cfg := Config{
		Dir:          strings.TrimSpace(os.Getenv("ARTIFACT_DIR")),
		Bucket:       strings.TrimSpace(os.Getenv("ARTIFACT_GCS_BUCKET")),
		EmulatorHost: strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")),
	}
	if cfg.Dir == "" {
		cfg.Dir = "data/artifacts"
	}

	rawMode := strings.TrimSpace(os.Getenv("ARTIFACT_STORE"))
	switch mode := Mode(strings.ToLower(rawMode)); mode {
	case "":
		if cfg.EmulatorHost != "" && cfg.Bucket != "" {
			cfg.Mode = ModeGCSEmulator
			cfg.CompatibilityFallback = true
		} else {
			cfg.Mode = ModeLocal
		}
	case ModeLocal, ModeGCS, ModeGCSEmulator:
		cfg.Mode = mode
	default:
		return cfg, &ConfigError{Code: ConfigErrorInvalidMode, Mode: rawMode}
	}

	if err := ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	switch cfg.Mode {
	case ModeLocal:
		if strings.TrimSpace(cfg.Dir) == "" {
			return &ConfigError{Code: ConfigErrorMissingDir, Mode: string(cfg.Mode)}
		}
		return nil
	case ModeGCS, ModeGCSEmulator:
		if strings.TrimSpace(cfg.Bucket) == "" {
			return &ConfigError{Code: ConfigErrorMissingBucket, Mode: string(cfg.Mode)}
		}
	default:
		return &ConfigError{Code: ConfigErrorInvalidMode, Mode: string(cfg.Mode)}
	}
	if cfg.Mode != ModeGCSEmulator {
		return nil
	}

	if cfg.EmulatorHost == "" {
		return &ConfigError{Code: ConfigErrorMissingEmulatorHost, Mode: string(cfg.Mode)}
	}
	u, err := url.Parse(cfg.EmulatorHost)
	if err != nil || strings.TrimSpace(u.Scheme) == "" || strings.TrimSpace(u.Host) == "" {
		return &ConfigError{
			Code:         ConfigErrorInvalidEmulatorHost,
			Mode:         string(cfg.Mode),
			EmulatorHost: cfg.EmulatorHost,
			Cause:        err,
		}
	}
	return nil
}
