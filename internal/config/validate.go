package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rileyhilliard/sitemon/internal/errors"
)

// Limits enforced by Validate.
const (
	MinInterval    = time.Second
	MinTick        = 10 * time.Millisecond
	MaxHistorySize = 10000
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sitemon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest sitemon release")
	}

	if err := validateTiming(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the timing settings in your .sitemon.yaml.")
	}

	if cfg.HistorySize <= 0 || cfg.HistorySize > MaxHistorySize {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size %d is out of range", cfg.HistorySize),
			fmt.Sprintf("Use a value between 1 and %d (default %d).", MaxHistorySize, DefaultHistorySize))
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .sitemon.yaml.")
	}

	if err := validateSites(cfg.Sites); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'sites' section in your .sitemon.yaml.")
	}

	return nil
}

func validateTiming(cfg *Config) error {
	interval, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		return fmt.Errorf("interval '%s' doesn't look like a valid duration - try something like '5s' or '1m'", cfg.Interval)
	}
	if interval < MinInterval {
		return fmt.Errorf("interval %s is too short - the minimum is %s", interval, MinInterval)
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("timeout '%s' doesn't look like a valid duration - try something like '3s'", cfg.Timeout)
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	tick, err := time.ParseDuration(cfg.Tick)
	if err != nil {
		return fmt.Errorf("tick '%s' doesn't look like a valid duration - try something like '200ms'", cfg.Tick)
	}
	if tick < MinTick {
		return fmt.Errorf("tick %s is too short - the minimum is %s", tick, MinTick)
	}

	return nil
}

func validateOutput(output OutputConfig) error {
	switch output.Format {
	case FormatBullet, FormatLine:
		return nil
	default:
		return fmt.Errorf("output.format '%s' isn't recognized - use '%s' or '%s'", output.Format, FormatBullet, FormatLine)
	}
}

func validateSites(sites []Site) error {
	seen := make(map[string]bool, len(sites))
	for i, site := range sites {
		name := strings.TrimSpace(site.Name)
		if name == "" {
			return fmt.Errorf("site #%d has no name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("site '%s' is listed more than once", name)
		}
		seen[name] = true

		if strings.TrimSpace(site.URL) == "" {
			return fmt.Errorf("site '%s' has no url", name)
		}
		if _, err := ParseSiteURL(site.URL); err != nil {
			return fmt.Errorf("site '%s': %v", name, err)
		}
	}
	return nil
}

// NormalizeURL prepends https:// to an address that carries no scheme.
func NormalizeURL(address string) string {
	address = strings.TrimSpace(address)
	if !strings.Contains(address, "://") {
		return "https://" + address
	}
	return address
}

// ParseSiteURL normalizes and parses a site address, accepting only http and https.
func ParseSiteURL(address string) (*url.URL, error) {
	u, err := url.Parse(NormalizeURL(address))
	if err != nil {
		return nil, fmt.Errorf("url '%s' can't be parsed: %v", address, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url '%s' uses scheme '%s' - only http and https are supported", address, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url '%s' has no host", address)
	}
	return u, nil
}
