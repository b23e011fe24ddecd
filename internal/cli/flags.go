package cli

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/logger"
	"github.com/rileyhilliard/sitemon/internal/monitor"
)

// Overrides holds command-line values that take precedence over the config file.
// Empty fields leave the loaded value alone.
type Overrides struct {
	Interval    string
	Timeout     string
	Tick        string
	HistorySize int
	Format      string
	Sites       []string // name=url, replaces the configured list when non-empty
}

// Apply copies every set override onto cfg.
func (o Overrides) Apply(cfg *config.Config) error {
	if o.Interval != "" {
		cfg.Interval = o.Interval
	}
	if o.Timeout != "" {
		cfg.Timeout = o.Timeout
	}
	if o.Tick != "" {
		cfg.Tick = o.Tick
	}
	if o.HistorySize != 0 {
		cfg.HistorySize = o.HistorySize
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}

	if len(o.Sites) > 0 {
		sites := make([]config.Site, 0, len(o.Sites))
		for _, flag := range o.Sites {
			site, err := ParseSiteFlag(flag)
			if err != nil {
				return err
			}
			sites = append(sites, site)
		}
		cfg.Sites = sites
	}

	return nil
}

// ParseSiteFlag parses a --site value. "name=url" sets both; a bare address
// is named after its host.
func ParseSiteFlag(flag string) (config.Site, error) {
	name, address, found := strings.Cut(flag, "=")
	// An "=" inside a bare URL's query is not a name separator.
	if !found || strings.Contains(name, "/") {
		name, address, found = "", flag, false
	}
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	if address == "" {
		return config.Site{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't include a site address", flag),
			"Use --site name=url, e.g. --site GitHub=https://github.com")
	}

	u, err := config.ParseSiteURL(address)
	if err != nil {
		return config.Site{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a usable site address", address),
			"Use an http or https URL, e.g. https://example.com")
	}

	if name == "" {
		if found {
			return config.Site{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' has an empty site name", flag),
				"Use --site name=url, e.g. --site GitHub=https://github.com")
		}
		name = u.Hostname()
	}

	return config.Site{Name: name, URL: address}, nil
}

// loadConfig finds the config, applies command-line overrides and validates
// the result. The returned path is empty when built-in defaults were used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, path, err
	}

	if err := overrides.Apply(cfg); err != nil {
		return nil, path, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// siteSpecs converts configured sites into registry specs, preserving order.
func siteSpecs(cfg *config.Config) []monitor.SiteSpec {
	specs := make([]monitor.SiteSpec, len(cfg.Sites))
	for i, s := range cfg.Sites {
		specs[i] = monitor.SiteSpec{Name: s.Name, Address: s.URL}
	}
	return specs
}

// pollerConfig builds the poller settings from cfg.
func pollerConfig(cfg *config.Config) monitor.PollerConfig {
	return monitor.PollerConfig{
		Interval: cfg.PollInterval(),
		Timeout:  cfg.ProbeTimeout(),
		Logger:   logger.NewEnvLogger("[poller]"),
	}
}
