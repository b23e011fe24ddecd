package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Output formats for the live view.
const (
	FormatBullet = "bullet"
	FormatLine   = "line"
)

// Default values applied when the config file (or a field in it) is absent.
const (
	DefaultInterval    = "5s"
	DefaultTimeout     = "3s"
	DefaultTick        = "200ms"
	DefaultHistorySize = 50
)

// Config represents the complete .sitemon.yaml configuration file.
type Config struct {
	Version     int          `yaml:"version" mapstructure:"version"`
	Interval    string       `yaml:"interval" mapstructure:"interval"`
	Timeout     string       `yaml:"timeout" mapstructure:"timeout"`
	HistorySize int          `yaml:"history_size" mapstructure:"history_size"`
	Tick        string       `yaml:"tick" mapstructure:"tick"`
	Output      OutputConfig `yaml:"output" mapstructure:"output"`
	Sites       []Site       `yaml:"sites" mapstructure:"sites"`
}

// OutputConfig controls how the live view renders each site.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // bullet, line
}

// Site is one monitored endpoint. URL may omit the scheme, in which case
// https is assumed.
type Site struct {
	Name string `yaml:"name" mapstructure:"name" json:"name"`
	URL  string `yaml:"url" mapstructure:"url" json:"url"`
}

// DefaultSites returns the sites monitored when no config file lists any.
func DefaultSites() []Site {
	return []Site{
		{Name: "GitHub", URL: "https://github.com"},
		{Name: "Google", URL: "https://google.com"},
		{Name: "Steam", URL: "https://store.steampowered.com"},
	}
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Interval:    DefaultInterval,
		Timeout:     DefaultTimeout,
		HistorySize: DefaultHistorySize,
		Tick:        DefaultTick,
		Output: OutputConfig{
			Format: FormatBullet,
		},
		Sites: DefaultSites(),
	}
}

// PollInterval returns the parsed poll period.
func (c *Config) PollInterval() time.Duration {
	return parseDuration(c.Interval, 5*time.Second)
}

// ProbeTimeout returns the parsed per-probe timeout.
func (c *Config) ProbeTimeout() time.Duration {
	return parseDuration(c.Timeout, 3*time.Second)
}

// TickInterval returns the parsed redraw tick.
func (c *Config) TickInterval() time.Duration {
	return parseDuration(c.Tick, 200*time.Millisecond)
}

// parseDuration parses a duration string, returning the default if parsing fails.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
