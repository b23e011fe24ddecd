package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sitemon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/sitemon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sitemon init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sitemon.yaml in current directory
// 3. .sitemon.yaml in parent directories (stops at git root or home)
// 4. ~/.config/sitemon/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	if !isGitRoot(cwd) {
		dir := cwd
		for {
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			if home != "" && parent == home {
				break
			}
			dir = parent

			configPath := filepath.Join(dir, ConfigFileName)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}

			if isGitRoot(dir) {
				break
			}
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config, returning defaults if no file exists.
// The returned path is empty when defaults were used.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	cfg := DefaultConfig()
	// Decoding onto a pre-filled slice merges element-wise, so the site list
	// starts empty and defaults are restored only when the key is absent.
	cfg.Sites = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// A null sites key ("sites:" or "sites: ~") still counts as present.
	if !slices.Contains(v.AllKeys(), "sites") {
		cfg.Sites = DefaultSites()
	}
	if cfg.Sites == nil {
		cfg.Sites = []Site{}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("history_size", DefaultHistorySize)
	v.SetDefault("tick", DefaultTick)
	v.SetDefault("output.format", FormatBullet)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
