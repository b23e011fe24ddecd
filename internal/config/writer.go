package config

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sitemon/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# sitemon configuration
# Docs: sitemon --help
#
# interval:     how often every site is probed
# timeout:      how long a single probe may take before it counts as down
# history_size: outcomes kept per site
# tick:         redraw rate of the dashboard
`

// Marshal renders cfg as YAML with a short explanatory header.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This is unexpected - please report this issue")
	}
	return append([]byte(fileHeader+"\n"), data...), nil
}

// Write validates cfg and writes it to path.
func Write(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check write permissions in this directory")
	}
	return nil
}
