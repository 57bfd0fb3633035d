// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML renders the configuration as a TOML document with one table per
// section, in the key names the config file and WWG_ variables use.
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config as TOML: %w", err)
	}
	return out, nil
}
