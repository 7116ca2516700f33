// seehuhn.de/go/pixcurve - tone curves for RGB pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixcurve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config lists curve definitions, usually read from a YAML file.
type Config struct {
	Curves []*Curve `yaml:"curves"`
}

// DecodeConfig parses curve definitions in YAML format.
// The curves are checked using [Curve.Check].
func DecodeConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("pixcurve: decoding curves: %w", err)
	}
	for _, curve := range c.Curves {
		if curve == nil {
			return nil, invalidCurve("", "empty curve definition")
		}
		if err := curve.Check(); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// LoadConfig reads curve definitions from a YAML file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeConfig(b)
}

// Registry returns a registry holding the [Builtin] curves, followed by
// the curves from the configuration.
func (c *Config) Registry() (*Registry, error) {
	return Builtin.Extend(c.Curves...)
}

// EncodeYAML writes all curves of the registry, except for the identity
// curve, in the format read by [DecodeConfig].
func (r *Registry) EncodeYAML() ([]byte, error) {
	c := Config{Curves: r.curves[1:]}
	return yaml.Marshal(&c)
}
