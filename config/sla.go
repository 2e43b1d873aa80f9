package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// SLAProfile holds the deadline defaults applied to new tickets when a
// project does not override them.
type SLAProfile struct {
	Minutes             int `yaml:"minutes"`
	NearDeadlineMinutes int `yaml:"nearDeadlineMinutes"`
}

type SLAConfig struct {
	Default  SLAProfile            `yaml:"default"`
	Projects map[string]SLAProfile `yaml:"projects"`
}

var SLA = SLAConfig{
	Default: SLAProfile{Minutes: 240, NearDeadlineMinutes: 30},
}

// LoadSLA reads the SLA defaults from path. A missing path keeps the
// built-in defaults.
func LoadSLA(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg SLAConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return err
	}
	if cfg.Default.Minutes == 0 {
		cfg.Default = SLA.Default
	}
	SLA = cfg
	return nil
}

// ProfileFor returns the SLA profile for a project name, falling back
// to the default profile.
func (c SLAConfig) ProfileFor(project string) SLAProfile {
	if p, ok := c.Projects[project]; ok {
		return p
	}
	return c.Default
}
