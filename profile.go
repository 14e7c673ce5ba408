package receiptcheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/receiptcheck/pkg/config"
	"github.com/dmitrymomot/receiptcheck/pkg/rules"
)

// Profile carries the tunable validation thresholds. Profiles load from a
// YAML file, from environment variables, or both; unset fields keep the
// defaults.
type Profile struct {
	// MinItems is the minimum number of line items a receipt must carry.
	MinItems int `yaml:"min_items" env:"RECEIPTCHECK_MIN_ITEMS" envDefault:"5"`

	// HighValueThreshold marks prices above it with a warning.
	HighValueThreshold float64 `yaml:"high_value_threshold" env:"RECEIPTCHECK_HIGH_VALUE_THRESHOLD" envDefault:"100000"`

	// RequiredFields lists the top-level fields every receipt must have.
	RequiredFields []string `yaml:"required_fields" env:"RECEIPTCHECK_REQUIRED_FIELDS"`
}

// DefaultProfile returns the standard receipt thresholds.
func DefaultProfile() Profile {
	cfg := rules.DefaultConfig()
	return Profile{
		MinItems:           cfg.MinItems,
		HighValueThreshold: cfg.HighValueThreshold,
		RequiredFields:     cfg.RequiredFields,
	}
}

// LoadProfile reads a YAML profile from path. Fields absent from the file
// keep their default values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// LoadProfileFromEnv builds a profile from environment variables, falling
// back to the defaults for unset values.
func LoadProfileFromEnv() (Profile, error) {
	var p Profile
	if err := config.Load(&p); err != nil {
		return Profile{}, err
	}
	if len(p.RequiredFields) == 0 {
		p.RequiredFields = DefaultProfile().RequiredFields
	}
	return p, nil
}

func (p Profile) ruleConfig() rules.Config {
	return rules.Config{
		MinItems:           p.MinItems,
		HighValueThreshold: p.HighValueThreshold,
		RequiredFields:     p.RequiredFields,
	}
}
