package assumption

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Config is the on-disk shape for a valuation run: market assumptions plus
// composite weights. Missing sections fall back to the documented defaults.
type Config struct {
	Assumptions MarketAssumptions `json:"assumptions" yaml:"assumptions"`
	Weights     Weights           `json:"weights" yaml:"weights"`
}

// DefaultConfig returns the defaults for both sections.
func DefaultConfig() Config {
	return Config{
		Assumptions: DefaultMarketAssumptions(),
		Weights:     DefaultWeights(),
	}
}

// LoadFile reads a config file in YAML (.yaml/.yml) or HJSON (.hjson/.json)
// format, fills unset sections with defaults, and validates the result. A
// file that fails validation is a ConfigurationError, surfaced before any
// evaluation runs.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse yaml config %s: %w", path, err)
		}
	case ".hjson", ".json":
		// HJSON unmarshals into a generic map; round-trip through JSON to
		// land in the typed struct.
		var raw map[string]interface{}
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse hjson config %s: %w", path, err)
		}
		jsonBytes, err := json.Marshal(raw)
		if err != nil {
			return cfg, fmt.Errorf("failed to convert hjson config %s: %w", path, err)
		}
		if err := json.Unmarshal(jsonBytes, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (want .yaml or .hjson)", filepath.Ext(path))
	}

	if err := cfg.Assumptions.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Weights.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
