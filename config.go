package fred

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigKey is returned by LoadConfig when an override map
// contains a key that does not name a Config field.
var ErrUnknownConfigKey = errors.New("fred: unknown config key")

// Config holds process-wide settings for the package: relative error
// tolerance, rounding, thread count, memoization, DTW contingency, memory
// budget, and diagnostic verbosity. It is read without locking from hot
// paths and should only be written at setup time, before any concurrent use
// of the package.
type Config struct {
	ContinuousFrechetError    float64 `envconfig:"CONTINUOUS_FRECHET_ERROR" default:"0.01" yaml:"continuous_frechet_error"`
	ContinuousFrechetRounding bool    `envconfig:"CONTINUOUS_FRECHET_ROUNDING" default:"true" yaml:"continuous_frechet_rounding"`
	Verbosity                 int     `envconfig:"VERBOSITY" default:"0" yaml:"verbosity"`
	NumberThreads             int     `envconfig:"NUMBER_THREADS" default:"0" yaml:"number_threads"`
	UseDistanceMatrix         bool    `envconfig:"USE_DISTANCE_MATRIX" default:"true" yaml:"use_distance_matrix"`
	DTWContingency            bool    `envconfig:"DTW_CONTINGENCY" default:"false" yaml:"dtw_contingency"`
	AvailableMemory           int64   `envconfig:"AVAILABLE_MEMORY" default:"1073741824" yaml:"available_memory"`
}

// DefaultConfig returns the package's default configuration.
func DefaultConfig() Config {
	return Config{
		ContinuousFrechetError:    0.01,
		ContinuousFrechetRounding: true,
		Verbosity:                 0,
		NumberThreads:             0,
		UseDistanceMatrix:         true,
		DTWContingency:            false,
		AvailableMemory:           1 << 30,
	}
}

var globalConfig = DefaultConfig()

// GetConfig returns the current process-wide configuration.
func GetConfig() Config {
	return globalConfig
}

// SetConfig installs cfg as the process-wide configuration. Callers must do
// this at setup time, before any concurrent use of the package.
func SetConfig(cfg Config) {
	globalConfig = cfg
}

// LoadConfig populates a Config from environment variables prefixed FRED_
// (e.g. FRED_VERBOSITY), via envconfig. Overrides, when non-nil, are applied
// afterwards using loose casts (github.com/spf13/cast), so callers can
// supply values as strings, ints, or floats interchangeably.
func LoadConfig(overrides map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("FRED", &cfg); err != nil {
		return Config{}, fmt.Errorf("fred: loading config from environment: %w", err)
	}
	for key, value := range overrides {
		if err := applyOverride(&cfg, key, value); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func applyOverride(cfg *Config, key string, value any) error {
	switch key {
	case "continuous_frechet_error":
		cfg.ContinuousFrechetError = cast.ToFloat64(value)
	case "continuous_frechet_rounding":
		cfg.ContinuousFrechetRounding = cast.ToBool(value)
	case "verbosity":
		cfg.Verbosity = cast.ToInt(value)
	case "number_threads":
		cfg.NumberThreads = cast.ToInt(value)
	case "use_distance_matrix":
		cfg.UseDistanceMatrix = cast.ToBool(value)
	case "dtw_contingency":
		cfg.DTWContingency = cast.ToBool(value)
	case "available_memory":
		cfg.AvailableMemory = cast.ToInt64(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}
	return nil
}

// LoadConfigYAML parses a YAML document into a Config, starting from
// DefaultConfig so unspecified fields keep their defaults.
func LoadConfigYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fred: parsing YAML config: %w", err)
	}
	return cfg, nil
}

// workerCount resolves Config.NumberThreads to a concrete pool size;
// NumberThreads <= 0 means "auto".
func (c Config) workerCount() int {
	if c.NumberThreads > 0 {
		return c.NumberThreads
	}
	return runtime.GOMAXPROCS(0)
}

// diagnosticf prints a verbosity-gated diagnostic using the standard log
// package. No structured-logging library in the retrieval pack has enough
// grounding to adopt confidently here; see DESIGN.md.
func diagnosticf(level int, format string, args ...any) {
	if globalConfig.Verbosity >= level {
		log.Printf(format, args...)
	}
}
