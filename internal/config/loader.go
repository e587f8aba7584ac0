package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix: WEIGHTMATRIX_THRESHOLD,
// WEIGHTMATRIX_LOG_LEVEL, ...
const envPrefix = "WEIGHTMATRIX"

// flagKeys maps command-line flag names onto configuration keys. Flags not
// listed here (config, help) are not configuration.
var flagKeys = map[string]string{
	"method":        "method",
	"threshold":     "threshold",
	"alpha":         "alpha",
	"beta":          "beta",
	"keep-diagonal": "keep_diagonal",
	"mst":           "spanning",
	"strict":        "strict",
	"epsilon":       "epsilon",
	"input":         "input",
	"output":        "output",
	"format":        "format",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// newViper builds a Viper with defaults, YAML file type, the WEIGHTMATRIX_
// env prefix and a "." → "_" key replacer.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load resolves the configuration. path may be empty (no file). flags may be
// nil; otherwise only flags set on the command line override lower layers,
// so an untouched --threshold keeps Threshold nil. Fields named in skip are
// loaded but not validated (see WeightingFields).
func Load(path string, flags *pflag.FlagSet, skip ...string) (*Config, error) {
	v := newViper()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("%w: bind env %q: %v", ErrInvalidConfig, k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read config file %q: %v", ErrInvalidConfig, path, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("%w: bind flags: %v", ErrInvalidConfig, bindErr)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal configuration: %v", ErrInvalidConfig, err)
	}
	cfg.Method = strings.ToLower(strings.TrimSpace(cfg.Method))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := cfg.Validate(skip...); err != nil {
		return nil, err
	}

	return cfg, nil
}
