// Package config loads the weightmatrix command configuration from defaults,
// an optional YAML file, WEIGHTMATRIX_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/weightmatrix/internal/logging"
	"github.com/katalvlaran/weightmatrix/neighborhood"
)

// ErrInvalidConfig is wrapped by every loading or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one weightmatrix invocation.
type Config struct {
	// Method is the weighting method (see neighborhood.Methods).
	Method string `mapstructure:"method" yaml:"method" validate:"method"`

	// Threshold fixes t; nil derives it from the spanning tree.
	Threshold *float64 `mapstructure:"threshold" yaml:"threshold" validate:"omitempty,gte=0"`

	// Alpha is the concave-down exponent.
	Alpha *float64 `mapstructure:"alpha" yaml:"alpha" validate:"omitempty,gt=0"`

	// Beta is the concave-up exponent.
	Beta *float64 `mapstructure:"beta" yaml:"beta" validate:"omitempty,gt=0"`

	// KeepDiagonal leaves W's diagonal as computed instead of zeroing it.
	KeepDiagonal bool `mapstructure:"keep_diagonal" yaml:"keep_diagonal"`

	// Spanning selects the spanning-tree algorithm: kruskal or prim.
	Spanning string `mapstructure:"spanning" yaml:"spanning" validate:"oneof=kruskal prim"`

	// Strict also requires a symmetric distance matrix with a zero diagonal.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// Epsilon is the tolerance of the strict checks.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon" validate:"gte=0"`

	// Input is the distance matrix path; empty reads stdin.
	Input string `mapstructure:"input" yaml:"input"`

	// Output is the result path; empty writes stdout.
	Output string `mapstructure:"output" yaml:"output"`

	// Format forces the matrix encoding (csv, yaml, json); empty infers it
	// from the file extension.
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=csv yaml json"`

	// Log configures the command's logger.
	Log logging.LogConfig `mapstructure:"log" yaml:"log"`
}

// weightingFields are read only when a neighborhood matrix is computed.
var weightingFields = []string{"Method", "Threshold", "Alpha", "Beta", "Epsilon"}

// WeightingFields returns the fields that only the weighting step reads.
// Commands that never weigh pass them to Load as skipped fields, so a stale
// method or exponent does not fail them.
func WeightingFields() []string {
	out := make([]string, len(weightingFields))
	copy(out, weightingFields)
	return out
}

// validate is a singleton validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "method" accepts anything neighborhood.ParseMethod accepts.
	_ = v.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		_, err := neighborhood.ParseMethod(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field against its tag constraints, except the
// top-level fields named in skip.
func (c *Config) Validate(skip ...string) error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	var err error
	if len(skip) > 0 {
		err = validate.StructExcept(c, skip...)
	} else {
		err = validate.Struct(c)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	e := verrs[0]
	field, param := e.Namespace(), e.Param()
	switch e.Tag() {
	case "method":
		return fmt.Errorf("%s: unknown method %q (valid: %v)", field, e.Value(), neighborhood.Methods())
	case "oneof":
		return fmt.Errorf("%s: %v must be one of [%s]", field, e.Value(), param)
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, param)
	case "gte":
		return fmt.Errorf("%s: must be at least %s", field, param)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
