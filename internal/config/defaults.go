package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/weightmatrix/internal/logging"
	"github.com/katalvlaran/weightmatrix/matrix"
	"github.com/katalvlaran/weightmatrix/neighborhood"
	"github.com/katalvlaran/weightmatrix/prim_kruskal"
)

const (
	DefaultMethod    = string(neighborhood.MethodDBMEM)
	DefaultSpanning  = prim_kruskal.MethodKruskal
	DefaultEpsilon   = matrix.DefaultEpsilon
	DefaultLogLevel  = logging.LevelInfo
	DefaultLogFormat = logging.FormatConsole
)

// keys lists every configuration key so environment variables resolve even
// for keys without a default (threshold, alpha, beta).
var keys = []string{
	"method", "threshold", "alpha", "beta", "keep_diagonal", "spanning",
	"strict", "epsilon", "input", "output", "format",
	"log.level", "log.format", "log.output_paths",
}

// setDefaults registers the documented defaults on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("method", DefaultMethod)
	v.SetDefault("keep_diagonal", false)
	v.SetDefault("spanning", DefaultSpanning)
	v.SetDefault("strict", false)
	v.SetDefault("epsilon", DefaultEpsilon)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}
