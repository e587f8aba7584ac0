// Package cli implements the weightmatrix command tree: compute builds a
// weighted neighborhood matrix from a distance matrix, threshold prints the
// default connectivity threshold.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/weightmatrix/internal/config"
	"github.com/katalvlaran/weightmatrix/internal/logging"
	"github.com/katalvlaran/weightmatrix/internal/matrixio"
	"github.com/katalvlaran/weightmatrix/matrix"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// annotationSkipWeighting marks commands that never compute a neighborhood
// matrix; their configuration is loaded without the weighting fields.
const annotationSkipWeighting = "weightmatrix/skip-weighting"

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string

	// logger, when set, replaces the configured zap logger.
	logger logging.Logger
}

// RootOption customizes NewRootCommand.
type RootOption func(*RootOptions)

// WithLogger injects a Logger instead of building one from configuration.
func WithLogger(l logging.Logger) RootOption {
	return func(o *RootOptions) { o.logger = l }
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config *config.Config
	Logger logging.Logger
}

// ErrNoContext indicates a command ran without the root's pre-run.
var ErrNoContext = errors.New("cli: context not initialized")

// NewRootCommand creates the root command with its global flags and subcommands.
func NewRootCommand(opts ...RootOption) *cobra.Command {
	ro := &RootOptions{}
	for _, o := range opts {
		o(ro)
	}

	cmd := &cobra.Command{
		Use:   "weightmatrix",
		Short: "Build weighted neighborhood matrices for Moran's Eigenvector Maps",
		Long: "weightmatrix converts a pairwise distance matrix into a weighted neighborhood\n" +
			"matrix W = A ⊙ B: B keeps pairs within a connectivity threshold, A weights them\n" +
			"(dbmem, linear, concave-down, concave-up or connectivity).",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, ro)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if cc, err := GetCLIContext(cmd); err == nil {
				_ = cc.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&ro.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&ro.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&ro.LogFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")

	cmd.AddCommand(newComputeCmd(), newThresholdCmd())

	return cmd
}

// persistentPreRun loads configuration, builds the logger and stores CLIContext.
func persistentPreRun(cmd *cobra.Command, ro *RootOptions) error {
	var skip []string
	if cmd.Annotations[annotationSkipWeighting] == "true" {
		skip = config.WeightingFields()
	}
	cfg, err := config.Load(ro.ConfigPath, cmd.Flags(), skip...)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := ro.logger
	if logger == nil {
		if logger, err = logging.NewLogger(cfg.Log); err != nil {
			return fmt.Errorf("logger initialization failed: %w", err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &CLIContext{
		Config: cfg,
		Logger: logger.Named(cmd.Name()),
	}))

	return nil
}

// GetCLIContext extracts CLIContext from the command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cc, ok := ctx.Value(cliContextKey{}).(*CLIContext); ok && cc != nil {
			return cc, nil
		}
	}
	return nil, ErrNoContext
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// readInput loads the distance matrix from cfg.Input, or from stdin when empty.
func readInput(cmd *cobra.Command, cfg *config.Config) (*matrix.Dense, matrixio.Format, error) {
	f, err := inputFormat(cfg)
	if err != nil {
		return nil, "", err
	}
	if cfg.Input == "" || cfg.Input == "-" {
		m, err := matrixio.Read(cmd.InOrStdin(), f)
		return m, f, err
	}
	m, err := matrixio.ReadFile(cfg.Input, f)
	return m, f, err
}

func inputFormat(cfg *config.Config) (matrixio.Format, error) {
	if cfg.Format != "" {
		return matrixio.ParseFormat(cfg.Format)
	}
	return matrixio.FormatFromPath(cfg.Input), nil
}

// writeOutput writes m to cfg.Output, or to stdout when empty. Without an
// explicit format the output extension decides, then the input format.
func writeOutput(cmd *cobra.Command, cfg *config.Config, m matrix.Matrix, in matrixio.Format) error {
	f := in
	if cfg.Format == "" && cfg.Output != "" && cfg.Output != "-" {
		f = matrixio.FormatFromPath(cfg.Output)
	}
	if cfg.Output == "" || cfg.Output == "-" {
		return matrixio.Write(cmd.OutOrStdout(), m, f)
	}
	return matrixio.WriteFile(cfg.Output, m, f)
}

// printf writes to the command's stdout, ignoring write errors like fmt.Printf.
func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
