package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/weightmatrix/internal/config"
	"github.com/katalvlaran/weightmatrix/internal/logging"
	"github.com/katalvlaran/weightmatrix/matrix"
	"github.com/katalvlaran/weightmatrix/neighborhood"
	"github.com/katalvlaran/weightmatrix/prim_kruskal"
)

func newComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the weighted neighborhood matrix of a distance matrix",
		Example: `  weightmatrix compute -i dist.csv --method linear --threshold 1
  weightmatrix compute -i dist.csv --method concave-down --alpha 0.5 -o w.yaml
  cat dist.csv | weightmatrix compute --method connectivity`,
		Args: cobra.NoArgs,
		RunE: runCompute,
	}

	f := cmd.Flags()
	f.String("method", config.DefaultMethod, fmt.Sprintf("weighting method %v", neighborhood.Methods()))
	f.Float64("threshold", 0, "connectivity threshold (default: longest minimum-spanning-tree edge)")
	f.Float64("alpha", 0, "concave-down exponent (required by concave-down)")
	f.Float64("beta", 0, "concave-up exponent (required by concave-up)")
	f.Bool("keep-diagonal", false, "keep W's diagonal as computed instead of zeroing it")
	f.String("mst", config.DefaultSpanning, "spanning-tree algorithm (kruskal, prim)")
	f.Bool("strict", false, "require a symmetric distance matrix with a zero diagonal")
	f.Float64("epsilon", config.DefaultEpsilon, "tolerance of the --strict checks")
	addIOFlags(cmd)

	return cmd
}

func addIOFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "distance matrix file (default: stdin)")
	f.StringP("output", "o", "", "output file (default: stdout)")
	f.StringP("format", "f", "", "matrix format: csv, yaml, json (default: from file extension)")
}

// neighborhoodOptions translates the configuration into Weighter options.
func neighborhoodOptions(cfg *config.Config) []neighborhood.Option {
	opts := []neighborhood.Option{
		neighborhood.WithZeroDiagonal(!cfg.KeepDiagonal),
		neighborhood.WithSpanningTree(spanningTree(cfg.Spanning)),
		neighborhood.WithEpsilon(cfg.Epsilon),
	}
	if cfg.Threshold != nil {
		opts = append(opts, neighborhood.WithThreshold(*cfg.Threshold))
	}
	if cfg.Alpha != nil {
		opts = append(opts, neighborhood.WithAlpha(*cfg.Alpha))
	}
	if cfg.Beta != nil {
		opts = append(opts, neighborhood.WithBeta(*cfg.Beta))
	}
	if cfg.Strict {
		opts = append(opts, neighborhood.WithStrictDistances())
	}
	return opts
}

// spanningTree returns the edge-distance strategy for the named algorithm.
func spanningTree(method string) neighborhood.SpanningTreeFunc {
	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(method))
	return func(d matrix.Matrix) ([]float64, error) {
		return prim_kruskal.EdgeDistancesWith(d, opts)
	}
}

func runCompute(cmd *cobra.Command, _ []string) error {
	cc, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg, log := cc.Config, cc.Logger

	w, err := neighborhood.New(neighborhood.Method(cfg.Method), neighborhoodOptions(cfg)...)
	if err != nil {
		log.Error("invalid parameters", logging.Err(err))
		return err
	}

	d, format, err := readInput(cmd, cfg)
	if err != nil {
		log.Error("cannot read distance matrix", logging.String("input", cfg.Input), logging.Err(err))
		return err
	}
	log.Debug("distance matrix loaded", logging.Int("n", d.Rows()), logging.String("format", string(format)))

	res, err := w.Run(d)
	if err != nil {
		log.Error("computation failed", logging.Err(err))
		return err
	}
	log.Info("neighborhood matrix computed",
		logging.Int("n", res.W.Rows()),
		logging.String("method", res.Method.String()),
		logging.Float64("threshold", res.Threshold),
		logging.Bool("threshold_from_tree", res.ThresholdFromTree),
	)
	reportDiagnostics(log, neighborhood.Diagnose(res.W))

	if err = writeOutput(cmd, cfg, res.W, format); err != nil {
		log.Error("cannot write neighborhood matrix", logging.String("output", cfg.Output), logging.Err(err))
		return err
	}
	return nil
}

// reportDiagnostics logs one warning per degenerate feature of W.
func reportDiagnostics(log logging.Logger, rep neighborhood.Report) {
	if rep.Infinite > 0 {
		log.Warn("infinite weights in output (zero distances under concave-up)", logging.Int("cells", rep.Infinite))
	}
	if rep.Empty {
		log.Warn("no pair is connected; the neighborhood matrix is all zeros off the diagonal")
		return
	}
	if len(rep.Isolated) > 0 {
		log.Warn("entities without neighbors", logging.Ints("rows", rep.Isolated))
	}
}
