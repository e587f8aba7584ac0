package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/weightmatrix/internal/config"
	"github.com/katalvlaran/weightmatrix/internal/logging"
	"github.com/katalvlaran/weightmatrix/neighborhood"
)

func newThresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Print the longest minimum-spanning-tree edge of a distance matrix",
		Long: "threshold prints the default connectivity threshold of compute: the longest\n" +
			"edge of the distance matrix's minimum spanning tree. Weighting settings\n" +
			"(method, threshold, alpha, beta, epsilon) are not read and not validated.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipWeighting: "true"},
		RunE:        runThreshold,
	}
	f := cmd.Flags()
	f.String("mst", config.DefaultSpanning, "spanning-tree algorithm (kruskal, prim)")
	f.StringP("input", "i", "", "distance matrix file (default: stdin)")
	f.StringP("format", "f", "", "matrix format: csv, yaml, json (default: from file extension)")

	return cmd
}

func runThreshold(cmd *cobra.Command, _ []string) error {
	cc, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg, log := cc.Config, cc.Logger

	d, _, err := readInput(cmd, cfg)
	if err != nil {
		log.Error("cannot read distance matrix", logging.String("input", cfg.Input), logging.Err(err))
		return err
	}

	t, err := neighborhood.Threshold(d, spanningTree(cfg.Spanning))
	if err != nil {
		log.Error("threshold failed", logging.Err(err))
		return err
	}
	log.Debug("threshold computed", logging.Int("n", d.Rows()), logging.String("mst", cfg.Spanning))
	printf(cmd.OutOrStdout(), "%g\n", t)

	return nil
}
