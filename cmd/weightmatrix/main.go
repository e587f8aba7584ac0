// Command weightmatrix builds weighted neighborhood matrices for Moran's
// Eigenvector Maps from pairwise distance matrices.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/weightmatrix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
