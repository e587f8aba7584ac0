// Package matrixio reads distance matrices from, and writes neighborhood
// matrices to, CSV, YAML and JSON.
//
// CSV: one row per record, '#' starts a comment line. A first record that
// does not parse as numbers is a header and is skipped; when its first cell
// is empty the first column holds row labels and is skipped too (the shape
// written by R's write.csv(as.matrix(d))).
//
// YAML/JSON: either a list of rows, or a mapping {labels: [...], rows: [[...]]}.
// JSON is read through the YAML decoder.
//
// Non-finite cells are written as Inf, -Inf and NaN. Reading admits +Inf
// (a missing edge) and rejects NaN and -Inf.
package matrixio

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Format names an encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat indicates an encoding other than csv, yaml or json.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrMalformed indicates input that does not describe a numeric matrix.
	ErrMalformed = errors.New("matrixio: malformed matrix")
)

// ParseFormat resolves a format name; "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from the file extension, falling back to
// CSV for anything else (including an empty path).
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatCSV
	}
	return f
}

// formatCell renders v with the shortest exact representation.
func formatCell(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// parseCell accepts anything strconv.ParseFloat does, plus YAML's .inf/.nan.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
