package matrixio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// document is the mapping form of a YAML/JSON matrix.
type document struct {
	Labels []string        `yaml:"labels,omitempty"`
	Rows   [][]interface{} `yaml:"rows"`
}

func readYAML(r io.Reader) ([][]float64, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	var raw [][]interface{}
	switch top := root.Content[0]; top.Kind {
	case yaml.SequenceNode:
		if err := top.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		raw = doc.Rows
	default:
		return nil, fmt.Errorf("%w: expected a list of rows or a {rows: ...} mapping", ErrMalformed)
	}

	rows := make([][]float64, len(raw))
	for i, rr := range raw {
		rows[i] = make([]float64, len(rr))
		for j, cell := range rr {
			v, err := toFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrMalformed, i, j, err)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

func toFloat(cell interface{}) (float64, error) {
	switch v := cell.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return parseCell(v)
	default:
		return 0, fmt.Errorf("unsupported cell %v (%T)", cell, cell)
	}
}

// writeYAML emits one flow-style sequence per row.
func writeYAML(w io.Writer, m matrix.Matrix) error {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < m.Rows(); i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			row.Content = append(row.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: yamlCell(v)})
		}
		root.Content = append(root.Content, row)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func yamlCell(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	case math.IsNaN(v):
		return ".nan"
	default:
		return formatCell(v)
	}
}

// writeJSON emits one row per line. JSON has no non-finite numbers, so
// those cells are written as the strings "Inf", "-Inf" and "NaN".
func writeJSON(w io.Writer, m matrix.Matrix) error {
	var b strings.Builder
	b.WriteString("[\n")
	cells := make([]interface{}, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range cells {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				cells[j] = formatCell(v)
			} else {
				cells[j] = v
			}
		}
		line, err := json.Marshal(cells)
		if err != nil {
			return err
		}
		b.WriteString("  ")
		b.Write(line)
		if i+1 < m.Rows() {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}
