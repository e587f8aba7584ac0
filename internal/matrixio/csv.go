package matrixio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/weightmatrix/matrix"
)

func readCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // ragged rows are reported by the matrix constructor
	cr.TrimLeadingSpace = true

	var (
		rows      [][]float64
		skipFirst bool
		line      int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line++
		if skipFirst && len(rec) > 0 {
			rec = rec[1:]
		}

		row, perr := parseRecord(rec)
		if perr != nil {
			if line == 1 {
				// header; an empty corner cell means a label column follows
				skipFirst = len(rec) > 0 && rec[0] == ""
				continue
			}
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, line, perr)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRecord(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, s := range rec {
		v, err := parseCell(s)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}

func writeCSV(w io.Writer, m matrix.Matrix) error {
	cw := csv.NewWriter(w)
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range rec {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			rec[j] = formatCell(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
