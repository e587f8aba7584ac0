package matrixio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/weightmatrix/matrix"
)

// Read decodes a matrix in format f. The result admits +Inf cells; callers
// that need finite distances validate them (neighborhood does).
func Read(r io.Reader, f Format) (*matrix.Dense, error) {
	var (
		rows [][]float64
		err  error
	)
	switch f {
	case FormatCSV:
		rows, err = readCSV(r)
	case FormatYAML, FormatJSON:
		rows, err = readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	m, err := matrix.NewDenseFromRows(rows, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return m, nil
}

// Write encodes m in format f.
func Write(w io.Writer, m matrix.Matrix, f Format) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: Write: %w", err)
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, m)
	case FormatYAML:
		return writeYAML(w, m)
	case FormatJSON:
		return writeJSON(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile reads path; an empty f is inferred from the extension.
func ReadFile(path string, f Format) (*matrix.Dense, error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer fh.Close()

	return Read(fh, f)
}

// WriteFile writes m to path, replacing it; an empty f is inferred from the extension.
func WriteFile(path string, m matrix.Matrix, f Format) (err error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(fh, m, f)
}
