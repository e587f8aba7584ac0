package matrixio_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weightmatrix/internal/matrixio"
	"github.com/katalvlaran/weightmatrix/matrix"
)

var line3 = [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]matrixio.Format{
		"csv": matrixio.FormatCSV, "YAML": matrixio.FormatYAML, "yml": matrixio.FormatYAML, " json ": matrixio.FormatJSON,
	} {
		got, err := matrixio.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := matrixio.ParseFormat("xml")
	assert.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, matrixio.FormatYAML, matrixio.FormatFromPath("d.yml"))
	assert.Equal(t, matrixio.FormatJSON, matrixio.FormatFromPath("/tmp/w.JSON"))
	assert.Equal(t, matrixio.FormatCSV, matrixio.FormatFromPath("d.txt"))
	assert.Equal(t, matrixio.FormatCSV, matrixio.FormatFromPath(""))
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"plain", "0,1,2\n1,0,1\n2,1,0\n"},
		{"comments and spaces", "# transect\n0, 1, 2\n1, 0, 1\n# mid\n2, 1, 0\n"},
		{"header", "a,b,c\n0,1,2\n1,0,1\n2,1,0\n"},
		{"header with row labels", "\"\",a,b,c\na,0,1,2\nb,1,0,1\nc,2,1,0\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrixio.Read(strings.NewReader(tc.in), matrixio.FormatCSV)
			require.NoError(t, err)
			assert.Equal(t, line3, m.ToRows())
		})
	}
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrixio.Read(strings.NewReader("0,1\n1,x\n"), matrixio.FormatCSV)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)

	_, err = matrixio.Read(strings.NewReader("0,1\n1\n"), matrixio.FormatCSV)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrixio.Read(strings.NewReader("# nothing\n"), matrixio.FormatCSV)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)

	_, err = matrixio.Read(strings.NewReader("0,NaN\nNaN,0\n"), matrixio.FormatCSV)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReadYAMLAndJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format matrixio.Format
		in     string
	}{
		{"yaml list", matrixio.FormatYAML, "- [0, 1, 2]\n- [1, 0, 1]\n- [2, 1, 0]\n"},
		{"yaml mapping", matrixio.FormatYAML, "labels: [a, b, c]\nrows:\n  - [0, 1.0, 2]\n  - [1, 0, 1]\n  - [2, 1, 0]\n"},
		{"json list", matrixio.FormatJSON, "[[0,1,2],[1,0,1],[2,1,0]]"},
		{"json mapping", matrixio.FormatJSON, `{"labels":["a","b","c"],"rows":[[0,1,2],[1,0,1],[2,1,0]]}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrixio.Read(strings.NewReader(tc.in), tc.format)
			require.NoError(t, err)
			assert.Equal(t, line3, m.ToRows())
		})
	}
}

func TestReadYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrixio.Read(strings.NewReader("just a string\n"), matrixio.FormatYAML)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)

	_, err = matrixio.Read(strings.NewReader("- [0, true]\n- [1, 0]\n"), matrixio.FormatYAML)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)

	_, err = matrixio.Read(strings.NewReader(""), matrixio.FormatJSON)
	assert.ErrorIs(t, err, matrixio.ErrMalformed)

	_, err = matrixio.Read(strings.NewReader("[[0]]"), "xml")
	assert.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}

func TestWrite_Formats(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1), 0.5}, {0.5, 0}}, matrix.WithAllowInfDistances())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.Write(&buf, m, matrixio.FormatCSV))
	assert.Equal(t, "Inf,0.5\n0.5,0\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.Write(&buf, m, matrixio.FormatYAML))
	assert.Equal(t, "- [.inf, 0.5]\n- [0.5, 0]\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.Write(&buf, m, matrixio.FormatJSON))
	assert.Equal(t, "[\n  [\"Inf\",0.5],\n  [0.5,0]\n]\n", buf.String())

	assert.ErrorIs(t, matrixio.Write(&buf, m, "xml"), matrixio.ErrUnknownFormat)
	assert.ErrorIs(t, matrixio.Write(&buf, nil, matrixio.FormatCSV), matrix.ErrNilMatrix)
}

func TestRoundTrip_AllFormats(t *testing.T) {
	t.Parallel()
	want := [][]float64{{0, 0.1, math.Inf(1)}, {0.1, 0, 1e-12}, {math.Inf(1), 1e-12, 0}}
	m, err := matrix.NewDenseFromRows(want, matrix.WithAllowInfDistances())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"w.csv", "w.yaml", "w.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, matrixio.WriteFile(path, m, ""), name)
		got, err := matrixio.ReadFile(path, "")
		require.NoError(t, err, name)
		assert.Equal(t, want, got.ToRows(), name)
	}
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()
	_, err := matrixio.ReadFile(filepath.Join(t.TempDir(), "absent.csv"), "")
	assert.Error(t, err)
}
