package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Columns: []string{"name", "kind"},
		Rows: [][]string{
			{"hello", "function"},
			{"a,b", `c"d`},
		},
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTable(), FormatTable))
	out := buf.String()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "----")
}

func TestRenderCSVEscapesCommasAndQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTable(), FormatCSV))
	out := buf.String()
	assert.Contains(t, out, `"a,b"`)
	assert.Contains(t, out, `"c""d"`)
}

func TestRenderJSONProducesArrayOfObjects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTable(), FormatJSON))
	assert.Contains(t, buf.String(), `"name": "hello"`)
}

func TestDepthMeasuresSlashCount(t *testing.T) {
	assert.Equal(t, 0, depth("."))
	assert.Equal(t, 1, depth("main.go"))
	assert.Equal(t, 3, depth("internal/query/engine.go"))
}
