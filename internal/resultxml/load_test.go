package resultxml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/internal/resultxml"
)

const erroredXML = `<?xml version="1.0"?>
<result tool="cpachecker" version="2.1" error="timeout in benchmark execution">
  <run name="task1.c" files="task1.c" properties="reach" status="error"/>
</result>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "results.xml", sampleXML)

	result, err := resultxml.Load(p, resultxml.LoadOptions{RunsetID: "run-0"})
	require.NoError(t, err)
	assert.Equal(t, "run-0", result.Runs[0].Runset)
}

func TestLoad_ErrorWithoutIgnoreFails(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "results.xml", erroredXML)

	_, err := resultxml.Load(p, resultxml.LoadOptions{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, resultxml.ErrSkipped)
}

func TestLoad_ErrorWithIgnoreIsSkipped(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "results.xml", erroredXML)

	_, err := resultxml.Load(p, resultxml.LoadOptions{IgnoreErrors: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, resultxml.ErrSkipped)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := resultxml.Load(filepath.Join(t.TempDir(), "nope.xml"), resultxml.LoadOptions{})
	require.Error(t, err)
}
