package console

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(isTTY, noColor bool) (*Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	w := &Writer{Mutex: &sync.Mutex{}, Writer: buf, IsTTY: isTTY}
	return NewPrinter(w, noColor), buf
}

func TestPrinterDiagnostic(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter(false, false)
	require.NoError(t, p.Diagnostic("a.elx", 3, 7, "Unexpected number"))
	assert.Equal(t, "a.elx:3:7: Unexpected number\n", buf.String())

	p, buf = newTestPrinter(true, false)
	require.NoError(t, p.Diagnostic("a.elx", 3, 7, "Unexpected number"))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Unexpected number")

	p, buf = newTestPrinter(true, true)
	require.NoError(t, p.Diagnostic("a.elx", 1, 1, "x"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinterSummary(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter(false, true)
	require.NoError(t, p.Summary(3, 1))
	assert.Contains(t, buf.String(), "1 of 3 files failed")

	p, buf = newTestPrinter(false, true)
	require.NoError(t, p.Summary(2, 0))
	assert.Contains(t, buf.String(), "2 files ok")
}

func TestPrinterStructured(t *testing.T) {
	t.Parallel()

	v := map[string]interface{}{"type": "identifier", "name": "a"}

	p, buf := newTestPrinter(false, true)
	require.NoError(t, p.PrintYAML(v))
	assert.Equal(t, "name: a\ntype: identifier\n", buf.String())

	p, buf = newTestPrinter(false, true)
	require.NoError(t, p.PrintJSON(v))
	assert.JSONEq(t, `{"type":"identifier","name":"a"}`, buf.String())
}

func TestWriterTermWidth(t *testing.T) {
	t.Parallel()

	w := &Writer{Mutex: &sync.Mutex{}, Writer: &bytes.Buffer{}}
	assert.Equal(t, defaultTermWidth, w.TermWidth())
}
