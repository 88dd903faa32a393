// Package console holds the terminal aware output streams of the elemx
// command.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 80

// Writer syncs writes with a mutex shared between stdout and stderr, so
// that lines from both never interleave mid-line.
type Writer struct {
	RawOut *os.File
	Mutex  *sync.Mutex
	Writer io.Writer
	IsTTY  bool
}

var _ io.Writer = &Writer{}

// NewWriter wraps an OS stream. ANSI sequences are translated on Windows
// consoles; isDumbTerm disables TTY treatment altogether.
func NewWriter(f *os.File, mu *sync.Mutex, isDumbTerm bool) *Writer {
	fd := f.Fd()
	return &Writer{
		RawOut: f,
		Mutex:  mu,
		Writer: colorable.NewColorable(f),
		IsTTY:  !isDumbTerm && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	w.Mutex.Lock()
	defer w.Mutex.Unlock()
	return w.Writer.Write(p)
}

// TermWidth returns the terminal width in columns, or 80 when the output is
// not a terminal or its size cannot be determined.
func (w *Writer) TermWidth() int {
	if !w.IsTTY || w.RawOut == nil {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(w.RawOut.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
