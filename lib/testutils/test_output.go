package testutils

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

// testOutput makes a test usable as an io.Writer for log output.
type testOutput struct{ testing.TB }

func (to testOutput) Write(p []byte) (n int, err error) {
	to.Logf("%s", p)
	return len(p), nil
}

// NewTestOutput returns an io.Writer that logs through t.
func NewTestOutput(t testing.TB) io.Writer {
	return testOutput{t}
}

// NewLogger returns a trace level logger writing through t, with hook
// attached to it.
func NewLogger(t testing.TB, hook logrus.Hook) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(NewTestOutput(t))
	l.SetLevel(logrus.TraceLevel)
	if hook != nil {
		l.AddHook(hook)
	}
	return l
}
