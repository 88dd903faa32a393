// Package tests contains the harness for running the elemx command against
// an in-memory environment.
package tests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/liuxd6825/elemx/cmd/state"
	"github.com/liuxd6825/elemx/lib/fsext"
	"github.com/liuxd6825/elemx/lib/testutils"
	"github.com/liuxd6825/elemx/ui/console"
)

// Main is a TestMain function that fails the test binary when goroutines
// outlive the tests, such as a log file hook that was never stopped.
func Main(m *testing.M) {
	exitCode := 1 // error out by default
	defer func() {
		os.Exit(exitCode)
	}()

	defer func() {
		if err := goleak.Find(); err != nil {
			fmt.Println(err) //nolint:forbidigo
			exitCode = 3
		}
	}()

	exitCode = m.Run()
}

// GlobalTestState wraps a GlobalState whose streams are buffers and whose
// filesystem lives in memory.
type GlobalTestState struct {
	*state.GlobalState
	Cancel func()

	Stdout, Stderr *bytes.Buffer
	LoggerHook     *testutils.SimpleLogrusHook

	Cwd string

	ExpectedExitCode int
}

// NewGlobalTestState returns a test state with an empty /test/ working
// directory. The test fails if the command exits with a code other than
// ExpectedExitCode.
func NewGlobalTestState(tb testing.TB) *GlobalTestState {
	ctx, cancel := context.WithCancel(context.Background())
	tb.Cleanup(cancel)

	fs := fsext.NewMemMapFs()
	cwd := string(filepath.Separator) + "test" + string(filepath.Separator)
	require.NoError(tb, fs.MkdirAll(cwd, 0o755))

	hook := testutils.NewLogHook()
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.Out = testutils.NewTestOutput(tb)
	logger.AddHook(hook)

	ts := &GlobalTestState{
		Cancel:     cancel,
		Stdout:     new(bytes.Buffer),
		Stderr:     new(bytes.Buffer),
		LoggerHook: hook,
		Cwd:        cwd,
	}

	outMutex := &sync.Mutex{}
	defaultFlags := state.GetDefaultGlobalOptions(".config")

	ts.GlobalState = &state.GlobalState{
		Ctx:          ctx,
		FS:           fs,
		Getwd:        func() (string, error) { return ts.Cwd, nil },
		BinaryName:   "elemx",
		CmdArgs:      []string{},
		Env:          map[string]string{},
		DefaultFlags: defaultFlags,
		Flags:        defaultFlags,
		OutMutex:     outMutex,
		Stdout:       &console.Writer{Mutex: outMutex, Writer: ts.Stdout, IsTTY: false},
		Stderr:       &console.Writer{Mutex: outMutex, Writer: ts.Stderr, IsTTY: false},
		Stdin:        new(bytes.Buffer),
		OSExit: func(code int) {
			tb.Logf("OSExit called with code %d", code)
			assert.Equal(tb, ts.ExpectedExitCode, code, "unexpected exit code")
		},
		Logger:         logger,
		FallbackLogger: testutils.NewLogger(tb, nil).WithField("fallback", true),
	}
	return ts
}

// WriteFile writes data to name, relative to the working directory.
func (ts *GlobalTestState) WriteFile(tb testing.TB, name string, data []byte) {
	tb.Helper()
	require.NoError(tb, fsext.WriteFile(ts.FS, fsext.Abs(ts.Cwd, name), data, 0o644))
}
