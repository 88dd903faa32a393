package build

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	t.Parallel()

	v := FullVersion()
	assert.True(t, strings.HasPrefix(v, Version+" ("), v)
	assert.Contains(t, v, runtime.Version())

	details := VersionDetails()
	assert.Equal(t, "v"+Version, details["version"])
	assert.Equal(t, runtime.GOOS, details["go_os"])
}
