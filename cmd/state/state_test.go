package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEnvMap(t *testing.T) {
	t.Parallel()

	env := BuildEnvMap([]string{"A=1", "B=x=y", "EMPTY=", "BARE"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "EMPTY": "", "BARE": ""}, env)
}

func TestConsolidateGlobalFlags(t *testing.T) {
	t.Parallel()

	defaults := GetDefaultGlobalOptions("/home/u/.config")
	assert.Equal(t, "/home/u/.config/elemx/config.json", defaults.ConfigFilePath)

	assert.Equal(t, defaults, consolidateGlobalFlags(defaults, map[string]string{}))

	flags := consolidateGlobalFlags(defaults, map[string]string{
		"ELEMX_CONFIG":     "/etc/elemx.json",
		"ELEMX_LOG_OUTPUT": "none",
		"ELEMX_LOG_FORMAT": "json",
		"NO_COLOR":         "",
	})
	assert.Equal(t, GlobalOptions{
		ConfigFilePath: "/etc/elemx.json",
		LogOutput:      "none",
		LogFormat:      "json",
		NoColor:        true,
	}, flags)

	assert.True(t, consolidateGlobalFlags(defaults, map[string]string{"ELEMX_NO_COLOR": "1"}).NoColor)
	assert.False(t, consolidateGlobalFlags(defaults, map[string]string{"ELEMX_NO_COLOR": ""}).NoColor)
}
