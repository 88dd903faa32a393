package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"github.com/liuxd6825/elemx/cmd/state"
	"github.com/liuxd6825/elemx/errext"
	"github.com/liuxd6825/elemx/errext/exitcodes"
	"github.com/liuxd6825/elemx/lib/fsext"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Config holds the parsing options shared by the parse and check commands.
// Each field may come from the config file, the environment or a flag.
type Config struct {
	Format    null.String `json:"format" envconfig:"ELEMX_FORMAT"`
	FastPath  null.Bool   `json:"fastPath" envconfig:"ELEMX_FAST_PATH"`
	Comments  null.Bool   `json:"comments" envconfig:"ELEMX_COMMENTS"`
	SourceMap null.String `json:"sourceMap" envconfig:"ELEMX_SOURCE_MAP"`
}

// Apply returns c with every valid field of cfg copied over it.
func (c Config) Apply(cfg Config) Config {
	if cfg.Format.Valid {
		c.Format = cfg.Format
	}
	if cfg.FastPath.Valid {
		c.FastPath = cfg.FastPath
	}
	if cfg.Comments.Valid {
		c.Comments = cfg.Comments
	}
	if cfg.SourceMap.Valid {
		c.SourceMap = cfg.SourceMap
	}
	return c
}

func defaultConfig() Config {
	return Config{
		Format:   null.NewString(formatJSON, false),
		FastPath: null.NewBool(true, false),
		Comments: null.NewBool(false, false),
	}
}

func configFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Bool("no-fast-path", false, "send every identifier through the element trial parse")
	flags.String("source-map", "", "source map `file` used to report original positions")
	must(cobra.MarkFlagFilename(flags, "source-map"))
	return flags
}

func outputFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringP("format", "f", formatJSON, "output `format`, json or yaml")
	flags.Bool("comments", false, "include the source comments in the output")
	return flags
}

// getConfig builds a Config from the flags that were explicitly set.
func getConfig(flags *pflag.FlagSet) Config {
	var conf Config
	if flags.Lookup("format") != nil {
		conf.Format = getNullString(flags, "format")
	}
	if flags.Lookup("comments") != nil {
		conf.Comments = getNullBool(flags, "comments")
	}
	noFastPath := getNullBool(flags, "no-fast-path")
	conf.FastPath = null.NewBool(!noFastPath.Bool, noFastPath.Valid)
	conf.SourceMap = getNullString(flags, "source-map")
	return conf
}

// readDiskConfig reads the JSON config file. A missing file is only an
// error when its path was chosen explicitly.
func readDiskConfig(gs *state.GlobalState) (Config, error) {
	path := gs.Flags.ConfigFilePath
	if _, err := gs.FS.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == gs.DefaultFlags.ConfigFilePath {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("couldn't access the config file %q: %w", path, err)
	}

	data, err := fsext.ReadFile(gs.FS, path)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't load the configuration from %q: %w", path, err)
	}
	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("couldn't parse the configuration from %q: %w", path, err)
	}
	return conf, nil
}

func readEnvConfig(envMap map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := envMap[key]
		return v, ok
	})
	return conf, err
}

// getConsolidatedConfig layers, in increasing priority, the defaults, the
// config file, the environment and the command line flags.
func getConsolidatedConfig(gs *state.GlobalState, cliConf Config) (Config, error) {
	fileConf, err := readDiskConfig(gs)
	if err != nil {
		return Config{}, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}
	envConf, err := readEnvConfig(gs.Env)
	if err != nil {
		return Config{}, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}

	conf := defaultConfig().Apply(fileConf).Apply(envConf).Apply(cliConf)
	if err := validateConfig(conf); err != nil {
		return Config{}, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}
	gs.Logger.WithFields(map[string]interface{}{
		"format":    conf.Format.String,
		"fastPath":  conf.FastPath.Bool,
		"comments":  conf.Comments.Bool,
		"sourceMap": conf.SourceMap.String,
	}).Debug("Consolidated config")
	return conf, nil
}

func validateConfig(conf Config) error {
	switch conf.Format.String {
	case formatJSON, formatYAML:
		return nil
	default:
		return errext.WithHint(
			fmt.Errorf("unsupported output format %q", conf.Format.String),
			"use either json or yaml",
		)
	}
}
