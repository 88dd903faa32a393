package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/cmd/state"
	"github.com/liuxd6825/elemx/errext"
	"github.com/liuxd6825/elemx/errext/exitcodes"
	"github.com/liuxd6825/elemx/ui/console"
)

type cmdParse struct {
	gs *state.GlobalState
}

func (c *cmdParse) run(cmd *cobra.Command, args []string) error {
	conf, err := getConsolidatedConfig(c.gs, getConfig(cmd.Flags()))
	if err != nil {
		return err
	}
	sp, err := newSourceParser(c.gs, conf)
	if err != nil {
		return err
	}

	printer := console.NewPrinter(c.gs.Stdout, c.gs.Flags.NoColor)
	for i, arg := range args {
		res, err := sp.parse(arg)
		if err != nil {
			return err
		}
		if res.err != nil {
			return errext.WithExitCodeIfNone(res.err, exitcodes.ParseFailed)
		}
		if !conf.Comments.Bool {
			res.program.Comments = nil
		}

		doc := map[string]interface{}{
			"file":    res.filename,
			"program": ast.Dump(res.program),
		}
		if conf.Format.String == formatYAML {
			if i > 0 {
				if err := printer.Printf("---\n"); err != nil {
					return err
				}
			}
			err = printer.PrintYAML(doc)
		} else {
			err = printer.PrintJSON(doc)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func getCmdParse(gs *state.GlobalState) *cobra.Command {
	c := &cmdParse{gs: gs}

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the syntax tree of sources",
		Long: `Parse each source and print its syntax tree.

A source is a file path, or "-" for stdin. Files ending in .gz, .zst or .br
are decompressed first.`,
		Example: fmt.Sprintf(`
  # Print the tree of a view as YAML
  %[1]s parse --format yaml page.elx

  # Keep the comments of a compressed view
  %[1]s parse --comments page.elx.gz`[1:], gs.BinaryName),
		Args: minArgsWithMsg(1, "at least one source file or - for stdin is required"),
		RunE: c.run,
	}
	parseCmd.Flags().SortFlags = false
	parseCmd.Flags().AddFlagSet(outputFlagSet())
	parseCmd.Flags().AddFlagSet(configFlagSet())
	return parseCmd
}
