package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/liuxd6825/elemx/cmd/state"
	"github.com/liuxd6825/elemx/errext"
	"github.com/liuxd6825/elemx/errext/exitcodes"
	"github.com/liuxd6825/elemx/ui/console"
)

type cmdCheck struct {
	gs *state.GlobalState
}

func (c *cmdCheck) run(cmd *cobra.Command, args []string) error {
	conf, err := getConsolidatedConfig(c.gs, getConfig(cmd.Flags()))
	if err != nil {
		return err
	}
	sp, err := newSourceParser(c.gs, conf)
	if err != nil {
		return err
	}

	printer := console.NewPrinter(c.gs.Stdout, c.gs.Flags.NoColor)
	failed := 0
	for _, arg := range args {
		res, err := sp.parse(arg)
		if err != nil {
			return err
		}
		ok, err := c.report(printer, res)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}

	if err := printer.Summary(len(args), failed); err != nil {
		return err
	}
	if failed > 0 {
		return errext.WithExitCodeIfNone(errAlreadyReported, exitcodes.ParseFailed)
	}
	return nil
}

// report prints the diagnostics of res and tells whether it parsed cleanly.
func (c *cmdCheck) report(printer *console.Printer, res *parsedSource) (bool, error) {
	diagnostics := res.parser.Diagnostics()
	for _, d := range diagnostics {
		if err := printer.Diagnostic(d.Position.Filename, d.Position.Line, d.Position.Column, d.Message); err != nil {
			return false, err
		}
	}
	if res.err == nil {
		return len(diagnostics) == 0, nil
	}
	if len(diagnostics) > 0 {
		return false, nil
	}

	var lerr errext.HasLocation
	if errors.As(res.err, &lerr) {
		filename, line, column := lerr.Location()
		return false, printer.Diagnostic(filename, line, column, res.err.Error())
	}
	return false, printer.Printf("%s: %s\n", res.filename, res.err)
}

func getCmdCheck(gs *state.GlobalState) *cobra.Command {
	c := &cmdCheck{gs: gs}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report syntax errors in sources",
		Long: `Parse each source and print every syntax error as a file:line:col
line, followed by a summary. The command fails if any source has errors.`,
		Args: minArgsWithMsg(1, "at least one source file or - for stdin is required"),
		RunE: c.run,
	}
	checkCmd.Flags().SortFlags = false
	checkCmd.Flags().AddFlagSet(configFlagSet())
	return checkCmd
}
