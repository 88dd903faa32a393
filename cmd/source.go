package cmd

import (
	"github.com/go-sourcemap/sourcemap"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/cmd/state"
	"github.com/liuxd6825/elemx/errext"
	"github.com/liuxd6825/elemx/errext/exitcodes"
	"github.com/liuxd6825/elemx/loader"
	"github.com/liuxd6825/elemx/parser"
)

// parsedSource is the outcome of parsing one command line argument.
type parsedSource struct {
	filename string
	program  *ast.Program
	parser   *parser.Parser
	err      error
}

// sourceParser parses command line arguments with a consolidated Config.
type sourceParser struct {
	gs        *state.GlobalState
	conf      Config
	sourceMap *sourcemap.Consumer
}

func newSourceParser(gs *state.GlobalState, conf Config) (*sourceParser, error) {
	sp := &sourceParser{gs: gs, conf: conf}
	if !conf.SourceMap.Valid || conf.SourceMap.String == "" {
		return sp, nil
	}

	pwd, err := gs.Getwd()
	if err != nil {
		return nil, err
	}
	sm, err := loader.ReadSourceMap(gs.FS, pwd, conf.SourceMap.String)
	if err != nil {
		return nil, errext.WithExitCodeIfNone(err, exitcodes.SourceUnreadable)
	}
	sp.sourceMap = sm
	return sp, nil
}

// parse reads and parses arg. Only a read failure is returned as an error,
// syntax errors are kept on the result.
func (sp *sourceParser) parse(arg string) (*parsedSource, error) {
	pwd, err := sp.gs.Getwd()
	if err != nil {
		return nil, err
	}
	src, err := loader.ReadSource(sp.gs.Logger, arg, pwd, sp.gs.FS, sp.gs.Stdin)
	if err != nil {
		return nil, errext.WithExitCodeIfNone(err, exitcodes.SourceUnreadable)
	}

	opts := []parser.Option{
		parser.WithLogger(sp.gs.Logger),
		parser.WithFastPath(sp.conf.FastPath.Bool),
	}
	if sp.sourceMap != nil {
		opts = append(opts, parser.WithSourceMap(sp.sourceMap))
	}

	p := parser.New(src.Filename, string(src.Data), opts...)
	program, err := p.ParseProgram()
	logger := sp.gs.Logger.WithField("file", src.Filename)
	if err != nil {
		logger.WithError(err).Debug("Parse failed")
	} else {
		logger.WithField("elements", len(p.Elements())).Debug("Parsed")
	}
	return &parsedSource{
		filename: src.Filename,
		program:  program,
		parser:   p,
		err:      err,
	}, nil
}
