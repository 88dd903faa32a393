// Package element parses element literals embedded in expressions:
//
//	name { children }
//	ns/name(attr: value, flag, ...spread) { "text" nested { } {expr} {...items} }
//	@{ children }
//
// It drives a Host parser and decides, with a rollback-safe trial parse,
// whether a name at an atomic-expression position opens an element or is an
// ordinary expression.
package element

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Parser is the element grammar bound to one host.
type Parser struct {
	host     Host
	logger   logrus.FieldLogger
	fastPath bool
	trials   map[trialKey]*trialResult
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for trace output of the disambiguator.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithFastPath toggles the single-character pre-filter that skips the trial
// parse for names that cannot open an element.
func WithFastPath(enabled bool) Option {
	return func(p *Parser) {
		p.fastPath = enabled
	}
}

// New returns a Parser driving host.
func New(host Host, opts ...Option) *Parser {
	p := &Parser{
		host:     host,
		fastPath: true,
		trials:   make(map[trialKey]*trialResult),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		p.logger = l
	}
	return p
}

// nextInBody advances and lexes the following token under element-body
// rules.
func (p *Parser) nextInBody() {
	p.host.Next()
	p.host.RescanInBody()
}
