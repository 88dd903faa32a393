package element

import (
	"github.com/dop251/goja/file"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// trialKey identifies a trial by where it starts. The literal tells apart
// the code and body lexings of the same position (`a` versus `a-b`); every
// later token is lexed by the trial itself.
type trialKey struct {
	idx     file.Idx
	literal string
}

// trialResult is the outcome of one trial parse. On success it keeps the
// opening tag and the host state right after it.
type trialResult struct {
	opening ast.OpeningTag
	after   State
	err     error
}

// IsElementStart reports whether an element literal starts at the current
// token. The host state is identical before and after the call, whatever the
// answer: the opening tag is trial-parsed in lookahead mode against a
// snapshot that is always restored.
func (p *Parser) IsElementStart() bool {
	tkn := p.host.Token()
	if tkn != token.AT {
		if !token.IsId(tkn) {
			return false
		}
		if p.fastPath && !mayFollowName(p.host.PeekChar()) {
			return false
		}
	}
	return p.trial().err == nil
}

// trial parses the opening tag at the current token speculatively. Outcomes
// are remembered per position, so an element nested in an attribute value is
// tried once however many enclosing tags are tried around it.
func (p *Parser) trial() *trialResult {
	key := p.trialKey()
	if res, ok := p.trials[key]; ok {
		return res
	}

	name := p.host.Literal()
	state := p.host.Snapshot()
	p.host.SetLookahead(true)

	res := &trialResult{}
	if res.opening, res.err = p.parseOpeningTag(); res.err != nil {
		res.err = &disambiguationFailure{name: name, cause: res.err}
		p.logger.WithError(res.err).Trace("Element trial parse rejected")
	} else {
		res.after = p.host.Snapshot()
	}
	p.host.Restore(state)

	p.trials[key] = res
	return res
}

func (p *Parser) trialKey() trialKey {
	return trialKey{idx: p.host.Idx(), literal: p.host.Literal()}
}

// openingTag parses the opening tag of an element. While the host is
// speculating, a tag that already passed its trial is replayed instead of
// parsed again.
func (p *Parser) openingTag() (ast.OpeningTag, error) {
	if p.host.Lookahead() {
		if res, ok := p.trials[p.trialKey()]; ok && res.err == nil {
			p.host.Restore(res.after)
			return res.opening, nil
		}
	}
	return p.parseOpeningTag()
}

// mayFollowName reports whether c can follow the first name of an opening
// tag: a body, an attribute list, a member chain or a namespace separator.
func mayFollowName(c rune) bool {
	switch c {
	case '{', '(', '.', '/':
		return true
	}
	return false
}
