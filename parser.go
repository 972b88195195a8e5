package atparser

import "math"

// maxInputLen is the largest input a Parser accepts in a single call, per
// the dialect's own line-length ceiling.
const maxInputLen = math.MaxUint16

// lineCounters tracks, per logical line, how many tokens of each bucket
// have been seen. Once a second NOTIF has been counted, the next token
// resets them (see updateCounters), which is how the parser recognizes
// the start of a new line without relying on "\r\n" alone.
type lineCounters struct {
	cmd      int
	notif    int
	subparam int
	str      int
	end      int
}

// Parser drives the lexer across an input buffer, maintaining the
// per-line counters and look-ahead state needed to enforce
// well-formedness across tokens. A Parser is owned by exactly one
// caller, is never concurrent internally, and performs no I/O: every
// Token it emits borrows a slice of the input it was built from.
type Parser struct {
	input       []byte
	cursor      []byte
	count       int
	counters    lineCounters
	prevToken   Token
	nextIsEmpty bool
	initialized bool
}

// New creates a Parser over input. It fails if input is empty or longer
// than 65535 bytes.
func New(input []byte) (*Parser, error) {
	if len(input) == 0 || len(input) > maxInputLen {
		return nil, ErrOutOfRange
	}
	return &Parser{input: input, cursor: input, initialized: true}, nil
}

// Next emits the next token, or an error. On any error the parser's
// state is left exactly as it was before the call: the previously
// emitted token remains the last one observable.
func (p *Parser) Next() (Token, error) {
	if !p.initialized {
		return Token{}, ErrPermissionDenied
	}

	var tok Token
	var remainder []byte

	switch {
	case p.nextIsEmpty:
		tok = Token{Start: p.cursor, Length: 0, Type: Empty, Variant: NoTrailingComma}
		remainder = p.cursor

	case len(p.cursor) > 0 && p.cursor[0] == ',':
		consumed := 1
		if consumed < len(p.cursor) && p.cursor[consumed] == ' ' {
			consumed++
		}
		tok = Token{Start: p.cursor, Length: 0, Type: Empty, Variant: HasTrailingComma}
		remainder = p.cursor[consumed:]

	default:
		if len(p.cursor) == 0 {
			return Token{}, ErrNoMoreInput
		}
		tok, remainder = match(p.cursor)
		if tok.Type == Invalid {
			// match reaching Invalid with an empty remainder means the
			// CRLF-skip loop in match consumed a bare trailing "\r\n"
			// looking for a RESP tail and found nothing left behind it:
			// that is exhaustion, not a malformed head.
			if len(remainder) == 0 {
				return Token{}, ErrNoMoreInput
			}
			return Token{}, ErrBadMessage
		}
		if tok.Type == Int && tok.Variant == NoTrailingComma && p.count == 0 {
			tok.Type = String
		}
	}

	savedCounters := p.counters
	p.updateCounters(tok)
	if !p.validLine() {
		p.counters = savedCounters
		return Token{}, ErrBadMessage
	}

	nextIsEmpty := false
	if isSubparam(tok) {
		lookaheadCRLF := len(remainder) >= 2 && remainder[0] == '\r' && remainder[1] == '\n'
		if tok.Variant == HasTrailingComma {
			if len(remainder) == 0 || lookaheadCRLF {
				nextIsEmpty = true
			}
		} else if len(remainder) > 0 && !lookaheadCRLF {
			p.counters = savedCounters
			return Token{}, ErrBadMessage
		}
	}

	p.nextIsEmpty = nextIsEmpty
	p.count++
	p.cursor = remainder
	p.prevToken = tok
	return tok, nil
}

// Seek advances the parser until the token at zero-based index has been
// emitted (index+1 tokens in all), and returns that token. It never seeks backward:
// if index has already been passed, it returns ErrOutOfRange.
func (p *Parser) Seek(index int) (Token, error) {
	if index+1 <= p.count {
		return Token{}, ErrOutOfRange
	}
	var tok Token
	for {
		t, err := p.Next()
		if err != nil {
			return Token{}, err
		}
		tok = t
		if index+1 <= p.count {
			return tok, nil
		}
	}
}

// updateCounters folds tok into the per-line counters, resetting them
// first if the previous token already pushed notif past the line's own
// boundary condition.
func (p *Parser) updateCounters(tok Token) {
	if p.counters.notif == 2 {
		p.counters = lineCounters{notif: 1}
	}
	switch tok.Type {
	case CmdTest, CmdRead, CmdSet:
		p.counters.cmd++
	case Notif:
		p.counters.notif++
	case String:
		p.counters.str++
	case Resp:
		p.counters.end++
	default:
		p.counters.subparam++
	}
}

// validLine enforces the three well-formedness rules that hold across
// every token seen since the last counter reset.
func (p *Parser) validLine() bool {
	c := p.counters
	if c.cmd > 1 {
		return false
	}
	if c.subparam >= 1 && c.cmd < 1 && c.notif < 1 {
		return false
	}
	if c.notif > 1 && c.subparam < 1 {
		return false
	}
	return true
}
