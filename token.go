// Package atparser implements a zero-copy lexer and streaming parser for
// AT command-and-response lines as emitted by LTE modems (3GPP TS 27.007,
// plus vendor notifications prefixed by +, % or #).
//
// A Parser never allocates and never copies: every Token it emits borrows
// a slice of the caller's input. The caller decides how long that input
// must stay alive (at least until the last Token drawn from it has been
// consumed).
package atparser

import "errors"

// Sentinel errors returned by Parser, ParseLine and the token accessors.
// Compare with errors.Is; no other error values are ever returned.
var (
	// ErrInvalidArgument covers a wrong token type passed to an accessor,
	// or structural corruption of a hand-built Token.
	ErrInvalidArgument = errors.New("atparser: invalid argument")

	// ErrPermissionDenied is returned by Next/Seek on a zero-value Parser.
	ErrPermissionDenied = errors.New("atparser: parser not initialized")

	// ErrOutOfRange covers empty or oversized input to New, a numeric
	// value that overflows the requested width, and a backward Seek.
	ErrOutOfRange = errors.New("atparser: value out of range")

	// ErrNoMoreInput is returned by Next when the cursor has reached the
	// end of the input with no token left to read.
	ErrNoMoreInput = errors.New("atparser: no more input")

	// ErrBadMessage is returned when the lexer rejects the head of the
	// cursor, the per-line counters violate a well-formedness rule, or
	// the trailing-comma look-ahead finds a malformed line tail.
	ErrBadMessage = errors.New("atparser: malformed AT message")

	// ErrNoMemory is returned by CopyString when the destination buffer
	// is smaller than the payload plus its terminator.
	ErrNoMemory = errors.New("atparser: destination buffer too small")

	// ErrTryAgain is returned by ParseLine when a new notification line
	// began before the output array was exhausted; the caller resumes
	// from the cursor ParseLine returns alongside this error.
	ErrTryAgain = errors.New("atparser: new notification line started; resume from the returned cursor")
)

// Type identifies the lexical category of a Token.
type Type uint8

const (
	Invalid Type = iota
	CmdSet
	CmdRead
	CmdTest
	Notif
	Int
	QuotedString
	Array
	String
	Empty
	Resp
)

var typeNames = [...]string{
	Invalid:      "INVALID",
	CmdSet:       "CMD_SET",
	CmdRead:      "CMD_READ",
	CmdTest:      "CMD_TEST",
	Notif:        "NOTIF",
	Int:          "INT",
	QuotedString: "QUOTED_STRING",
	Array:        "ARRAY",
	String:       "STRING",
	Empty:        "EMPTY",
	Resp:         "RESP",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// Variant records whether a subparameter token consumed a trailing comma.
// It has no meaning outside of subparameter tokens (Int, QuotedString,
// Array, Empty).
type Variant uint8

const (
	NoTrailingComma Variant = iota
	HasTrailingComma
)

func (v Variant) String() string {
	if v == HasTrailingComma {
		return "HAS_TRAILING_COMMA"
	}
	return "NO_TRAILING_COMMA"
}

// Token is a lightweight, borrowed descriptor of one lexical unit. Start
// points at the payload's first byte and extends to the end of the
// buffer the Parser was built from; Length bounds the payload within it.
// This mirrors a C pointer-plus-length pair while staying zero-copy and
// bounds-checked under Go slice semantics.
type Token struct {
	Start   []byte
	Length  uint16
	Type    Type
	Variant Variant
}

// Payload returns the token's value bytes. It is nil for Empty and for
// Invalid tokens.
func (t Token) Payload() []byte {
	if t.Length == 0 {
		return nil
	}
	return t.Start[:t.Length]
}

// Valid reports whether t satisfies the structural validity predicate for
// its type: non-empty payload for everything but Empty/QuotedString, a
// length that fits within the borrowed Start slice, and a recognized
// Type. Accessors recheck this even for tokens the caller assembled by
// hand, since Token carries no other integrity guarantee.
func (t Token) Valid() bool {
	switch t.Type {
	case CmdSet, CmdRead, CmdTest, Notif, Int, Array, String, Resp:
		return len(t.Start) != 0 && t.Length != 0 && int(t.Length) <= len(t.Start)
	case QuotedString:
		return t.Length == 0 || int(t.Length) <= len(t.Start)
	case Empty:
		return t.Length == 0
	default:
		return false
	}
}

// isSubparam reports whether t occupies a comma-delimited subparameter
// slot: Int, QuotedString, Array or Empty.
func isSubparam(t Token) bool {
	switch t.Type {
	case Int, QuotedString, Array, Empty:
		return true
	default:
		return false
	}
}
