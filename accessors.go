package atparser

import (
	"errors"
	"math"
	"strconv"
)

// int64Value parses tok's payload as a base-10 signed integer. It
// requires tok.Type == Int and structural validity; a parse overflow
// against the 64-bit intermediary is reported as ErrOutOfRange.
func int64Value(tok Token) (int64, error) {
	if tok.Type != Int || !tok.Valid() {
		return 0, ErrInvalidArgument
	}
	v, err := strconv.ParseInt(string(tok.Payload()), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrInvalidArgument
	}
	return v, nil
}

// Int16 extracts tok's payload as a 16-bit signed integer.
func Int16(tok Token) (int16, error) {
	v, err := int64Value(tok)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, ErrOutOfRange
	}
	return int16(v), nil
}

// Uint16 extracts tok's payload as a 16-bit unsigned integer.
func Uint16(tok Token) (uint16, error) {
	v, err := int64Value(tok)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > math.MaxUint16 {
		return 0, ErrOutOfRange
	}
	return uint16(v), nil
}

// Int32 extracts tok's payload as a 32-bit signed integer.
func Int32(tok Token) (int32, error) {
	v, err := int64Value(tok)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return int32(v), nil
}

// Uint32 extracts tok's payload as a 32-bit unsigned integer.
func Uint32(tok Token) (uint32, error) {
	v, err := int64Value(tok)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > math.MaxUint32 {
		return 0, ErrOutOfRange
	}
	return uint32(v), nil
}

// Int64 extracts tok's payload as a 64-bit signed integer.
func Int64(tok Token) (int64, error) {
	return int64Value(tok)
}

// CopyString copies tok's payload into dst and appends a NUL terminator,
// returning the copied length (excluding the terminator). Permitted for
// every token type except Int, Empty and Invalid. dst must have capacity
// for len(payload)+1 bytes, or ErrNoMemory is returned.
func CopyString(tok Token, dst []byte) (int, error) {
	switch tok.Type {
	case Int, Empty, Invalid:
		return 0, ErrInvalidArgument
	}
	if !tok.Valid() {
		return 0, ErrInvalidArgument
	}
	payload := tok.Payload()
	if len(dst) < len(payload)+1 {
		return 0, ErrNoMemory
	}
	n := copy(dst, payload)
	dst[n] = 0
	return n, nil
}

// ValidCount counts the tokens in toks that satisfy Token.Valid.
func ValidCount(toks []Token) int {
	n := 0
	for _, t := range toks {
		if t.Valid() {
			n++
		}
	}
	return n
}

// CommandType runs the lexer once over the head of input and reports
// CmdTest, CmdRead or CmdSet if that is what it found; otherwise it
// reports Invalid, regardless of what the lexer actually matched.
func CommandType(input []byte) Type {
	if len(input) == 0 {
		return Invalid
	}
	tok, _ := match(input)
	switch tok.Type {
	case CmdTest, CmdRead, CmdSet:
		return tok.Type
	default:
		return Invalid
	}
}
