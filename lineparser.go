package atparser

// ParseLine is a one-shot convenience wrapper around Parser: it builds a
// fresh Parser over input, fills tokens in order, and stops at the first
// of three boundaries: the output array is full, a RESP tail is seen, or
// a new notification line begins.
//
// It returns the number of tokens written, the cursor the caller should
// resume from on the next call, and an error:
//
//   - nil: tokens[:n] holds a complete line (possibly terminated by a
//     RESP token, in which case next is empty).
//   - ErrTryAgain: the line continues; call ParseLine again with next.
//   - any other error: propagated from the underlying Parser.
func ParseLine(tokens []Token, input []byte) (n int, next []byte, err error) {
	for i := range tokens {
		tokens[i] = Token{}
	}

	p, err := New(input)
	if err != nil {
		return 0, nil, err
	}

	for n < len(tokens) {
		tok, terr := p.Next()
		if terr == ErrNoMoreInput {
			return n, next, nil
		}
		if terr != nil {
			return n, next, terr
		}
		if tok.Type == Notif && p.counters.notif == 2 {
			return n, next, ErrTryAgain
		}
		if tok.Type == Resp {
			return n, nil, nil
		}
		next = p.cursor
		tokens[n] = tok
		n++
	}
	return n, next, nil
}
