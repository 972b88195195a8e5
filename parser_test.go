package atparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectNext(t *testing.T, p *Parser) ([]Token, error) {
	t.Helper()
	var toks []Token
	for {
		tok, err := p.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestParserS1(t *testing.T) {
	p, err := New([]byte("+CEREG: 2,\"76C1\",\"0102DA04\", 7\r\nOK\r\n"))
	require.NoError(t, err)

	toks, err := collectNext(t, p)
	require.ErrorIs(t, err, ErrNoMoreInput)
	require.Len(t, toks, 6)

	assert.Equal(t, Notif, toks[0].Type)
	assert.Equal(t, "+CEREG", string(toks[0].Payload()))
	assert.Equal(t, Int, toks[1].Type)
	assert.Equal(t, "2", string(toks[1].Payload()))
	assert.Equal(t, QuotedString, toks[2].Type)
	assert.Equal(t, "76C1", string(toks[2].Payload()))
	assert.Equal(t, QuotedString, toks[3].Type)
	assert.Equal(t, "0102DA04", string(toks[3].Payload()))
	assert.Equal(t, Int, toks[4].Type)
	assert.Equal(t, "7", string(toks[4].Payload()))
	assert.Equal(t, Resp, toks[5].Type)
}

func TestParserS2(t *testing.T) {
	p, err := New([]byte("+CPSMS: 1,,,\"10101111\",\"01101100\"\r\n"))
	require.NoError(t, err)

	toks, err := collectNext(t, p)
	require.ErrorIs(t, err, ErrNoMoreInput)
	require.Len(t, toks, 6)

	wantTypes := []Type{Notif, Int, Empty, Empty, QuotedString, QuotedString}
	for i, w := range wantTypes {
		assert.Equalf(t, w, toks[i].Type, "token %d", i)
	}
	assert.Equal(t, "1", string(toks[1].Payload()))
	assert.Equal(t, "10101111", string(toks[4].Payload()))
	assert.Equal(t, "01101100", string(toks[5].Payload()))
}

func TestParserBareTrailingCRLFIsNoMoreInput(t *testing.T) {
	p, err := New([]byte("+CEREG: 1\r\n"))
	require.NoError(t, err)

	tok1, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, Notif, tok1.Type)

	tok2, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, Int, tok2.Type)

	_, err = p.Next()
	require.ErrorIs(t, err, ErrNoMoreInput)
}

func TestParserS3LeadingStringNotRetyped(t *testing.T) {
	p, err := New([]byte("mfw_nrf9160_0.7.0-23.prealpha\r\n"))
	require.NoError(t, err)

	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, String, tok.Type)
	assert.Equal(t, "mfw_nrf9160_0.7.0-23.prealpha", string(tok.Payload()))
}

func TestParserS5BadTail(t *testing.T) {
	p, err := New([]byte(`+NOTIF: 1,2,"TEST"9,...` + "\r\nOK\r\n"))
	require.NoError(t, err)

	tok1, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, Notif, tok1.Type)

	tok2, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, Int, tok2.Type)
	assert.Equal(t, "1", string(tok2.Payload()))

	tok3, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, Int, tok3.Type)
	assert.Equal(t, "2", string(tok3.Payload()))

	_, err = p.Next()
	require.ErrorIs(t, err, ErrBadMessage)
}

func TestParserS6TwoCommandsOneLine(t *testing.T) {
	p, err := New([]byte("AT+TEST=AT+TEST?\r\nOK\r\n"))
	require.NoError(t, err)

	tok1, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, CmdSet, tok1.Type)

	_, err = p.Next()
	require.ErrorIs(t, err, ErrBadMessage)
}

func TestParserSeekRejectsBackward(t *testing.T) {
	p, err := New([]byte("+CEREG: 2,\"76C1\"\r\nOK\r\n"))
	require.NoError(t, err)

	_, err = p.Seek(2)
	require.NoError(t, err)

	_, err = p.Seek(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewRejectsEmptyAndOversizedInput(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrOutOfRange)

	huge := make([]byte, maxInputLen+1)
	_, err = New(huge)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
