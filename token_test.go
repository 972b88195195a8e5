package atparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "NOTIF", Notif.String())
	assert.Equal(t, "CMD_SET", CmdSet.String())
	assert.Equal(t, "UNKNOWN", Type(255).String())
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "HAS_TRAILING_COMMA", HasTrailingComma.String())
	assert.Equal(t, "NO_TRAILING_COMMA", NoTrailingComma.String())
}

func TestTokenPayload(t *testing.T) {
	buf := []byte("123,rest")
	tok := Token{Start: buf, Length: 3, Type: Int}
	assert.Equal(t, "123", string(tok.Payload()))

	empty := Token{Type: Empty}
	assert.Nil(t, empty.Payload())
}

func TestTokenValid(t *testing.T) {
	buf := []byte("1")
	assert.True(t, Token{Start: buf, Length: 1, Type: Int}.Valid())
	assert.False(t, Token{Start: buf, Length: 0, Type: Int}.Valid())
	assert.True(t, Token{Type: Empty}.Valid())
	assert.False(t, Token{Type: Empty, Length: 1}.Valid())
	assert.True(t, Token{Type: QuotedString}.Valid())
	assert.False(t, Token{Type: Invalid}.Valid())
}

func TestIsSubparam(t *testing.T) {
	assert.True(t, isSubparam(Token{Type: Int}))
	assert.True(t, isSubparam(Token{Type: Empty}))
	assert.False(t, isSubparam(Token{Type: Notif}))
	assert.False(t, isSubparam(Token{Type: Resp}))
}
