package atparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineS4MultilineTryAgain(t *testing.T) {
	input := []byte("+CGEQOSRDP: 0,0,,\r\n+CGEQOSRDP: 1,2,,\r\n+CGEQOSRDP: 2,4,,,1,65280000\r\nOK\r\n")

	var toks [8]Token

	n, next, err := ParseLine(toks[:], input)
	require.ErrorIs(t, err, ErrTryAgain)
	require.Equal(t, 5, n)
	wantTypes := []Type{Notif, Int, Int, Empty, Empty}
	for i, w := range wantTypes {
		assert.Equalf(t, w, toks[i].Type, "token %d", i)
	}

	n, next, err = ParseLine(toks[:], next)
	require.ErrorIs(t, err, ErrTryAgain)
	require.Equal(t, 5, n)
	for i, w := range wantTypes {
		assert.Equalf(t, w, toks[i].Type, "token %d", i)
	}

	n, _, err = ParseLine(toks[:], next)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	wantFinal := []Type{Notif, Int, Int, Empty, Empty, Int, Int}
	for i, w := range wantFinal {
		assert.Equalf(t, w, toks[i].Type, "token %d", i)
	}
}

func TestParseLineS1StopsAtResp(t *testing.T) {
	input := []byte("+CEREG: 2,\"76C1\",\"0102DA04\", 7\r\nOK\r\n")
	var toks [8]Token

	n, next, err := ParseLine(toks[:], input)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 5, n)
	assert.Equal(t, Notif, toks[0].Type)
}

func TestParseLineOutputArrayFull(t *testing.T) {
	input := []byte("+CEREG: 2,\"76C1\",\"0102DA04\", 7\r\nOK\r\n")
	var toks [2]Token

	n, next, err := ParseLine(toks[:], input)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.NotEmpty(t, next)
}

func TestParseLineZeroesOutputOnReuse(t *testing.T) {
	toks := [4]Token{{Type: Int}, {Type: Int}, {Type: Int}, {Type: Int}}
	_, _, err := ParseLine(toks[:], []byte("+CEREG: 1\r\nOK\r\n"))
	require.NoError(t, err)
	assert.Equal(t, Token{}, toks[2])
}
