package linkctl

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/MirkoCovizzi/atparser"
)

// lineTokens parses one logical line through atparser.ParseLine,
// appending an OK response tail so ParseLine stops at a RESP token, as
// it does on a real modem response, without the caller having to spell
// it out in every test's input literal.
func lineTokens(t *testing.T, line string) []atparser.Token {
	t.Helper()
	var toks [24]atparser.Token
	n, _, err := atparser.ParseLine(toks[:], []byte(line+"OK\r\n"))
	require.NoError(t, err)
	return toks[:n]
}

func TestParseCEREGMinimal(t *testing.T) {
	evt, err := ParseCEREG(lineTokens(t, "+CEREG: 1\r\n"))
	require.NoError(t, err)
	if evt.Status != RegRegisteredHome {
		t.Fatalf("status = %v, want RegRegisteredHome", evt.Status)
	}
	if evt.HaveCell {
		t.Fatalf("HaveCell = true, want false")
	}
}

func TestParseCEREGWithCell(t *testing.T) {
	evt, err := ParseCEREG(lineTokens(t, `+CEREG: 5,"76C1","0102DA04",7`+"\r\n"))
	require.NoError(t, err)

	want := &RegistrationEvent{
		Status:   RegRegisteredRoaming,
		HaveCell: true,
		TAC:      "76C1",
		CellID:   "0102DA04",
		Mode:     LTEModeLTEM,
	}
	if diff := cmp.Diff(want, evt); diff != "" {
		t.Fatalf("ParseCEREG mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCEREGWithPSM(t *testing.T) {
	line := `+CEREG: 5,"76C1","0102DA04",7,,,"00100101","00100010"` + "\r\n"
	evt, err := ParseCEREG(lineTokens(t, line))
	require.NoError(t, err)

	require.True(t, evt.HavePSM)
	if evt.PSM.ActiveTime != 5*time.Minute {
		t.Fatalf("ActiveTime = %v, want 5m", evt.PSM.ActiveTime)
	}
	if evt.PSM.TAU != 2*time.Hour {
		t.Fatalf("TAU = %v, want 2h", evt.PSM.TAU)
	}
}
