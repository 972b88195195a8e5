package linkctl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParsePeriodicSearchRoundTrip(t *testing.T) {
	cfg := PeriodicSearchConfig{
		Loop:             true,
		ReturnToPattern:  1,
		BandOptimization: 2,
		Patterns: []SearchPattern{
			{Type: PatternRange, Range: RangePattern{InitialSleep: 30, FinalSleep: 600, TimeToFinalSleep: -1, PatternEndPoint: 40}},
			{Type: PatternTable, Table: TablePattern{Values: [5]int{60, -1, -1, -1, -1}}},
		},
	}

	cmd, err := FormatPeriodicSearchSet(cfg)
	require.NoError(t, err)
	require.Contains(t, cmd, `"range,30,600,-1,40"`)
	require.Contains(t, cmd, `"table,60,-1,-1,-1,-1"`)

	// Build the read-back notification line from the same patterns to
	// verify ParsePeriodicSearchConf recovers the identical config.
	line := `%PERIODICSEARCHCONF: 1,1,2,"range,30,600,-1,40","table,60,-1,-1,-1,-1"` + "\r\n"
	got, err := ParsePeriodicSearchConf(lineTokens(t, line))
	require.NoError(t, err)

	if diff := cmp.Diff(&cfg, got); diff != "" {
		t.Fatalf("ParsePeriodicSearchConf mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPeriodicSearchSetRejectsTooManyPatterns(t *testing.T) {
	cfg := PeriodicSearchConfig{Patterns: make([]SearchPattern, 5)}
	_, err := FormatPeriodicSearchSet(cfg)
	require.Error(t, err)
}
