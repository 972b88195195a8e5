package linkctl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MirkoCovizzi/atparser"
)

// SearchPatternType distinguishes the two pattern shapes
// %PERIODICSEARCHCONF accepts, grounded on
// lte_lc_periodic_search_pattern_type.
type SearchPatternType int

const (
	PatternRange SearchPatternType = iota
	PatternTable
)

// RangePattern is lte_lc_periodic_search_range_cfg: a linear sleep-time
// ramp between InitialSleep and FinalSleep.
type RangePattern struct {
	InitialSleep     int
	FinalSleep       int
	TimeToFinalSleep int // minutes, -1 if unused
	PatternEndPoint  int // minutes
}

// TablePattern is lte_lc_periodic_search_table_cfg: up to five
// explicit sleep-time values. Unused trailing values are -1.
type TablePattern struct {
	Values [5]int
}

// SearchPattern is a tagged union of RangePattern/TablePattern,
// matching lte_lc_periodic_search_pattern.
type SearchPattern struct {
	Type  SearchPatternType
	Range RangePattern
	Table TablePattern
}

// PeriodicSearchConfig is lte_lc_periodic_search_cfg.
type PeriodicSearchConfig struct {
	Loop             bool
	ReturnToPattern  uint16
	BandOptimization uint16
	Patterns         []SearchPattern
}

func formatPattern(p SearchPattern) string {
	switch p.Type {
	case PatternRange:
		r := p.Range
		return fmt.Sprintf("range,%d,%d,%d,%d", r.InitialSleep, r.FinalSleep, r.TimeToFinalSleep, r.PatternEndPoint)
	case PatternTable:
		v := p.Table.Values
		return fmt.Sprintf("table,%d,%d,%d,%d,%d", v[0], v[1], v[2], v[3], v[4])
	default:
		return ""
	}
}

func parsePattern(s string) (SearchPattern, error) {
	fields := strings.Split(s, ",")
	if len(fields) == 0 {
		return SearchPattern{}, fmt.Errorf("linkctl: empty search pattern")
	}
	switch fields[0] {
	case "range":
		if len(fields) != 5 {
			return SearchPattern{}, fmt.Errorf("linkctl: malformed range pattern %q", s)
		}
		ints, err := parseInts(fields[1:])
		if err != nil {
			return SearchPattern{}, err
		}
		return SearchPattern{Type: PatternRange, Range: RangePattern{
			InitialSleep: ints[0], FinalSleep: ints[1], TimeToFinalSleep: ints[2], PatternEndPoint: ints[3],
		}}, nil
	case "table":
		if len(fields) != 6 {
			return SearchPattern{}, fmt.Errorf("linkctl: malformed table pattern %q", s)
		}
		ints, err := parseInts(fields[1:])
		if err != nil {
			return SearchPattern{}, err
		}
		var t TablePattern
		copy(t.Values[:], ints)
		return SearchPattern{Type: PatternTable, Table: t}, nil
	default:
		return SearchPattern{}, fmt.Errorf("linkctl: unknown search pattern kind %q", fields[0])
	}
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("linkctl: invalid integer field %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// FormatPeriodicSearchSet builds the AT%PERIODICSEARCHCONF=0,... set
// command for cfg.
func FormatPeriodicSearchSet(cfg PeriodicSearchConfig) (string, error) {
	if len(cfg.Patterns) < 1 || len(cfg.Patterns) > 4 {
		return "", fmt.Errorf("linkctl: periodic search needs 1-4 patterns, got %d", len(cfg.Patterns))
	}
	loop := 0
	if cfg.Loop {
		loop = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "AT%%PERIODICSEARCHCONF=0,%d,%d,%d", loop, cfg.ReturnToPattern, cfg.BandOptimization)
	for _, p := range cfg.Patterns {
		fmt.Fprintf(&b, `,"%s"`, formatPattern(p))
	}
	return b.String(), nil
}

// FormatPeriodicSearchClear builds the AT%PERIODICSEARCHCONF=2 command.
func FormatPeriodicSearchClear() string { return "AT%PERIODICSEARCHCONF=2" }

// FormatPeriodicSearchRequest builds the AT%PERIODICSEARCHCONF=3
// command requesting an extra search.
func FormatPeriodicSearchRequest() string { return "AT%PERIODICSEARCHCONF=3" }

// ParsePeriodicSearchConf decodes a %PERIODICSEARCHCONF read-back
// notification's tokens (a NOTIF token followed by loop, return-to,
// band-optimization INT tokens and one QUOTED_STRING token per
// pattern).
func ParsePeriodicSearchConf(tokens []atparser.Token) (*PeriodicSearchConfig, error) {
	if len(tokens) == 0 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%PERIODICSEARCHCONF" {
		return nil, fmt.Errorf("linkctl: not a %%PERIODICSEARCHCONF notification")
	}
	sub := tokens[1:]
	if len(sub) < 4 {
		return nil, fmt.Errorf("linkctl: %%PERIODICSEARCHCONF notification missing fields")
	}
	loop, err := intField(sub[0])
	if err != nil {
		return nil, err
	}
	retTo, err := intField(sub[1])
	if err != nil {
		return nil, err
	}
	bandOpt, err := intField(sub[2])
	if err != nil {
		return nil, err
	}
	cfg := &PeriodicSearchConfig{
		Loop:             loop != 0,
		ReturnToPattern:  uint16(retTo),
		BandOptimization: uint16(bandOpt),
	}
	for _, tok := range sub[3:] {
		if tok.Type != atparser.QuotedString {
			return nil, fmt.Errorf("linkctl: expected quoted pattern string, got %s", tok.Type)
		}
		p, err := parsePattern(string(tok.Payload()))
		if err != nil {
			return nil, err
		}
		cfg.Patterns = append(cfg.Patterns, p)
	}
	return cfg, nil
}
