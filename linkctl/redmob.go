package linkctl

import (
	"fmt"

	"github.com/MirkoCovizzi/atparser"
)

// ReducedMobilityMode mirrors lte_lc_reduced_mobility_mode.
type ReducedMobilityMode int

const (
	ReducedMobilityDefault  ReducedMobilityMode = 0
	ReducedMobilityNordic   ReducedMobilityMode = 1
	ReducedMobilityDisabled ReducedMobilityMode = 2
)

// FormatRedMobGet builds the AT%REDMOB? read command.
func FormatRedMobGet() string { return "AT%REDMOB?" }

// FormatRedMobSet builds the AT%REDMOB= command requesting mode.
func FormatRedMobSet(mode ReducedMobilityMode) string {
	return fmt.Sprintf("AT%%REDMOB=%d", mode)
}

// ParseRedMobResponse decodes the %REDMOB read response's tokens.
func ParseRedMobResponse(tokens []atparser.Token) (ReducedMobilityMode, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%REDMOB" {
		return 0, fmt.Errorf("linkctl: not a %%REDMOB response")
	}
	v, err := intField(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("linkctl: %%REDMOB mode: %w", err)
	}
	return ReducedMobilityMode(v), nil
}
