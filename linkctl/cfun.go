package linkctl

import (
	"fmt"

	"github.com/MirkoCovizzi/atparser"
)

// FunctionalMode mirrors lte_lc_func_mode (3GPP 27.007 <fun> plus
// Nordic vendor extensions).
type FunctionalMode int

const (
	FuncModePowerOff      FunctionalMode = 0
	FuncModeNormal        FunctionalMode = 1
	FuncModeFlightMode    FunctionalMode = 4
	FuncModeDeactivateLTE FunctionalMode = 20
	FuncModeActivateLTE   FunctionalMode = 21
	FuncModeOffline       FunctionalMode = 44
)

// FormatCfunGet builds the AT+CFUN? read command.
func FormatCfunGet() string { return "AT+CFUN?" }

// FormatCfunSet builds the AT+CFUN= command requesting mode.
func FormatCfunSet(mode FunctionalMode) string { return fmt.Sprintf("AT+CFUN=%d", mode) }

// ParseCfunResponse decodes the +CFUN read response's tokens.
func ParseCfunResponse(tokens []atparser.Token) (FunctionalMode, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "+CFUN" {
		return 0, fmt.Errorf("linkctl: not a +CFUN response")
	}
	v, err := intField(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("linkctl: +CFUN mode: %w", err)
	}
	return FunctionalMode(v), nil
}
