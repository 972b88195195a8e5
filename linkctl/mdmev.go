package linkctl

import (
	"fmt"

	"github.com/MirkoCovizzi/atparser"
)

// ModemEventType enumerates the %MDMEV notification payloads this
// repo recognizes.
type ModemEventType int

const (
	ModemEventSearchStatus1 ModemEventType = iota
	ModemEventSearchStatus2
	ModemEventResetLoop
	ModemEventBatteryLow
	ModemEventOverheated
	ModemEventNoIMEI
	ModemEventCELevel0
	ModemEventCELevel1
	ModemEventCELevel2
	ModemEventLightSearchDone
	ModemEventUnknown
)

var mdmevWire = map[string]ModemEventType{
	"SEARCH STATUS 1":   ModemEventSearchStatus1,
	"SEARCH STATUS 2":   ModemEventSearchStatus2,
	"RESET LOOP":        ModemEventResetLoop,
	"ME BATTERY LOW":    ModemEventBatteryLow,
	"ME OVERHEATED":     ModemEventOverheated,
	"NO IMEI":           ModemEventNoIMEI,
	"CE-LEVEL 0":        ModemEventCELevel0,
	"CE-LEVEL 1":        ModemEventCELevel1,
	"CE-LEVEL 2":        ModemEventCELevel2,
	"LIGHT SEARCH DONE": ModemEventLightSearchDone,
}

// FormatMdmevEnable/Disable build AT%MDMEV= subscribe commands.
func FormatMdmevEnable() string  { return "AT%MDMEV=1" }
func FormatMdmevDisable() string { return "AT%MDMEV=0" }

// ParseMdmev decodes a %MDMEV notification's tokens. The payload is
// free text (a STRING token, not an identifier-shaped NOTIF body), so
// it is matched against the known wire strings rather than parsed
// structurally.
func ParseMdmev(tokens []atparser.Token) (ModemEventType, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%MDMEV" {
		return 0, fmt.Errorf("linkctl: not a %%MDMEV notification")
	}
	payload := stringField(tokens[1])
	if t, ok := mdmevWire[payload]; ok {
		return t, nil
	}
	return ModemEventUnknown, nil
}
