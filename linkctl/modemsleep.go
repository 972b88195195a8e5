package linkctl

import (
	"fmt"
	"time"

	"github.com/MirkoCovizzi/atparser"
)

// SleepType mirrors lte_lc_modem_sleep_type.
type SleepType int

const (
	SleepPSM            SleepType = 1
	SleepRFInactivity   SleepType = 2
	SleepLimitedService SleepType = 3
	SleepFlightMode     SleepType = 4
	SleepProprietaryPSM SleepType = 7
)

// ModemSleep is the decoded form of a %XMODEMSLEEP notification,
// mirroring struct lte_lc_modem_sleep. Time is negative for an
// infinite sleep (the source's int64 -1 sentinel).
type ModemSleep struct {
	Type SleepType
	Time time.Duration
}

// FormatModemSleepEnable builds the AT%XMODEMSLEEP=1 command that
// subscribes to modem sleep notifications.
func FormatModemSleepEnable() string { return "AT%XMODEMSLEEP=1" }

// ParseModemSleep decodes a %XMODEMSLEEP notification's tokens.
func ParseModemSleep(tokens []atparser.Token) (*ModemSleep, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%XMODEMSLEEP" {
		return nil, fmt.Errorf("linkctl: not a %%XMODEMSLEEP notification")
	}
	typ, err := intField(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("linkctl: %%XMODEMSLEEP <type>: %w", err)
	}
	ms := &ModemSleep{Type: SleepType(typ), Time: -1}
	if len(tokens) > 2 && tokens[2].Type != atparser.Empty {
		ms64, err := atparser.Int64(tokens[2])
		if err != nil {
			return nil, fmt.Errorf("linkctl: %%XMODEMSLEEP <time>: %w", err)
		}
		if ms64 >= 0 {
			ms.Time = time.Duration(ms64) * time.Millisecond
		}
	}
	return ms, nil
}
