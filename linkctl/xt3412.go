package linkctl

import (
	"fmt"
	"time"

	"github.com/MirkoCovizzi/atparser"
)

// FormatXT3412Enable builds the AT%XT3412= command that subscribes to
// T3412 (periodic TAU) pre-warning notifications, firing when less
// than threshold remains before the next TAU.
func FormatXT3412Enable(threshold time.Duration) string {
	return fmt.Sprintf("AT%%XT3412=1,%d", threshold.Milliseconds())
}

// FormatXT3412Disable builds the AT%XT3412=0 command.
func FormatXT3412Disable() string { return "AT%XT3412=0" }

// ParseXT3412 decodes a %XT3412 notification's remaining-time field
// into a Duration.
func ParseXT3412(tokens []atparser.Token) (time.Duration, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%XT3412" {
		return 0, fmt.Errorf("linkctl: not a %%XT3412 notification")
	}
	ms, err := atparser.Int64(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("linkctl: %%XT3412 remaining time: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
