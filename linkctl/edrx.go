package linkctl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MirkoCovizzi/atparser"
)

// edrxValueTable is the E-UTRAN eDRX cycle length table (3GPP TS
// 24.008 Table 10.5.5.32), indexed by the 4-bit code carried in the
// quoted bit string AT+CEDRXS= and +CEDRXP use.
var edrxValueTable = [16]time.Duration{
	5120 * time.Millisecond,
	10240 * time.Millisecond,
	20480 * time.Millisecond,
	40960 * time.Millisecond,
	61440 * time.Millisecond,
	81920 * time.Millisecond,
	102400 * time.Millisecond,
	122880 * time.Millisecond,
	143360 * time.Millisecond,
	163840 * time.Millisecond,
	327680 * time.Millisecond,
	655360 * time.Millisecond,
	1310720 * time.Millisecond,
	2621440 * time.Millisecond,
	5242880 * time.Millisecond,
	10485760 * time.Millisecond,
}

// edrxPTWTable is the paging time window table for E-UTRAN, in
// multiples of 1.28s addressed by the same 4-bit code width.
var edrxPTWTable = [16]time.Duration{
	1280 * time.Millisecond, 2560 * time.Millisecond, 3840 * time.Millisecond,
	5120 * time.Millisecond, 6400 * time.Millisecond, 7680 * time.Millisecond,
	8960 * time.Millisecond, 10240 * time.Millisecond, 11520 * time.Millisecond,
	12800 * time.Millisecond, 14080 * time.Millisecond, 15360 * time.Millisecond,
	16640 * time.Millisecond, 17920 * time.Millisecond, 19200 * time.Millisecond,
	20480 * time.Millisecond,
}

// EncodeEDRXValue returns the 4-bit quoted bit string for the closest
// table entry not exceeding d, or "0000" when d is below every entry.
func EncodeEDRXValue(d time.Duration) string { return encodeFromTable(edrxValueTable[:], d) }

// EncodePTW returns the 4-bit quoted bit string for the closest paging
// time window table entry not exceeding d, or "0000" when d is below
// every entry.
func EncodePTW(d time.Duration) string { return encodeFromTable(edrxPTWTable[:], d) }

func encodeFromTable(table []time.Duration, d time.Duration) string {
	best := 0
	for i, v := range table {
		if v <= d {
			best = i
		}
	}
	return fmt.Sprintf("%04b", best)
}

func decodeFromTable(table []time.Duration, bits string) (time.Duration, error) {
	bits = strings.TrimSpace(bits)
	v, err := strconv.ParseUint(bits, 2, 8)
	if err != nil || v >= uint64(len(table)) {
		return 0, fmt.Errorf("linkctl: invalid eDRX table code %q", bits)
	}
	return table[v], nil
}

// EDRXConfig is the decoded form of a +CEDRXP notification.
type EDRXConfig struct {
	Mode             LTEMode
	RequestedValue   time.Duration
	ProvidedValue    time.Duration
	PagingTimeWindow time.Duration
}

// FormatEDRXSet builds the AT+CEDRXS= command requesting value for the
// given LTE mode. enable controls the leading <mode> parameter (2 to
// enable with unsolicited result codes, 0 to disable).
func FormatEDRXSet(mode LTEMode, value time.Duration, enable bool) string {
	actType := 4
	if mode == LTEModeNBIoT {
		actType = 5
	}
	m := 0
	if enable {
		m = 2
	}
	return fmt.Sprintf(`AT+CEDRXS=%d,%d,"%s"`, m, actType, EncodeEDRXValue(value))
}

// ParseCEDRXP decodes a +CEDRXP notification from its tokens.
func ParseCEDRXP(tokens []atparser.Token) (*EDRXConfig, error) {
	if len(tokens) == 0 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "+CEDRXP" {
		return nil, fmt.Errorf("linkctl: not a +CEDRXP notification")
	}
	sub := tokens[1:]
	if len(sub) < 1 {
		return nil, fmt.Errorf("linkctl: +CEDRXP notification missing <AcT-type>")
	}
	actType, err := intField(sub[0])
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEDRXP <AcT-type>: %w", err)
	}
	mode := LTEModeLTEM
	if actType == 5 {
		mode = LTEModeNBIoT
	}
	cfg := &EDRXConfig{Mode: mode}

	if len(sub) > 1 && sub[1].Type != atparser.Empty {
		v, err := decodeFromTable(edrxValueTable[:], stringField(sub[1]))
		if err != nil {
			return nil, err
		}
		cfg.RequestedValue = v
	}
	if len(sub) > 2 && sub[2].Type != atparser.Empty {
		v, err := decodeFromTable(edrxValueTable[:], stringField(sub[2]))
		if err != nil {
			return nil, err
		}
		cfg.ProvidedValue = v
	}
	if len(sub) > 3 && sub[3].Type != atparser.Empty {
		v, err := decodeFromTable(edrxPTWTable[:], stringField(sub[3]))
		if err != nil {
			return nil, err
		}
		cfg.PagingTimeWindow = v
	}
	return cfg, nil
}
