package linkctl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimerKind selects which of the two GPRS timer encodings (3GPP TS
// 24.008 §10.5.7.3/§10.5.7.4a) a timer string uses. AT+CPSMS= takes one
// of each: the requested active time uses GPRS Timer 2, the requested
// periodic TAU uses the extended GPRS Timer 3.
type TimerKind int

const (
	// TimerActiveTime is the GPRS Timer 2 encoding used for PSM active time.
	TimerActiveTime TimerKind = iota
	// TimerPeriodicTAU is the extended GPRS Timer 3 encoding used for
	// the periodic tracking area update interval.
	TimerPeriodicTAU
)

type timerUnit struct {
	bits byte
	step time.Duration
}

var activeTimeUnits = []timerUnit{
	{0b000, 2 * time.Second},
	{0b001, time.Minute},
	{0b010, 6 * time.Minute},
}

var periodicTAUUnits = []timerUnit{
	{0b011, 2 * time.Second},
	{0b100, 30 * time.Second},
	{0b101, time.Minute},
	{0b000, 10 * time.Minute},
	{0b001, time.Hour},
	{0b010, 10 * time.Hour},
	{0b110, 320 * time.Hour},
}

func unitsFor(kind TimerKind) []timerUnit {
	if kind == TimerActiveTime {
		return activeTimeUnits
	}
	return periodicTAUUnits
}

// deactivatedUnitBits is the unit field value ("111", followed by any
// value bits) that both timer encodings use to mean "deactivated".
const deactivatedUnitBits = 0b111

// EncodeTimer converts d into the 8-character "0"/"1" bit string
// AT+CPSMS= expects for the given TimerKind. A negative d encodes the
// "deactivated" pattern, matching the source's -1 sentinel for
// ActiveTime. It picks the coarsest unit that represents d exactly
// within the encoding's 5-bit (0-31) value range, and fails if no unit
// can do so.
func EncodeTimer(kind TimerKind, d time.Duration) (string, error) {
	if d < 0 {
		return fmt.Sprintf("%03b00000", deactivatedUnitBits), nil
	}
	units := unitsFor(kind)
	best := -1
	bestStep := time.Duration(-1)
	for i, u := range units {
		if d%u.step != 0 {
			continue
		}
		value := d / u.step
		if value < 0 || value > 31 {
			continue
		}
		if u.step > bestStep {
			bestStep = u.step
			best = i
		}
	}
	if best < 0 {
		return "", fmt.Errorf("linkctl: %s is not representable by this timer encoding", d)
	}
	u := units[best]
	value := byte(d / u.step)
	return fmt.Sprintf("%03b%05b", u.bits, value), nil
}

// DecodeTimer is the inverse of EncodeTimer. It accepts the quoted
// 8-bit string as found in AT+CPSMS= read-back or a +CEREG PSM field,
// without the surrounding quotes. deactivated is true when the unit
// field is the "111" sentinel.
func DecodeTimer(kind TimerKind, bits string) (d time.Duration, deactivated bool, err error) {
	bits = strings.TrimSpace(bits)
	if len(bits) != 8 {
		return 0, false, fmt.Errorf("linkctl: timer string must be 8 bits, got %q", bits)
	}
	raw, err := strconv.ParseUint(bits, 2, 8)
	if err != nil {
		return 0, false, fmt.Errorf("linkctl: invalid timer bit string %q: %w", bits, err)
	}
	unitBits := byte(raw>>5) & 0b111
	value := time.Duration(raw & 0b11111)
	if unitBits == deactivatedUnitBits {
		return 0, true, nil
	}
	for _, u := range unitsFor(kind) {
		if u.bits == unitBits {
			return value * u.step, false, nil
		}
	}
	return 0, false, fmt.Errorf("linkctl: reserved timer unit bits %03b", unitBits)
}

// PSMConfig is the decoded PSM configuration, the Go rendition of
// lte_lc_psm_cfg from lte_lc_psm.h. ActiveTime is -1 (represented here
// as a negative Duration) when PSM is deactivated.
type PSMConfig struct {
	TAU        time.Duration
	ActiveTime time.Duration
}

// FormatPSMSet builds the AT+CPSMS= command that requests cfg. The legacy
// T3412 field is left empty (RAC=2 semantics): only the extended
// periodic TAU and active time fields are populated, matching how
// psm_param_set_seconds formats its request in the source library.
func FormatPSMSet(cfg PSMConfig) (string, error) {
	tau, err := EncodeTimer(TimerPeriodicTAU, cfg.TAU)
	if err != nil {
		return "", err
	}
	active, err := EncodeTimer(TimerActiveTime, cfg.ActiveTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`AT+CPSMS=1,,,"%s","%s"`, tau, active), nil
}

// ParsePSMFields decodes a PSM config from the two timer bit strings as
// they appear, quotes stripped, in an extended +CEREG notification's
// trailing Active-Time/Periodic-TAU fields (see cereg.go).
func ParsePSMFields(activeTimeBits, periodicTAUBits string) (PSMConfig, error) {
	active, activeOff, err := DecodeTimer(TimerActiveTime, activeTimeBits)
	if err != nil {
		return PSMConfig{}, err
	}
	if activeOff {
		active = -1
	}
	tau, tauOff, err := DecodeTimer(TimerPeriodicTAU, periodicTAUBits)
	if err != nil {
		return PSMConfig{}, err
	}
	if tauOff {
		tau = -1
	}
	return PSMConfig{TAU: tau, ActiveTime: active}, nil
}
