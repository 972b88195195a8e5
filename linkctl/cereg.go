package linkctl

import (
	"fmt"

	"github.com/MirkoCovizzi/atparser"
)

// RegStatus is the <stat> field of a +CEREG notification or read
// response (3GPP TS 27.007 §7.2, with the nRF91 vendor extension for
// UICC failure).
type RegStatus int

const (
	RegNotRegistered         RegStatus = 0
	RegRegisteredHome        RegStatus = 1
	RegSearching             RegStatus = 2
	RegDenied                RegStatus = 3
	RegUnknown               RegStatus = 4
	RegRegisteredRoaming     RegStatus = 5
	RegEmergencyOnly         RegStatus = 8
	RegRegisteredSMSOnlyHome RegStatus = 9
	RegRegisteredSMSOnlyRoam RegStatus = 10
	RegUICCFail              RegStatus = 90
)

// LTEMode is the <AcT> access-technology field.
type LTEMode int

const (
	LTEModeNone  LTEMode = -1
	LTEModeGSM   LTEMode = 0
	LTEModeLTEM  LTEMode = 7
	LTEModeNBIoT LTEMode = 9
)

// RegistrationEvent is the decoded form of a +CEREG notification. Cell
// and PSM fields are populated only as far as the subscribed +CEREG
// mode (set with AT+CEREG=<n>) supplies them; unset fields are left at
// their zero value with Have* flags indicating whether they were
// present.
type RegistrationEvent struct {
	Status RegStatus

	HaveCell bool
	TAC      string
	CellID   string
	Mode     LTEMode

	HaveCause   bool
	CauseType   int
	RejectCause int

	HavePSM bool
	PSM     PSMConfig
}

// ParseCEREG decodes a +CEREG notification from its tokens, as produced
// by atparser.Parser or atparser.ParseLine. tokens[0] must be a NOTIF
// token with payload "+CEREG"; the remaining tokens are the
// notification's subparameters in order.
func ParseCEREG(tokens []atparser.Token) (*RegistrationEvent, error) {
	if len(tokens) == 0 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "+CEREG" {
		return nil, fmt.Errorf("linkctl: not a +CEREG notification")
	}
	sub := tokens[1:]
	if len(sub) == 0 {
		return nil, fmt.Errorf("linkctl: +CEREG notification missing <stat>")
	}

	stat, err := intField(sub[0])
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEREG <stat>: %w", err)
	}
	evt := &RegistrationEvent{Status: RegStatus(stat)}

	if len(sub) < 4 {
		return evt, nil
	}
	evt.HaveCell = true
	evt.TAC = stringField(sub[1])
	evt.CellID = stringField(sub[2])
	act, err := intField(sub[3])
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEREG <AcT>: %w", err)
	}
	evt.Mode = LTEMode(act)

	if len(sub) < 6 {
		return evt, nil
	}
	evt.HaveCause = true
	causeType, err := intField(sub[4])
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEREG <cause_type>: %w", err)
	}
	rejectCause, err := intField(sub[5])
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEREG <reject_cause>: %w", err)
	}
	evt.CauseType = causeType
	evt.RejectCause = rejectCause

	if len(sub) < 8 {
		return evt, nil
	}
	psmCfg, err := ParsePSMFields(stringField(sub[6]), stringField(sub[7]))
	if err != nil {
		return nil, fmt.Errorf("linkctl: +CEREG PSM fields: %w", err)
	}
	evt.HavePSM = true
	evt.PSM = psmCfg

	return evt, nil
}

// intField extracts an Int token's value, tolerating an Empty token by
// returning 0 (an omitted subparameter in a +CEREG line is always
// either all digits or entirely absent as EMPTY).
func intField(tok atparser.Token) (int, error) {
	if tok.Type == atparser.Empty {
		return 0, nil
	}
	v, err := atparser.Int32(tok)
	return int(v), err
}

// stringField extracts a QuotedString token's payload as a plain Go
// string, returning "" for an Empty token.
func stringField(tok atparser.Token) string {
	if tok.Type == atparser.Empty {
		return ""
	}
	return string(tok.Payload())
}
