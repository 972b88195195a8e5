// Package linkctl is the link-control layer built on top of the
// atparser core: it formats AT commands for the nRF91-series modem's
// LTE link-control surface (PSM, eDRX, periodic search, reduced
// mobility, factory reset, modem sleep, CFUN, CEREG, modem events,
// neighbor cell measurements, T3412 pre-warning), writes them to a
// Transport, and turns parsed notification lines into typed Events
// routed through a Dispatcher.
//
// linkctl is the "external collaborator" spec.md's atparser core
// describes: it is a consumer of atparser.Parser and atparser.Token,
// never a participant in the core's grammar or state machine.
package linkctl

import (
	"bytes"
	"context"
	"errors"
)

// Sentinel errors returned by linkctl on top of the ones atparser
// itself returns (those propagate unchanged through Parse* functions
// that wrap the core parser).
var (
	// ErrNotSupported reports a notification or response field
	// combination this repo does not decode (see SPEC_FULL.md §4.4).
	// No function in this package returns it.
	ErrNotSupported = errors.New("linkctl: response not supported")

	// ErrModemRejected is returned when the modem's RESP tail was
	// ERROR, +CME ERROR or +CMS ERROR rather than OK.
	ErrModemRejected = errors.New("linkctl: modem rejected command")

	// ErrNoHandler reports a handler that was never registered. No
	// function in this package returns it: Dispatcher has no
	// per-handler removal, only Reset.
	ErrNoHandler = errors.New("linkctl: handler not registered")
)

// Transport sends a single AT command and waits for its complete
// response (ending in the RESP tail atparser recognizes). linkctl
// performs no I/O itself; Transport is supplied by the caller and may
// be backed by a UART, a loopback test double, or anything else.
type Transport interface {
	Send(ctx context.Context, cmd string) (resp []byte, err error)
}

// respOK reports whether resp's RESP tail, if any, was OK rather than
// an error tail. It does not require a RESP tail to be present: some
// callers only care about the notification payload and discard the
// tail themselves.
func respOK(resp []byte) bool {
	for i := 0; i+4 <= len(resp); i++ {
		if resp[i] == '\r' && resp[i+1] == '\n' {
			rest := resp[i+2:]
			switch {
			case bytes.HasPrefix(rest, []byte("OK")):
				return true
			case bytes.HasPrefix(rest, []byte("ERROR")),
				bytes.HasPrefix(rest, []byte("+CME ERROR")),
				bytes.HasPrefix(rest, []byte("+CMS ERROR")):
				return false
			}
		}
	}
	return true
}
