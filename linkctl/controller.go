package linkctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MirkoCovizzi/atparser"
)

// Controller ties a Transport, the atparser core, and a Dispatcher
// together: it formats commands and sends them over Transport, and
// turns notification lines handed to HandleLine into typed Events
// routed through its Dispatcher. It is the direct analogue of the
// original library's per-module .c files plus their shared work queue,
// collapsed into one Go type since none of those modules hold more
// state than "which transport and dispatcher to use".
type Controller struct {
	transport  Transport
	dispatcher *Dispatcher
	log        *slog.Logger
}

// NewController builds a Controller. If logger is nil, slog.Default()
// is used.
func NewController(transport Transport, dispatcher *Dispatcher, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{transport: transport, dispatcher: dispatcher, log: logger}
}

// Run runs the Controller's dispatch loop on the calling goroutine,
// delivering every Event HandleLine produces to the handlers registered
// on its Dispatcher. It blocks until ctx is cancelled, draining any
// events already queued before returning.
func (c *Controller) Run(ctx context.Context) {
	c.dispatcher.Run(ctx)
}

// send formats and sends cmd, returning an error if the transport
// failed or the modem's RESP tail signaled rejection.
func (c *Controller) send(ctx context.Context, cmd string) ([]byte, error) {
	resp, err := c.transport.Send(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("linkctl: sending %q: %w", cmd, err)
	}
	if !respOK(resp) {
		return resp, fmt.Errorf("%w: %q -> %q", ErrModemRejected, cmd, resp)
	}
	return resp, nil
}

// HandleLine parses one notification line (as delivered by Transport
// out-of-band from a command response, or read from a log capture) and
// dispatches zero or more Events derived from it. Dispatch errors from
// a cancelled ctx are returned; parse failures on an unrecognized line
// are logged and swallowed, since unsolicited traffic from the modem
// may legitimately include notifications this repo does not model.
func (c *Controller) HandleLine(ctx context.Context, line []byte) error {
	var toks [24]atparser.Token
	n, _, err := atparser.ParseLine(toks[:], line)
	if err != nil && !errors.Is(err, atparser.ErrTryAgain) {
		c.log.Warn("linkctl: discarding unparsable line", "error", err)
		return nil
	}
	if n == 0 || toks[0].Type != atparser.Notif {
		return nil
	}

	evt, derr := c.decode(toks[:n])
	if derr != nil {
		c.log.Debug("linkctl: notification not decoded", "notif", string(toks[0].Payload()), "error", derr)
		return nil
	}
	if evt == nil {
		return nil
	}
	return c.dispatcher.Dispatch(ctx, *evt)
}

func (c *Controller) decode(toks []atparser.Token) (*Event, error) {
	switch string(toks[0].Payload()) {
	case "+CEREG":
		evt, err := ParseCEREG(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventRegistration, Data: evt}, nil
	case "+CEDRXP":
		evt, err := ParseCEDRXP(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventEDRXUpdate, Data: evt}, nil
	case "%XMODEMSLEEP":
		evt, err := ParseModemSleep(toks)
		if err != nil {
			return nil, err
		}
		typ := EventModemSleepEnter
		if evt.Time == 0 {
			typ = EventModemSleepExit
		}
		return &Event{Type: typ, Data: evt}, nil
	case "%MDMEV":
		evt, err := ParseMdmev(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventModemEvent, Data: evt}, nil
	case "%NCELLMEAS":
		evt, err := ParseNCellMeas(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventNeighborCellMeas, Data: evt}, nil
	case "%XT3412":
		d, err := ParseXT3412(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventT3412PreWarning, Data: d}, nil
	case "%REDMOB":
		mode, err := ParseRedMobResponse(toks)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventReducedMobility, Data: mode}, nil
	default:
		return nil, fmt.Errorf("linkctl: unrecognized notification %q", toks[0].Payload())
	}
}

// SetPSM requests a PSM configuration from the modem.
func (c *Controller) SetPSM(ctx context.Context, cfg PSMConfig) error {
	cmd, err := FormatPSMSet(cfg)
	if err != nil {
		return err
	}
	_, err = c.send(ctx, cmd)
	return err
}

// SetEDRX requests an eDRX value for the given LTE mode.
func (c *Controller) SetEDRX(ctx context.Context, mode LTEMode, value time.Duration, enable bool) error {
	_, err := c.send(ctx, FormatEDRXSet(mode, value, enable))
	return err
}

// GetCfun reads the modem's current functional mode.
func (c *Controller) GetCfun(ctx context.Context) (FunctionalMode, error) {
	resp, err := c.send(ctx, FormatCfunGet())
	if err != nil {
		return 0, err
	}
	return parseSingleLineResponse(resp, ParseCfunResponse)
}

// SetCfun sets the modem's functional mode.
func (c *Controller) SetCfun(ctx context.Context, mode FunctionalMode) error {
	_, err := c.send(ctx, FormatCfunSet(mode))
	return err
}

// GetReducedMobility reads the modem's reduced mobility mode.
func (c *Controller) GetReducedMobility(ctx context.Context) (ReducedMobilityMode, error) {
	resp, err := c.send(ctx, FormatRedMobGet())
	if err != nil {
		return 0, err
	}
	return parseSingleLineResponse(resp, ParseRedMobResponse)
}

// SetReducedMobility sets the modem's reduced mobility mode.
func (c *Controller) SetReducedMobility(ctx context.Context, mode ReducedMobilityMode) error {
	_, err := c.send(ctx, FormatRedMobSet(mode))
	return err
}

// FactoryReset resets the modem to factory settings. The modem only
// accepts this while not activated.
func (c *Controller) FactoryReset(ctx context.Context, typ FactoryResetType) error {
	_, err := c.send(ctx, FormatFactoryReset(typ))
	return err
}

// EnableModemSleepNotifications subscribes to %XMODEMSLEEP
// notifications, which HandleLine then decodes into
// EventModemSleepEnter/Exit events.
func (c *Controller) EnableModemSleepNotifications(ctx context.Context) error {
	_, err := c.send(ctx, FormatModemSleepEnable())
	return err
}

// EnableModemEvents/DisableModemEvents subscribe to or unsubscribe
// from %MDMEV notifications.
func (c *Controller) EnableModemEvents(ctx context.Context) error {
	_, err := c.send(ctx, FormatMdmevEnable())
	return err
}

func (c *Controller) DisableModemEvents(ctx context.Context) error {
	_, err := c.send(ctx, FormatMdmevDisable())
	return err
}

// StartNCellMeas/CancelNCellMeas drive a neighbor cell measurement.
func (c *Controller) StartNCellMeas(ctx context.Context, searchType NCellMeasSearchType) error {
	_, err := c.send(ctx, FormatNCellMeasStart(searchType))
	return err
}

func (c *Controller) CancelNCellMeas(ctx context.Context) error {
	_, err := c.send(ctx, FormatNCellMeasCancel())
	return err
}

// EnableXT3412/DisableXT3412 subscribe to or unsubscribe from T3412
// pre-warning notifications.
func (c *Controller) EnableXT3412(ctx context.Context, threshold time.Duration) error {
	_, err := c.send(ctx, FormatXT3412Enable(threshold))
	return err
}

func (c *Controller) DisableXT3412(ctx context.Context) error {
	_, err := c.send(ctx, FormatXT3412Disable())
	return err
}

// SetPeriodicSearch, ClearPeriodicSearch and RequestExtraSearch drive
// %PERIODICSEARCHCONF.
func (c *Controller) SetPeriodicSearch(ctx context.Context, cfg PeriodicSearchConfig) error {
	cmd, err := FormatPeriodicSearchSet(cfg)
	if err != nil {
		return err
	}
	_, err = c.send(ctx, cmd)
	return err
}

func (c *Controller) ClearPeriodicSearch(ctx context.Context) error {
	_, err := c.send(ctx, FormatPeriodicSearchClear())
	return err
}

func (c *Controller) RequestExtraSearch(ctx context.Context) error {
	_, err := c.send(ctx, FormatPeriodicSearchRequest())
	return err
}

// parseSingleLineResponse runs ParseLine over resp and hands the
// resulting tokens to decode.
func parseSingleLineResponse[T any](resp []byte, decode func([]atparser.Token) (T, error)) (T, error) {
	var toks [8]atparser.Token
	n, _, err := atparser.ParseLine(toks[:], resp)
	if err != nil && !errors.Is(err, atparser.ErrTryAgain) {
		var zero T
		return zero, err
	}
	return decode(toks[:n])
}
