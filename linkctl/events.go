package linkctl

// EventType classifies an Event so a handler can type-switch on its
// Data field without reflection.
type EventType int

// Event kinds. Each corresponds to one of the modules in SPEC_FULL.md
// §4.3. Controller.HandleLine never produces EventPSMUpdate; PSM fields
// of a +CEREG line arrive inside an EventRegistration.
const (
	EventRegistration EventType = iota
	EventPSMUpdate
	EventEDRXUpdate
	EventModemSleepEnter
	EventModemSleepExit
	EventModemEvent
	EventNeighborCellMeas
	EventReducedMobility
	EventT3412PreWarning
)

var eventTypeNames = [...]string{
	EventRegistration:     "REGISTRATION",
	EventPSMUpdate:        "PSM_UPDATE",
	EventEDRXUpdate:       "EDRX_UPDATE",
	EventModemSleepEnter:  "MODEM_SLEEP_ENTER",
	EventModemSleepExit:   "MODEM_SLEEP_EXIT",
	EventModemEvent:       "MODEM_EVENT",
	EventNeighborCellMeas: "NEIGHBOR_CELL_MEAS",
	EventReducedMobility:  "REDUCED_MOBILITY",
	EventT3412PreWarning:  "T3412_PRE_WARNING",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "UNKNOWN"
}

// Event is a single typed occurrence handed to every registered
// Handler. Data holds the per-module decoded value (*RegistrationEvent,
// *EDRXConfig, *ModemSleep, ...); handlers switch on Type before
// type-asserting it.
type Event struct {
	Type EventType
	Data any
}

// Handler receives dispatched Events. A Handler must not block for
// long: it runs on the Dispatcher's single dispatch goroutine, and a
// slow handler delays every other registered handler and every
// subsequent event.
type Handler func(Event)
