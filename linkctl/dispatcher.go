package linkctl

import "context"

// Dispatcher is the Go rendition of the original's work_q.c +
// event_handler_list.c pair: instead of a Zephyr work-queue thread
// draining a linked list of C function pointers, one goroutine drains a
// buffered channel and invokes registered Handlers in the order they
// were added.
type Dispatcher struct {
	handlers []Handler
	events   chan Event
	done     chan struct{}
}

// NewDispatcher creates a Dispatcher whose internal queue holds up to
// queueLen pending events before Dispatch blocks.
func NewDispatcher(queueLen int) *Dispatcher {
	if queueLen <= 0 {
		queueLen = 16
	}
	return &Dispatcher{
		events: make(chan Event, queueLen),
		done:   make(chan struct{}),
	}
}

// AddHandler appends h to the dispatch list. It does not check for
// duplicates: a handler added twice runs twice per event. Handlers
// registered while Run is active take effect for the next event onward.
func (d *Dispatcher) AddHandler(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Reset removes every registered handler. Dispatcher has no way to
// remove a single handler, since Go func values are not comparable.
func (d *Dispatcher) Reset() {
	d.handlers = nil
}

// Dispatch enqueues evt for delivery to every registered handler. It
// blocks if the internal queue is full; ctx cancellation aborts the
// enqueue.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) error {
	select {
	case d.events <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the event queue until ctx is cancelled, invoking every
// registered handler for each event in registration order. Run returns
// once ctx is done and the queue has been drained of events enqueued
// before cancellation.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case evt := <-d.events:
			for _, h := range d.handlers {
				h(evt)
			}
		case <-ctx.Done():
			for {
				select {
				case evt := <-d.events:
					for _, h := range d.handlers {
						h(evt)
					}
				default:
					return
				}
			}
		}
	}
}

// Done returns a channel closed once Run has returned.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}
