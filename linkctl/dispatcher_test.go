package linkctl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesHandlersInOrder(t *testing.T) {
	d := NewDispatcher(4)
	var order []int
	d.AddHandler(func(Event) { order = append(order, 1) })
	d.AddHandler(func(Event) { order = append(order, 2) })

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)

	require.NoError(t, d.Dispatch(ctx, Event{Type: EventRegistration}))
	require.NoError(t, d.Dispatch(ctx, Event{Type: EventRegistration}))

	cancel()
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}

	require.Equal(t, []int{1, 2, 1, 2}, order)
}

func TestDispatcherResetClearsHandlers(t *testing.T) {
	d := NewDispatcher(1)
	called := false
	d.AddHandler(func(Event) { called = true })
	d.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)
	require.NoError(t, d.Dispatch(ctx, Event{}))
	cancel()
	<-d.Done()

	require.False(t, called)
}
