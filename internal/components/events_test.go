package components

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherSendInvokesCallback(t *testing.T) {
	t.Parallel()

	var got []ButtonEvent
	dispatcher := NewEventDispatcher(func(e ButtonEvent) { got = append(got, e) })

	dispatcher.Send(ButtonClicked)

	assert.Equal(t, []ButtonEvent{ButtonClicked}, got)
}

func TestDispatcherCloneSharesSlot(t *testing.T) {
	t.Parallel()

	count := 0
	dispatcher := NewEventDispatcher(func(ButtonEvent) { count++ })
	clone := dispatcher.Clone()

	dispatcher.Send(ButtonClicked)
	clone.Send(ButtonClicked)

	assert.Equal(t, 2, count, "a clone relays to the same underlying callback")
}

func TestDispatcherSerializesInvocations(t *testing.T) {
	t.Parallel()

	count := 0
	dispatcher := NewEventDispatcher(func(ButtonEvent) { count++ })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatcher.Clone().Send(ButtonClicked)
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, count, "sends are serialized, so a plain counter stays consistent")
}

func TestDispatcherToleratesNilCallback(t *testing.T) {
	t.Parallel()

	dispatcher := NewEventDispatcher[ButtonEvent](nil)
	assert.NotPanics(t, func() { dispatcher.Send(ButtonClicked) })
}
