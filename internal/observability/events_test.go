package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecorder_RecordAndFilter(t *testing.T) {
	rec := &MemoryRecorder{}
	rec.Record(Event{Kind: EventAliasResolved, Scope: "document", Key: "project"})
	rec.Record(Event{Kind: EventSlotSynthesized, Scope: "roadmap", Key: "day_3"})
	rec.Record(Event{Kind: EventSlotSynthesized, Scope: "roadmap", Key: "day_4"})

	assert.Len(t, rec.Events(), 3)

	synthesized := rec.Filter(EventSlotSynthesized)
	require.Len(t, synthesized, 2)
	assert.Equal(t, "day_3", synthesized[0].Key)

	assert.Empty(t, rec.Filter(EventFallbackTriggered))
}

func TestMemoryRecorder_EventsReturnsCopy(t *testing.T) {
	rec := &MemoryRecorder{}
	rec.Record(Event{Kind: EventMergeAccepted})

	events := rec.Events()
	events[0].Kind = EventMergeRejected

	assert.Equal(t, EventMergeAccepted, rec.Events()[0].Kind)
}

func TestMemoryRecorder_ConcurrentRecord(t *testing.T) {
	rec := &MemoryRecorder{}
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Record(Event{Kind: EventSlotSynthesized})
		}()
	}
	wg.Wait()

	assert.Len(t, rec.Events(), 100)
}

func TestNop_Discards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop{}.Record(Event{Kind: EventValidationFailed})
	})
}

func TestLogRecorder_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogRecorder{}.Record(Event{Kind: EventFallbackTriggered, Scope: "call_1", Detail: "down"})
		LogRecorder{}.Record(Event{Kind: EventAliasResolved, Scope: "document", Key: "project"})
	})
}
