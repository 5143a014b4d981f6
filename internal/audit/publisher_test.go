package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmitStampsTimestamp(t *testing.T) {
	sink := NewInMemorySink()
	p := NewPublisher(sink)

	require.NoError(t, p.Emit(context.Background(), Event{
		InquiryID: "inq-1",
		Action:    ActionInquiryCreated,
	}))

	events := sink.Events()
	require.Len(t, events, 1)
	require.False(t, events[0].Timestamp.IsZero())
}

func TestEmitKeepsCallerTimestamp(t *testing.T) {
	sink := NewInMemorySink()
	p := NewPublisher(sink)

	stamped := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, p.Emit(context.Background(), Event{
		InquiryID: "inq-1",
		Action:    ActionInquiryCancelled,
		Timestamp: stamped,
	}))

	require.Equal(t, stamped, sink.Events()[0].Timestamp)
}

func TestAsyncPublisherDrainsOnClose(t *testing.T) {
	sink := NewInMemorySink()
	p := NewPublisher(sink, WithAsyncBuffer(16))

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Emit(context.Background(), Event{
			InquiryID: "inq-1",
			Action:    ActionInquiryRetrieved,
		}))
	}
	p.Close()

	require.Len(t, sink.Events(), 5)
}

// TestAsyncPublisherNeverBlocks verifies a full buffer drops the event rather
// than stalling the request path.
func TestAsyncPublisherNeverBlocks(t *testing.T) {
	slow := &blockingSink{release: make(chan struct{})}
	p := NewPublisher(slow, WithAsyncBuffer(1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			_ = p.Emit(context.Background(), Event{Action: ActionReportRendered})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emit blocked on a full buffer")
	}
	close(slow.release)
	p.Close()
}

func TestSyncPublisherReturnsSinkError(t *testing.T) {
	p := NewPublisher(failingSink{})
	require.Error(t, p.Emit(context.Background(), Event{Action: ActionInquiryCreated}))
}

type failingSink struct{}

func (failingSink) Append(context.Context, Event) error {
	return errors.New("sink unavailable")
}

// blockingSink holds every append until released.
type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Append(context.Context, Event) error {
	<-s.release
	return nil
}
