package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ForwardsAndSkipsMalformed(t *testing.T) {
	in := make(chan []byte)
	out := make(chan DeliveryMessage, 2)

	done := make(chan struct{})
	go func() {
		decode(context.Background(), in, out)
		close(done)
	}()

	msg := DeliveryMessage{JobID: uuid.New(), EventID: uuid.New(), TargetID: "u2"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	in <- []byte("not json")
	in <- body
	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decode did not return after channel close")
	}

	require.Len(t, out, 1)
	assert.Equal(t, msg, <-out)
}

func TestDecode_DrainsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan []byte)
	out := make(chan DeliveryMessage) // nobody reads

	done := make(chan struct{})
	go func() {
		decode(ctx, in, out)
		close(done)
	}()

	cancel()

	// The producer side must never block after cancellation.
	for i := 0; i < 3; i++ {
		select {
		case in <- []byte(`{}`):
		case <-time.After(time.Second):
			t.Fatal("producer blocked after cancellation")
		}
	}

	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decode did not return after channel close")
	}
}
