package buffer_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"

	"github.com/marble-stack/financial-planning/pkg/tracking"
	"github.com/marble-stack/financial-planning/pkg/tracking/buffer"
)

func newBuffer(t *testing.T) *buffer.Buffer {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return buffer.NewBuffer(rdb)
}

func push(t *testing.T, b *buffer.Buffer, count int) {
	for i := 0; i < count; i++ {
		err := b.Push(&tracking.Event{
			ID:         strconv.Itoa(i),
			Client:     "client-1",
			Name:       "budget_created",
			Properties: map[string]interface{}{},
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuffer_Flush(t *testing.T) {
	b := newBuffer(t)

	push(t, b, 3)

	var received []*tracking.Event
	count, err := b.Flush(func(events []*tracking.Event) error {
		received = events
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if count != 3 {
		t.Fatalf("expected 3 got %d", count)
	}

	// oldest first
	if received[0].ID != "0" {
		t.Fatalf("expected oldest event first, got %s", received[0].ID)
	}

	remaining, err := b.Len()
	if err != nil {
		t.Fatal(err)
	}

	if remaining != 0 {
		t.Fatalf("expected empty buffer got %d", remaining)
	}
}

func TestBuffer_Flush_BatchSize(t *testing.T) {
	b := newBuffer(t)

	push(t, b, buffer.BatchSize+5)

	count, err := b.Flush(func(events []*tracking.Event) error {
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if count != buffer.BatchSize {
		t.Fatalf("expected %d got %d", buffer.BatchSize, count)
	}

	remaining, err := b.Len()
	if err != nil {
		t.Fatal(err)
	}

	if remaining != 5 {
		t.Fatalf("expected 5 got %d", remaining)
	}
}

func TestBuffer_Flush_KeepsBatchOnFailure(t *testing.T) {
	b := newBuffer(t)

	push(t, b, 4)

	_, err := b.Flush(func(events []*tracking.Event) error {
		return errors.New("delivery failed")
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	remaining, err := b.Len()
	if err != nil {
		t.Fatal(err)
	}

	if remaining != 4 {
		t.Fatalf("failed delivery should leave the batch in place, got %d", remaining)
	}
}

func TestBuffer_Flush_Empty(t *testing.T) {
	b := newBuffer(t)

	count, err := b.Flush(func(events []*tracking.Event) error {
		t.Fatal("sink should not be called")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if count != 0 {
		t.Fatalf("expected 0 got %d", count)
	}
}
