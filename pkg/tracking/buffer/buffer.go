// Package buffer accumulates tracked events in redis until a batch is ready
// for delivery.
package buffer

import (
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/marble-stack/financial-planning/pkg/tracking"
)

const (
	key = "tracking_buffer"

	// BatchSize is how many events trigger a delivery.
	BatchSize = 10
)

// Sink delivers a batch of events.
type Sink func(events []*tracking.Event) error

type Buffer struct {
	rdb *redis.Client
}

func NewBuffer(rdb *redis.Client) *Buffer {
	return &Buffer{rdb: rdb}
}

// Push appends an event to the buffer.
func (b *Buffer) Push(event *tracking.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.rdb.LPush(b.rdb.Context(), key, string(data)).Err()
}

// Len returns the number of buffered events.
func (b *Buffer) Len() (int, error) {
	res, err := b.rdb.LLen(b.rdb.Context(), key).Result()
	return int(res), err
}

// Flush delivers up to BatchSize of the oldest buffered events to the sink.
// The buffer is only trimmed once the sink succeeds, a failed delivery leaves
// the batch in place for the next pass.
func (b *Buffer) Flush(sink Sink) (int, error) {
	data, err := b.rdb.LRange(b.rdb.Context(), key, int64(-BatchSize), -1).Result()
	if err != nil {
		return 0, err
	}

	if len(data) == 0 {
		return 0, nil
	}

	events := make([]*tracking.Event, 0)

	// the tail of the list holds the oldest events
	for i := len(data) - 1; i >= 0; i-- {
		event := &tracking.Event{}

		err := json.Unmarshal([]byte(data[i]), event)
		if err != nil {
			log.Printf("failed to unmarshal event err: %v\n", err)
			continue
		}

		events = append(events, event)
	}

	err = sink(events)
	if err != nil {
		return 0, err
	}

	err = b.rdb.LTrim(b.rdb.Context(), key, 0, int64(-len(data)-1)).Err()
	if err != nil {
		return 0, err
	}

	return len(events), nil
}

// Flusher periodically drains the buffer into a sink.
type Flusher struct {
	buffer *Buffer
	sink   Sink

	interval time.Duration
	quit     chan bool
}

func NewFlusher(buffer *Buffer, sink Sink, interval time.Duration) *Flusher {
	return &Flusher{
		buffer:   buffer,
		sink:     sink,
		interval: interval,
		quit:     make(chan bool),
	}
}

// Start runs the flush loop. A full batch flushes immediately, the interval
// catches remainders so events don't strand below BatchSize.
func (f *Flusher) Start() {
	go func() {
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				f.drain()
			case <-f.quit:
				return
			}
		}
	}()
}

func (f *Flusher) Stop() {
	f.quit <- true
}

func (f *Flusher) drain() {
	for {
		count, err := f.buffer.Flush(f.sink)
		if err != nil {
			log.Printf("buffer.Flush err: %v\n", err)
			return
		}

		if count < BatchSize {
			return
		}
	}
}
