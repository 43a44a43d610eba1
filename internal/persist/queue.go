// Package persist provides the asynchronous write queue behind the
// optimistic dual-write pattern: state stores apply mutations in memory
// synchronously, then enqueue the matching durable write here. A single
// background goroutine executes writes in enqueue order, so two mutations
// issued in quick succession can never reorder at the persistence layer.
//
// Write failures are logged and dropped, never propagated back into the
// mutating call stack: the in-memory state has already advanced, so the
// user-visible effect of a failed write is only that the change may not
// survive a restart.
package persist

import (
	"log/slog"
	"sync"
)

type op struct {
	label string
	run   func() error
	ack   chan struct{} // non-nil only for flush markers
}

// Queue serializes durable writes onto one background goroutine.
type Queue struct {
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	ops    chan op
	done   chan struct{}
}

// NewQueue starts the background writer. A nil logger defaults to
// slog.Default.
func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		logger: logger,
		ops:    make(chan op, 128),
		done:   make(chan struct{}),
	}
	go q.loop()
	return q
}

func (q *Queue) loop() {
	defer close(q.done)
	for o := range q.ops {
		if o.run != nil {
			if err := o.run(); err != nil {
				q.logger.Error("persistence write failed",
					slog.String("op", o.label),
					slog.String("error", err.Error()))
			}
		}
		if o.ack != nil {
			close(o.ack)
		}
	}
}

// Enqueue schedules a durable write. The caller returns immediately; the
// write runs on the background goroutine after every previously enqueued
// write. Writes enqueued after Close are dropped with a warning.
func (q *Queue) Enqueue(label string, run func() error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("write dropped: queue closed", slog.String("op", label))
		return
	}
	q.ops <- op{label: label, run: run}
}

// Flush blocks until every write enqueued before the call has executed.
// Used at shutdown and by tests that assert on durable state.
func (q *Queue) Flush() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	ack := make(chan struct{})
	q.ops <- op{ack: ack}
	q.mu.Unlock()
	<-ack
}

// Close flushes pending writes and stops the background goroutine.
// Idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ops)
	q.mu.Unlock()
	<-q.done
}
