package persist

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_ExecutesInOrder(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		i := i
		q.Enqueue("write", func() error {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			return nil
		})
	}
	q.Flush()

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueue_FlushWaitsForPendingWrites(t *testing.T) {
	q := NewQueue(nil)
	defer q.Close()

	done := false
	q.Enqueue("write", func() error {
		done = true
		return nil
	})
	q.Flush()
	assert.True(t, done)
}

func TestQueue_LogsFailuresAndKeepsGoing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	q := NewQueue(logger)
	defer q.Close()

	ran := false
	q.Enqueue("insert area", func() error { return errors.New("disk full") })
	q.Enqueue("insert plant", func() error {
		ran = true
		return nil
	})
	q.Flush()

	// The failed write is reported and the queue keeps draining.
	assert.True(t, ran)
	assert.Contains(t, buf.String(), "persistence write failed")
	assert.Contains(t, buf.String(), "insert area")
	assert.Contains(t, buf.String(), "disk full")
}

func TestQueue_Close(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	q := NewQueue(logger)

	ran := false
	q.Enqueue("write", func() error {
		ran = true
		return nil
	})
	q.Close()
	assert.True(t, ran) // Close drains pending writes

	q.Close() // idempotent
	q.Flush() // no-op after close

	// Writes after close are dropped with a warning, not executed.
	dropped := false
	q.Enqueue("late write", func() error {
		dropped = true
		return nil
	})
	assert.False(t, dropped)
	assert.Contains(t, buf.String(), "write dropped")
}
