package renderer

import "github.com/user/go-sample-pathtracer/pkg/core"

// checkpointQueue feeds accumulator snapshots to the checkpoint callback
// on a separate goroutine. The queue holds at most the latest snapshot;
// an unconsumed stale snapshot is dropped when a newer one arrives, so
// memory stays bounded and the render loop never waits on checkpoint I/O.
type checkpointQueue struct {
	snapshots chan *FrameBuffer
	done      chan struct{}
}

// newCheckpointQueue starts the consumer goroutine. A nil callback
// returns a nil queue, whose methods are no-ops.
func newCheckpointQueue(fn CheckpointFunc, logger core.Logger) *checkpointQueue {
	if fn == nil {
		return nil
	}

	q := &checkpointQueue{
		snapshots: make(chan *FrameBuffer, 1),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(q.done)
		for snapshot := range q.snapshots {
			if err := fn(snapshot); err != nil {
				logger.Printf("Checkpoint failed: %v\n", err)
			}
		}
	}()

	return q
}

// Offer queues a snapshot of the buffer, replacing any stale snapshot
// still waiting to be consumed
func (q *checkpointQueue) Offer(fb *FrameBuffer) {
	if q == nil {
		return
	}

	snapshot := fb.Clone()
	for {
		select {
		case q.snapshots <- snapshot:
			return
		default:
			// Queue full: drop the unconsumed snapshot and retry
			select {
			case <-q.snapshots:
			default:
			}
		}
	}
}

// Close drains the queue and waits for the consumer to finish, so the
// final checkpoint (if any) completes before the render returns
func (q *checkpointQueue) Close() {
	if q == nil {
		return
	}
	close(q.snapshots)
	<-q.done
}
