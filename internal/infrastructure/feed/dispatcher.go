// Package feed turns store change notifications into the live
// recent-activity feed shown on the dashboard.
package feed

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/metrics"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the subject id, so entries for the same entity
// are recorded in order. Enqueue never blocks: when a worker channel is
// full the entry is dropped — the feed is best-effort and must never
// stall an API mutation.
type Dispatcher struct {
	workers []chan domain.ActivityEntry
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to the worker responsible for its subject.
func (d *Dispatcher) Enqueue(entry domain.ActivityEntry) {
	idx := d.shardIndex(entry.SubjectID)
	select {
	case d.workers[idx] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.ActivityDroppedTotal.Inc()
		d.log.Warn().
			Str("subject_id", entry.SubjectID).
			Int("worker_id", idx).
			Msg("activity queue full, dropping entry")
	}
}

// shardIndex maps a subject id deterministically to a worker index.
func (d *Dispatcher) shardIndex(subjectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	gauge := metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			gauge.Dec()
			if err := d.service.Record(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("subject_id", entry.SubjectID).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
