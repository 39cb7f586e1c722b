package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/api/metrics"
	"github.com/storefront/ecommerce-services/internal/core/domain"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// LedgerWriter persists a single ledger entry.
type LedgerWriter interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) error
}

// LedgerDispatcher routes ledger entries to a fixed set of workers using
// consistent hashing on the username, so entries of one account are written
// in the order they were produced.
type LedgerDispatcher struct {
	workers []chan *domain.LedgerEntry
	writer  LedgerWriter
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewLedgerDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewLedgerDispatcher(numWorkers int, writer LedgerWriter, log zerolog.Logger) *LedgerDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &LedgerDispatcher{
		workers: make([]chan *domain.LedgerEntry, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.LedgerEntry, channelBuffer)
	}
	return d
}

// Start launches the workers. When ctx is cancelled each worker writes the
// entries still buffered and returns; Wait blocks until all of them have.
func (d *LedgerDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker started by Start has exited.
func (d *LedgerDispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands entry to the worker owning its account. It blocks while that
// worker's buffer is full and gives up when ctx is done.
func (d *LedgerDispatcher) Enqueue(ctx context.Context, entry *domain.LedgerEntry) error {
	idx := d.shardIndex(entry.Username)
	select {
	case d.workers[idx] <- entry:
		metrics.LedgerQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *LedgerDispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *LedgerDispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.LedgerEntry) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx), id, ch)
			return
		case entry := <-ch:
			metrics.LedgerQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.write(ctx, id, entry)
		}
	}
}

// drain writes whatever is still buffered once the worker is told to stop.
func (d *LedgerDispatcher) drain(ctx context.Context, id int, ch <-chan *domain.LedgerEntry) {
	for {
		select {
		case entry := <-ch:
			d.write(ctx, id, entry)
		default:
			metrics.LedgerQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			return
		}
	}
}

func (d *LedgerDispatcher) write(ctx context.Context, id int, entry *domain.LedgerEntry) {
	if err := d.writer.Insert(ctx, entry); err != nil {
		metrics.LedgerWriteErrorsTotal.Inc()
		d.log.Error().Err(err).
			Str("username", entry.Username).
			Str("entry_id", entry.ID).
			Int("worker_id", id).
			Msg("ledger write failed")
	}
}
