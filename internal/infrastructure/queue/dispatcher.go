package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminastudio/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	sendTimeout    = 30 * time.Second
)

type mailJob struct {
	to   string
	name string
}

// MailDispatcher delivers best-effort mail (welcome messages) off the request
// path. Jobs shard to a fixed set of workers by recipient, so mail for one
// address is sent in enqueue order. Failures are logged and dropped; nothing
// here is allowed to fail a request.
type MailDispatcher struct {
	workers []chan mailJob
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan mailJob, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan mailJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// EnqueueWelcome queues a welcome mail. Drops the job if the worker's buffer
// is full rather than blocking the caller.
func (d *MailDispatcher) EnqueueWelcome(to, name string) {
	job := mailJob{to: to, name: name}
	select {
	case d.workers[d.shardIndex(to)] <- job:
	default:
		d.log.Warn().Str("to", to).Msg("mail queue full, welcome mail dropped")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan mailJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			if err := d.mailer.SendWelcome(sendCtx, job.to, job.name); err != nil {
				d.log.Error().Err(err).
					Str("to", job.to).
					Int("worker_id", id).
					Msg("welcome mail failed")
			}
			cancel()
		}
	}
}
