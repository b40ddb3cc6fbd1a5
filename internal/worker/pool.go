package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueTicket = "jobs:ticket"
	QueueCorte  = "jobs:corte"

	maxJobAttempts = 3
)

// Job is the generic envelope for all async tasks. Attempts counts deliveries;
// after maxJobAttempts failures the job lands in the DLQ.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes one job payload. A returned error re-enqueues the job
// until the attempt budget runs out.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueTicket pushes a receipt-email job to Redis.
func (d *Dispatcher) EnqueueTicket(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueTicket, "ticket", payload)
}

// EnqueueCorte pushes a daily-summary job to Redis.
func (d *Dispatcher) EnqueueCorte(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueCorte, "corte", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues with a fixed number of goroutines.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler
}

// NewPool maps job types to their handlers. Jobs with an unregistered type go
// straight to the DLQ.
func NewPool(rdb *redis.Client, handlers map[string]Handler) *Pool {
	return &Pool{rdb: rdb, handlers: handlers}
}

// Start launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	queues := []string{QueueTicket, QueueCorte}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler, ok := p.handlers[job.Type]
	if !ok {
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, "no handler registered", job.Attempts)
		return
	}

	job.Attempts++
	if err := handler.Process(ctx, job.Payload); err != nil {
		if job.Attempts >= maxJobAttempts {
			SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		log.Warn().Str("type", job.Type).Int("attempts", job.Attempts).Err(err).
			Msg("job failed, re-enqueueing")
		if encoded, mErr := json.Marshal(job); mErr == nil {
			_ = p.rdb.LPush(ctx, queue, encoded).Err()
		}
		return
	}
	log.Info().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
