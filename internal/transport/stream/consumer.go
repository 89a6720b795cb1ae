// Package stream consumes the candidate lifecycle feed and publishes match
// notifications over Redis Streams.
package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/db"
	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/metrics"
)

// Handler processes one lifecycle event end-to-end. A returned error means
// the event failed; errors wrapping domain.ErrValidation are permanent and
// the event is acknowledged anyway, everything else is left pending for
// redelivery.
type Handler interface {
	HandleCreated(ctx context.Context, doc *domcand.Document) error
	HandleUpdated(ctx context.Context, doc *domcand.Document) error
	HandleDeleted(ctx context.Context, id uuid.UUID) error
}

// streamer is the consumer interface over the stream store (ISP).
type streamer interface {
	XGroupCreate(ctx context.Context, stream, group string) error
	XReadGroup(
		ctx context.Context, group, consumer, id string,
		streams []string, count int64, block time.Duration,
	) ([]db.StreamMessage, error)
	XAck(ctx context.Context, stream, group string, ids ...string) error
}

// ConsumerConfig holds the feed consumption settings.
type ConsumerConfig struct {
	Group     string
	Name      string // consumer name prefix, worker index is appended
	Workers   int
	BatchSize int64
	Block     time.Duration
}

// Consumer runs a pool of workers, each processing events end-to-end.
// Events are acknowledged only after the handler succeeds; unacknowledged
// entries are replayed from the pending backlog when a worker starts.
type Consumer struct {
	store   streamer
	handler Handler
	cfg     ConsumerConfig
	log     *zap.Logger

	streams []string
}

// NewConsumer creates a lifecycle feed consumer.
func NewConsumer(store streamer, handler Handler, cfg ConsumerConfig, log *zap.Logger) *Consumer {
	if cfg.Group == "" {
		cfg.Group = "discovery"
	}
	if cfg.Name == "" {
		cfg.Name = "worker"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.Block <= 0 {
		cfg.Block = 5 * time.Second
	}
	return &Consumer{
		store:   store,
		handler: handler,
		cfg:     cfg,
		log:     log,
		streams: []string{StreamCandidateCreated, StreamCandidateUpdated, StreamCandidateDeleted},
	}
}

// Run creates the consumer groups and blocks processing events until the
// context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	for _, stream := range c.streams {
		if err := c.store.XGroupCreate(ctx, stream, c.cfg.Group); err != nil {
			return fmt.Errorf("create group on %s: %w", stream, err)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < c.cfg.Workers; i++ {
		wg.Add(1)
		name := fmt.Sprintf("%s-%d", c.cfg.Name, i)
		go func() {
			defer wg.Done()
			c.runWorker(ctx, name)
		}()
	}
	wg.Wait()
	return nil
}

func (c *Consumer) runWorker(ctx context.Context, name string) {
	log := c.log.With(zap.String("consumer", name))

	// Replay this consumer's pending backlog before taking new messages, so
	// entries left unacknowledged by a crash are not lost.
	c.drainBacklog(ctx, name, log)

	for ctx.Err() == nil {
		msgs, err := c.store.XReadGroup(ctx, c.cfg.Group, name, ">", c.streams, c.cfg.BatchSize, c.cfg.Block)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("read from feed failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		for _, msg := range msgs {
			c.processMessage(ctx, msg, log)
		}
	}
}

// drainBacklog replays this consumer's pending entries stream by stream. The
// cursor advances past every entry, including ones that fail transiently, so
// a single stuck entry cannot keep the worker from reaching new messages.
// Entries that fail transiently stay pending and are replayed on the next
// start; permanent failures are acknowledged by processMessage.
func (c *Consumer) drainBacklog(ctx context.Context, name string, log *zap.Logger) {
	for _, stream := range c.streams {
		cursor := "0"
		for ctx.Err() == nil {
			msgs, err := c.store.XReadGroup(ctx, c.cfg.Group, name, cursor, []string{stream}, c.cfg.BatchSize, 0)
			if err != nil {
				log.Warn("backlog read failed",
					zap.String("stream", stream),
					zap.Error(err))
				break
			}
			if len(msgs) == 0 {
				break
			}
			for _, msg := range msgs {
				c.processMessage(ctx, msg, log)
				cursor = msg.ID
			}
		}
	}
}

// processMessage dispatches one entry and acknowledges it on success. A
// permanent failure (malformed payload, validation rejection) is also
// acknowledged: redelivery cannot repair the event and an unacked copy would
// poison the backlog. Transient failures leave the entry pending.
func (c *Consumer) processMessage(ctx context.Context, msg db.StreamMessage, log *zap.Logger) {
	kind := eventKind(msg.Stream)
	start := time.Now()

	err := c.dispatch(ctx, msg)
	metrics.EventDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.EventsTotal.WithLabelValues(kind, "rejected").Inc()
			log.Error("event rejected, acknowledging",
				zap.String("stream", msg.Stream),
				zap.String("id", msg.ID),
				zap.Error(err))
			c.ack(ctx, msg, log)
			return
		}

		metrics.EventsTotal.WithLabelValues(kind, "error").Inc()
		log.Error("event processing failed, leaving pending",
			zap.String("stream", msg.Stream),
			zap.String("id", msg.ID),
			zap.Error(err))
		return
	}

	metrics.EventsTotal.WithLabelValues(kind, "ok").Inc()
	c.ack(ctx, msg, log)
}

func (c *Consumer) ack(ctx context.Context, msg db.StreamMessage, log *zap.Logger) {
	if err := c.store.XAck(ctx, msg.Stream, c.cfg.Group, msg.ID); err != nil {
		log.Warn("ack failed, event may be redelivered",
			zap.String("stream", msg.Stream),
			zap.String("id", msg.ID),
			zap.Error(err))
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg db.StreamMessage) error {
	switch msg.Stream {
	case StreamCandidateCreated:
		doc, err := parseCandidateEvent(msg.Values)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return c.handler.HandleCreated(ctx, doc)

	case StreamCandidateUpdated:
		doc, err := parseCandidateEvent(msg.Values)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return c.handler.HandleUpdated(ctx, doc)

	case StreamCandidateDeleted:
		id, err := parseDeletedEvent(msg.Values)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return c.handler.HandleDeleted(ctx, id)

	default:
		return fmt.Errorf("%w: unknown stream %q", domain.ErrValidation, msg.Stream)
	}
}

func eventKind(stream string) string {
	switch stream {
	case StreamCandidateCreated:
		return "created"
	case StreamCandidateUpdated:
		return "updated"
	case StreamCandidateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}
