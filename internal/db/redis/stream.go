package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/rueidis"

	"github.com/saintgiong/discovery/internal/db"
)

// XAdd appends an entry to a stream with an auto-generated ID.
func (s *Store) XAdd(ctx context.Context, stream string, values map[string]string) (string, error) {
	cmd := s.b().Xadd().Key(stream).Id("*").FieldValue()
	for k, v := range values {
		cmd = cmd.FieldValue(k, v)
	}
	id, err := s.do(ctx, cmd.Build()).ToString()
	if err != nil {
		return "", &db.Error{Op: db.OpXAdd, Err: err}
	}
	return id, nil
}

// XGroupCreate creates a consumer group reading from the start of the
// stream, creating the stream if absent. An existing group is not an error.
func (s *Store) XGroupCreate(ctx context.Context, stream, group string) error {
	cmd := s.b().XgroupCreate().Key(stream).Group(group).Id("0").Mkstream().Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "BUSYGROUP") {
			return nil
		}
		return &db.Error{Op: db.OpXGroup, Err: err}
	}
	return nil
}

// XReadGroup reads messages for the consumer group. A block timeout with no
// messages returns (nil, nil).
func (s *Store) XReadGroup(
	ctx context.Context, group, consumer, id string,
	streams []string, count int64, block time.Duration,
) ([]db.StreamMessage, error) {
	b := s.b().Xreadgroup().Group(group, consumer).Count(count)

	var cmd rueidis.Completed
	if block > 0 {
		cmd = b.Block(block.Milliseconds()).Streams().Key(streams...).Id(repeatID(id, len(streams))...).Build()
	} else {
		cmd = b.Streams().Key(streams...).Id(repeatID(id, len(streams))...).Build()
	}

	res, err := s.do(ctx, cmd).AsXRead()
	if err != nil {
		if errors.Is(err, rueidis.Nil) {
			return nil, nil
		}
		return nil, &db.Error{Op: db.OpXReadGroup, Err: err}
	}

	var out []db.StreamMessage
	for _, stream := range streams {
		for _, entry := range res[stream] {
			out = append(out, db.StreamMessage{
				Stream: stream,
				ID:     entry.ID,
				Values: entry.FieldValues,
			})
		}
	}
	return out, nil
}

// XAck acknowledges processed messages for the group.
func (s *Store) XAck(ctx context.Context, stream, group string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	cmd := s.b().Xack().Key(stream).Group(group).Id(ids...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpXAck, Err: err}
	}
	return nil
}

func repeatID(id string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = id
	}
	return ids
}
