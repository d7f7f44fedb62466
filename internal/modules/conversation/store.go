// README: Redis-backed conversation persistence keyed by conversation id.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "conversation_"
	indexKey  = "conversation_index"
)

// CachedConversation is the stored shape of one conversation.
type CachedConversation struct {
	Messages []Message `json:"messages"`
	TsMs     int64     `json:"timestamp"`
}

type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

// Save writes the conversation and records its id in the index.
func (s *Store) Save(ctx context.Context, id string, messages []Message) error {
	cached := CachedConversation{Messages: messages, TsMs: time.Now().UnixMilli()}
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := s.redis.Set(ctx, keyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}

	ids, err := s.Index(ctx)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	ids = append(ids, id)
	data, err = json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := s.redis.Set(ctx, indexKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save index: %w", err)
	}
	return nil
}

// Load returns the stored messages, or nil when the conversation is unknown.
func (s *Store) Load(ctx context.Context, id string) ([]Message, error) {
	data, err := s.redis.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	var cached CachedConversation
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return cached.Messages, nil
}

// Index lists all known conversation ids.
func (s *Store) Index(ctx context.Context) ([]string, error) {
	data, err := s.redis.Get(ctx, indexKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return ids, nil
}

// Delete removes the conversation and drops it from the index.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	ids, err := s.Index(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	data, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := s.redis.Set(ctx, indexKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save index: %w", err)
	}
	return nil
}

// ClearAll deletes every indexed conversation and the index itself.
func (s *Store) ClearAll(ctx context.Context) error {
	ids, err := s.Index(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
			return fmt.Errorf("delete conversation %s: %w", id, err)
		}
	}
	if err := s.redis.Del(ctx, indexKey).Err(); err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	return nil
}
