package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const selectedKey = "selected_prompt_id"

// DefaultID is used when no prompt has been selected yet.
const DefaultID = "default"

// Store persists the selected prompt id across sessions.
type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

func (s *Store) SelectedID(ctx context.Context) (string, error) {
	id, err := s.redis.Get(ctx, selectedKey).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultID, nil
	}
	if err != nil {
		return "", fmt.Errorf("load selected prompt: %w", err)
	}
	return id, nil
}

func (s *Store) SetSelectedID(ctx context.Context, id string) error {
	if _, ok := GetByID(id); !ok {
		return fmt.Errorf("unknown prompt id %q", id)
	}
	if err := s.redis.Set(ctx, selectedKey, id, 0).Err(); err != nil {
		return fmt.Errorf("save selected prompt: %w", err)
	}
	return nil
}
