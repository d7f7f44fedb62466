// README: Location store; Redis blobs for the simulation setup, Postgres for fix snapshots.
package location

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	routeKey       = "simulation_route"
	destinationKey = "simulation_destination"
)

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// SaveRoute stores the simulation route as a whole-value JSON blob.
func (s *Store) SaveRoute(ctx context.Context, route []Position) error {
	blob, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, routeKey, blob, 0).Err()
}

// LoadRoute returns the stored route, or nil when none was saved.
func (s *Store) LoadRoute(ctx context.Context) ([]Position, error) {
	blob, err := s.redis.Get(ctx, routeKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var route []Position
	if err := json.Unmarshal([]byte(blob), &route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *Store) SaveDestination(ctx context.Context, d Position) error {
	blob, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, destinationKey, blob, 0).Err()
}

// LoadDestination returns the stored destination, or nil when none was saved.
func (s *Store) LoadDestination(ctx context.Context) (*Position, error) {
	blob, err := s.redis.Get(ctx, destinationKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d Position
	if err := json.Unmarshal([]byte(blob), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// AppendSnapshot writes a durable copy of an admitted fix.
func (s *Store) AppendSnapshot(ctx context.Context, p Position) error {
	if s.db == nil {
		return nil
	}
	recordedAt := time.UnixMilli(p.TsMs)
	if p.TsMs == 0 {
		recordedAt = time.Now()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO location_snapshots (lat, lng, accuracy, recorded_at)
		VALUES ($1, $2, $3, $4)
	`, p.Lat, p.Lng, p.Accuracy, recordedAt.UTC())
	return err
}
