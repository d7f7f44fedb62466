package conversation

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestStore_SaveLoadDeleteRoundTrip(t *testing.T) {
	redisAddr := os.Getenv("ROADTRIP_REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("ROADTRIP_REDIS_ADDR not set; skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	store := NewStore(rdb)
	ctx := context.Background()
	id := "test_" + NewID()

	msgs := []Message{
		{ID: NewID(), Role: RoleUser, Content: "any good diners ahead?", TsMs: 1000},
		{ID: NewID(), Role: RoleAssistant, Content: "Two, actually.", TsMs: 2000},
	}
	if err := store.Save(ctx, id, msgs); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Content != msgs[0].Content {
		t.Errorf("unexpected messages %+v", loaded)
	}

	ids, err := store.Index(ctx)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
		}
	}
	if !found {
		t.Errorf("index missing %s", id)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	loaded, err = store.Load(ctx, id)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil after delete, got %+v", loaded)
	}
}
