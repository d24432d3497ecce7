package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
)

type stubBusinessStore struct {
	rows    []model.Business
	created []model.Business
	updated map[string]map[string]string
	deleted []string
	err     error
}

func (s *stubBusinessStore) Create(_ context.Context, b model.Business) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, b)
	return nil
}

func (s *stubBusinessStore) NameExists(_ context.Context, name string) (bool, error) {
	for _, b := range s.rows {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBusinessStore) List(_ context.Context, _ string) ([]model.Business, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubBusinessStore) Update(_ context.Context, id string, fields map[string]string) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = map[string]map[string]string{}
	}
	s.updated[id] = fields
	return nil
}

func (s *stubBusinessStore) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

// unreachableRedis returns a client whose every command fails fast, standing
// in for a redis outage.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
}

func newCacheUnderTest(store *stubBusinessStore) *CachedBusinessStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCachedBusinessStore(store, unreachableRedis(), logger)
}

func TestListFallsOpenWhenRedisDown(t *testing.T) {
	store := &stubBusinessStore{rows: []model.Business{
		{ID: "b1", Name: "Cut Above"},
		{ID: "b2", Name: "Trim Town"},
	}}
	c := newCacheUnderTest(store)

	got, err := c.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b1" {
		t.Fatalf("List = %+v, want the store's rows", got)
	}
}

func TestListPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("db down")
	c := newCacheUnderTest(&stubBusinessStore{err: wantErr})

	if _, err := c.List(context.Background(), ""); !errors.Is(err, wantErr) {
		t.Fatalf("List err = %v, want %v", err, wantErr)
	}
}

func TestWritesPassThroughWhenRedisDown(t *testing.T) {
	store := &stubBusinessStore{}
	c := newCacheUnderTest(store)
	ctx := context.Background()

	if err := c.Create(ctx, model.Business{ID: "b1", Name: "Cut Above", OwnerID: "o1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(store.created) != 1 || store.created[0].ID != "b1" {
		t.Fatalf("created = %+v", store.created)
	}

	if err := c.Update(ctx, "b1", map[string]string{"category": "barber"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if store.updated["b1"]["category"] != "barber" {
		t.Fatalf("updated = %+v", store.updated)
	}

	if err := c.Delete(ctx, "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "b1" {
		t.Fatalf("deleted = %+v", store.deleted)
	}
}

func TestWriteErrorsPropagate(t *testing.T) {
	wantErr := errors.New("db down")
	c := newCacheUnderTest(&stubBusinessStore{err: wantErr})
	ctx := context.Background()

	if err := c.Create(ctx, model.Business{ID: "b1"}); !errors.Is(err, wantErr) {
		t.Fatalf("Create err = %v, want %v", err, wantErr)
	}
	if err := c.Update(ctx, "b1", map[string]string{"name": "x"}); !errors.Is(err, wantErr) {
		t.Fatalf("Update err = %v, want %v", err, wantErr)
	}
	if err := c.Delete(ctx, "b1"); !errors.Is(err, wantErr) {
		t.Fatalf("Delete err = %v, want %v", err, wantErr)
	}
}

func TestListKeyScoping(t *testing.T) {
	if got := listKey(""); got != "businesses:all" {
		t.Fatalf("listKey(\"\") = %q", got)
	}
	if got := listKey("o1"); got != "businesses:owner:o1" {
		t.Fatalf("listKey(o1) = %q", got)
	}
}
