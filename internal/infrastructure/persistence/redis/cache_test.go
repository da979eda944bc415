package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "thelight-api/pkg/errors"
)

// fakeRedis 只实现缓存用到的 Get/Set
type fakeRedis struct {
	redis.Cmdable

	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch v, ok := f.data[key]; {
	case f.getErr != nil:
		cmd.SetErr(f.getErr)
	case ok:
		cmd.SetVal(v)
	default:
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = ttl
	cmd.SetVal("OK")
	return cmd
}

func TestGetOrLoadSafe_LoadsOnceThenHits(t *testing.T) {
	rdb := newFakeRedis()
	c := newCache(rdb, "test")
	loads := 0
	loader := func(context.Context) (string, error) {
		loads++
		return "In the beginning", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoadSafe(context.Background(), "scripture:kjv:Genesis:1", time.Hour, loader)
		if err != nil {
			t.Fatalf("GetOrLoadSafe: %v", err)
		}
		if got != "In the beginning" {
			t.Fatalf("got %q", got)
		}
	}
	if loads != 1 {
		t.Fatalf("loader called %d times", loads)
	}
	if rdb.ttls["scripture:kjv:Genesis:1"] != time.Hour {
		t.Errorf("ttl = %v", rdb.ttls["scripture:kjv:Genesis:1"])
	}
}

func TestGetOrLoadSafe_ReadErrorIsCacheError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	c := newCache(rdb, "test")

	_, err := c.GetOrLoadSafe(context.Background(), "k", time.Minute, func(context.Context) (string, error) {
		t.Fatal("loader must not run when the cache read fails")
		return "", nil
	})
	if !apperrors.HasCode(err, apperrors.CodeCacheError) {
		t.Fatalf("expected cache error, got %v", err)
	}
}

func TestGetOrLoadSafe_LoaderErrorPassesThrough(t *testing.T) {
	c := newCache(newFakeRedis(), "test")
	want := apperrors.New(apperrors.CodeChapterNotFound, "chapter not found")

	_, err := c.GetOrLoadSafe(context.Background(), "k", time.Minute, func(context.Context) (string, error) {
		return "", want
	})
	if !errors.Is(err, apperrors.ErrChapterNotFound) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestGetOrLoadSafe_WriteErrorStillReturnsValue(t *testing.T) {
	rdb := newFakeRedis()
	rdb.setErr = errors.New("READONLY")
	c := newCache(rdb, "test")

	got, err := c.GetOrLoadSafe(context.Background(), "k", time.Minute, func(context.Context) (string, error) {
		return "value", nil
	})
	if err != nil || got != "value" {
		t.Fatalf("got %q, %v", got, err)
	}
}
