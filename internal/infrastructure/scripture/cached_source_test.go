package scripture

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "thelight-api/pkg/errors"
)

type countingSource struct {
	text  string
	err   error
	calls int
}

func (s *countingSource) ChapterText(context.Context, string, int) (string, error) {
	s.calls++
	return s.text, s.err
}

type mapCache struct {
	data    map[string]string
	readErr error
}

func (c *mapCache) GetOrLoadSafe(ctx context.Context, key string, _ time.Duration, loader func(context.Context) (string, error)) (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	v, err := loader(ctx)
	if err != nil {
		return "", err
	}
	c.data[key] = v
	return v, nil
}

func TestCachedSource_LoadsOncePerKey(t *testing.T) {
	next := &countingSource{text: "chapter text"}
	cache := &mapCache{data: map[string]string{}}
	src := NewCachedSource(next, cache, "kjv", time.Hour)

	for i := 0; i < 3; i++ {
		if text, err := src.ChapterText(context.Background(), "John", 3); err != nil || text != "chapter text" {
			t.Fatalf("got %q, %v", text, err)
		}
	}
	if next.calls != 1 {
		t.Fatalf("source called %d times", next.calls)
	}
	if _, ok := cache.data["scripture:kjv:John:3"]; !ok {
		t.Errorf("unexpected cache keys %v", cache.data)
	}
}

func TestCachedSource_CacheErrorReadsSource(t *testing.T) {
	next := &countingSource{text: "direct"}
	cache := &mapCache{readErr: apperrors.Wrap(errors.New("dial tcp"), apperrors.CodeCacheError, "cache read failed")}

	text, err := NewCachedSource(next, cache, "kjv", time.Hour).ChapterText(context.Background(), "John", 3)
	if err != nil || text != "direct" {
		t.Fatalf("got %q, %v", text, err)
	}
}

func TestCachedSource_NotFoundIsNotCached(t *testing.T) {
	next := &countingSource{err: apperrors.New(apperrors.CodeChapterNotFound, "John 99 was not found")}
	cache := &mapCache{data: map[string]string{}}
	src := NewCachedSource(next, cache, "kjv", time.Hour)

	for i := 0; i < 2; i++ {
		if _, err := src.ChapterText(context.Background(), "John", 99); !errors.Is(err, apperrors.ErrChapterNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	}
	if next.calls != 2 || len(cache.data) != 0 {
		t.Fatalf("calls=%d cache=%v", next.calls, cache.data)
	}
}

func TestPlaceholderSource(t *testing.T) {
	text, err := NewPlaceholderSource().ChapterText(context.Background(), "Ruth", 2)
	if err != nil || !strings.Contains(text, "Ruth Chapter 2") {
		t.Fatalf("got %q, %v", text, err)
	}
}
