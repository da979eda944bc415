package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestFromContextAddsRequestScopedFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { Init("info", "json") })

	ctx := WithContext(context.Background(), RequestIDKey, "req-1")
	ctx = WithContext(ctx, TraceIDKey, "trace-1")
	Info(ctx, "hello", "book", "John")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "req-1" || entry["trace_id"] != "trace-1" {
		t.Fatalf("missing context fields: %v", entry)
	}
	if entry["book"] != "John" {
		t.Fatalf("missing call-site field: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warning", "text")
	t.Cleanup(func() { Init("info", "json") })

	Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	Warn(context.Background(), "kept")
	if buf.Len() == 0 {
		t.Fatalf("warn should be written")
	}
}
