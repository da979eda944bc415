package service

import (
	"context"
	"testing"
)

func TestWorkflowProviderRoundTrip(t *testing.T) {
	ctx := WithWorkflowProvider(context.Background(), WorkflowChapterInsight, " gemini ")
	if got := WorkflowFromContext(ctx); got != WorkflowChapterInsight {
		t.Errorf("workflow = %q", got)
	}
	if got := ProviderFromContext(ctx); got != "gemini" {
		t.Errorf("provider = %q", got)
	}
}

func TestFromContextDefaultsToUnknown(t *testing.T) {
	ctx := WithWorkflowProvider(context.Background(), "", "  ")
	if WorkflowFromContext(ctx) != "unknown" || ProviderFromContext(ctx) != "unknown" {
		t.Fatal("expected unknown for blank values")
	}
}
