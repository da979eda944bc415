package insight

import (
	"context"

	"thelight-api/internal/domain/entity"
	"thelight-api/internal/workflow/port"
)

type fakeGenerator struct {
	name   string
	result *entity.GenerationResult
	err    error
	calls  int
	last   string
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(_ context.Context, req entity.GenerationRequest, sourceText string) (*entity.GenerationResult, error) {
	f.calls++
	f.last = sourceText
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &entity.GenerationResult{Summary: "ok from " + f.name, Reference: req.Reference(), Provider: f.name}, nil
}

type fakeTextGenerator struct {
	name   string
	text   string
	err    error
	prompt port.Prompt
}

func (f *fakeTextGenerator) Name() string { return f.name }

func (f *fakeTextGenerator) Generate(_ context.Context, p port.Prompt) (*port.Completion, error) {
	f.prompt = p
	if f.err != nil {
		return nil, f.err
	}
	return &port.Completion{Text: f.text, Model: "fake-model"}, nil
}

type fakeSource struct {
	text  string
	err   error
	calls int
}

func (f *fakeSource) ChapterText(context.Context, string, int) (string, error) {
	f.calls++
	return f.text, f.err
}
