package llm

import "context"

// Client sends one single-turn request to a generative model.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is one user turn: a prompt, optionally with inline audio.
type Request struct {
	Prompt      string
	Audio       []byte
	AudioMIME   string
	// Temperature nil leaves the model default.
	Temperature *float32
	MaxTokens   int32
}
