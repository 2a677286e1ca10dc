package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/evarisis/actaflow/internal/logger"
	"google.golang.org/genai"
)

var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

type implGemini struct {
	clients    []*genai.Client
	currentKey int
	mu         sync.Mutex
	logger     logger.Logger
	model      string
}

// New builds one Gemini client per API key up front. Requests rotate to the
// next key when the current one is rate limited.
func New(ctx context.Context, apiKeys []string, model string, log logger.Logger) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}

	clients := make([]*genai.Client, 0, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &implGemini{
		clients: clients,
		logger:  log,
		model:   model,
	}, nil
}
