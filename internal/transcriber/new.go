package transcriber

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/evarisis/actaflow/internal/config"
	"github.com/evarisis/actaflow/internal/llm"
	"github.com/evarisis/actaflow/internal/logger"
)

// New picks the backend named in cfg.Transcription.Backend. The gemini
// backend shares client with the summarizer.
func New(cfg *config.Config, client llm.Client, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case "gemini", "":
		if client == nil {
			return nil, fmt.Errorf("gemini backend requires an LLM client")
		}
		return &implGemini{client: client, logger: log}, nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai.api_key is required for the openai backend")
		}
		return &implOpenAI{
			apiKey:  cfg.OpenAI.APIKey,
			model:   cfg.OpenAI.Model,
			baseURL: strings.TrimRight(cfg.OpenAI.BaseURL, "/"),
			http:    &http.Client{},
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", cfg.Transcription.Backend)
	}
}
