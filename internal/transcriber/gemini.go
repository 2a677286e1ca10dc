package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/llm"
	"github.com/evarisis/actaflow/internal/logger"
)

const noSpeechToken = "NO_SPEECH"

const geminiPrompt = `Transcribe literalmente el audio adjunto. Idioma: %s.
Devuelve solo el texto hablado, sin comillas, etiquetas ni comentarios.
Si no hay voz inteligible responde exactamente ` + noSpeechToken + `.`

type implGemini struct {
	client llm.Client
	logger logger.Logger
}

func (g *implGemini) Transcribe(ctx context.Context, clip Clip) (string, error) {
	wavData, err := audio.EncodeWAV(clip.PCM, clip.SampleRate)
	if err != nil {
		return "", err
	}

	text, err := g.client.Generate(ctx, llm.Request{
		Prompt:    fmt.Sprintf(geminiPrompt, clip.Language),
		Audio:     wavData,
		AudioMIME: "audio/wav",
	})
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return "", ErrNoSpeech
		}
		// ctx expiry belongs to the caller's timeout handling
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if rejected(err) {
			return "", fmt.Errorf("gemini transcription: %w", err)
		}
		return "", &RequestError{Op: "gemini transcription", Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, noSpeechToken) {
		return "", ErrNoSpeech
	}
	return text, nil
}

// rejected reports a permanent refusal of this clip: a 4xx other than 429.
// Retrying it after reconnecting would fail the same way.
func rejected(err error) bool {
	if errors.Is(err, llm.ErrKeysExhausted) {
		return false
	}
	code, ok := llm.APIStatus(err)
	return ok && code >= 400 && code < 500 && code != 429
}
