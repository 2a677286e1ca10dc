package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/logger"
)

// OpenAI-compatible speech-to-text via audio/transcriptions
type implOpenAI struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

type openAIResp struct {
	Text string `json:"text"`
}

func (o *implOpenAI) Transcribe(ctx context.Context, clip Clip) (string, error) {
	wavData, err := audio.EncodeWAV(clip.PCM, clip.SampleRate)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model", o.model); err != nil {
		return "", err
	}
	if lang := isoLanguage(clip.Language); lang != "" {
		if err := mw.WriteField("language", lang); err != nil {
			return "", err
		}
	}
	fw, err := mw.CreateFormFile("file", "segment.wav")
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(wavData); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := o.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &RequestError{Op: "openai transcription", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		httpErr := fmt.Errorf("openai http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", &RequestError{Op: "openai transcription", Err: httpErr}
		}
		return "", httpErr
	}

	var or openAIResp
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	text := strings.TrimSpace(or.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// isoLanguage reduces a BCP-47 tag like es-ES to the ISO-639-1 code the API expects.
func isoLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
