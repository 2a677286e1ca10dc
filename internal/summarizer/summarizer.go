package summarizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evarisis/actaflow/internal/document"
	"github.com/evarisis/actaflow/internal/llm"
)

const (
	msgEmptyTranscript = "La transcripción está vacía, no se puede generar el acta."
	msgEngineMissing   = "Error Crítico: No se pudo encontrar Pandoc. Asegúrate de que esté instalado en el sistema y disponible en el PATH. No se pudo generar el acta formateada."
	msgLLMTimeout      = "La IA no respondió dentro del tiempo límite (%s)."
	msgFailed          = "Error al generar el Acta Oficial: %v"
	msgSaved           = "Acta Oficial guardada como %s"
)

var errEmptyAnswer = errors.New("empty answer from model")

// Run reads the literal minutes, asks the model for the official minutes and
// converts the answer next to the literal document. The literal document is
// never modified.
func (s *implSummarizer) Run(ctx context.Context, literalPath string, meeting Meeting, progress ProgressFunc) Result {
	if progress == nil {
		progress = func(float64, string) {}
	}

	progress(0.1, "Iniciando formateo del Acta Oficial...")

	paras, err := document.ReadParagraphs(literalPath)
	if err != nil {
		return s.fail(ctx, err)
	}
	var lines []string
	for _, p := range paras {
		if strings.TrimSpace(p) != "" {
			lines = append(lines, p)
		}
	}
	if len(lines) == 0 {
		return Result{Message: msgEmptyTranscript}
	}

	progress(0.4, "Transcripción leída. Construyendo prompt para IA...")
	prompt := s.buildPrompt(strings.Join(lines, "\n"), meeting)

	progress(0.5, "Contactando a la IA para generar el acta formateada...")
	callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	markdown, err := s.client.Generate(callCtx, llm.Request{
		Prompt:      prompt,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			s.logger.Error(ctx, "Model call exceeded %s", s.opts.Timeout)
			return Result{Message: fmt.Sprintf(msgLLMTimeout, s.opts.Timeout), Err: err}
		}
		return s.fail(ctx, err)
	}
	if strings.TrimSpace(markdown) == "" {
		return s.fail(ctx, errEmptyAnswer)
	}

	progress(0.8, "Acta en Markdown recibida. Convirtiendo a Word...")
	out := OfficialPath(literalPath, s.opts.Suffix)
	if err := s.converter.Convert(ctx, markdown, out); err != nil {
		if errors.Is(err, document.ErrEngineNotFound) {
			s.logger.Error(ctx, "Conversion engine not found: %v", err)
			return Result{Message: msgEngineMissing, Err: err}
		}
		return s.fail(ctx, err)
	}

	progress(1.0, "¡Acta Oficial generada con éxito!")
	s.logger.Info(ctx, "[DONE] %s -> %s", literalPath, out)
	return Result{
		Success:      true,
		Message:      fmt.Sprintf(msgSaved, filepath.Base(out)),
		OfficialPath: out,
	}
}

// OfficialPath derives the official document path from the literal one.
func OfficialPath(literalPath, suffix string) string {
	ext := filepath.Ext(literalPath)
	return strings.TrimSuffix(literalPath, ext) + suffix + ".docx"
}

func (s *implSummarizer) fail(ctx context.Context, err error) Result {
	s.logger.Error(ctx, "Official minutes failed: %v", err)
	return Result{Message: fmt.Sprintf(msgFailed, err), Err: err}
}
