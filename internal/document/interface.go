package document

import (
	"context"
	"errors"
)

// Converter renders Markdown into a .docx file.
type Converter interface {
	Convert(ctx context.Context, markdown, outputPath string) error
}

// ErrEngineNotFound is returned when the external conversion engine is not installed.
var ErrEngineNotFound = errors.New("conversion engine not found")
