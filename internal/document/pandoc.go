package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evarisis/actaflow/pkg/executor"
)

const pandocBinary = "pandoc"

// Convert writes the Markdown to a scratch directory and runs pandoc on it.
func (c *implPandoc) Convert(ctx context.Context, markdown, outputPath string) error {
	if _, err := c.executor.LookPath(pandocBinary); err != nil {
		if errors.Is(err, executor.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrEngineNotFound, pandocBinary)
		}
		return fmt.Errorf("look up %s: %w", pandocBinary, err)
	}

	out, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	work, err := os.MkdirTemp("", "actaflow-pandoc-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(work)

	if err := os.WriteFile(filepath.Join(work, "acta.md"), []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	if _, err := c.executor.ExecuteInDir(ctx, work, pandocBinary,
		"acta.md", "-f", "markdown", "-t", "docx", "-o", out); err != nil {
		return fmt.Errorf("pandoc: %w", err)
	}

	c.logger.Debug(ctx, "Pandoc conversion written to %s", out)
	return nil
}
