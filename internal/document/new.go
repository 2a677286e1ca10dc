package document

import (
	"fmt"

	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/pkg/executor"
)

type implPandoc struct {
	executor executor.Executor
	logger   logger.Logger
}

type implNative struct {
	logger logger.Logger
}

// NewConverter returns the converter named by kind: "pandoc" or "native".
func NewConverter(kind string, exec executor.Executor, log logger.Logger) (Converter, error) {
	switch kind {
	case "pandoc", "":
		return &implPandoc{executor: exec, logger: log}, nil
	case "native":
		return &implNative{logger: log}, nil
	default:
		return nil, fmt.Errorf("unknown converter %q", kind)
	}
}
