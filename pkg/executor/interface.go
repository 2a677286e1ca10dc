package executor

import (
	"context"
	"errors"
)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

// ErrNotFound is returned by LookPath when the binary is not on PATH.
var ErrNotFound = errors.New("executable not found")
