package secondary

import (
	"context"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

// RunRequest is one program dispatched to the remote execution service
type RunRequest struct {
	Language domain.Language
	Program  string
	Stdin    string
}

// RunResult distinguishes compile failure, runtime failure and a successful
// run with captured output. Compile fields are zero for interpreted
// languages.
type RunResult struct {
	CompileStdout string
	CompileStderr string
	CompileCode   int
	Stdout        string
	Stderr        string
	ExitCode      int
}

// CompileFailed reports whether the compile stage rejected the program
func (r *RunResult) CompileFailed() bool {
	return r.CompileCode != 0
}

// SandboxRunner executes untrusted programs in the remote, isolated
// execution service. One attempt per call; the caller owns timeouts through
// ctx.
type SandboxRunner interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}
