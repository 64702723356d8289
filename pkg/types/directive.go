package types

import (
	"context"
)

// Invocation is one occurrence of a directive in a file's content.
// Start and End are byte offsets into the content that was scanned.
type Invocation struct {
	Start   int
	End     int
	Text    string
	Name    string
	RawArgs string
}

// CompileFunc expands another file with the given context. Directives use
// it to recurse into included files.
type CompileFunc func(ctx context.Context, path string, scope Context) (*CompiledFile, error)

// Call carries everything a directive needs to expand one invocation
type Call struct {
	Invocation Invocation
	File       string
	Context    Context
	Compile    CompileFunc
}

// Expansion is the result of expanding one invocation
type Expansion struct {
	// Text replaces the invocation unless Keep is set
	Text string
	// Keep leaves the directive text in place
	Keep bool
	// Includes lists files pulled in while expanding
	Includes []string
	// Unresolved lists variable names that could not be looked up
	Unresolved []string
}

// Directive expands invocations of a single directive name
type Directive interface {
	// Name returns the directive name as written after @@
	Name() string

	// Expand produces the replacement for one invocation
	Expand(ctx context.Context, call Call) (Expansion, error)
}
