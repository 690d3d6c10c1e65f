// Package pipeline defines the stage abstraction and the inputs and results
// of the convert, restore and probe stages.
package pipeline

import (
	"context"
)

// Stage is one file-level operation: reading its input, running the NV12
// codec or inspector, and writing its output. Execute should return ctx.Err()
// once ctx is done between steps.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a function to Stage, mainly for tests.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
