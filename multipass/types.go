// Package multipass provides tunable options and error definitions
// for coarse-to-fine windowed alignment.
package multipass

import (
	"context"
	"errors"
)

// ErrNoPasses is returned when the window list is empty.
var ErrNoPasses = errors.New("multipass: at least one window length required")

// Option configures the refinement loop via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the pass loop.
type Options struct {
	// Ctx allows cancellation and deadlines; it is forwarded to every
	// core alignment call.
	Ctx context.Context

	// OnNarrowWindow is called before a pass whose window looks
	// suspiciously small relative to the sequences being aligned.
	// The pass still runs; the hook is a warning channel only.
	OnNarrowWindow func(pass, windowMaxLength int)

	// OnDegenerate is forwarded to the core aligner; see
	// dtw.WithOnDegenerate.
	OnDegenerate func(column, row int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnNarrowWindow: func(int, int) {},
		OnDegenerate:   func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnNarrowWindow registers a warning callback for undersized windows.
func WithOnNarrowWindow(fn func(pass, windowMaxLength int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNarrowWindow = fn
		}
	}
}

// WithOnDegenerate registers the degenerate-band diagnostic forwarded to
// every core alignment call.
func WithOnDegenerate(fn func(column, row int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDegenerate = fn
		}
	}
}
