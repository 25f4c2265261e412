package lang

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/source"
)

// BatchResult is one fragment's outcome within a Batch call.
type BatchResult struct {
	Source     *source.Source
	Expr       Expr
	Result     combinator.Result
	Diagnostic *diagnostic.Diagnostic
}

// Batch parses each source concurrently, one Cursor per goroutine per
// the grammar's read-only sharing discipline: the grammar description
// built once in this package is immutable and safe to drive from
// multiple threads as long as each invocation supplies its own
// Cursor, which ParseProgram already does per call.
//
// onProgress, if non-nil, is called once per finished source from
// that source's own goroutine; callers driving a progress indicator
// (e.g. cmd/climod.Spinner.Advance) must tolerate concurrent calls.
func Batch(ctx context.Context, srcs []*source.Source, onProgress func()) ([]BatchResult, error) {
	results := make([]BatchResult, len(srcs))

	group, _ := errgroup.WithContext(ctx)
	for i, src := range srcs {
		i, src := i, src
		group.Go(func() error {
			expr, res, diag := ParseProgram(src)
			results[i] = BatchResult{Source: src, Expr: expr, Result: res, Diagnostic: diag}
			if onProgress != nil {
				onProgress()
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
