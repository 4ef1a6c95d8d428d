package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"slate/internal/classify"
	"slate/internal/tokenio"
)

// Result holds the classified token stream for one dump file.
type Result struct {
	Path   string
	Source string
	Tokens []classify.ClassifiedToken
}

// ClassifyFile decodes one dump file and classifies its token stream.
func ClassifyFile(path string) (*Result, error) {
	dump, err := tokenio.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := dump.ToRawTokens()
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:   path,
		Source: dump.Source,
		Tokens: classify.ClassifyAll(raw),
	}, nil
}

// ClassifyPaths classifies multiple dump files concurrently. Results
// keep the input order regardless of completion order; the first
// failure cancels the remaining work.
func ClassifyPaths(ctx context.Context, paths []string) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Result, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := ClassifyFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
