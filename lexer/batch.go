// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/cscan/types"
)

type (
	// Result holds the outcome of scanning one source in a batch.
	Result struct {
		Err    error
		Tokens []Token
		Index  int // The source's index in the batch
	}

	// batch holds the state of a ScanBatch operation.
	batch struct {
		scanner  *Scanner
		poolSize int
	}

	// BatchOption defines the ScanBatch functional option type.
	BatchOption func(*batch)
)

const defPoolSize = 8

// Batch scanning errors.
var (
	ErrBatchFailures = errors.New("batch had failed sources")
)

// WithPoolSize configures the number of goroutines scanning sources.
func WithPoolSize(size int) BatchOption {
	return func(b *batch) {
		if size > 0 {
			b.poolSize = size
		}
	}
}

// WithBatchScanner configures the Scanner used for every source.
func WithBatchScanner(s *Scanner) BatchOption {
	return func(b *batch) {
		if s != nil {
			b.scanner = s
		}
	}
}

// ScanBatch scans independent sources concurrently.
//
// results follows the order of sources. A source failing to scan doesn't stop the others; err
// wraps ErrBatchFailures with the number of failed sources. Sources not yet scheduled when ctx is
// canceled hold the context's error.
func ScanBatch(ctx context.Context, sources []string, opts ...BatchOption) (results []Result, err error) {
	b := &batch{scanner: defScanner, poolSize: defPoolSize}
	for _, opt := range opts {
		opt(b)
	}
	logger := b.scanner.Logger()

	pool, err := ants.NewPool(b.poolSize, ants.WithLogger(logger), ants.WithPanicHandler(func(r interface{}) {
		logger.Errorf("batch scan %v: %v", ErrPanicked, r)
	}))
	if err != nil {
		return
	}
	defer pool.Release()

	results = make([]Result, len(sources))
	failures := new(types.SafeCounter)
	wg := new(sync.WaitGroup)

	for index := range sources {
		index := index
		results[index].Index = index

		if err = ctx.Err(); err != nil {
			results[index].Err = err
			failures.Inc()
			continue
		}

		wg.Add(1)
		if err = pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("batch scan %v: %v", ErrPanicked, r)
					results[index].Tokens, results[index].Err = nil, fmt.Errorf("%w: %v", ErrPanicked, r)
					failures.Inc()
				}
				wg.Done()
			}()

			tokens, scanErr := b.scanner.Scan(sources[index])
			if scanErr != nil {
				failures.Inc()
			}
			results[index].Tokens, results[index].Err = tokens, scanErr
		}); err != nil {
			wg.Done()
			results[index].Err = err
			failures.Inc()
		}
	}
	wg.Wait()

	err = nil
	if n := failures.Value(); n > 0 {
		err = fmt.Errorf("%w: %d of %d", ErrBatchFailures, n, len(sources))
	}

	return
}
