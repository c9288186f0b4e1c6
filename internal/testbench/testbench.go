// Package testbench measures container throughput. Each worker owns its own
// container and performs fill/drain cycles until the deadline, so the numbers
// reflect single-owner operation cost rather than contention.
package testbench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

var ErrInvalidConfig = errors.New("testbench: invalid config")

type Config struct {
	Workers int
	// Batch is the number of values inserted before the container is drained.
	Batch int
}

type Result struct {
	Inserted int64
	Removed  int64
	Elapsed  time.Duration
}

// Ops is the total number of container operations performed.
func (r Result) Ops() int64 { return r.Inserted + r.Removed }

// NsPerOp is the wall time per operation across all workers.
func (r Result) NsPerOp() float64 {
	if r.Ops() == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops())
}

// RunTimedTest runs cfg.Workers workers on an ants pool for testDuration.
// newContainer is called once per worker. A worker stops at the first
// container error, which is returned after every worker finished.
func RunTimedTest[T any](
	ctx context.Context,
	newContainer func() (container.Container[T], error),
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) (Result, error) {
	if cfg.Workers < 1 || cfg.Batch < 1 {
		return Result{}, fmt.Errorf("%w: workers=%d batch=%d", ErrInvalidConfig, cfg.Workers, cfg.Batch)
	}

	containers := make([]container.Container[T], cfg.Workers)
	for i := range containers {
		c, err := newContainer()
		if err != nil {
			return Result{}, err
		}
		if n, ok := container.Capacity(c); ok && n < cfg.Batch {
			return Result{}, fmt.Errorf("%w: batch %d exceeds capacity %d", ErrInvalidConfig, cfg.Batch, n)
		}
		containers[i] = c
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return Result{}, err
	}
	defer pool.Release()

	ctx, cancel := context.WithTimeout(ctx, testDuration)
	defer cancel()

	var (
		inserted, removed atomic.Int64
		wg                sync.WaitGroup
		errOnce           sync.Once
		firstErr          error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		cancel()
	}

	start := time.Now()
	for _, c := range containers {
		wg.Add(1)
		c := c
		if err := pool.Submit(func() {
			defer wg.Done()
			var in, out int64
			defer func() {
				inserted.Add(in)
				removed.Add(out)
			}()
			for seq := 0; ctx.Err() == nil; {
				for i := 0; i < cfg.Batch; i++ {
					if err := c.Insert(valueGenerator(seq)); err != nil {
						fail(fmt.Errorf("testbench: insert: %w", err))
						return
					}
					seq++
					in++
				}
				for i := 0; i < cfg.Batch; i++ {
					if _, err := c.Remove(); err != nil {
						fail(fmt.Errorf("testbench: remove: %w", err))
						return
					}
					out++
				}
			}
		}); err != nil {
			wg.Done()
			fail(err)
		}
	}
	wg.Wait()

	return Result{
		Inserted: inserted.Load(),
		Removed:  removed.Load(),
		Elapsed:  time.Since(start),
	}, firstErr
}
