package testbench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoCourseLab/pkg/arrayqueue"
	"github.com/i5heu/GoCourseLab/pkg/container"
	"github.com/i5heu/GoCourseLab/pkg/linkedstack"
)

func arrayQueue(capacity int) func() (container.Container[int], error) {
	return func() (container.Container[int], error) {
		q, err := arrayqueue.New[int](capacity)
		if err != nil {
			return nil, err
		}
		return container.FromQueue[int](q), nil
	}
}

func TestRunTimedTestBalanced(t *testing.T) {
	res, err := RunTimedTest(context.Background(), arrayQueue(16), Config{Workers: 4, Batch: 16},
		50*time.Millisecond, func(i int) int { return i })
	require.NoError(t, err)
	assert.Positive(t, res.Inserted)
	// every completed batch is drained, so only a failed worker could leave a gap
	assert.Equal(t, res.Inserted, res.Removed)
	assert.Zero(t, res.Inserted%16)
	assert.GreaterOrEqual(t, res.Elapsed, 50*time.Millisecond)
	assert.Positive(t, res.NsPerOp())
}

func TestRunTimedTestUnbounded(t *testing.T) {
	newStack := func() (container.Container[string], error) {
		return container.FromStack[string](linkedstack.New[string]()), nil
	}
	res, err := RunTimedTest(context.Background(), newStack, Config{Workers: 2, Batch: 100},
		20*time.Millisecond, func(int) string { return "x" })
	require.NoError(t, err)
	assert.Equal(t, res.Inserted, res.Removed)
}

func TestRunTimedTestRejectsConfig(t *testing.T) {
	_, err := RunTimedTest(context.Background(), arrayQueue(8), Config{Workers: 0, Batch: 1},
		time.Millisecond, func(i int) int { return i })
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = RunTimedTest(context.Background(), arrayQueue(8), Config{Workers: 1, Batch: 9},
		time.Millisecond, func(i int) int { return i })
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunTimedTestFactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunTimedTest(context.Background(), func() (container.Container[int], error) {
		return nil, boom
	}, Config{Workers: 1, Batch: 1}, time.Millisecond, func(i int) int { return i })
	assert.ErrorIs(t, err, boom)
}

func TestRunTimedTestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := RunTimedTest(ctx, arrayQueue(4), Config{Workers: 2, Batch: 4},
		time.Second, func(i int) int { return i })
	require.NoError(t, err)
	assert.Zero(t, res.Ops())
}

func TestResultZero(t *testing.T) {
	assert.Zero(t, Result{}.NsPerOp())
}
