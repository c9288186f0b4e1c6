package main

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoCourseLab/internal/config"
	"github.com/i5heu/GoCourseLab/internal/logging"
	"github.com/i5heu/GoCourseLab/internal/report"
	"github.com/i5heu/GoCourseLab/pkg/container"
	"github.com/i5heu/GoCourseLab/pkg/display"
)

// withAllContainers is a test helper that loops over all implementations
// and calls fn for each one that has every feature in testedFeatures.
func withAllContainers(t *testing.T, testedFeatures []string, fn func(t *testing.T, impl Implementation[int])) {
	t.Helper()
	for _, impl := range getImplementations() {
		t.Run(impl.name, func(t *testing.T) {
			for _, feature := range testedFeatures {
				if !slices.Contains(impl.features, feature) {
					t.Skipf("Skipping: missing feature %q", feature)
				}
			}
			fn(t, impl)
		})
	}
}

func TestRegistryKinds(t *testing.T) {
	withAllContainers(t, nil, func(t *testing.T, impl Implementation[int]) {
		c, err := impl.newContainer(8)
		require.NoError(t, err)
		assert.Contains(t, impl.features, c.Kind().String())
		_, bounded := container.Capacity(c)
		assert.Equal(t, slices.Contains(impl.features, "Bounded"), bounded)
	})
}

func TestInsertionOrder(t *testing.T) {
	const N = 64
	withAllContainers(t, nil, func(t *testing.T, impl Implementation[int]) {
		c, err := impl.newContainer(N)
		require.NoError(t, err)
		for i := 0; i < N; i++ {
			require.NoError(t, c.Insert(i))
		}
		require.Equal(t, N, c.Len())

		got := make([]int, 0, N)
		for i := 0; i < N; i++ {
			v, err := c.Remove()
			require.NoError(t, err)
			got = append(got, v)
		}
		want := make([]int, N)
		for i := range want {
			want[i] = i
		}
		if c.Kind() == container.LIFO {
			slices.Reverse(want)
		}
		assert.Equal(t, want, got)
	})
}

func TestEmptyContainer(t *testing.T) {
	withAllContainers(t, nil, func(t *testing.T, impl Implementation[int]) {
		c, err := impl.newContainer(4)
		require.NoError(t, err)
		_, err = c.Remove()
		require.ErrorIs(t, err, container.ErrEmpty)

		// a failed remove leaves the container usable
		require.NoError(t, c.Insert(42))
		v, err := c.Remove()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})
}

func TestBoundedOverflow(t *testing.T) {
	withAllContainers(t, []string{"Bounded"}, func(t *testing.T, impl Implementation[int]) {
		c, err := impl.newContainer(3)
		require.NoError(t, err)
		for i := 1; i <= 3; i++ {
			require.NoError(t, c.Insert(i))
		}
		before := slices.Collect(c.All())
		require.ErrorIs(t, c.Insert(4), container.ErrFull)
		assert.Equal(t, before, slices.Collect(c.All()))
	})
}

func TestInvalidCapacity(t *testing.T) {
	withAllContainers(t, []string{"Bounded"}, func(t *testing.T, impl Implementation[int]) {
		_, err := impl.newContainer(0)
		assert.ErrorIs(t, err, container.ErrInvalidCapacity)
	})
}

func TestWrapAround(t *testing.T) {
	const capacity = 16
	withAllContainers(t, []string{"FIFO"}, func(t *testing.T, impl Implementation[int]) {
		c, err := impl.newContainer(capacity)
		require.NoError(t, err)
		next, want := 0, 0
		for round := 0; round < 5; round++ {
			for c.Len() < capacity {
				require.NoError(t, c.Insert(next))
				next++
			}
			for i := 0; i < capacity/2; i++ {
				v, err := c.Remove()
				require.NoError(t, err)
				require.Equal(t, want, v)
				want++
			}
		}
	})
}

func TestParseWorkers(t *testing.T) {
	got, err := parseWorkers(" 1, 2,,8 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 8}, got)

	for _, bad := range []string{"", "0", "two", "1,-3"} {
		_, err := parseWorkers(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunSessionAndMarkdown(t *testing.T) {
	var out bytes.Buffer
	steps := 0
	opts := options{iterations: 2, duration: 5 * time.Millisecond, workers: []int{1, 2}, capacity: 32, batch: 16}
	results, err := runSession(context.Background(), opts, getImplementations(), display.New(display.Plain(), &out), func() { steps++ })
	require.NoError(t, err)
	require.Len(t, results, 2*2*4)
	assert.Equal(t, len(results), steps)
	for _, r := range results {
		assert.Equal(t, r.NumInserted, r.NumRemoved, r.Implementation)
		assert.Contains(t, []string{"LIFO", "FIFO"}, r.Kind)
	}
	assert.Contains(t, out.String(), "workers = 2")

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, report.Append(path, report.FullReport{SessionID: "s-1", Benchmarks: results}))

	var table bytes.Buffer
	require.NoError(t, outputMarkdownTable(path, &table))
	s := table.String()
	assert.Contains(t, s, "Session `s-1`")
	for _, impl := range getImplementations() {
		assert.Contains(t, s, "| "+impl.name)
		assert.Contains(t, s, "| "+impl.description+" |")
	}
	// header, separator and one row per implementation
	assert.Equal(t, 2+4, strings.Count(s, "\n|"))
}

func TestMarkdownWithoutResults(t *testing.T) {
	err := outputMarkdownTable(filepath.Join(t.TempDir(), "none.json"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunExitCodes(t *testing.T) {
	t.Setenv(config.PathEnv, "")
	t.Setenv(logging.LevelEnv, "fatal")
	path := filepath.Join(t.TempDir(), "results.json")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-markdown-table", "-jsonfile", path}, &stdout, &stderr))
	assert.NotEmpty(t, stderr.String())

	assert.Equal(t, 2, run([]string{"-workers", "0"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-bogus"}, &stdout, &stderr))

	stdout.Reset()
	code := run([]string{"-iter", "1", "-duration", "2ms", "-workers", "1", "-capacity", "8", "-json", "-jsonfile", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "wrote session")
	last, err := report.Last(path)
	require.NoError(t, err)
	assert.Len(t, last.Benchmarks, len(getImplementations()))

	stdout.Reset()
	assert.Equal(t, 0, run([]string{"-markdown-table", "-jsonfile", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "| ArrayQueue")
}
