package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoCourseLab/internal/report"
)

func sampleSessions() []report.FullReport {
	return []report.FullReport{
		{SessionID: "a", Benchmarks: []report.BenchmarkResult{
			{Implementation: "ArrayStack", Kind: "LIFO", Workers: 1, NsPerOp: 4},
			{Implementation: "ArrayStack", Kind: "LIFO", Workers: 1, NsPerOp: 6},
			{Implementation: "LinkedStack", Kind: "LIFO", Workers: 2, NsPerOp: 20},
			{Implementation: "ArrayQueue", Kind: "FIFO", Workers: 1, NsPerOp: 5},
			{Implementation: "Broken", Kind: "FIFO", Workers: 1, NsPerOp: 0},
		}},
		{SessionID: "b", Benchmarks: []report.BenchmarkResult{
			{Implementation: "ArrayStack", Kind: "LIFO", Workers: 1, NsPerOp: 5},
		}},
	}
}

func TestCollect(t *testing.T) {
	s := collect(sampleSessions())
	require.Len(t, s, 2)
	assert.Equal(t, []float64{4, 6, 5}, s["LIFO"]["ArrayStack"][1])
	assert.Equal(t, []float64{20}, s["LIFO"]["LinkedStack"][2])
	assert.NotContains(t, s["FIFO"], "Broken")
}

func TestBuildStats(t *testing.T) {
	stats := buildStats(map[float64][]float64{1: {6, 4, 5}})
	require.Len(t, stats, 1)
	assert.Equal(t, 5.0, stats[0].median)
	// fewer than 20 samples fall back to the median
	assert.Equal(t, 5.0, stats[0].min)
	assert.Equal(t, 5.0, stats[0].max)
}

func TestAverageOfRange(t *testing.T) {
	vals := make([]float64, 40)
	for i := range vals {
		vals[i] = float64(i)
	}
	assert.Equal(t, 0.5, averageOfRange(vals, 0, 0.05))
	assert.Equal(t, 38.5, averageOfRange(vals, 0.95, 1))
	assert.Zero(t, averageOfRange(nil, 0, 1))
	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
}

func TestFormatNs(t *testing.T) {
	assert.Equal(t, "12ns", formatNs(12))
	assert.Equal(t, "1.5µs", formatNs(1500))
	assert.Equal(t, "2.0ms", formatNs(2e6))
	assert.Equal(t, "3.00s", formatNs(3e9))
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_LIFO.png")
	require.NoError(t, render("LIFO", collect(sampleSessions())["LIFO"], path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
