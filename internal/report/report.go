// Package report is the JSON schema shared by cmd/bench, which appends
// sessions, and cmd/buildGraph, which plots them.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

var ErrNoSessions = errors.New("report: no sessions")

// BenchmarkResult holds results for one timed run of one implementation.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Kind           string  `json:"kind"` // LIFO or FIFO
	Workers        int     `json:"workers"`
	Batch          int     `json:"batch"`
	Capacity       int     `json:"capacity"`
	NumInserted    int64   `json:"num_inserted"`
	NumRemoved     int64   `json:"num_removed"`
	TestDuration   string  `json:"test_duration"`  // e.g. "200ms"
	ActualElapsed  string  `json:"actual_elapsed"` // measured time
	NsPerOp        float64 `json:"ns_per_op"`
	Throughput     float64 `json:"throughput_ops_sec"`
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// Elapsed parses ActualElapsed.
func (b BenchmarkResult) Elapsed() (time.Duration, error) {
	return time.ParseDuration(b.ActualElapsed)
}

type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	GOMAXPROCS  int     `json:"gomaxprocs"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete bench session.
type FullReport struct {
	SessionID   string            `json:"session_id"`
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// Load reads every session stored in path.
func Load(path string) ([]FullReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("report: decode %s: %w", path, err)
	}
	return sessions, nil
}

// Last returns the most recent session in path.
func Last(path string) (FullReport, error) {
	sessions, err := Load(path)
	if err != nil {
		return FullReport{}, err
	}
	if len(sessions) == 0 {
		return FullReport{}, fmt.Errorf("%w in %s", ErrNoSessions, path)
	}
	return sessions[len(sessions)-1], nil
}

// Append adds sessions to the file at path, creating it when missing.
func Append(path string, sessions ...FullReport) error {
	previous, err := Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	data, err := json.MarshalIndent(append(previous, sessions...), "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
