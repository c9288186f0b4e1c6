package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/i5heu/GoCourseLab/internal/config"
	"github.com/i5heu/GoCourseLab/internal/logging"
	"github.com/i5heu/GoCourseLab/internal/report"
	"github.com/i5heu/GoCourseLab/internal/testbench"
	"github.com/i5heu/GoCourseLab/pkg/arrayqueue"
	"github.com/i5heu/GoCourseLab/pkg/arraystack"
	"github.com/i5heu/GoCourseLab/pkg/container"
	"github.com/i5heu/GoCourseLab/pkg/display"
	"github.com/i5heu/GoCourseLab/pkg/linkedqueue"
	"github.com/i5heu/GoCourseLab/pkg/linkedstack"
)

// Implementation represents a container implementation.
type Implementation[T any] struct {
	name         string
	description  string
	pkgName      string
	features     []string
	newContainer func(capacity int) (container.Container[T], error)
}

// options are the resolved flag and config values of one bench run.
type options struct {
	iterations int
	duration   time.Duration
	workers    []int
	capacity   int
	batch      int
}

// parseWorkers reads a comma separated list of positive worker counts.
func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid worker count %q", f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("no worker counts given")
	}
	return out, nil
}

// runSession measures every implementation at every worker count.
// step is called after each timed run.
func runSession(ctx context.Context, opts options, impls []Implementation[int], out *display.Renderer, step func()) ([]report.BenchmarkResult, error) {
	var results []report.BenchmarkResult
	for _, workers := range opts.workers {
		out.Section(fmt.Sprintf("workers = %d", workers))
		for iteration := 1; iteration <= opts.iterations; iteration++ {
			for _, impl := range impls {
				runtime.GC()
				probe, err := impl.newContainer(opts.capacity)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", impl.name, err)
				}
				res, err := testbench.RunTimedTest(ctx,
					func() (container.Container[int], error) { return impl.newContainer(opts.capacity) },
					testbench.Config{Workers: workers, Batch: opts.batch},
					opts.duration,
					func(i int) int { return i },
				)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", impl.name, err)
				}
				throughput := float64(res.Ops()) / res.Elapsed.Seconds()
				out.Printf("  [%d/%d] %-12s ops=%d, %.1f ns/op, %.0f ops/s, took=%v\n",
					iteration, opts.iterations, impl.name, res.Ops(), res.NsPerOp(), throughput, res.Elapsed)
				logging.Debugf("bench %s workers=%d inserted=%d removed=%d", impl.name, workers, res.Inserted, res.Removed)

				results = append(results, report.BenchmarkResult{
					Implementation: impl.name,
					Kind:           probe.Kind().String(),
					Workers:        workers,
					Batch:          opts.batch,
					Capacity:       opts.capacity,
					NumInserted:    res.Inserted,
					NumRemoved:     res.Removed,
					TestDuration:   opts.duration.String(),
					ActualElapsed:  res.Elapsed.String(),
					NsPerOp:        res.NsPerOp(),
					Throughput:     throughput,
					Timestamp:      time.Now().Unix(),
					GoVersion:      runtime.Version(),
				})
				if step != nil {
					step()
				}
			}
		}
	}
	return results, nil
}

// outputMarkdownTable writes a summary of the last session in jsonFile.
func outputMarkdownTable(jsonFile string, w io.Writer) error {
	lastSession, err := report.Last(jsonFile)
	if err != nil {
		return err
	}
	implMetaMap := make(map[string]Implementation[int])
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}

	type tableRow struct {
		implementation string
		pkgName        string
		features       string
		description    string
		nsPerOp        float64
		throughput     float64
		runs           int
	}
	byName := make(map[string]*tableRow)
	for _, bench := range lastSession.Benchmarks {
		r, ok := byName[bench.Implementation]
		if !ok {
			r = &tableRow{implementation: bench.Implementation}
			if meta, ok := implMetaMap[bench.Implementation]; ok {
				r.pkgName = meta.pkgName
				r.features = strings.Join(meta.features, ", ")
				r.description = meta.description
			}
			byName[bench.Implementation] = r
		}
		r.nsPerOp += bench.NsPerOp
		r.throughput += bench.Throughput
		r.runs++
	}
	rows := make([]tableRow, 0, len(byName))
	for _, r := range byName {
		r.nsPerOp /= float64(r.runs)
		r.throughput /= float64(r.runs)
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})

	fmt.Fprintf(w, "## Last Session Benchmark Summary\n\n")
	fmt.Fprintf(w, "Session `%s` at %s\n\n", lastSession.SessionID, lastSession.SessionTime)
	fmt.Fprintln(w, "| Implementation | Package     | Features       | ns/op  | Throughput (ops/sec) | Description |")
	fmt.Fprintln(w, "|----------------|-------------|----------------|--------|----------------------|-------------|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %-14s | %-11s | %-14s | %6.1f | %20.0f | %s |\n",
			r.implementation, r.pkgName, r.features, r.nsPerOp, r.throughput, r.description)
	}
	return nil
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() report.SystemInfo {
	info := report.SystemInfo{
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		GOARCH:     runtime.GOARCH,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one bench invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+config.PathEnv+")")
	testIterations := fs.Int("iter", 0, "Number of test iterations per worker count (0 keeps the config value)")
	duration := fs.Duration("duration", 0, "Duration of each timed run (0 keeps the config value)")
	workersFlag := fs.String("workers", "", "Comma separated worker counts, e.g. 1,2,4")
	capacity := fs.Int("capacity", 0, "Capacity of the array-backed containers (0 keeps the config value)")
	jsonExport := fs.Bool("json", false, "Append results as JSON to -jsonfile")
	markdownTable := fs.Bool("markdown-table", false, "Output markdown table from -jsonfile and exit")
	jsonFile := fs.String("jsonfile", "", "Path to the JSON results file (default from config)")
	progressFlag := fs.Bool("progress", false, "Display a progress bar")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := logging.Init(cfg.Logging); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logging.Flush()

	if *jsonFile == "" {
		*jsonFile = cfg.Bench.ResultsFile
	}
	if *markdownTable {
		if err := outputMarkdownTable(*jsonFile, stdout); err != nil {
			logging.Errorf("markdown table from %s: %v", *jsonFile, err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	opts := options{
		iterations: cfg.Bench.Iterations,
		duration:   time.Duration(cfg.Bench.DurationMS) * time.Millisecond,
		workers:    cfg.Bench.Workers,
		capacity:   cfg.Bench.Capacity,
		batch:      cfg.Bench.Batch,
	}
	if *testIterations > 0 {
		opts.iterations = *testIterations
	}
	if *duration > 0 {
		opts.duration = *duration
	}
	if *capacity > 0 {
		opts.capacity = *capacity
		opts.batch = min(opts.batch, opts.capacity)
	}
	if *workersFlag != "" {
		if opts.workers, err = parseWorkers(*workersFlag); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	out := display.New(cfg.Display, stdout)
	out.Banner("CONTAINER BENCH")

	impls := getImplementations()
	var step func()
	if *progressFlag {
		barCfg := display.Plain()
		if f, ok := stderr.(*os.File); ok {
			barCfg = display.Detect(f)
		}
		bar := display.New(barCfg, stderr).
			Progress(len(opts.workers)*opts.iterations*len(impls), "benchmarking")
		step = func() { bar.Add(1) }
	}

	session := report.FullReport{
		SessionID:   uuid.NewString(),
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  gatherSystemInfo(),
	}
	logging.Infof("bench session %s started", session.SessionID)
	session.Benchmarks, err = runSession(context.Background(), opts, impls, out, step)
	if err != nil {
		logging.Errorf("bench session %s: %v", session.SessionID, err)
		out.Error("%v", err)
		return 1
	}

	if *jsonExport {
		if err := report.Append(*jsonFile, session); err != nil {
			logging.Errorf("append %s: %v", *jsonFile, err)
			out.Error("%v", err)
			return 1
		}
		out.OK("wrote session %s to %s", session.SessionID, *jsonFile)
	}
	return 0
}

// getImplementations enumerates the container implementations.
func getImplementations() []Implementation[int] {
	return []Implementation[int]{
		{
			name:        "ArrayStack",
			pkgName:     "arraystack",
			description: "Fixed-capacity stack over a slice with a top index.",
			features:    []string{"LIFO", "Bounded"},
			newContainer: func(capacity int) (container.Container[int], error) {
				s, err := arraystack.New[int](capacity)
				if err != nil {
					return nil, err
				}
				return container.FromStack[int](s), nil
			},
		},
		{
			name:        "LinkedStack",
			pkgName:     "linkedstack",
			description: "Singly linked stack holding only the top node.",
			features:    []string{"LIFO", "Unbounded"},
			newContainer: func(int) (container.Container[int], error) {
				return container.FromStack[int](linkedstack.New[int]()), nil
			},
		},
		{
			name:        "ArrayQueue",
			pkgName:     "arrayqueue",
			description: "Fixed-capacity ring buffer with monotonic head and tail counters.",
			features:    []string{"FIFO", "Bounded"},
			newContainer: func(capacity int) (container.Container[int], error) {
				q, err := arrayqueue.New[int](capacity)
				if err != nil {
					return nil, err
				}
				return container.FromQueue[int](q), nil
			},
		},
		{
			name:        "LinkedQueue",
			pkgName:     "linkedqueue",
			description: "Singly linked queue with head and tail references.",
			features:    []string{"FIFO", "Unbounded"},
			newContainer: func(int) (container.Container[int], error) {
				return container.FromQueue[int](linkedqueue.New[int]()), nil
			},
		},
	}
}
