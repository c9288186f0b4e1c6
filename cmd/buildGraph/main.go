package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/i5heu/GoCourseLab/internal/report"
)

// workerStats holds "5%-avg-min", median, and "5%-avg-max" for one worker count.
type workerStats struct {
	x       float64 // category position, shifted per implementation
	workers float64
	min     float64 // "average of bottom 5%"
	median  float64
	max     float64 // "average of top 5%"
}

// statsPoints implements XYer and YErrorer so we can plot lines + error bars.
type statsPoints []workerStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	return s[i].median - s[i].min, s[i].max - s[i].median
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => worker labels.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

// nsTicks labels the default ticks as durations.
type nsTicks struct{}

func (nsTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = formatNs(ticks[i].Value)
		}
	}
	return ticks
}

// series maps kind -> implementation -> workers -> ns/op samples.
type series map[string]map[string]map[float64][]float64

func collect(sessions []report.FullReport) series {
	out := make(series)
	for _, session := range sessions {
		for _, b := range session.Benchmarks {
			if b.NsPerOp <= 0 {
				continue
			}
			kind := b.Kind
			if kind == "" {
				kind = "unknown"
			}
			if out[kind] == nil {
				out[kind] = make(map[string]map[float64][]float64)
			}
			implMap := out[kind]
			if implMap[b.Implementation] == nil {
				implMap[b.Implementation] = make(map[float64][]float64)
			}
			x := float64(b.Workers)
			implMap[b.Implementation][x] = append(implMap[b.Implementation][x], b.NsPerOp)
		}
	}
	return out
}

func main() {
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON file containing bench sessions")
	outputPrefix := flag.String("out", "benchmark_graph", "Output graph image filename prefix")
	flag.Parse()

	sessions, err := report.Load(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading results: %v\n", err)
		os.Exit(1)
	}

	byKind := collect(sessions)
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		filename := fmt.Sprintf("%s_%s.png", *outputPrefix, kind)
		if err := render(kind, byKind[kind], filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plot for %s: %v\n", kind, err)
			continue
		}
		fmt.Printf("Graph for %s containers saved to %s\n", kind, filename)
	}
}

// render draws one chart of ns/op against worker count.
func render(kind string, implMap map[string]map[float64][]float64, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s containers (5%%-avg-min / Median / 5%%-avg-max) vs. workers", kind)
	p.X.Label.Text = "Workers"
	p.Y.Label.Text = "Time per operation"
	p.Y.Tick.Marker = nsTicks{}

	// Dark theme.
	p.BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Title.TextStyle.Color = white
	p.X.Label.TextStyle.Color = white
	p.Y.Label.TextStyle.Color = white
	p.X.Color = white
	p.Y.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label.Color = white
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Color = white

	p.Add(plotter.NewGrid())

	// Union of worker counts across implementations.
	workerSet := make(map[float64]struct{})
	for _, implData := range implMap {
		for w := range implData {
			workerSet[w] = struct{}{}
		}
	}
	var workerValues []float64
	for w := range workerSet {
		workerValues = append(workerValues, w)
	}
	sort.Float64s(workerValues)

	mapping := make(map[float64]float64)
	var positions []float64
	var labels []string
	for i, w := range workerValues {
		mapping[w] = float64(i)
		positions = append(positions, float64(i))
		labels = append(labels, strconv.FormatFloat(w, 'f', -1, 64))
	}
	p.X.Tick.Marker = categoryTicks{positions: positions, labels: labels}

	var implNames []string
	for name := range implMap {
		implNames = append(implNames, name)
	}
	sort.Strings(implNames)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
	}

	// Slight offset so each implementation is visually separated.
	offsetRange := 0.4
	offsetStep := offsetRange / float64(len(implNames))
	startOffset := -offsetRange/2 + offsetStep/2

	for i, impl := range implNames {
		stats := buildStats(implMap[impl])
		if len(stats) == 0 {
			continue
		}
		for j := range stats {
			stats[j].x = mapping[stats[j].workers] + startOffset + float64(i)*offsetStep
		}
		sort.Slice(stats, func(a, b int) bool { return stats[a].x < stats[b].x })
		sp := statsPoints(stats)

		line, err := plotter.NewLine(sp)
		if err != nil {
			return err
		}
		line.Color = colors[i%len(colors)]

		points, err := plotter.NewScatter(sp)
		if err != nil {
			return err
		}
		points.GlyphStyle.Radius = vg.Points(5)
		points.Color = colors[i%len(colors)]
		points.Shape = shapes[i%len(shapes)]

		yErrBars, err := plotter.NewYErrorBars(sp)
		if err != nil {
			return err
		}
		yErrBars.Color = colors[i%len(colors)]

		p.Add(line, points, yErrBars)
		p.Legend.Add(impl, line, points)
	}

	return p.Save(12*vg.Inch, 9*vg.Inch, filename)
}

// buildStats computes "average of bottom 5%", median, and "average of top 5%".
func buildStats(byWorkers map[float64][]float64) []workerStats {
	var out []workerStats
	for w, vals := range byWorkers {
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		out = append(out, workerStats{
			x:       w,
			workers: w,
			min:     averageOfRange(vals, 0.0, 0.05),
			median:  median(vals),
			max:     averageOfRange(vals, 0.95, 1.0),
		})
	}
	return out
}

// averageOfRange returns the average of sortedVals in [startFrac, endFrac] of its length.
// E.g. averageOfRange(vals, 0, 0.05) is the average of the bottom 5%.
func averageOfRange(sortedVals []float64, startFrac, endFrac float64) float64 {
	n := len(sortedVals)
	if n == 0 {
		return 0
	}
	startIndex := max(int(float64(n)*startFrac), 0)
	endIndex := min(int(float64(n)*endFrac), n)
	if startIndex >= endIndex {
		// fallback to median if the slice is too small
		return median(sortedVals)
	}
	sum := 0.0
	for i := startIndex; i < endIndex; i++ {
		sum += sortedVals[i]
	}
	return sum / float64(endIndex-startIndex)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// formatNs nicely formats a nanoseconds value in ns, µs, ms, or s.
func formatNs(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.0fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}
