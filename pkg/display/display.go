// Package display is the optional presentation layer of the console
// exercises: banners, colored status lines, sequence rendering and progress
// bars. All of it is driven by a Config value handed to a Renderer; nothing
// here changes what the exercises compute.
package display

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/term"
)

// Theme names the colorstring color used for each kind of line.
type Theme struct {
	Banner string `yaml:"banner"`
	OK     string `yaml:"ok"`
	Warn   string `yaml:"warn"`
	Error  string `yaml:"error"`
}

// Config selects between the plain and the decorated rendering.
type Config struct {
	Color bool  `yaml:"color"`
	Width int   `yaml:"width"`
	Theme Theme `yaml:"theme"`
}

func DefaultTheme() Theme {
	return Theme{Banner: "cyan", OK: "green", Warn: "yellow", Error: "red"}
}

// Plain renders without escape sequences or decorations beyond ASCII text.
func Plain() Config {
	return Config{Width: 40, Theme: DefaultTheme()}
}

// Decorated enables colors.
func Decorated() Config {
	c := Plain()
	c.Color = true
	return c
}

// Detect enables colors only when f is a terminal.
func Detect(f *os.File) Config {
	if term.IsTerminal(int(f.Fd())) {
		return Decorated()
	}
	return Plain()
}

type Renderer struct {
	cfg   Config
	w     io.Writer
	color colorstring.Colorize
}

func New(cfg Config, w io.Writer) *Renderer {
	if cfg.Width < 10 {
		cfg.Width = 10
	}
	return &Renderer{
		cfg: cfg,
		w:   w,
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !cfg.Color,
			Reset:   true,
		},
	}
}

func (r *Renderer) Config() Config { return r.cfg }

func (r *Renderer) Writer() io.Writer { return r.w }

// paint wraps s in the named color. Only renderer-owned text goes through
// here; user text is appended after the colored part.
func (r *Renderer) paint(name, s string) string {
	if !r.cfg.Color || name == "" {
		return s
	}
	return r.color.Color("[" + name + "]" + s)
}

func (r *Renderer) emit(buf *bytebufferpool.ByteBuffer) {
	r.w.Write(buf.B)
	bytebufferpool.Put(buf)
}

// Banner draws title centered in a box of Config.Width columns.
func (r *Renderer) Banner(title string) {
	inner := r.cfg.Width - 2
	n := utf8.RuneCountInString(title)
	if n > inner {
		inner = n
	}
	left := (inner - n) / 2
	right := inner - n - left

	buf := bytebufferpool.Get()
	buf.WriteString(r.paint(r.cfg.Theme.Banner, "+"+strings.Repeat("=", inner)+"+"))
	buf.WriteString("\n")
	buf.WriteString(r.paint(r.cfg.Theme.Banner, "|"+strings.Repeat(" ", left)+title+strings.Repeat(" ", right)+"|"))
	buf.WriteString("\n")
	buf.WriteString(r.paint(r.cfg.Theme.Banner, "+"+strings.Repeat("=", inner)+"+"))
	buf.WriteString("\n")
	r.emit(buf)
}

func (r *Renderer) Section(title string) {
	buf := bytebufferpool.Get()
	buf.WriteString("\n")
	buf.WriteString(title)
	buf.WriteString("\n")
	buf.WriteString(strings.Repeat("-", utf8.RuneCountInString(title)))
	buf.WriteString("\n")
	r.emit(buf)
}

func (r *Renderer) status(color, prefix, format string, args ...any) {
	buf := bytebufferpool.Get()
	buf.WriteString(r.paint(color, prefix))
	buf.WriteString(fmt.Sprintf(format, args...))
	buf.WriteString("\n")
	r.emit(buf)
}

func (r *Renderer) OK(format string, args ...any) {
	r.status(r.cfg.Theme.OK, "ok: ", format, args...)
}

func (r *Renderer) Warn(format string, args ...any) {
	r.status(r.cfg.Theme.Warn, "warning: ", format, args...)
}

func (r *Renderer) Error(format string, args ...any) {
	r.status(r.cfg.Theme.Error, "error: ", format, args...)
}

// Printf writes undecorated output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Seq writes "label: v1 v2 v3" or "label: (empty)" for a container view.
func Seq[T any](r *Renderer, label string, seq iter.Seq[T]) {
	buf := bytebufferpool.Get()
	buf.WriteString(label)
	buf.WriteString(":")
	empty := true
	for v := range seq {
		empty = false
		buf.WriteString(" ")
		buf.WriteString(fmt.Sprint(v))
	}
	if empty {
		buf.WriteString(" (empty)")
	}
	buf.WriteString("\n")
	r.emit(buf)
}

// Join renders values separated by sep, e.g. "3 × 4 × 5".
func Join[T any](values []T, sep string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for i, v := range values {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(fmt.Sprint(v))
	}
	return buf.String()
}

// Progress returns a bar of total steps writing to the renderer's writer.
func (r *Renderer) Progress(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(r.cfg.Width/2),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(r.cfg.Color),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.w)
		}),
	)
}
