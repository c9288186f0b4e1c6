package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/i5heu/GoCourseLab/internal/config"
	"github.com/i5heu/GoCourseLab/internal/logging"
	"github.com/i5heu/GoCourseLab/internal/prompt"
	"github.com/i5heu/GoCourseLab/pkg/display"
)

// fatalError marks input the exercise cannot recover from; it exits with 1.
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func fatal(err error) error { return &fatalError{err: err} }

// app carries everything a command needs.
type app struct {
	cfg *config.Config
	out *display.Renderer
	in  *prompt.Prompter
	log logging.Logger
	// args are the words after the command name.
	args []string
}

type command struct {
	usage string
	run   func(a *app) error
}

var commands = map[string]command{
	"stack":     {"compare the array and linked stacks", runStack},
	"queue":     {"compare the array and linked queues", runQueue},
	"search":    {"binary search over an increasing sequence", runSearch},
	"merge":     {"merge two increasing sequences", runMerge},
	"recursion": {"recursive utilities, see `recursion help`", runRecursion},
	"matrix":    {"fill, transpose and sum a square matrix", runMatrix},
	"text":      {"length, comparison and palindrome checks", runText},
	"records":   {"record keeping exercises, see `records help`", runRecords},
	"todo":      {"append tasks to a plain text list", runTodo},
	"tictactoe": {"two player tic-tac-toe", runTicTacToe},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "usage: courselab [flags] <command> [args]\n\ncommands:\n")
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].usage)
		}
		fmt.Fprintf(w, "\nflags:\n")
		fs.PrintDefaults()
	}
}

// run is main without the process exit, so tests can drive whole sessions.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("courselab", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "YAML config file (default $"+config.PathEnv+")")
	color := fs.Bool("color", false, "force colored output")
	plain := fs.Bool("plain", false, "disable colors")
	capacity := fs.Int("capacity", 0, "capacity of the array-backed containers (0 keeps the config value)")
	todoPath := fs.String("todo", "", "task file for the todo command")
	fs.Usage = usage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name := strings.ToLower(fs.Arg(0))
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stdout, "unknown command %q\n", name)
		fs.Usage()
		return 2
	}

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	if *capacity != 0 {
		cfg.Capacity = *capacity
	}
	if *todoPath != "" {
		cfg.TodoFile = *todoPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	switch {
	case *plain:
		cfg.Display.Color = false
	case *color:
		cfg.Display.Color = true
	default:
		if f, ok := stdout.(*os.File); ok && !cfg.Display.Color {
			cfg.Display.Color = display.Detect(f).Color
		}
	}

	if err := logging.Init(cfg.Logging); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	defer logging.Flush()

	out := display.New(cfg.Display, stdout)
	a := &app{
		cfg:  cfg,
		out:  out,
		in:   prompt.New(stdin, out),
		log:  logging.Default(),
		args: fs.Args()[1:],
	}
	a.log.Debugw("command start", "command", name, "args", a.args, "capacity", cfg.Capacity)

	err = cmd.run(a)
	var fe *fatalError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return 0
	case errors.As(err, &fe):
		out.Error("%v", err)
		a.log.Warnw("fatal input", "command", name, "error", err)
		return 1
	default:
		out.Error("%v", err)
		a.log.Errorw("command failed", "command", name, "error", err)
		return 1
	}
}
