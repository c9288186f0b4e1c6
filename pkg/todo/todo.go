// Package todo keeps a task list in a plain text file, one task per line.
// The file is read in full on Open and rewritten in full on every Add.
package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptyTask = errors.New("todo: empty task")

type List struct {
	path  string
	tasks []string
}

// Open loads the list stored at path. A missing file is an empty list.
func Open(path string) (*List, error) {
	l := &List{path: path}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("todo: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		l.tasks = append(l.tasks, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("todo: read %s: %w", path, err)
	}
	return l, nil
}

// Add appends task and persists the whole list. Newlines inside task would
// split it on the next Open, so they are replaced by spaces.
func (l *List) Add(task string) error {
	task = strings.TrimSpace(strings.ReplaceAll(task, "\n", " "))
	if task == "" {
		return ErrEmptyTask
	}
	l.tasks = append(l.tasks, task)
	if err := l.save(); err != nil {
		l.tasks = l.tasks[:len(l.tasks)-1]
		return err
	}
	return nil
}

// save writes to a temporary file next to the list and renames it over the
// old one so a failed write never truncates the list.
func (l *List) save() error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".todo-*")
	if err != nil {
		return fmt.Errorf("todo: save: %w", err)
	}
	w := bufio.NewWriter(tmp)
	for _, t := range l.tasks {
		w.WriteString(t)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("todo: save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("todo: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("todo: save: %w", err)
	}
	return nil
}

// Tasks returns a copy of the tasks in insertion order.
func (l *List) Tasks() []string {
	out := make([]string, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Len() int { return len(l.tasks) }

func (l *List) Path() string { return l.path }
