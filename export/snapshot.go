// Package export provides exporters for rendering live behavior stacks to
// external formats: JSON for tooling and an indented text tree for logs.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/behaviorkit"
)

// Snapshotter is implemented by anything that can expose an action stack.
// Behavior[A].Snapshot satisfies it for every actor type, so behaviors of
// different actor types can be collected behind one map.
type Snapshotter interface {
	Snapshot() *behaviorkit.StackFrame
}

// SnapshotFunc adapts a plain function to the Snapshotter interface.
type SnapshotFunc func() *behaviorkit.StackFrame

// Snapshot calls f.
func (f SnapshotFunc) Snapshot() *behaviorkit.StackFrame { return f() }

// Options configures the export behavior.
type Options struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// Indent is the string used for indentation (default: "  ")
	Indent string

	// Output is where output will be written (default: os.Stdout)
	Output io.Writer

	// Name filters to a specific behavior name (empty = export all)
	Name string
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		PrettyPrint: false,
		Indent:      "  ",
		Output:      os.Stdout,
		Name:        "",
	}
}

// Snapshot exports a single behavior's stack as JSON.
func Snapshot(src Snapshotter, opts Options) error {
	return writeJSON(src.Snapshot(), opts)
}

// SnapshotAll exports multiple behaviors as one JSON object keyed by name.
func SnapshotAll(behaviors map[string]Snapshotter, opts Options) error {
	if opts.Name != "" {
		src, ok := behaviors[opts.Name]
		if !ok {
			return fmt.Errorf("behavior %q not found", opts.Name)
		}
		return Snapshot(src, opts)
	}

	result := make(map[string]*behaviorkit.StackFrame)
	for name, src := range behaviors {
		result[name] = src.Snapshot()
	}

	return writeJSON(result, opts)
}

// writeJSON marshals v and writes it, newline-terminated, to the
// configured output.
func writeJSON(v any, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var data []byte
	var err error
	if opts.PrettyPrint {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// WriteTree renders a stack snapshot as an indented text tree. Children
// indent one level deeper; suspended actions at the same level carry a
// "suspended" marker.
func WriteTree(w io.Writer, frame *behaviorkit.StackFrame) error {
	if frame == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return writeTree(w, frame, 0)
}

func writeTree(w io.Writer, frame *behaviorkit.StackFrame, depth int) error {
	marker := ""
	if frame.Suspended {
		marker = " (suspended)"
	} else if !frame.Started {
		marker = " (pending start)"
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), frame.Name, marker); err != nil {
		return err
	}
	if frame.Child != nil {
		if err := writeTree(w, frame.Child, depth+1); err != nil {
			return err
		}
	}
	if frame.Buried != nil {
		if err := writeTree(w, frame.Buried, depth); err != nil {
			return err
		}
	}
	return nil
}
