package export

import (
	"flag"
	"fmt"
	"os"
)

// RunCLI provides a simple CLI for dumping behavior stacks.
// Usage: go run stack_tool.go [-pretty] [-indent=STR] [-behavior=NAME] [-tree] [-o=FILE]
func RunCLI(behaviors map[string]Snapshotter, args []string) error {
	fs := flag.NewFlagSet("behaviorkit-export", flag.ContinueOnError)

	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	indent := fs.String("indent", "  ", "Indentation string (used with -pretty)")
	name := fs.String("behavior", "", "Export only this behavior name")
	output := fs.String("o", "", "Output file (default: stdout)")
	list := fs.Bool("list", false, "List available behavior names")
	tree := fs.Bool("tree", false, "Render as an indented text tree instead of JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// List mode
	if *list {
		fmt.Println("Available behaviors:")
		for n := range behaviors {
			fmt.Printf("  - %s\n", n)
		}
		return nil
	}

	// Build options
	opts := Options{
		PrettyPrint: *pretty,
		Indent:      *indent,
		Name:        *name,
		Output:      os.Stdout,
	}

	// Handle output file
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		opts.Output = f
	}

	// Tree mode renders text instead of JSON
	if *tree {
		if *name != "" {
			src, ok := behaviors[*name]
			if !ok {
				return fmt.Errorf("behavior %q not found", *name)
			}
			return WriteTree(opts.Output, src.Snapshot())
		}
		for n, src := range behaviors {
			if _, err := fmt.Fprintf(opts.Output, "%s:\n", n); err != nil {
				return err
			}
			if err := WriteTree(opts.Output, src.Snapshot()); err != nil {
				return err
			}
		}
		return nil
	}

	return SnapshotAll(behaviors, opts)
}
