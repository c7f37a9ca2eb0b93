// Package cli implements the non-interactive subcommands. They share the
// store and storage with the TUI so changes show up on the next launch.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/store"
)

// maxTitleWidth is where list output truncates titles
const maxTitleWidth = 60

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  *store.Store
	Logger *slog.Logger
	Out    io.Writer
}

// ListCommand prints the tasks matching query, grouped by column
func ListCommand(deps *Dependencies, query string) error {
	filter := domain.NewFilter()
	filter.Query = query

	all := deps.Store.Tasks()
	visible := filter.Apply(all)

	if len(visible) == 0 {
		if filter.IsActive() {
			fmt.Fprintf(deps.Out, "No tasks match %q (%d total)\n", query, len(all))
		} else {
			fmt.Fprintln(deps.Out, "No tasks")
		}
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	fmt.Fprintln(w, "--\t------\t-----")

	for _, status := range domain.Statuses {
		for _, task := range visible {
			if task.Status != status {
				continue
			}
			title := ansi.Truncate(task.Title, maxTitleWidth, "...")
			fmt.Fprintf(w, "%d\t%s\t%s\n", task.ID, task.Status, title)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write task list: %w", err)
	}

	if filter.IsActive() {
		fmt.Fprintf(deps.Out, "\n%d of %d tasks\n", len(visible), len(all))
	}
	return nil
}

// AddCommand creates a task from the joined arguments
func AddCommand(deps *Dependencies, args []string) error {
	task, ok := deps.Store.Add(strings.Join(args, " "))
	if !ok {
		return domain.ErrEmptyTitle
	}
	if err := deps.Store.LastSaveErr(); err != nil {
		return err
	}

	deps.Logger.Info("task added", "id", task.ID)
	fmt.Fprintf(deps.Out, "✓ Added %d: %s\n", task.ID, task.Title)
	return nil
}

// AdvanceCommand moves the task with the given id one column to the right
func AdvanceCommand(deps *Dependencies, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q: %w", rawID, err)
	}

	current, ok := deps.Store.Get(id)
	if !ok {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	if current.Status.IsTerminal() {
		return fmt.Errorf("task %d: %w", id, domain.ErrTerminal)
	}

	task, _ := deps.Store.Advance(id)
	if err := deps.Store.LastSaveErr(); err != nil {
		return err
	}

	deps.Logger.Info("task advanced", "id", task.ID, "status", task.Status.String())
	fmt.Fprintf(deps.Out, "✓ %s → %s: %s\n", current.Status, task.Status, task.Title)
	return nil
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: taskboard [flags] [command] [arguments]

Commands:
  (no command)         Start the taskboard TUI
  list [query]         List tasks, optionally filtered by title
  add <title>          Add a task to Todo
  advance <id>         Move a task to the next column
  help                 Show this help message

Flags:
  --ephemeral          Keep tasks in memory only (TUI)

Examples:
  taskboard                    # Start TUI
  taskboard add Write spec     # Add "Write spec"
  taskboard list fix           # Tasks whose title contains "fix"
  taskboard advance 1718000000000
`
	fmt.Fprint(w, usage)
}
