package cli

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Dispatch for an unrecognised command
var ErrUnknownCommand = errors.New("unknown command")

// Dispatch runs the subcommand named by args[0]
func Dispatch(deps *Dependencies, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: (none)", ErrUnknownCommand)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list", "ls":
		return ListCommand(deps, firstOrEmpty(rest))
	case "add":
		return AddCommand(deps, rest)
	case "advance", "mv":
		if len(rest) != 1 {
			return fmt.Errorf("advance: expected exactly one task id, got %d", len(rest))
		}
		return AdvanceCommand(deps, rest[0])
	case "help", "-h", "--help":
		PrintUsage(deps.Out)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func firstOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
