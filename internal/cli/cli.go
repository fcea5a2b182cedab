package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/hookwire/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hookwire", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
hookwire - A manager/hook registration and discovery engine.

Usage:
  hookwire [options] [COMMAND] [ARGS...]

Arguments:
  COMMAND
    Name of the command hook to resolve and run.

Options:
`)
		flagSet.PrintDefaults()
	}

	workspaceFlag := flagSet.String("workspace", "", "Path to the workspace .hcl file naming code roots.")
	wFlag := flagSet.String("w", "", "Path to the workspace .hcl file (shorthand).")
	managerFlag := flagSet.String("manager", app.CommandsManager, "Manager to discover and query.")
	projectFlag := flagSet.String("project", "", "Project label used as the primary hook resolution scope.")
	listFlag := flagSet.Bool("list", false, "List all managers and their discovered hooks.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	workspace := *workspaceFlag
	if workspace == "" {
		workspace = *wFlag
	}

	command := ""
	var cmdArgs []string
	if flagSet.NArg() > 0 {
		command = flagSet.Arg(0)
		cmdArgs = flagSet.Args()[1:]
	}

	if command == "" && !*listFlag {
		slog.Debug("No command or -list given, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		WorkspacePath: workspace,
		ManagerName:   *managerFlag,
		ProjectLabel:  *projectFlag,
		ListOnly:      *listFlag,
		Command:       command,
		Args:          cmdArgs,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
