package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/cropcircles/internal/app"
	"github.com/specialistvlad/cropcircles/internal/config"
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
	flagSet := flag.NewFlagSet("cropcircles", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
cropcircles - plant and mow crop circles on a 25x19 field.

Usage:
  cropcircles [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    File holding one line of instructions such as "PLANTgg7 jm5 PLANTMOWjm13".
    Defaults to input.txt when present, otherwise standard input. Use "-" to
    force standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the instruction file (default \"input.txt\", then stdin).")
	iFlag := flagSet.String("i", "", "Path to the instruction file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional .hcl, .yaml or .yml config file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")
	colorFlag := flagSet.String("color", "", "Colorize the field. Options: 'auto', 'always', 'never'. (default \"never\")")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT_PATH, got %d", flagSet.NArg())}
	}

	input := ""
	if *inputFlag != "" {
		input = *inputFlag
	} else if *iFlag != "" {
		input = *iFlag
	} else if flagSet.NArg() > 0 {
		input = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "input", input)

	overrides := config.Model{
		Input:     input,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Color:     strings.ToLower(*colorFlag),
	}

	// Flag values are checked up front so usage errors exit with code 2.
	if err := config.Defaults().Merge(&overrides).Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := &app.Config{
		ConfigPath: *configFlag,
		Overrides:  overrides,
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
