// Package cli provides the command-line interface for the wave scanner.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Output handles formatted output for the CLI.
type Output struct {
	writer       io.Writer
	jsonMode     bool
	colorEnabled bool
}

// NewOutput creates a new Output instance.
func NewOutput(cmd *cobra.Command) *Output {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &Output{
		writer:       cmd.OutOrStdout(),
		jsonMode:     jsonMode,
		colorEnabled: !jsonMode && isTerminal(),
	}
}

// isTerminal checks if stdout is a terminal.
func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// IsJSON returns true if JSON output mode is enabled.
func (o *Output) IsJSON() bool {
	return o.jsonMode
}

// JSON outputs data as JSON.
func (o *Output) JSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print prints a message.
func (o *Output) Print(format string, args ...interface{}) {
	fmt.Fprintf(o.writer, format, args...)
}

// Println prints a message with newline.
func (o *Output) Println(args ...interface{}) {
	fmt.Fprintln(o.writer, args...)
}

// Info prints an informational message.
func (o *Output) Info(format string, args ...interface{}) {
	o.prefixed(ColorCyan, "INFO", format, args...)
}

// Success prints a success message.
func (o *Output) Success(format string, args ...interface{}) {
	o.prefixed(ColorGreen, "OK", format, args...)
}

// Warning prints a warning message.
func (o *Output) Warning(format string, args ...interface{}) {
	o.prefixed(ColorYellow, "WARN", format, args...)
}

// Error prints an error message.
func (o *Output) Error(format string, args ...interface{}) {
	o.prefixed(ColorRed, "ERROR", format, args...)
}

func (o *Output) prefixed(color, prefix, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "%s[%s]%s %s\n", color, prefix, ColorReset, msg)
	} else {
		fmt.Fprintf(o.writer, "[%s] %s\n", prefix, msg)
	}
}
