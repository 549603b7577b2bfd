package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/theme"
)

// CLIError is a structured command error: what failed, why, and the
// fastest way to fix it.
type CLIError struct {
	Message string
	Cause   string
	Hint    string
	Code    string
}

func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates an error with just a message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithCause attaches the underlying cause.
func (e *CLIError) WithCause(cause string) *CLIError {
	e.Cause = cause
	return e
}

// WithHint attaches a remediation hint.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithCode attaches a machine-readable error code.
func (e *CLIError) WithCode(code string) *CLIError {
	e.Code = code
	return e
}

// FormatCLIError renders a CLIError for the terminal. Styling applies
// only when stderr is a terminal and NO_COLOR is unset.
func FormatCLIError(e *CLIError) string {
	styled := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("NO_COLOR") == ""

	paint := func(s string, c lipgloss.Color) string {
		if !styled {
			return s
		}
		return lipgloss.NewStyle().Foreground(c).Render(s)
	}

	t := theme.Current()
	var sb strings.Builder

	head := "Error: "
	if styled {
		head = lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(head)
	}
	sb.WriteString(head)
	sb.WriteString(e.Message)
	if e.Code != "" {
		sb.WriteString(" ")
		sb.WriteString(paint("["+e.Code+"]", t.Overlay))
	}
	sb.WriteString("\n")

	if e.Cause != "" {
		sb.WriteString(paint("  Cause: ", t.Subtext))
		sb.WriteString(e.Cause)
		sb.WriteString("\n")
	}
	if e.Hint != "" {
		sb.WriteString(paint("  Hint: ", t.Info))
		sb.WriteString(e.Hint)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintCLIError prints a CLIError to stderr.
func PrintCLIError(e *CLIError) {
	fmt.Fprint(os.Stderr, FormatCLIError(e))
}

// PrintCLIErrorOrJSON prints a CLIError to stderr (text) or stdout
// (JSON).
func PrintCLIErrorOrJSON(e *CLIError, jsonMode bool) error {
	if jsonMode {
		return WriteJSON(os.Stdout, ErrorResponse{
			Error:   e.Message,
			Code:    e.Code,
			Details: e.Cause,
			Hint:    e.Hint,
		})
	}
	PrintCLIError(e)
	return e
}

// Common remediation hints.
const (
	HintCardNotFound   = "Check the path, or run 'marscard list <dir>' to see available card files"
	HintCardUnreadable = "Card files must be JSON or YAML; run 'marscard inspect <file>' for details"
	HintConfigNotFound = "Create ~/.config/marscard/config.toml or rely on the built-in defaults"
	HintConfigInvalid  = "Check TOML syntax in ~/.config/marscard/config.toml"
)

// CardNotFoundError reports a missing card file.
func CardNotFoundError(path string) *CLIError {
	return NewCLIError(fmt.Sprintf("card file not found: %s", path)).
		WithCode("CARD_NOT_FOUND").
		WithHint(HintCardNotFound)
}

// CardParseError reports an unreadable card file.
func CardParseError(path string, cause error) *CLIError {
	return NewCLIError(fmt.Sprintf("cannot read card file: %s", path)).
		WithCause(cause.Error()).
		WithCode("CARD_PARSE").
		WithHint(HintCardUnreadable)
}

// ConfigError reports a broken config file.
func ConfigError(cause error) *CLIError {
	return NewCLIError("invalid configuration").
		WithCause(cause.Error()).
		WithCode("CONFIG_INVALID").
		WithHint(HintConfigInvalid)
}
