package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatError returns a human-readable error message for terminal output
func FormatError(e *Error, noColor bool) string {
	var b strings.Builder

	headerColor := severityColor(e.Severity)
	if noColor {
		headerColor.DisableColor()
	}

	headerColor.Fprintf(&b, "%s %s [%s]\n", severityIcon(e.Severity), categoryDisplayName(e.Category), e.Code)

	if !e.Location.IsZero() {
		fmt.Fprintf(&b, "  at %s\n", e.Location)
	}
	fmt.Fprintf(&b, "  %s\n", e.Message)

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  → %s\n", e.Suggestion)
	}

	return b.String()
}

// FormatErrorList returns a formatted string of all errors
func FormatErrorList(errs ErrorList, noColor bool) string {
	if len(errs) == 0 {
		return "no errors"
	}

	var b strings.Builder

	errCount, warnCount := errs.ErrorCount()
	fmt.Fprintf(&b, "%d error(s), %d warning(s)\n\n", errCount, warnCount)

	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatError(err, noColor))
	}

	return b.String()
}

// FormatCompact returns a compact one-line error format
func FormatCompact(e *Error) string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s [%s]", e.Severity, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", e.Location, e.Severity, e.Message, e.Code)
}

func severityColor(severity ErrorSeverity) *color.Color {
	switch severity {
	case SeverityError:
		return color.New(color.FgRed, color.Bold)
	case SeverityWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func severityIcon(severity ErrorSeverity) string {
	switch severity {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️ "
	default:
		return "❓"
	}
}

func categoryDisplayName(category ErrorCategory) string {
	switch category {
	case CategoryArgument:
		return "Argument Error"
	case CategoryUnresolved:
		return "Unresolved Reference"
	case CategoryShape:
		return "Shape Violation"
	default:
		return "Error"
	}
}
