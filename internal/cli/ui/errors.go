package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conduit-lang/odatacore/internal/errors"
)

// Level is the severity of a message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Message describes a user-facing problem report.
type Message struct {
	Level       Level
	Context     string
	Problem     string
	Detail      string
	Suggestions []string
	Hints       []string
	NoColor     bool
}

// FormatMessage renders a message as:
//
//	❌ BINDING FAILED: unknown property 'Emials' on Sample.Person
//
//	   Did you mean: Emails?
//
//	   → List the catalog: odatactx catalog --fixture people.yaml
func FormatMessage(m Message) string {
	var b strings.Builder

	var attrs []color.Attribute
	var symbol string
	switch m.Level {
	case LevelWarning:
		attrs, symbol = []color.Attribute{color.FgYellow}, "⚠️"
	case LevelInfo:
		attrs, symbol = []color.Attribute{color.FgCyan}, "ℹ️"
	default:
		attrs, symbol = []color.Attribute{color.FgRed}, "❌"
	}
	head := style(m.NoColor, append(attrs, color.Bold)...)
	body := style(m.NoColor, attrs...)

	if m.Context != "" {
		head.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(m.Context), m.Problem)
	} else {
		head.Fprintf(&b, "%s %s\n", symbol, m.Problem)
	}
	if m.Detail != "" {
		b.WriteString("\n")
		body.Fprintf(&b, "   %s\n", m.Detail)
	}
	if len(m.Suggestions) > 0 {
		b.WriteString("\n")
		style(m.NoColor, color.FgYellow).Fprintf(&b, "   Did you mean: %s?\n", strings.Join(m.Suggestions, ", "))
	}
	if len(m.Hints) > 0 {
		b.WriteString("\n")
		hint := style(m.NoColor, color.FgCyan)
		for _, h := range m.Hints {
			hint.Fprintf(&b, "   → %s\n", h)
		}
	}
	return b.String()
}

// WriteMessage writes a formatted message to w.
func WriteMessage(w io.Writer, m Message) {
	fmt.Fprint(w, FormatMessage(m))
}

// FormatSuccess renders a one-line success note.
func FormatSuccess(message string, noColor bool) string {
	return style(noColor, color.FgGreen, color.Bold).Sprintf("✓ %s", message)
}

// WriteSuccess writes a success note followed by a newline.
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// FixtureError reports a fixture that could not be loaded or built.
func FixtureError(file string, err error, noColor bool) string {
	return FormatMessage(Message{
		Context: "fixture failed",
		Problem: fmt.Sprintf("cannot use fixture '%s'", file),
		Detail:  err.Error(),
		Hints: []string{
			"Check the fixture's namespace, type and request sections",
			"Get help: odatactx describe --help",
		},
		NoColor: noColor,
	})
}

// BindingError reports a request that could not be bound to the catalog.
// Structured errors contribute their code and suggestion.
func BindingError(fixture string, err error, noColor bool) string {
	m := Message{
		Context: "binding failed",
		Problem: err.Error(),
		Hints:   []string{"List the catalog: odatactx catalog --fixture " + fixture},
		NoColor: noColor,
	}

	if e, ok := errors.AsError(err); ok {
		m.Problem = fmt.Sprintf("%s [%s]", e.Message, e.Code)
		if s, ok := strings.CutPrefix(e.Suggestion, "did you mean "); ok {
			m.Suggestions = strings.Split(strings.TrimSuffix(s, "?"), ", ")
		} else if e.Suggestion != "" {
			m.Detail = e.Suggestion
		}
	}
	return FormatMessage(m)
}

// ConfigError reports an invalid configuration.
func ConfigError(err error, noColor bool) string {
	return FormatMessage(Message{
		Context: "configuration error",
		Problem: err.Error(),
		Hints:   []string{"View config: cat odatactx.yaml"},
		NoColor: noColor,
	})
}

// Warning renders a warning without context.
func Warning(message string, noColor bool) string {
	return FormatMessage(Message{Level: LevelWarning, Problem: message, NoColor: noColor})
}
