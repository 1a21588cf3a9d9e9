package errors

import (
	"fmt"
	"log/slog"
)

// Position represents a location in source code
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Conversion phases used in ConvertError.Phase.
const (
	PhaseParse  = "parse"
	PhaseRender = "render"
	PhasePlugin = "plugin"
	PhaseCache  = "cache"
	PhaseConfig = "config"
)

// ConvertError represents a conversion error with source position
type ConvertError struct {
	Pos     Position
	Message string
	Phase   string // "parse", "render", "plugin", "cache", "config"
}

func (e *ConvertError) Error() string {
	if e.Pos == (Position{}) {
		return fmt.Sprintf("[%s] %s", e.Phase, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Pos, e.Message)
}

// ErrorList collects multiple conversion errors
type ErrorList struct {
	Errors []*ConvertError
}

func NewErrorList() *ErrorList {
	return &ErrorList{}
}

func (el *ErrorList) Add(pos Position, phase, message string) {
	el.Errors = append(el.Errors, &ConvertError{Pos: pos, Message: message, Phase: phase})
}

func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

func (el *ErrorList) String() string {
	s := ""
	for _, e := range el.Errors {
		s += e.Error() + "\n"
	}
	return s
}

// Reporter records warnings and errors for one conversion run and mirrors
// them to a structured logger. Each conversion gets its own Reporter; there
// is no shared state between runs.
type Reporter struct {
	log      *slog.Logger
	errors   *ErrorList
	warnings []string
}

// NewReporter builds a Reporter around the given logger. A nil logger
// falls back to slog.Default().
func NewReporter(log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{log: log, errors: NewErrorList()}
}

// Error records a conversion error for the given phase. A zero Position is
// omitted from the formatted message.
func (r *Reporter) Error(pos Position, phase, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.errors.Add(pos, phase, msg)
	r.log.Error("conversion error", "phase", phase, "message", msg)
}

// Warn records a non-fatal problem for the given phase.
func (r *Reporter) Warn(phase, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.warnings = append(r.warnings, fmt.Sprintf("[%s] %s", phase, msg))
	r.log.Warn("conversion warning", "phase", phase, "message", msg)
}

func (r *Reporter) HasErrors() bool { return r.errors.HasErrors() }

// Errors returns the recorded error messages in order.
func (r *Reporter) Errors() []string {
	out := make([]string, len(r.errors.Errors))
	for i, e := range r.errors.Errors {
		out[i] = e.Error()
	}
	return out
}

// Warnings returns the recorded warning messages in order.
func (r *Reporter) Warnings() []string { return r.warnings }
