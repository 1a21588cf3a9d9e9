package errors

import (
	"io"
	"log/slog"
	"testing"
)

func TestPositionString(t *testing.T) {
	p := Position{File: "example.py", Line: 3, Column: 7}
	if got := p.String(); got != "example.py:3:7" {
		t.Errorf("Position.String() = %q", got)
	}
	p = Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() without file = %q", got)
	}
}

func TestErrorList(t *testing.T) {
	el := NewErrorList()
	if el.HasErrors() {
		t.Error("fresh list reports errors")
	}
	el.Add(Position{Line: 1, Column: 1}, PhaseParse, "unexpected indent")
	if !el.HasErrors() {
		t.Error("list with one error reports none")
	}
	want := "[parse] 1:1: unexpected indent\n"
	if got := el.String(); got != want {
		t.Errorf("ErrorList.String() = %q, want %q", got, want)
	}
}

func TestConvertErrorWithoutPosition(t *testing.T) {
	e := &ConvertError{Phase: PhaseParse, Message: "unexpected EOF"}
	if got := e.Error(); got != "[parse] unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestReporter(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewReporter(log)

	r.Warn(PhasePlugin, "plugin %s failed", "code_style")
	if r.HasErrors() {
		t.Error("warning counted as error")
	}
	r.Error(Position{Line: 4, Column: 1}, PhaseParse, "unexpected indent")
	if !r.HasErrors() {
		t.Error("error not recorded")
	}
	if got := r.Warnings(); len(got) != 1 || got[0] != "[plugin] plugin code_style failed" {
		t.Errorf("Warnings() = %v", got)
	}
	if got := r.Errors(); len(got) != 1 || got[0] != "[parse] 4:1: unexpected indent" {
		t.Errorf("Errors() = %v", got)
	}
}

func TestReporterNilLogger(t *testing.T) {
	r := NewReporter(nil)
	r.Warn(PhaseCache, "ok")
	if len(r.Warnings()) != 1 {
		t.Error("nil-logger reporter dropped warning")
	}
}
