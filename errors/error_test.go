package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	pos := Position{File: "test.lol", Line: 3}
	d := New(CodeExpect, pos, "expected %s but got %s", "MKAY", "NEWLINE")

	if d.Code != CodeExpect {
		t.Errorf("Code = %v, want %v", d.Code, CodeExpect)
	}
	if d.Pos != pos {
		t.Errorf("Pos = %v, want %v", d.Pos, pos)
	}
	if d.Message != "expected MKAY but got NEWLINE" {
		t.Errorf("Message = %q, want %q", d.Message, "expected MKAY but got NEWLINE")
	}
	if d.ID.String() == "" {
		t.Error("ID should not be empty")
	}
	if d.Error() != "test.lol:3: expected MKAY but got NEWLINE" {
		t.Errorf("Error() = %q", d.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	pos := Position{File: "config.toml", Line: 0}
	d := Wrap(cause, CodeInternal, pos, "failed to read config file")

	want := "config.toml:0: failed to read config file: disk full"
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
	if !errors.Is(d, cause) {
		t.Error("errors.Is should unwrap to the cause")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	d := New(CodeLoopNameMismatch, Position{}, "mismatch")
	var err error = d

	if !HasCode(err, CodeLoopNameMismatch) {
		t.Error("HasCode should match the diagnostic's code")
	}
	if HasCode(err, CodeExpect) {
		t.Error("HasCode should not match an unrelated code")
	}
	if GetCode(err) != CodeLoopNameMismatch {
		t.Errorf("GetCode = %v, want %v", GetCode(err), CodeLoopNameMismatch)
	}

	plain := errors.New("not a diagnostic")
	if HasCode(plain, CodeExpect) {
		t.Error("HasCode should be false for a non-Diagnostic error")
	}
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode = %v, want %v", GetCode(plain), CodeUnknown)
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeExpect, SeverityError},
		{CodeLoopNameMismatch, SeverityError},
		{CodeNaryTooManyArgs, SeverityError},
		{CodeInternal, SeverityFatal},
		{CodeInternalOOM, SeverityFatal},
		{CodeInputTooLarge, SeverityFatal},
	}
	for _, tt := range tests {
		if got := SeverityFor(tt.code); got != tt.want {
			t.Errorf("SeverityFor(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{File: "a.lol", Line: 5}, "a.lol:5"},
		{Position{Line: 5}, "5"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("Position{%v}.String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}
