package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("no credentials supplied")
	if got := err.Error(); got != "configuration error: no credentials supplied" {
		t.Errorf("Error() = %q, want configuration error prefix", got)
	}
}

func TestConfigErrorFormatting(t *testing.T) {
	err := NewConfigError("extras is not valid JSON: %q", "{bad")
	if !strings.Contains(err.Error(), `"{bad"`) {
		t.Errorf("Error() = %q, expected offending input to be quoted", err.Error())
	}
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "direct", err: NewConfigError("x"), want: true},
		{name: "wrapped", err: fmt.Errorf("run: %w", NewConfigError("x")), want: true},
		{name: "other error", err: fmt.Errorf("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.want {
				t.Errorf("IsConfigError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUnknownCommandError(t *testing.T) {
	err := NewUnknownCommandError("frobnicate", "  comment\n    Add a comment.\n")
	msg := err.Error()
	if !strings.Contains(msg, `"frobnicate"`) {
		t.Errorf("Error() = %q, expected command name to be quoted", msg)
	}
	if !strings.Contains(msg, "Available commands:") {
		t.Errorf("Error() = %q, expected registry guidance", msg)
	}
	if !strings.Contains(msg, "Add a comment.") {
		t.Errorf("Error() = %q, expected registry listing to be included", msg)
	}
}

func TestIsUnknownCommand(t *testing.T) {
	direct := NewUnknownCommandError("x", "")
	if !IsUnknownCommand(direct) {
		t.Error("IsUnknownCommand should detect a direct UnknownCommandError")
	}
	if !IsUnknownCommand(fmt.Errorf("dispatch: %w", direct)) {
		t.Error("IsUnknownCommand should detect a wrapped UnknownCommandError")
	}
	if IsUnknownCommand(NewConfigError("x")) {
		t.Error("IsUnknownCommand should not match a ConfigError")
	}
}
