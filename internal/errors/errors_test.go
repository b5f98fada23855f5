package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"simple error", errors.New("something went wrong"), "Error: something went wrong"},
		{"not found", NotFound("tracker", "abc"), `Error: tracker "abc" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("bad value %d", 3); got != "Error: bad value 3" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestClassification(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name         string
		err          error
		notFound     bool
		storage      bool
		invalidInput bool
	}{
		{"not found", NotFound("category", "Health"), true, false, false},
		{"storage", Storage("add record", cause), false, true, false},
		{"invalid input", InvalidInput("title is required"), false, false, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", NotFound("tracker", "x")), true, false, false},
		{"plain error", cause, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsStorage(tt.err); got != tt.storage {
				t.Errorf("IsStorage() = %v, want %v", got, tt.storage)
			}
			if got := IsInvalidInput(tt.err); got != tt.invalidInput {
				t.Errorf("IsInvalidInput() = %v, want %v", got, tt.invalidInput)
			}
		})
	}
}

func TestStorage(t *testing.T) {
	if Storage("noop", nil) != nil {
		t.Error("Storage(nil) should be nil")
	}

	cause := errors.New("connection reset")
	err := Storage("load trackers", cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if err.Error() != "failed to load trackers: connection reset" {
		t.Errorf("unexpected message %q", err.Error())
	}

	nf := NotFound("tracker", "x")
	if Storage("delete tracker", nf) != nf {
		t.Error("NotFound should pass through Storage unchanged")
	}
	if again := Storage("outer", err); again != err {
		t.Error("Storage errors should not be double wrapped")
	}
}
