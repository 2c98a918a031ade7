package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nace/gavel/internal/memutil"
)

func TestReadLine(t *testing.T) {
	long := strings.Repeat("x", 3*memutil.DefaultIncrement+5)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline excluded", "hunter2\n", "hunter2"},
		{"eof mid-line returns partial", "partial", "partial"},
		{"empty line", "\n", ""},
		{"empty input", "", ""},
		{"stops at first newline", "first\nsecond\n", "first"},
		{"line spanning growth steps", long + "\n", long},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readLine(strings.NewReader(tt.input)); got != tt.want {
				t.Errorf("readLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPromptRejectsNonTerminal(t *testing.T) {
	// A pipe is the usual non-interactive stdin (redirected input,
	// CI); prompting must fail softly instead of blocking or crashing.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	got, err := Prompt(r, "Enter password: ", true)
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err = %v, want ErrNotTerminal", err)
	}
	if got != "" {
		t.Fatalf("result = %q, want empty", got)
	}
}
