package diff

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name        string
		before      string
		after       string
		contains    []string
		notContains []string
	}{
		{
			name:   "identical",
			before: "same",
			after:  "same",
		},
		{
			name:     "single line change",
			before:   "**old**",
			after:    "**new**",
			contains: []string{"--- note-1 (before)", "+++ note-1 (after)", "-**old**", "+**new**"},
		},
		{
			name:        "added line",
			before:      "##Title##",
			after:       "##Title##\n==item==",
			contains:    []string{"+==item=="},
			notContains: []string{"-##Title##"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Unified("note-1", tt.before, tt.after)
			if len(tt.contains) == 0 && out != "" {
				t.Errorf("Expected empty diff, got %q", out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Expected diff to contain %q, got:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(out, unwanted) {
					t.Errorf("Expected diff not to contain %q, got:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestColorizeKeepsText(t *testing.T) {
	out := Unified("note-2", "a\nb\n", "a\nc\n")
	if got := ansi.Strip(Colorize(out)); got != out {
		t.Errorf("Colorize changed diff text:\n%s\nwant:\n%s", got, out)
	}
}
