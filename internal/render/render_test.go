package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gerunddev/notemark/internal/markup"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: `<b class="tag-b">bold</b>`,
		},
		{
			name:     "nested headings",
			input:    "##!!x!!##",
			expected: `<h1 class="tag-h1"><h2 class="tag-h2">x</h2></h1>`,
		},
		{
			name:     "list item with highlight",
			input:    "==buy --milk--==",
			expected: `<li class="tag-li">buy <u class="tag-u">milk</u></li>`,
		},
		{
			name:     "quote with italic",
			input:    "||to be ++or not++||",
			expected: `<p class="tag-p">to be <i class="tag-i">or not</i></p>`,
		},
		{
			name:     "text is escaped",
			input:    "<script>&",
			expected: "&lt;script&gt;&amp;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := HTML(&buf, markup.Parse(tt.input)); err != nil {
				t.Fatalf("HTML failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("HTML(%q) = %q, want %q", tt.input, buf.String(), tt.expected)
			}
			if s := HTMLString(markup.Parse(tt.input)); s != tt.expected {
				t.Errorf("HTMLString(%q) = %q, want %q", tt.input, s, tt.expected)
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline tags",
			input:    "**b** ++i++ --u--",
			expected: "**b** _i_ `u`\n",
		},
		{
			name:     "heading",
			input:    "##Title##",
			expected: "# Title\n",
		},
		{
			name:     "quote after text",
			input:    "say ||hi **there**||",
			expected: "say \n> hi **there**\n",
		},
		{
			name:     "list items",
			input:    "==one====two==",
			expected: "- one\n\n- two\n",
		},
		{
			name:     "nested block is flattened",
			input:    "##!!sub!!##",
			expected: "# sub\n",
		},
		{
			name:     "literal markdown characters are escaped",
			input:    "a_b #c",
			expected: `a\_b \#c` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Markdown(markup.Parse(tt.input))
			if actual != tt.expected {
				t.Errorf("Markdown(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	out := ansi.Strip(Terminal(markup.Parse("intro ==first== ==second== ||quoted||")))

	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("expected block tags on separate lines, got %q", out)
	}
	if lines[0] != "intro " {
		t.Errorf("expected first line %q, got %q", "intro ", lines[0])
	}
	if !strings.Contains(out, bullet+"first") || !strings.Contains(out, bullet+"second") {
		t.Errorf("expected bulleted list items, got %q", out)
	}
	if !strings.Contains(out, "quoted") {
		t.Errorf("expected quote text, got %q", out)
	}
}

func TestTerminalInline(t *testing.T) {
	out := ansi.Strip(Terminal(markup.Parse("a **b** ++c++ d")))
	if out != "a b c d" {
		t.Errorf("expected inline tags to stay on one line, got %q", out)
	}
}

func TestPlain(t *testing.T) {
	if got := Plain(markup.Parse("##Hi## **there**")); got != "Hi there" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestGlamour(t *testing.T) {
	out, err := Glamour(markup.Parse("##Groceries## ==milk== ==eggs=="), 60)
	if err != nil {
		t.Fatalf("Glamour failed: %v", err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Groceries", "milk", "eggs"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected rendered output to contain %q, got %q", want, plain)
		}
	}
}

func TestCheatsheetCoversEveryMarker(t *testing.T) {
	sheet := Cheatsheet()
	for token := range markup.Markers() {
		if !strings.Contains(sheet, token+" for ") {
			t.Errorf("cheatsheet is missing %q", token)
		}
	}
	if !strings.Contains(sheet, "/ is escape sequence") {
		t.Error("cheatsheet is missing the escape character")
	}
}
