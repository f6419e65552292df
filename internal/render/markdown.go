package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gerunddev/notemark/internal/markup"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

var inlineMarkdown = map[markup.Tag][2]string{
	markup.Bold:      {"**", "**"},
	markup.Italic:    {"_", "_"},
	markup.Highlight: {"`", "`"},
}

var blockMarkdown = map[markup.Tag]string{
	markup.ListItem: "- ",
	markup.Heading1: "# ",
	markup.Heading2: "## ",
	markup.Quote:    "> ",
}

// Markdown projects frag onto CommonMark. The projection is lossy: highlight
// becomes a code span and nested blocks are flattened onto one line.
func Markdown(frag markup.Fragment) string {
	var b strings.Builder
	writeMarkdown(&b, frag, false)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMarkdown(b *strings.Builder, frag markup.Fragment, inBlock bool) {
	for _, n := range frag {
		switch n := n.(type) {
		case *markup.Text:
			value := markdownEscaper.Replace(n.Value)
			if inBlock {
				value = strings.ReplaceAll(value, "\n", " ")
			}
			b.WriteString(value)
		case *markup.Container:
			if delims, ok := inlineMarkdown[n.Tag]; ok {
				b.WriteString(delims[0])
				writeMarkdown(b, n.Children, inBlock)
				b.WriteString(delims[1])
				continue
			}
			if inBlock {
				writeMarkdown(b, n.Children, true)
				continue
			}
			startLine(b)
			b.WriteString(blockMarkdown[n.Tag])
			writeMarkdown(b, n.Children, true)
			b.WriteString("\n\n")
		}
	}
}

// Glamour renders frag through its markdown projection for the terminal.
func Glamour(frag markup.Fragment, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := tr.Render(Markdown(frag))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
