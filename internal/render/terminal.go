package render

import (
	"strings"

	"github.com/gerunddev/notemark/internal/markup"
	"github.com/gerunddev/notemark/internal/styles"
)

const bullet = "• "

// Terminal renders frag with lipgloss styles selected by presentation class.
// List items, headings and quotes are laid out as blocks on their own lines.
func Terminal(frag markup.Fragment) string {
	var b strings.Builder
	writeTerminal(&b, frag)
	return strings.TrimRight(b.String(), "\n")
}

func writeTerminal(b *strings.Builder, frag markup.Fragment) {
	for _, n := range frag {
		switch n := n.(type) {
		case *markup.Text:
			b.WriteString(n.Value)
		case *markup.Container:
			var inner strings.Builder
			writeTerminal(&inner, n.Children)
			content := inner.String()
			if n.Tag == markup.ListItem {
				content = bullet + content
			}

			rendered := styles.Tag(n.Class()).Render(content)
			if !isBlock(n.Tag) {
				b.WriteString(rendered)
				continue
			}
			startLine(b)
			b.WriteString(rendered)
			b.WriteString("\n")
		}
	}
}

func isBlock(tag markup.Tag) bool {
	switch tag {
	case markup.ListItem, markup.Heading1, markup.Heading2, markup.Quote:
		return true
	}
	return false
}

// startLine ends the current line unless the builder is already at one's start.
func startLine(b *strings.Builder) {
	s := b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}
