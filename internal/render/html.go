// Package render turns parsed markup into display output.
package render

import (
	"html"
	"io"
	"strings"

	"github.com/gerunddev/notemark/internal/markup"
)

// HTML writes frag as HTML. Containers become elements named after their tag
// and carrying their presentation class.
func HTML(w io.Writer, frag markup.Fragment) error {
	var b strings.Builder
	writeHTML(&b, frag)
	_, err := io.WriteString(w, b.String())
	return err
}

// HTMLString returns frag rendered as HTML
func HTMLString(frag markup.Fragment) string {
	var b strings.Builder
	writeHTML(&b, frag)
	return b.String()
}

func writeHTML(b *strings.Builder, frag markup.Fragment) {
	for _, n := range frag {
		switch n := n.(type) {
		case *markup.Text:
			b.WriteString(html.EscapeString(n.Value))
		case *markup.Container:
			tag := string(n.Tag)
			b.WriteString("<" + tag + ` class="` + n.Class() + `">`)
			writeHTML(b, n.Children)
			b.WriteString("</" + tag + ">")
		}
	}
}

// Plain returns only the literal text of frag
func Plain(frag markup.Fragment) string {
	return frag.Text()
}
