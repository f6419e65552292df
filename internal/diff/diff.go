package diff

import (
	"fmt"
	"strings"

	"github.com/gerunddev/notemark/internal/styles"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff between two versions of a note's text.
// The result is empty when the texts are identical.
func Unified(name, before, after string) string {
	if before == after {
		return ""
	}

	// Diffs read better when both sides end in a newline.
	before = ensureNewline(before)
	after = ensureNewline(after)

	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(name+" (before)", name+" (after)", before, edits))
}

// Colorize styles added and removed lines for terminal output
func Colorize(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = styles.DimStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = styles.SuccessStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = styles.ErrorStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = styles.HighlightStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
