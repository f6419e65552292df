package render

import (
	"fmt"
	"strings"

	"github.com/gerunddev/notemark/internal/markup"
)

var cheatsheet = []struct {
	token string
	what  string
}{
	{"##", "big heading"},
	{"!!", "small heading"},
	{"**", "bold text"},
	{"++", "italic text"},
	{"--", "highlight text"},
	{"==", "list"},
	{"||", "quote"},
}

// Cheatsheet describes the markup syntax, one marker per line.
func Cheatsheet() string {
	var b strings.Builder
	for _, c := range cheatsheet {
		fmt.Fprintf(&b, "%s for %s %s\n", c.token, c.what, c.token)
	}
	fmt.Fprintf(&b, "%c is escape sequence\n", markup.Escape)
	return b.String()
}
