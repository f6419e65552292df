package notes

import (
	"strings"
	"time"

	"github.com/gerunddev/notemark/internal/markup"
)

// Note is a single stored note. Text is kept in markup form.
type Note struct {
	ID        int       `json:"id" yaml:"id"`
	UID       string    `json:"uid,omitempty" yaml:"uid,omitempty"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at,omitempty"`
}

// Parse returns the note's markup tree. Each call builds a fresh tree.
func (n Note) Parse() markup.Fragment {
	return markup.Parse(n.Text)
}

// Title returns the first line of the note's plain text, cut to max runes
func (n Note) Title(max int) string {
	plain := strings.TrimSpace(n.Parse().Text())
	if i := strings.IndexByte(plain, '\n'); i >= 0 {
		plain = strings.TrimSpace(plain[:i])
	}
	r := []rune(plain)
	if max > 0 && len(r) > max {
		if max == 1 {
			return "…"
		}
		return string(r[:max-1]) + "…"
	}
	return plain
}
