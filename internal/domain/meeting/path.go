package meeting

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

const maxSlugLen = 100

// Slug converts a meeting title into a filesystem-safe file name fragment.
// Every run of non-alphanumeric characters becomes a single hyphen, leading
// and trailing hyphens are trimmed, and the result is capped at 100 runes.
// Letter case is preserved. Titles that reduce to nothing become "Untitled".
func Slug(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range title {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteRune('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	slug := b.String()
	if runes := []rune(slug); len(runes) > maxSlugLen {
		slug = strings.TrimRight(string(runes[:maxSlugLen]), "-")
	}
	if slug == "" {
		return "Untitled"
	}
	return slug
}

// OutputPath returns the relative path a meeting is written to, grouped by
// year and month: 2026/01-January/2026-01-29_Team-Standup.md. The caller
// must not pass a meeting without a start time.
func (m *Meeting) OutputPath() string {
	year := m.Start.Format("2006")
	month := fmt.Sprintf("%s-%s", m.Start.Format("01"), m.Start.Month())
	name := fmt.Sprintf("%s_%s.md", m.Start.Format("2006-01-02"), Slug(m.Title))
	return filepath.Join(year, month, name)
}
