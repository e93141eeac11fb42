package meeting

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Team Standup", want: "Team-Standup"},
		{title: "Project: Final <Review>", want: "Project-Final-Review"},
		{title: "Q1/Q2 Planning & Review", want: "Q1-Q2-Planning-Review"},
		{title: "1:1 with Sam", want: "1-1-with-Sam"},
		{title: "a  b", want: "a-b"},
		{title: "  padded  ", want: "padded"},
		{title: `back\slash and "quotes"`, want: "back-slash-and-quotes"},
		{title: "already-hyphenated --- title", want: "already-hyphenated-title"},
		{title: "café réunion", want: "café-réunion"},
		{title: "", want: "Untitled"},
		{title: "!!!", want: "Untitled"},
		{title: "   ", want: "Untitled"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.title), "title %q", tt.title)
	}
}

func TestSlugCapsLength(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Equal(t, strings.Repeat("a", 100), Slug(long))

	// A cap landing on a hyphen must not leave a trailing hyphen.
	boundary := strings.Repeat("a", 99) + " " + strings.Repeat("b", 50)
	assert.Equal(t, strings.Repeat("a", 99), Slug(boundary))
}

func TestOutputPath(t *testing.T) {
	m := &Meeting{
		Title: "Team Standup",
		Start: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	want := filepath.Join("2025", "01-January", "2025-01-15_Team-Standup.md")
	assert.Equal(t, want, m.OutputPath())
}

func TestOutputPathMonthNames(t *testing.T) {
	tests := []struct {
		month time.Month
		dir   string
	}{
		{month: time.January, dir: "01-January"},
		{month: time.June, dir: "06-June"},
		{month: time.December, dir: "12-December"},
	}

	for _, tt := range tests {
		m := &Meeting{
			Title: "X",
			Start: time.Date(2026, tt.month, 3, 9, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, tt.dir, filepath.Base(filepath.Dir(m.OutputPath())))
	}
}
