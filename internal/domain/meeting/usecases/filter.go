package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting"
)

const (
	dateFilterLayout  = "2006-01-02"
	monthFilterLayout = "2006-01"
)

// Filter narrows an extraction to a single day, a calendar month, or titles
// containing a search term. At most one criterion may be set; the zero
// Filter matches everything.
type Filter struct {
	date   string
	month  string
	search string
}

// ParseFilter validates raw filter values and builds a Filter. Conflicting
// or malformed values return an *InvalidFilterError before any cache work
// starts.
func ParseFilter(date, month, search string) (Filter, error) {
	set := 0
	for _, v := range []string{date, month, search} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return Filter{}, &InvalidFilterError{Message: "--date, --month, and --search cannot be combined"}
	}

	switch {
	case date != "":
		parsed, err := time.Parse(dateFilterLayout, date)
		if err != nil {
			return Filter{}, &InvalidFilterError{
				Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date),
				Cause:   err,
			}
		}
		return Filter{date: parsed.Format(dateFilterLayout)}, nil
	case month != "":
		parsed, err := time.Parse(monthFilterLayout, month)
		if err != nil {
			return Filter{}, &InvalidFilterError{
				Message: fmt.Sprintf("invalid month %q, expected YYYY-MM", month),
				Cause:   err,
			}
		}
		return Filter{month: parsed.Format(monthFilterLayout)}, nil
	case search != "":
		return Filter{search: search}, nil
	}
	return Filter{}, nil
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.date == "" && f.month == "" && f.search == ""
}

// Matches reports whether a meeting passes the filter. Date and month
// filters never match meetings without a start time; the search filter is a
// case-insensitive substring match on the title.
func (f Filter) Matches(m *meeting.Meeting) bool {
	switch {
	case f.date != "":
		return !m.Start.IsZero() && m.Start.Format(dateFilterLayout) == f.date
	case f.month != "":
		return !m.Start.IsZero() && m.Start.Format(monthFilterLayout) == f.month
	case f.search != "":
		return strings.Contains(strings.ToLower(m.Title), strings.ToLower(f.search))
	}
	return true
}

// Describe returns a short human-readable form of the active criterion, or
// an empty string for the zero filter.
func (f Filter) Describe() string {
	switch {
	case f.date != "":
		return "date " + f.date
	case f.month != "":
		return "month " + f.month
	case f.search != "":
		return fmt.Sprintf("title contains %q", f.search)
	}
	return ""
}
