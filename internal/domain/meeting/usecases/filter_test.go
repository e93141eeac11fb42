package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting"
)

func TestParseFilterZero(t *testing.T) {
	filter, err := ParseFilter("", "", "")
	require.NoError(t, err)
	assert.True(t, filter.IsZero())
	assert.Empty(t, filter.Describe())
}

func TestParseFilterSingleCriterion(t *testing.T) {
	filter, err := ParseFilter("2025-01-15", "", "")
	require.NoError(t, err)
	assert.False(t, filter.IsZero())
	assert.Equal(t, "date 2025-01-15", filter.Describe())

	filter, err = ParseFilter("", "2025-01", "")
	require.NoError(t, err)
	assert.Equal(t, "month 2025-01", filter.Describe())

	filter, err = ParseFilter("", "", "standup")
	require.NoError(t, err)
	assert.Equal(t, `title contains "standup"`, filter.Describe())
}

func TestParseFilterConflicts(t *testing.T) {
	tests := []struct {
		name                string
		date, month, search string
	}{
		{name: "date and month", date: "2025-01-15", month: "2025-01"},
		{name: "date and search", date: "2025-01-15", search: "x"},
		{name: "month and search", month: "2025-01", search: "x"},
		{name: "all three", date: "2025-01-15", month: "2025-01", search: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.date, tt.month, tt.search)

			var invalid *InvalidFilterError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), "cannot be combined")
		})
	}
}

func TestParseFilterMalformedValues(t *testing.T) {
	badDates := []string{"Jan 5", "2025-1-5", "2025-13-01", "2025-02-30", "20250115"}
	for _, d := range badDates {
		_, err := ParseFilter(d, "", "")
		var invalid *InvalidFilterError
		require.ErrorAs(t, err, &invalid, "date %q", d)
		assert.Contains(t, err.Error(), "invalid date")
	}

	badMonths := []string{"2025", "2025-1", "2025-13", "January 2025"}
	for _, m := range badMonths {
		_, err := ParseFilter("", m, "")
		var invalid *InvalidFilterError
		require.ErrorAs(t, err, &invalid, "month %q", m)
		assert.Contains(t, err.Error(), "invalid month")
	}
}

func TestFilterMatches(t *testing.T) {
	standup := &meeting.Meeting{
		Title: "Team Standup",
		Start: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	noStart := &meeting.Meeting{Title: "Team Standup"}

	zero, err := ParseFilter("", "", "")
	require.NoError(t, err)
	assert.True(t, zero.Matches(standup))
	assert.True(t, zero.Matches(noStart))

	byDate, err := ParseFilter("2025-01-15", "", "")
	require.NoError(t, err)
	assert.True(t, byDate.Matches(standup))
	assert.False(t, byDate.Matches(noStart))

	otherDate, err := ParseFilter("2025-01-16", "", "")
	require.NoError(t, err)
	assert.False(t, otherDate.Matches(standup))

	byMonth, err := ParseFilter("", "2025-01", "")
	require.NoError(t, err)
	assert.True(t, byMonth.Matches(standup))
	assert.False(t, byMonth.Matches(noStart))

	otherMonth, err := ParseFilter("", "2025-02", "")
	require.NoError(t, err)
	assert.False(t, otherMonth.Matches(standup))

	bySearch, err := ParseFilter("", "", "STANDUP")
	require.NoError(t, err)
	assert.True(t, bySearch.Matches(standup), "search is case-insensitive")
	assert.True(t, bySearch.Matches(noStart), "search ignores missing start")

	noHit, err := ParseFilter("", "", "retro")
	require.NoError(t, err)
	assert.False(t, noHit.Matches(standup))
}

func TestFilterMatchesLocalDate(t *testing.T) {
	// A meeting at 23:30-05:00 is on the 15th in its own timezone even
	// though the UTC instant falls on the 16th.
	start, err := time.Parse(time.RFC3339, "2025-01-15T23:30:00-05:00")
	require.NoError(t, err)
	m := &meeting.Meeting{Title: "Late call", Start: start}

	local, err := ParseFilter("2025-01-15", "", "")
	require.NoError(t, err)
	assert.True(t, local.Matches(m))

	utc, err := ParseFilter("2025-01-16", "", "")
	require.NoError(t, err)
	assert.False(t, utc.Matches(m))
}
