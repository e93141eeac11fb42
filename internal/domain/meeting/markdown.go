package meeting

import (
	"fmt"
	"strings"
)

const (
	dateLayout  = "Monday, January 2, 2006"
	clockLayout = "03:04 PM"

	speakerLegend = "> **Speaker Labels:** `ME` = your microphone | `OTHERS` = all remote participants (Granola doesn't distinguish individual remote speakers)"
)

// RenderMarkdown formats a meeting as a markdown document: a metadata
// header, the meeting notes when present, and the transcript as alternating
// speaker blocks. Output depends only on the record, so rendering the same
// meeting twice yields identical bytes.
func RenderMarkdown(m *Meeting) string {
	lines := []string{"# " + m.Title, ""}

	if !m.Start.IsZero() {
		lines = append(lines, "**Date:** "+m.Start.Format(dateLayout))
		end := "Unknown"
		if !m.End.IsZero() {
			end = m.End.Format(clockLayout)
		}
		lines = append(lines, fmt.Sprintf("**Time:** %s - %s", m.Start.Format(clockLayout), end))
	}
	if minutes, ok := m.DurationMinutes(); ok {
		lines = append(lines, fmt.Sprintf("**Duration:** %.1f minutes", minutes))
	}
	if len(m.Attendees) > 0 {
		lines = append(lines, "**Attendees:** "+strings.Join(m.Attendees, ", "))
	}
	if m.Merged {
		lines = append(lines, "**Note:** This transcript was merged from multiple recording segments")
	}

	lines = append(lines, "", "---", "")

	if m.Notes != "" {
		lines = append(lines, "## Notes", "", m.Notes, "", "---", "")
	}

	lines = append(lines, "## Transcript", "", speakerLegend, "")

	if len(m.Turns) > 0 {
		blocks := make([]string, 0, len(m.Turns))
		for _, turn := range m.Turns {
			blocks = append(blocks, fmt.Sprintf("**%s:** %s", turn.Channel.Label(), turn.Text))
		}
		lines = append(lines, strings.Join(blocks, "\n\n"))
	}

	return strings.Join(lines, "\n") + "\n"
}
