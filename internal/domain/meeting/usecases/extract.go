package usecases

import (
	"sort"
	"strings"
	"time"

	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting"
	"github.com/tony-kipkemboi/granola-extractor/internal/granola"
)

// Granola sometimes splits one meeting into a titled document and one or
// more untitled follow-on documents. An untitled document whose recording
// starts within this gap after another document's recording ends is treated
// as a continuation of it.
const maxContinuationGap = 2 * time.Minute

const placeholderTitle = "Untitled Meeting"

// Extract builds normalized meeting records from the Granola cache: one
// record per document that has at least one transcript segment, with
// continuation documents folded into the meeting they belong to.
type Extract struct {
	Loader *granola.Loader
}

// Execute loads the cache and returns the meetings matching filter, sorted
// by start time ascending with meetings lacking a start first. Ties are
// broken by document ID so the order is stable across runs.
func (e *Extract) Execute(filter Filter) ([]meeting.Meeting, error) {
	cache, err := e.Loader.Load()
	if err != nil {
		return nil, err
	}

	meetings := assemble(cache)

	if !filter.IsZero() {
		matched := make([]meeting.Meeting, 0, len(meetings))
		for _, m := range meetings {
			if filter.Matches(&m) {
				matched = append(matched, m)
			}
		}
		meetings = matched
	}

	sort.Slice(meetings, func(i, j int) bool {
		a, b := meetings[i], meetings[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})
	return meetings, nil
}

func assemble(cache *granola.Cache) []meeting.Meeting {
	ids := make([]string, 0, len(cache.Documents))
	for id := range cache.Documents {
		if _, ok := cache.Transcripts[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	continuations := detectContinuations(cache, ids)

	absorbed := make(map[string]bool)
	for _, tail := range continuations {
		for _, id := range tail {
			absorbed[id] = true
		}
	}

	meetings := make([]meeting.Meeting, 0, len(ids))
	for _, id := range ids {
		if absorbed[id] {
			continue
		}
		doc := cache.Documents[id]
		segments := cache.Transcripts[id]
		if conts := continuations[id]; len(conts) > 0 {
			stitched := make([]granola.Segment, 0, len(segments))
			stitched = append(stitched, segments...)
			for _, contID := range conts {
				stitched = append(stitched, cache.Transcripts[contID]...)
			}
			segments = stitched
		}
		meetings = append(meetings, buildMeeting(id, doc, segments, len(continuations[id]) > 0))
	}
	return meetings
}

// detectContinuations finds untitled documents that continue an earlier
// recording. Documents are ordered by start time; for each untitled one the
// scan walks backwards over earlier documents and attaches it to the first
// whose recording ended at most maxContinuationGap before it started. An
// earlier document that ended after the candidate started ends the scan.
func detectContinuations(cache *granola.Cache, ids []string) map[string][]string {
	type span struct {
		id         string
		untitled   bool
		start, end time.Time
	}

	spans := make([]span, 0, len(ids))
	for _, id := range ids {
		segments := cache.Transcripts[id]
		start := parseTimestamp(segments[0].StartTimestamp)
		end := parseTimestamp(segments[len(segments)-1].EndTimestamp)
		if start.IsZero() || end.IsZero() {
			continue
		}
		spans = append(spans, span{
			id:       id,
			untitled: strings.TrimSpace(cache.Documents[id].Title) == "",
			start:    start,
			end:      end,
		})
	}
	sort.Slice(spans, func(i, j int) bool {
		if !spans[i].start.Equal(spans[j].start) {
			return spans[i].start.Before(spans[j].start)
		}
		return spans[i].id < spans[j].id
	})

	continuations := make(map[string][]string)
	for i, s := range spans {
		if !s.untitled {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			gap := s.start.Sub(spans[j].end)
			if gap < 0 {
				continue
			}
			if gap > maxContinuationGap {
				break
			}
			continuations[spans[j].id] = append(continuations[spans[j].id], s.id)
			break
		}
	}
	return continuations
}

func buildMeeting(id string, doc granola.Document, segments []granola.Segment, merged bool) meeting.Meeting {
	m := meeting.Meeting{
		ID:     id,
		Title:  strings.TrimSpace(doc.Title),
		Start:  parseTimestamp(segments[0].StartTimestamp),
		End:    parseTimestamp(segments[len(segments)-1].EndTimestamp),
		Notes:  doc.NotesPlain,
		Merged: merged,
	}
	if m.Title == "" {
		m.Title = placeholderTitle
	}
	if m.Notes == "" {
		m.Notes = doc.Overview
	}

	for _, att := range doc.Attendees {
		if att.Email == "" || att.Self {
			continue
		}
		m.Attendees = append(m.Attendees, attendeeName(att))
	}

	turns := make([]meeting.TranscriptTurn, 0, len(segments))
	for _, seg := range segments {
		turns = append(turns, meeting.TranscriptTurn{
			Channel: meeting.ChannelForSource(seg.Source),
			Text:    seg.Text,
		})
	}
	m.Turns = meeting.MergeTurns(turns)
	return m
}

// attendeeName prefers the calendar display name and falls back to the
// local part of the email address.
func attendeeName(att granola.Attendee) string {
	if att.DisplayName != "" {
		return att.DisplayName
	}
	name := att.Email
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return name
}

// parseTimestamp reads an RFC 3339 timestamp, returning the zero time for
// empty or malformed values.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
