package granola

import "encoding/json"

// Document is one meeting entry from the cache's documents map. Every field
// is best-effort: Granola owns the schema and can change it between releases.
type Document struct {
	Title      string
	NotesPlain string
	Overview   string
	Attendees  []Attendee
}

// Attendee is one raw calendar attendee attached to a document.
type Attendee struct {
	Email       string
	DisplayName string
	Self        bool
}

// Segment is one raw transcript entry for a document.
type Segment struct {
	Source         string
	Text           string
	StartTimestamp string
	EndTimestamp   string
}

// decodeDocument reads one documents-map entry. Entries that are not JSON
// objects are rejected; unexpected field types read as zero values.
func decodeDocument(raw json.RawMessage) (Document, bool) {
	fields, ok := decodeObject(raw)
	if !ok {
		return Document{}, false
	}

	doc := Document{
		Title:      stringField(fields, "title"),
		NotesPlain: stringField(fields, "notes_plain"),
		Overview:   stringField(fields, "overview"),
	}

	event, ok := fields["google_calendar_event"].(map[string]any)
	if !ok {
		return doc, true
	}
	attendees, ok := event["attendees"].([]any)
	if !ok {
		return doc, true
	}
	for _, entry := range attendees {
		att, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		doc.Attendees = append(doc.Attendees, Attendee{
			Email:       stringField(att, "email"),
			DisplayName: stringField(att, "displayName"),
			Self:        boolField(att, "self"),
		})
	}
	return doc, true
}

// decodeSegments reads one transcripts-map entry. A non-list value yields no
// segments; list entries that are not objects are dropped.
func decodeSegments(raw json.RawMessage) []Segment {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	segments := make([]Segment, 0, len(entries))
	for _, entry := range entries {
		fields, ok := decodeObject(entry)
		if !ok {
			continue
		}
		segments = append(segments, Segment{
			Source:         stringField(fields, "source"),
			Text:           stringField(fields, "text"),
			StartTimestamp: stringField(fields, "start_timestamp"),
			EndTimestamp:   stringField(fields, "end_timestamp"),
		})
	}
	return segments
}

func decodeObject(raw json.RawMessage) (map[string]any, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

func boolField(fields map[string]any, key string) bool {
	value, _ := fields[key].(bool)
	return value
}
