package meeting

import (
	"strings"
	"time"
)

// Channel identifies which side of the recording a transcript turn came
// from. Granola captures two audio streams: the local microphone and the
// mixed system audio of everyone else. Individual remote speakers cannot be
// told apart, so the model is closed over these two values.
type Channel int

const (
	ChannelMe Channel = iota
	ChannelOthers
)

// Label returns the speaker label used in rendered transcripts.
func (c Channel) Label() string {
	if c == ChannelMe {
		return "ME"
	}
	return "OTHERS"
}

// ChannelForSource maps a raw segment source to a channel. Only the local
// microphone maps to ChannelMe; unknown or missing sources are treated as
// remote audio, never as an error.
func ChannelForSource(source string) Channel {
	if source == "microphone" {
		return ChannelMe
	}
	return ChannelOthers
}

// TranscriptTurn is one contiguous block of speech on a single channel.
type TranscriptTurn struct {
	Channel Channel
	Text    string
}

// Meeting is the normalized view of one recorded meeting, ready to be
// listed or rendered. Start and End are zero when the cache entry had no
// parseable timestamp.
type Meeting struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Attendees []string
	Notes     string
	Turns     []TranscriptTurn

	// Merged marks a transcript stitched together from a recording that
	// Granola split into multiple documents.
	Merged bool
}

// DurationMinutes returns the meeting length in minutes. It reports false
// when either timestamp is missing or the end precedes the start.
func (m *Meeting) DurationMinutes() (float64, bool) {
	if m.Start.IsZero() || m.End.IsZero() || m.End.Before(m.Start) {
		return 0, false
	}
	return m.End.Sub(m.Start).Minutes(), true
}

// MergeTurns collapses adjacent turns on the same channel into one block,
// joining their texts with a single space. Turns whose text is empty after
// trimming are dropped. The result never contains two consecutive turns on
// the same channel, so merging an already merged sequence is a no-op.
func MergeTurns(turns []TranscriptTurn) []TranscriptTurn {
	merged := make([]TranscriptTurn, 0, len(turns))
	for _, turn := range turns {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].Channel == turn.Channel {
			merged[n-1].Text += " " + text
			continue
		}
		merged = append(merged, TranscriptTurn{Channel: turn.Channel, Text: text})
	}
	return merged
}
