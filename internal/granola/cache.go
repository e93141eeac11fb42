// Package granola reads the Granola app's local cache file. The cache is a
// JSON envelope whose "cache" key holds a string of inner JSON; the inner
// document carries the meetings under state.documents and their transcript
// segments under state.transcripts. The schema is owned by Granola, so
// decoding is loose: malformed entries are dropped and missing fields read
// as zero values instead of failing the load.
package granola

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultCachePath returns the cache location used by the Granola app.
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "cache-v3.json")
	}
	return filepath.Join(home, "Library", "Application Support", "Granola", "cache-v3.json")
}

// Cache is the decoded state of one cache file: meeting documents keyed by
// document ID, and each document's raw transcript segments under the same ID.
type Cache struct {
	Documents   map[string]Document
	Transcripts map[string][]Segment
}

// Loader reads and decodes a Granola cache file.
type Loader struct {
	Path string
}

func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

type envelope struct {
	Cache json.RawMessage `json:"cache"`
}

type innerState struct {
	State struct {
		Documents   map[string]json.RawMessage `json:"documents"`
		Transcripts map[string]json.RawMessage `json:"transcripts"`
	} `json:"state"`
}

// Load reads the cache file once and decodes it. A missing file is reported
// as *NotFoundError and undecodable content as *ParseError so callers can
// give the user distinct guidance for each.
func (l *Loader) Load() (*Cache, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: l.Path}
		}
		return nil, fmt.Errorf("reading Granola cache %s: %w", l.Path, err)
	}

	var outer envelope
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, &ParseError{Path: l.Path, Message: "not valid JSON", Cause: err}
	}

	var inner string
	if err := json.Unmarshal(outer.Cache, &inner); err != nil || inner == "" {
		return nil, &ParseError{Path: l.Path, Message: "invalid or empty cache data", Cause: err}
	}

	var state innerState
	if err := json.Unmarshal([]byte(inner), &state); err != nil {
		return nil, &ParseError{Path: l.Path, Message: "could not parse cache contents", Cause: err}
	}

	cache := &Cache{
		Documents:   make(map[string]Document, len(state.State.Documents)),
		Transcripts: make(map[string][]Segment, len(state.State.Transcripts)),
	}
	for id, raw := range state.State.Documents {
		doc, ok := decodeDocument(raw)
		if !ok {
			continue
		}
		cache.Documents[id] = doc
	}
	for id, raw := range state.State.Transcripts {
		if segments := decodeSegments(raw); len(segments) > 0 {
			cache.Transcripts[id] = segments
		}
	}
	return cache, nil
}
