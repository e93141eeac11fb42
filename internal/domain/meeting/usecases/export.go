package usecases

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting"
)

// Export renders meetings to markdown files under an output root.
type Export struct{}

// WriteFailure records one meeting that could not be written.
type WriteFailure struct {
	Path string
	Err  error
}

// ExportResult summarizes a single export run.
type ExportResult struct {
	// Saved holds the relative paths written, in write order.
	Saved []string
	// SkippedNoStart counts meetings left out because they have no start
	// time and so no place in the year/month tree.
	SkippedNoStart int
	// Failures holds meetings whose directory or file could not be
	// created. A failure never aborts the remaining writes.
	Failures []WriteFailure
}

// Execute writes one markdown file per meeting into root, creating the
// year/month directories as needed. Existing files from earlier runs are
// overwritten; when two meetings in the same run resolve to the same path,
// later ones get a numeric suffix.
func (e *Export) Execute(meetings []meeting.Meeting, root string) *ExportResult {
	result := &ExportResult{}
	seen := make(map[string]int, len(meetings))

	for i := range meetings {
		m := &meetings[i]
		if m.Start.IsZero() {
			result.SkippedNoStart++
			continue
		}

		relPath := m.OutputPath()
		if n := seen[relPath]; n > 0 {
			seen[relPath] = n + 1
			relPath = numberedPath(relPath, n)
		} else {
			seen[relPath] = 1
		}

		fullPath := filepath.Join(root, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			result.Failures = append(result.Failures, WriteFailure{Path: relPath, Err: err})
			continue
		}
		if err := os.WriteFile(fullPath, []byte(meeting.RenderMarkdown(m)), 0o644); err != nil {
			result.Failures = append(result.Failures, WriteFailure{Path: relPath, Err: err})
			continue
		}
		result.Saved = append(result.Saved, relPath)
	}
	return result
}

func numberedPath(path string, n int) string {
	base := strings.TrimSuffix(path, ".md")
	return fmt.Sprintf("%s_%d.md", base, n)
}
