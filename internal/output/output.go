package output

import (
	"fmt"
	"io"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) ExportStarted(dir string, count int) {
	fmt.Fprintf(f.w, "📁 Extracting %d meeting(s) to %s\n", count, dir)
}

func (f *Formatter) FilterApplied(desc string) {
	fmt.Fprintf(f.w, "🔍 Filter: %s\n", desc)
}

func (f *Formatter) Saved(path string) {
	fmt.Fprintf(f.w, "  ✅ %s\n", path)
}

func (f *Formatter) WriteFailed(path string, err error) {
	fmt.Fprintf(f.w, "  ❌ %s: %v\n", path, err)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) MeetingListHeader(count int) {
	fmt.Fprintf(f.w, "📋 Found %d meeting(s):\n\n", count)
}

func (f *Formatter) MeetingListItem(index int, date, title, duration string) {
	if duration != "" {
		fmt.Fprintf(f.w, "%3d. [%s] %s (%s)\n", index, date, title, duration)
		return
	}
	fmt.Fprintf(f.w, "%3d. [%s] %s\n", index, date, title)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
