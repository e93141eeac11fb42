package granola

import "fmt"

// NotFoundError indicates the Granola cache file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Granola cache not found at %s. Make sure Granola is installed and has recorded at least one meeting", e.Path)
}

// ParseError indicates the cache file exists but could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupted Granola cache at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("corrupted Granola cache at %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
