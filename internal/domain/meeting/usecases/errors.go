package usecases

import "fmt"

// InvalidFilterError reports a filter value that cannot be used, either
// because it does not parse or because it conflicts with another filter.
type InvalidFilterError struct {
	Message string
	Cause   error
}

func (e *InvalidFilterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InvalidFilterError) Unwrap() error {
	return e.Cause
}
