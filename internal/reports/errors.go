package reports

import "fmt"

// ValidationError signals a bad or missing request parameter and maps to a
// 400 response.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s required", e.Param)
}

// StoreUnavailableError signals that the underlying store could not serve
// the report data and maps to a 500 response.
type StoreUnavailableError struct {
	Cause error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s", e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Cause
}
