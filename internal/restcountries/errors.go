package restcountries

import "fmt"

// StatusError indicates the API answered with a non-success status
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("API error (status %d)", e.Code)
	}

	return fmt.Sprintf("API error (status %d %s)", e.Code, e.Status)
}

// DecodeError wraps a failure to parse a response body
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a lookup returned an empty result list
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no country found for code %s", e.Code)
}
