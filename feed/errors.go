package feed

import (
	"errors"
	"fmt"
)

var (
	ErrFetch    = errors.New("failed to fetch articles")
	ErrNotFound = errors.New("article not found")
)

// FetchError describes a failed upstream call.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("news API %s responded with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("news API %s request failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
