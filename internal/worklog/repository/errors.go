package repository

import (
	"fmt"
	"strings"
)

// UpstreamError is a non-success response from the tracker. Status and body
// are kept verbatim so they can be shown to the user.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, strings.TrimSpace(e.Body))
}
