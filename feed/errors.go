package feed

import (
	"fmt"
)

// PermissionError is returned when the service answers with something other
// than a feed - typically an HTML sign-in or error page - indicating the
// spreadsheet is not accessible to the authenticated account.
type PermissionError struct {
	StatusCode  int
	ContentType string
	Title       string
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("expected a feed response, got %q (HTTP %d)", e.ContentType, e.StatusCode)
	if e.Title != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Title)
	}

	return msg + " - check that the spreadsheet is shared with this account or published to the web ('published to the web' and 'public on the web' are different settings)"
}
