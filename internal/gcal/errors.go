package gcal

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotAuthenticated is returned when an operation is attempted with
	// no valid session. Callers can probe IsEnabled first to avoid it.
	ErrNotAuthenticated = errors.New("google calendar: not authenticated")

	// ErrCalendarNotFound means the configured calendar id does not exist,
	// typically a misconfigured id (use "primary" for the main calendar).
	ErrCalendarNotFound = errors.New("google calendar: calendar not found")
)

// classify maps a provider error into the adapter taxonomy. Anything that
// is not a 404 stays a transient provider error.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrCalendarNotFound, err)
	}
	return err
}
