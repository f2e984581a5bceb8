package gcalendar

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrUnsupportedCredentials = errors.New("unsupported google credentials format")
	ErrMissingToken           = errors.New("oauth desktop credentials require a saved token")
)

// isGone reports whether err is a 404 or 410 from the Calendar API.
func isGone(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
}
