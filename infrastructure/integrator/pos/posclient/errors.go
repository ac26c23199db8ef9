package posclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrUnauthenticated is returned when no credential is available for a call.
// The dispatcher refuses locally; no network request is issued.
var ErrUnauthenticated = errors.New("no credential cached for POS request")

// RequestError reports a POS call that reached the network and failed:
// either a non-2xx status or a response body that did not decode into the
// expected shape.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("pos request failed with status %d: %s", e.StatusCode, e.Body)
}

// Unauthorized reports whether the upstream rejected the cached credential.
// The console maps this to a forced re-login.
func (e *RequestError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsRequestError unwraps err into a *RequestError when possible.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
