package posclient

import (
	"context"
	"net/http"
)

// CheckCredential verifies an encoded credential against the POS secure
// hello endpoint. A rejected credential surfaces as a *RequestError with the
// upstream status; the response body is ignored.
func (c *POSClient) CheckCredential(ctx context.Context, credential string) error {
	return c.do(ctx, credential, http.MethodGet, "/api/secure/hello", nil, nil, nil)
}
