package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/catalog"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
	"github.com/mgeorge47/canteen-console-api/pkg/log"
)

// writeServiceError maps a usecase error to the console error taxonomy.
// Nothing is swallowed: every branch logs the raw error before responding.
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("request failed")

	if valErr, ok := catalog.AsValidationError(err); ok {
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, valErr.Error(), map[string]any{
			"field":  valErr.Field,
			"reason": valErr.Reason,
		})
		return
	}

	if errors.Is(err, posclient.ErrUnauthenticated) {
		apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "No credential cached for this session", nil)
		return
	}

	if reqErr, ok := posclient.AsRequestError(err); ok {
		switch {
		case reqErr.Unauthorized():
			// Stale credential discovered on use; the UI forces a re-login.
			apiErrors.WriteError(w, apiErrors.ErrCredentialRejected, "POS rejected the cached credential", nil)
		case reqErr.StatusCode >= 200 && reqErr.StatusCode < 300:
			// 2xx with a RequestError means the body did not decode.
			apiErrors.WriteError(w, apiErrors.ErrUpstreamDecode, "POS response shape mismatch", map[string]any{
				"status": reqErr.StatusCode,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrUpstreamRequest, "POS request failed", map[string]any{
				"status": reqErr.StatusCode,
				"body":   reqErr.Body,
			})
		}
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal error", nil)
}
