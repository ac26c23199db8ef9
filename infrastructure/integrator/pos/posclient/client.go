package posclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/config"
)

// Client is the authenticated dispatcher for the POS ledger API. Every call
// takes the caller's encoded credential explicitly; an empty credential
// fails closed with ErrUnauthenticated before any network I/O. Calls are
// at-most-once: no retry, no backoff.
type Client interface {
	CheckCredential(ctx context.Context, credential string) error
	GetDashboard(ctx context.Context, credential string, params DashboardParams) (*posdomain.DashboardSummary, error)
	GetSalesByDateStore(ctx context.Context, credential string, params SalesParams) (*posdomain.SalesPage, error)
	GetGroups(ctx context.Context, credential string) ([]posdomain.MenuGroup, error)
	UpdateItem(ctx context.Context, credential string, itemID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error)
	CreateItemInGroup(ctx context.Context, credential string, groupID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error)
}

type POSClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &POSClient{
		httpClient: &http.Client{
			Timeout: cfg.POS.RequestTimeout,
		},
		config: cfg,
	}
}

// do issues one authenticated JSON request against the POS ledger API and
// decodes the response into out (out may be nil for calls without a body).
func (c *POSClient) do(ctx context.Context, credential, method, apiPath string, query url.Values, body any, out any) error {
	if credential == "" {
		return ErrUnauthenticated
	}

	endpoint, err := url.Parse(c.config.POS.BaseURL)
	if err != nil {
		return errors.Wrap(err, "parsing POS base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, apiPath)

	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "creating POS request")
	}

	req.Header.Set("Authorization", "Basic "+credential)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "executing POS request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return &RequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Body:       fmt.Sprintf("decoding response: %v", err),
		}
	}

	return nil
}
