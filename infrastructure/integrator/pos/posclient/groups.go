package posclient

import (
	"context"
	"net/http"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
)

// GetGroups fetches the entire group/item tree in one call.
func (c *POSClient) GetGroups(ctx context.Context, credential string) ([]posdomain.MenuGroup, error) {
	var groups []posdomain.MenuGroup
	if err := c.do(ctx, credential, http.MethodGet, "/api/groups", nil, nil, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}
