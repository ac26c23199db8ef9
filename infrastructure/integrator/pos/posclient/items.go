package posclient

import (
	"context"
	"fmt"
	"net/http"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
)

// UpdateItem dispatches a partial item update and returns the
// server-confirmed entity.
func (c *POSClient) UpdateItem(ctx context.Context, credential string, itemID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error) {
	var item posdomain.MenuItem
	apiPath := fmt.Sprintf("/api/items/%d", itemID)

	if err := c.do(ctx, credential, http.MethodPut, apiPath, nil, fields, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// CreateItemInGroup dispatches an item creation scoped to a group and
// returns the created entity. The server assigns the item ID.
func (c *POSClient) CreateItemInGroup(ctx context.Context, credential string, groupID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error) {
	var item posdomain.MenuItem
	apiPath := fmt.Sprintf("/api/items/group/%d", groupID)

	if err := c.do(ctx, credential, http.MethodPost, apiPath, nil, fields, &item); err != nil {
		return nil, err
	}

	return &item, nil
}
