package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
)

// Cataloger owns the in-memory group/item tree for the lifetime of the
// service. The tree is fetched once and thereafter updated by merging
// server-confirmed mutation results; a full refetch happens only on an
// explicit Refresh.
type Cataloger interface {
	Groups(ctx context.Context, credential string) ([]posdomain.MenuGroup, error)
	Search(ctx context.Context, credential, text string) ([]posdomain.MenuGroup, error)
	Refresh(ctx context.Context, credential string) error
	UpdateItem(ctx context.Context, credential string, itemID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error)
	CreateItem(ctx context.Context, credential string, groupID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error)
}

type Service struct {
	client posclient.Client

	mu     sync.RWMutex
	groups []posdomain.MenuGroup
	// index maps item ID to its owning group ID, so a confirmed update
	// merges with one lookup instead of scanning every group's item list.
	index  map[int64]int64
	loaded bool
}

func NewService(client posclient.Client) Cataloger {
	return &Service{
		client: client,
		index:  make(map[int64]int64),
	}
}

// Groups returns the cached tree, fetching it on first access. Item order
// within a group reflects the server response.
func (s *Service) Groups(ctx context.Context, credential string) ([]posdomain.MenuGroup, error) {
	if err := s.ensureLoaded(ctx, credential); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGroups(s.groups), nil
}

// Search filters the cached tree by item name or description, case
// insensitive. No request is issued; the full hierarchy is already local.
func (s *Service) Search(ctx context.Context, credential, text string) ([]posdomain.MenuGroup, error) {
	groups, err := s.Groups(ctx, credential)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return groups, nil
	}

	filtered := make([]posdomain.MenuGroup, 0, len(groups))
	for _, group := range groups {
		matches := make([]posdomain.MenuItem, 0, len(group.Items))
		for _, item := range group.Items {
			if strings.Contains(strings.ToLower(item.ItemName), needle) ||
				strings.Contains(strings.ToLower(item.ItemDescription), needle) {
				matches = append(matches, item)
			}
		}
		if len(matches) > 0 {
			group.Items = matches
			filtered = append(filtered, group)
		}
	}

	return filtered, nil
}

// Refresh refetches the entire tree and replaces the cache wholesale.
func (s *Service) Refresh(ctx context.Context, credential string) error {
	groups, err := s.client.GetGroups(ctx, credential)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = groups
	s.index = buildIndex(groups)
	s.loaded = true

	logrus.WithFields(logrus.Fields{
		"groups": len(groups),
		"items":  len(s.index),
	}).Info("catalog: tree loaded")

	return nil
}

// UpdateItem validates, dispatches the update, and swaps the confirmed
// entity into whichever group currently owns it. A failed dispatch leaves
// the tree untouched.
func (s *Service) UpdateItem(ctx context.Context, credential string, itemID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	if err := s.ensureLoaded(ctx, credential); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateItem(ctx, credential, itemID, fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	groupID, ok := s.index[updated.ItemID]
	if !ok {
		// The item exists upstream but not in our tree; the next Refresh
		// reconciles it.
		logrus.WithField("item_id", updated.ItemID).Warn("catalog: updated item not in cached tree")
		return updated, nil
	}

	for gi := range s.groups {
		if s.groups[gi].GroupID != groupID {
			continue
		}
		for ii := range s.groups[gi].Items {
			if s.groups[gi].Items[ii].ItemID == updated.ItemID {
				s.groups[gi].Items[ii] = *updated
				break
			}
		}
		break
	}

	return updated, nil
}

// CreateItem validates, dispatches the creation scoped to a group, and
// appends the server-returned entity verbatim to that group's item list.
func (s *Service) CreateItem(ctx context.Context, credential string, groupID int64, fields posdomain.ItemFields) (*posdomain.MenuItem, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	if err := s.ensureLoaded(ctx, credential); err != nil {
		return nil, err
	}

	created, err := s.client.CreateItemInGroup(ctx, credential, groupID, fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for gi := range s.groups {
		if s.groups[gi].GroupID == groupID {
			s.groups[gi].Items = append(s.groups[gi].Items, *created)
			s.index[created.ItemID] = groupID
			return created, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"group_id": groupID,
		"item_id":  created.ItemID,
	}).Warn("catalog: created item's group not in cached tree")

	return created, nil
}

func (s *Service) ensureLoaded(ctx context.Context, credential string) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}

	return s.Refresh(ctx, credential)
}

func validateFields(fields posdomain.ItemFields) error {
	if strings.TrimSpace(fields.ItemName) == "" {
		return &ValidationError{Field: "itemName", Reason: "must not be blank"}
	}
	if strings.TrimSpace(fields.ItemDescription) == "" {
		return &ValidationError{Field: "itemDescription", Reason: "must not be blank"}
	}
	if fields.ItemPrice < 0 {
		return &ValidationError{Field: "itemPrice", Reason: "must not be negative"}
	}
	return nil
}

func buildIndex(groups []posdomain.MenuGroup) map[int64]int64 {
	index := make(map[int64]int64)
	for _, group := range groups {
		for _, item := range group.Items {
			index[item.ItemID] = group.GroupID
		}
	}
	return index
}

// cloneGroups copies the tree so readers never observe an in-place merge.
func cloneGroups(groups []posdomain.MenuGroup) []posdomain.MenuGroup {
	out := make([]posdomain.MenuGroup, len(groups))
	for i, group := range groups {
		items := make([]posdomain.MenuItem, len(group.Items))
		copy(items, group.Items)
		group.Items = items
		out[i] = group
	}
	return out
}
