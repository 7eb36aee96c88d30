package stores

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

type InventoryStore struct {
	client *datastore.Client

	mu       sync.Mutex
	items    []models.InventoryItem
	fetching OpState
	adding   OpState
	updating OpState
	deleting OpState
}

func NewInventoryStore(client *datastore.Client) *InventoryStore {
	return &InventoryStore{client: client}
}

// FetchAll replaces the cached inventory with the server response.
func (s *InventoryStore) FetchAll(ctx context.Context) ([]models.InventoryItem, error) {
	s.mu.Lock()
	s.fetching.start()
	s.mu.Unlock()

	var items []models.InventoryItem
	if err := s.client.Get(ctx, "/inventory", nil, &items); err != nil {
		err = fmt.Errorf("fetching inventory: %w", err)
		s.mu.Lock()
		s.fetching.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.fetching.succeed()
	s.mu.Unlock()
	return items, nil
}

// Settled reports whether the cache reflects a completed fetch. The shipment
// workflow refetches when it does not.
func (s *InventoryStore) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetching.Status == StatusSucceeded
}

// FindByNameCategory queries the remote collection for the exact
// itemName+category pair. The donation workflow relies on this to decide
// between incrementing an existing item and creating a new one.
func (s *InventoryStore) FindByNameCategory(ctx context.Context, itemName, category string) (models.InventoryItem, bool, error) {
	query := url.Values{
		"itemName": {itemName},
		"category": {category},
	}
	var items []models.InventoryItem
	if err := s.client.Get(ctx, "/inventory", query, &items); err != nil {
		return models.InventoryItem{}, false, fmt.Errorf("looking up inventory item %q/%q: %w", itemName, category, err)
	}
	if len(items) == 0 {
		return models.InventoryItem{}, false, nil
	}
	return items[0], true, nil
}

// FindByID resolves an item from the local cache only.
func (s *InventoryStore) FindByID(id string) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *InventoryStore) Create(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	s.adding.start()
	s.mu.Unlock()

	var created models.InventoryItem
	if err := s.client.Post(ctx, "/inventory", item, &created); err != nil {
		err = fmt.Errorf("creating inventory item: %w", err)
		s.mu.Lock()
		s.adding.fail(err)
		s.mu.Unlock()
		return models.InventoryItem{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.adding.succeed()
	s.mu.Unlock()
	return created, nil
}

func (s *InventoryStore) Update(ctx context.Context, id string, item models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	s.updating.start()
	s.mu.Unlock()

	var updated models.InventoryItem
	if err := s.client.Put(ctx, "/inventory/"+id, item, &updated); err != nil {
		err = fmt.Errorf("updating inventory item %s: %w", id, err)
		s.mu.Lock()
		s.updating.fail(err)
		s.mu.Unlock()
		return models.InventoryItem{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	s.updating.succeed()
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the item remotely, then locally. Donation history for the
// item is unaffected. A server-side failure is surfaced as a failure, never
// swallowed.
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.deleting.start()
	s.mu.Unlock()

	if err := s.client.Delete(ctx, "/inventory/"+id); err != nil {
		err = fmt.Errorf("deleting inventory item %s: %w", id, err)
		s.mu.Lock()
		s.deleting.fail(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	s.deleting.succeed()
	s.mu.Unlock()
	return nil
}

func (s *InventoryStore) Items() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.items...)
}

func (s *InventoryStore) Snapshot() map[string]OpState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]OpState{
		"fetch":  s.fetching.normalized(),
		"create": s.adding.normalized(),
		"update": s.updating.normalized(),
		"delete": s.deleting.normalized(),
	}
}
