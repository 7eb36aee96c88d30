package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

type DonorStore struct {
	client *datastore.Client

	mu       sync.Mutex
	items    []models.Donor
	fetching OpState
	adding   OpState
	updating OpState
	deleting OpState
}

func NewDonorStore(client *datastore.Client) *DonorStore {
	return &DonorStore{client: client}
}

// FetchAll replaces the cached donor list with the server response.
func (s *DonorStore) FetchAll(ctx context.Context) ([]models.Donor, error) {
	s.mu.Lock()
	s.fetching.start()
	s.mu.Unlock()

	var donors []models.Donor
	if err := s.client.Get(ctx, "/donors", nil, &donors); err != nil {
		err = fmt.Errorf("fetching donors: %w", err)
		s.mu.Lock()
		s.fetching.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.items = donors
	s.fetching.succeed()
	s.mu.Unlock()
	return donors, nil
}

// Create posts a new donor and splices the server's copy (with its assigned
// id) into the cache.
func (s *DonorStore) Create(ctx context.Context, donor models.Donor) (models.Donor, error) {
	s.mu.Lock()
	s.adding.start()
	s.mu.Unlock()

	var created models.Donor
	if err := s.client.Post(ctx, "/donors", donor, &created); err != nil {
		err = fmt.Errorf("creating donor: %w", err)
		s.mu.Lock()
		s.adding.fail(err)
		s.mu.Unlock()
		return models.Donor{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.adding.succeed()
	s.mu.Unlock()
	return created, nil
}

func (s *DonorStore) Update(ctx context.Context, id string, donor models.Donor) (models.Donor, error) {
	s.mu.Lock()
	s.updating.start()
	s.mu.Unlock()

	var updated models.Donor
	if err := s.client.Put(ctx, "/donors/"+id, donor, &updated); err != nil {
		err = fmt.Errorf("updating donor %s: %w", id, err)
		s.mu.Lock()
		s.updating.fail(err)
		s.mu.Unlock()
		return models.Donor{}, err
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

// Delete removes the donor remotely, then locally. Donations referencing the
// donor are intentionally left alone; the reference is weak.
func (s *DonorStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.deleting.start()
	s.mu.Unlock()

	if err := s.client.Delete(ctx, "/donors/"+id); err != nil {
		err = fmt.Errorf("deleting donor %s: %w", id, err)
		s.mu.Lock()
		s.deleting.fail(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	filtered := s.items[:0]
	for _, donor := range s.items {
		if donor.ID != id {
			filtered = append(filtered, donor)
		}
	}
	s.items = filtered
	s.deleting.succeed()
	s.mu.Unlock()
	return nil
}

// Get fetches one donor directly by id, bypassing the cache. Used by the
// cross-reference views that must resolve donors one at a time.
func (s *DonorStore) Get(ctx context.Context, id string) (models.Donor, error) {
	var donor models.Donor
	if err := s.client.Get(ctx, "/donors/"+id, nil, &donor); err != nil {
		return models.Donor{}, fmt.Errorf("fetching donor %s: %w", id, err)
	}
	return donor, nil
}

// Items returns a copy of the cached donor list.
func (s *DonorStore) Items() []models.Donor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Donor(nil), s.items...)
}

// Snapshot reports every operation's current status for the UI layer.
func (s *DonorStore) Snapshot() map[string]OpState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]OpState{
		"fetch":  s.fetching.normalized(),
		"create": s.adding.normalized(),
		"update": s.updating.normalized(),
		"delete": s.deleting.normalized(),
	}
}
