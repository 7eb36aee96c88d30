package stores

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

// DonationFilter narrows a donation fetch. Zero fields are omitted from the
// query.
type DonationFilter struct {
	DonorID  string
	ItemName string
	Category string
}

func (f DonationFilter) values() url.Values {
	query := url.Values{}
	if f.DonorID != "" {
		query.Set("donorId", f.DonorID)
	}
	if f.ItemName != "" {
		query.Set("itemName", f.ItemName)
	}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	return query
}

// DonationStore mirrors the donations collection. Besides the general list
// it keeps a separate donor-history slot with its own status, so browsing a
// donor's detail page does not disturb the main list state.
type DonationStore struct {
	client *datastore.Client

	mu           sync.Mutex
	items        []models.Donation
	fetching     OpState
	adding       OpState
	donorHistory []models.Donation
	historyState OpState
}

func NewDonationStore(client *datastore.Client) *DonationStore {
	return &DonationStore{client: client}
}

// FetchAll replaces the cached general donation list.
func (s *DonationStore) FetchAll(ctx context.Context, filter DonationFilter) ([]models.Donation, error) {
	s.mu.Lock()
	s.fetching.start()
	s.mu.Unlock()

	var donations []models.Donation
	if err := s.client.Get(ctx, "/donations", filter.values(), &donations); err != nil {
		err = fmt.Errorf("fetching donations: %w", err)
		s.mu.Lock()
		s.fetching.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.items = donations
	s.fetching.succeed()
	s.mu.Unlock()
	return donations, nil
}

// FetchByDonor loads one donor's donation history into its dedicated slot.
func (s *DonationStore) FetchByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	s.mu.Lock()
	s.historyState.start()
	s.mu.Unlock()

	var donations []models.Donation
	query := DonationFilter{DonorID: donorID}.values()
	if err := s.client.Get(ctx, "/donations", query, &donations); err != nil {
		err = fmt.Errorf("fetching donations for donor %s: %w", donorID, err)
		s.mu.Lock()
		s.historyState.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.donorHistory = donations
	s.historyState.succeed()
	s.mu.Unlock()
	return donations, nil
}

// FetchByItem lists donations of an exact itemName+category pair without
// touching any cached slot; the item-donors view composes the result itself.
func (s *DonationStore) FetchByItem(ctx context.Context, itemName, category string) ([]models.Donation, error) {
	var donations []models.Donation
	query := DonationFilter{ItemName: itemName, Category: category}.values()
	if err := s.client.Get(ctx, "/donations", query, &donations); err != nil {
		return nil, fmt.Errorf("fetching donations for item %q/%q: %w", itemName, category, err)
	}
	return donations, nil
}

// Create posts a donation record. Donations are immutable afterwards.
func (s *DonationStore) Create(ctx context.Context, donation models.Donation) (models.Donation, error) {
	s.mu.Lock()
	s.adding.start()
	s.mu.Unlock()

	var created models.Donation
	if err := s.client.Post(ctx, "/donations", donation, &created); err != nil {
		err = fmt.Errorf("creating donation: %w", err)
		s.mu.Lock()
		s.adding.fail(err)
		s.mu.Unlock()
		return models.Donation{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.adding.succeed()
	s.mu.Unlock()
	return created, nil
}

func (s *DonationStore) Items() []models.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Donation(nil), s.items...)
}

func (s *DonationStore) DonorHistory() []models.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Donation(nil), s.donorHistory...)
}

func (s *DonationStore) Snapshot() map[string]OpState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]OpState{
		"fetch":        s.fetching.normalized(),
		"create":       s.adding.normalized(),
		"donorHistory": s.historyState.normalized(),
	}
}
