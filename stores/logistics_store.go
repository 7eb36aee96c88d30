package stores

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

// LogisticsStore mirrors the logistics collection, newest first. It also
// remembers which record's status is currently being updated so the UI can
// give per-row feedback.
type LogisticsStore struct {
	client *datastore.Client

	mu             sync.Mutex
	items          []models.LogisticsRecord
	fetching       OpState
	creating       OpState
	updating       OpState
	updatingItemID string
}

func NewLogisticsStore(client *datastore.Client) *LogisticsStore {
	return &LogisticsStore{client: client}
}

// FetchAll replaces the cached list, sorted by creationDate descending by
// the server.
func (s *LogisticsStore) FetchAll(ctx context.Context) ([]models.LogisticsRecord, error) {
	s.mu.Lock()
	s.fetching.start()
	s.mu.Unlock()

	query := url.Values{
		"_sort":  {"creationDate"},
		"_order": {"desc"},
	}
	var records []models.LogisticsRecord
	if err := s.client.Get(ctx, "/logistics", query, &records); err != nil {
		err = fmt.Errorf("fetching logistics records: %w", err)
		s.mu.Lock()
		s.fetching.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.items = records
	s.fetching.succeed()
	s.mu.Unlock()
	return records, nil
}

// Create posts a new shipment and prepends it to the cached list so it shows
// up first immediately.
func (s *LogisticsStore) Create(ctx context.Context, record models.LogisticsRecord) (models.LogisticsRecord, error) {
	s.mu.Lock()
	s.creating.start()
	s.mu.Unlock()

	var created models.LogisticsRecord
	if err := s.client.Post(ctx, "/logistics", record, &created); err != nil {
		err = fmt.Errorf("creating logistics record: %w", err)
		s.mu.Lock()
		s.creating.fail(err)
		s.mu.Unlock()
		return models.LogisticsRecord{}, err
	}

	s.mu.Lock()
	s.items = append([]models.LogisticsRecord{created}, s.items...)
	s.creating.succeed()
	s.mu.Unlock()
	return created, nil
}

// ApplyStatus issues the partial update setting status and lastUpdateDate,
// then splices the server's copy into the cache.
func (s *LogisticsStore) ApplyStatus(ctx context.Context, id string, status models.ShipmentStatus, at time.Time) (models.LogisticsRecord, error) {
	s.mu.Lock()
	s.updating.start()
	s.updatingItemID = id
	s.mu.Unlock()

	patch := map[string]any{
		"status":         status,
		"lastUpdateDate": at,
	}
	var updated models.LogisticsRecord
	if err := s.client.Patch(ctx, "/logistics/"+id, patch, &updated); err != nil {
		err = fmt.Errorf("updating shipment %s status: %w", id, err)
		s.mu.Lock()
		s.updating.fail(err)
		s.mu.Unlock()
		return models.LogisticsRecord{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	s.updating.succeed()
	s.updatingItemID = ""
	s.mu.Unlock()
	return updated, nil
}

// Find resolves a record from the local cache only.
func (s *LogisticsStore) Find(id string) (models.LogisticsRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.items {
		if record.ID == id {
			return record, true
		}
	}
	return models.LogisticsRecord{}, false
}

// Get fetches one record directly from the server.
func (s *LogisticsStore) Get(ctx context.Context, id string) (models.LogisticsRecord, error) {
	var record models.LogisticsRecord
	if err := s.client.Get(ctx, "/logistics/"+id, nil, &record); err != nil {
		return models.LogisticsRecord{}, fmt.Errorf("fetching shipment %s: %w", id, err)
	}
	return record, nil
}

func (s *LogisticsStore) Items() []models.LogisticsRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LogisticsRecord(nil), s.items...)
}

// UpdatingItemID returns the id of the record whose status update is in
// flight, or empty.
func (s *LogisticsStore) UpdatingItemID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatingItemID
}

func (s *LogisticsStore) Snapshot() map[string]OpState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]OpState{
		"fetch":  s.fetching.normalized(),
		"create": s.creating.normalized(),
		"update": s.updating.normalized(),
	}
}
