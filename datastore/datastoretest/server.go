// Package datastoretest runs an in-process stand-in for the hosted REST data
// store, with the semantics the app depends on: query parameters act as
// equality filters, POST assigns ids, PUT replaces, PATCH merges, and
// _sort/_order sorts list responses.
package datastoretest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
)

type failure struct {
	status  int
	message string
}

type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	nextID      int
	failNext    map[string]failure
	requests    []string
}

// New starts a fake data store that is shut down with the test.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		collections: make(map[string][]map[string]any),
		failNext:    make(map[string]failure),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Seed inserts an item directly into a collection, assigning an id when the
// item has none. The stored copy is returned.
func (s *Server) Seed(collection string, item map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(item)
	if _, ok := stored["id"]; !ok {
		s.nextID++
		stored["id"] = fmt.Sprintf("%d", s.nextID)
	}
	s.collections[collection] = append(s.collections[collection], stored)
	return clone(stored)
}

// Items returns a copy of a collection's current contents.
func (s *Server) Items(collection string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]map[string]any, 0, len(s.collections[collection]))
	for _, item := range s.collections[collection] {
		items = append(items, clone(item))
	}
	return items
}

// Item returns one entity by id, or nil if absent.
func (s *Server) Item(collection, id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.collections[collection] {
		if item["id"] == id {
			return clone(item)
		}
	}
	return nil
}

// FailNext makes the next request matching method and path fail with the
// given status and message. Used to exercise partial-failure behavior.
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext[method+" "+path] = failure{status: status, message: message}
}

// Requests returns the "METHOD /path" log of everything received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)

	if f, ok := s.failNext[r.Method+" "+r.URL.Path]; ok {
		delete(s.failNext, r.Method+" "+r.URL.Path)
		writeJSON(w, f.status, map[string]string{"message": f.message})
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		s.list(w, r, collection)
	case len(parts) == 1 && r.Method == http.MethodPost:
		s.create(w, r, collection)
	case len(parts) == 2 && r.Method == http.MethodGet:
		s.get(w, collection, parts[1])
	case len(parts) == 2 && r.Method == http.MethodPut:
		s.replace(w, r, collection, parts[1])
	case len(parts) == 2 && r.Method == http.MethodPatch:
		s.merge(w, r, collection, parts[1])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		s.delete(w, collection, parts[1])
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, collection string) {
	sortField := r.URL.Query().Get("_sort")
	order := r.URL.Query().Get("_order")

	items := make([]map[string]any, 0)
	for _, item := range s.collections[collection] {
		if matches(item, r) {
			items = append(items, clone(item))
		}
	}

	if sortField != "" {
		sort.SliceStable(items, func(i, j int) bool {
			a := fmt.Sprint(items[i][sortField])
			b := fmt.Sprint(items[j][sortField])
			if order == "desc" {
				return a > b
			}
			return a < b
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, collection string) {
	item := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	s.nextID++
	item["id"] = fmt.Sprintf("%d", s.nextID)
	s.collections[collection] = append(s.collections[collection], item)
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) get(w http.ResponseWriter, collection, id string) {
	for _, item := range s.collections[collection] {
		if item["id"] == id {
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request, collection, id string) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	for i, item := range s.collections[collection] {
		if item["id"] == id {
			body["id"] = id
			s.collections[collection][i] = body
			writeJSON(w, http.StatusOK, body)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

func (s *Server) merge(w http.ResponseWriter, r *http.Request, collection, id string) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	for _, item := range s.collections[collection] {
		if item["id"] == id {
			for k, v := range body {
				item[k] = v
			}
			item["id"] = id
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

func (s *Server) delete(w http.ResponseWriter, collection, id string) {
	for i, item := range s.collections[collection] {
		if item["id"] == id {
			s.collections[collection] = append(s.collections[collection][:i], s.collections[collection][i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

// matches applies every non-underscore query parameter as an equality filter.
func matches(item map[string]any, r *http.Request) bool {
	for key, values := range r.URL.Query() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if len(values) == 0 {
			continue
		}
		if fmt.Sprint(item[key]) != values[0] {
			return false
		}
	}
	return true
}

func clone(item map[string]any) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
