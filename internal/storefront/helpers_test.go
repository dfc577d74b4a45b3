package storefront

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/asalah03/educate-app-frontend/internal/backend"
	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lesson(subject, location string, price float64, spaces int) domain.Lesson {
	return domain.Lesson{
		ID:       uuid.New(),
		Subject:  subject,
		Location: location,
		Price:    price,
		Spaces:   spaces,
	}
}

// newTestController seeds a controller with a catalog directly, bypassing
// the network for tests that only exercise in-memory state.
func newTestController(t *testing.T, catalog ...domain.Lesson) *Controller {
	t.Helper()
	c := New(nil, "http://localhost:3000", testLogger())
	c.catalog = catalog
	return c
}

type spacesUpdate struct {
	Subject  string `json:"subject"`
	Location string `json:"location"`
	Spaces   int    `json:"spaces"`
}

// fakeBackend is an httptest-backed lessons API with switchable failure
// modes for each endpoint.
type fakeBackend struct {
	mu           sync.Mutex
	lessons      []domain.Lesson
	orders       []domain.Order
	updates      []spacesUpdate
	listCalls    int
	failList     bool
	failOrder    bool
	failUpdateAt int // 0-based index of the update call to fail, -1 for none

	srv *httptest.Server
}

func newFakeBackend(t *testing.T, lessons ...domain.Lesson) *fakeBackend {
	t.Helper()

	f := &fakeBackend{lessons: lessons, failUpdateAt: -1}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/lessons":
		f.listCalls++
		if f.failList {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(f.lessons)

	case r.Method == http.MethodPost && r.URL.Path == "/order":
		if f.failOrder {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var order domain.Order
		_ = json.NewDecoder(r.Body).Decode(&order)
		f.orders = append(f.orders, order)
		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodPut && r.URL.Path == "/lessons":
		var upd spacesUpdate
		_ = json.NewDecoder(r.Body).Decode(&upd)
		f.updates = append(f.updates, upd)
		if f.failUpdateAt >= 0 && len(f.updates)-1 == f.failUpdateAt {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeBackend) controller(t *testing.T) *Controller {
	t.Helper()
	return New(backend.New(f.srv.URL), f.srv.URL, testLogger())
}

func (f *fakeBackend) setFailList(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failList = v
}

func (f *fakeBackend) setFailUpdateAt(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failUpdateAt = n
}

func (f *fakeBackend) setFailOrder(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOrder = v
}

func (f *fakeBackend) recordedOrders() []domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.orders...)
}

func (f *fakeBackend) recordedUpdates() []spacesUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]spacesUpdate(nil), f.updates...)
}

func (f *fakeBackend) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}
