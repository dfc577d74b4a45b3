package storefront

import (
	"log/slog"
	"net/url"
	"sync"

	"github.com/asalah03/educate-app-frontend/internal/backend"
	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Controller owns all storefront session state: the lesson catalog, the
// derived search/sort view, the cart ledger and the checkout workflow.
// It is constructed once at startup; the presentation layer never touches
// the state directly, every mutation goes through a Controller method.
//
// The mutex guards in-memory state only. It is never held across a network
// call, so a slow backend stalls only the operation that is waiting on it,
// exactly like the suspension points of the event loop this design mirrors.
type Controller struct {
	api       *backend.Client
	logger    *slog.Logger
	apiOrigin string
	sf        singleflight.Group

	mu       sync.Mutex
	catalog  []domain.Lesson
	cart     []domain.CartItem
	customer domain.CustomerInfo
	query    domain.QueryState
	checkout domain.CheckoutState
}

// New creates a controller with an empty catalog and cart. apiBaseURL is
// used only to derive the origin relative image paths resolve against; a
// malformed base yields an empty origin rather than an error.
func New(api *backend.Client, apiBaseURL string, logger *slog.Logger) *Controller {
	return &Controller{
		api:       api,
		logger:    logger,
		apiOrigin: originOf(apiBaseURL),
		query: domain.QueryState{
			Attribute: domain.SortBySubject,
			Direction: domain.SortAsc,
		},
		checkout: domain.CheckoutIdle,
	}
}

func originOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// SetSearch updates the free-text search query.
func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Search = q
}

// SetSort updates the sort attribute and direction.
func (c *Controller) SetSort(attr domain.SortAttribute, dir domain.SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Attribute = attr
	c.query.Direction = dir
}

// Query returns the current query state.
func (c *Controller) Query() domain.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetCustomer updates the checkout form state.
func (c *Controller) SetCustomer(name, phone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = domain.CustomerInfo{Name: name, Phone: phone}
}

// Customer returns the current checkout form state.
func (c *Controller) Customer() domain.CustomerInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customer
}

// Lessons returns the displayed lesson list: the catalog filtered by the
// current search query, then sorted by the current sort settings. The view
// is a pure derivation recomputed on every call; it shares no storage with
// the catalog.
func (c *Controller) Lessons() []domain.Lesson {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SortedView(FilteredView(c.catalog, c.query.Search), c.query.Attribute, c.query.Direction)
}

// CheckoutState returns the current workflow state.
func (c *Controller) CheckoutState() domain.CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkout
}

func (c *Controller) setCheckoutState(s domain.CheckoutState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkout = s
}

// findLessonLocked returns a pointer into the catalog slice, so callers may
// mutate Spaces in place. Must be called with c.mu held.
func (c *Controller) findLessonLocked(id uuid.UUID) *domain.Lesson {
	for i := range c.catalog {
		if c.catalog[i].ID == id {
			return &c.catalog[i]
		}
	}
	return nil
}
