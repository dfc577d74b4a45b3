package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/google/uuid"
)

// LoadCatalog fetches the full lesson list from the backend and replaces
// the in-memory catalog wholesale, assigning each lesson a fresh ID at
// ingestion. On failure the previous catalog is left untouched and the
// error is returned for the caller to surface; there is no automatic
// retry. Concurrent calls are collapsed into a single backend fetch.
//
// Parameters:
//   - ctx: request-scoped context.
//
// Returns:
//   - error: backend.ErrUnexpectedStatus or a transport error on failure.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	const op = "storefront.LoadCatalog"

	_, err, _ := c.sf.Do("catalog", func() (any, error) {
		lessons, err := c.api.ListLessons(ctx)
		if err != nil {
			return nil, err
		}

		for i := range lessons {
			lessons[i].ID = uuid.New()
		}

		c.mu.Lock()
		c.catalog = lessons
		c.mu.Unlock()

		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Catalog returns a copy of the raw catalog in backend order.
func (c *Controller) Catalog() []domain.Lesson {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Lesson, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// ResolveImageURL turns a lesson's image field into a displayable URL.
// Empty stays empty; a recognized relative asset path is resolved against
// the backend origin; anything else is assumed absolute and returned
// unchanged.
func (c *Controller) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "images/") {
		return c.apiOrigin + "/" + path
	}

	if strings.HasPrefix(path, "/images/") {
		return c.apiOrigin + path
	}

	return path
}
