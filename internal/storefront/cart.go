package storefront

import (
	"fmt"

	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/google/uuid"
)

// AddSeat reserves one seat on the identified lesson: it decrements the
// lesson's spaces and appends a snapshot cart item. One cart item exists
// per reserved seat, there is no quantity field.
//
// Parameters:
//   - lessonID: the ingestion-assigned lesson ID.
//
// Returns:
//   - error: storefront.ErrLessonNotFound if the ID matches no catalog entry.
//   - error: storefront.ErrNoSpacesLeft if the lesson is sold out.
func (c *Controller) AddSeat(lessonID uuid.UUID) error {
	const op = "storefront.AddSeat"

	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.findLessonLocked(lessonID)
	if l == nil {
		return fmt.Errorf("%s: %w", op, ErrLessonNotFound)
	}

	if l.Spaces <= 0 {
		return fmt.Errorf("%s: %w", op, ErrNoSpacesLeft)
	}

	l.Spaces--
	c.cart = append(c.cart, domain.CartItem{
		LessonID: l.ID,
		Subject:  l.Subject,
		Location: l.Location,
		Price:    l.Price,
	})

	return nil
}

// RemoveSeat releases the reservation at index. The cart item is removed
// and the matching catalog lesson gets its seat back. If the lesson is no
// longer in the catalog (e.g. the catalog was reloaded underneath the
// cart) the removal still succeeds and no seat is restored.
//
// Parameters:
//   - index: position of the item in the cart.
//
// Returns:
//   - error: storefront.ErrCartIndexOutOfRange if index is out of bounds.
func (c *Controller) RemoveSeat(index int) error {
	const op = "storefront.RemoveSeat"

	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.cart) {
		return fmt.Errorf("%s: %w", op, ErrCartIndexOutOfRange)
	}

	item := c.cart[index]
	c.cart = append(c.cart[:index], c.cart[index+1:]...)

	l := c.findLessonLocked(item.LessonID)
	if l == nil {
		c.logger.Warn("removed cart item has no catalog lesson, seat not restored",
			"subject", item.Subject, "location", item.Location)
		return nil
	}

	l.Spaces++
	return nil
}

// CartItems returns a copy of the cart in reservation order.
func (c *Controller) CartItems() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartItem, len(c.cart))
	copy(out, c.cart)
	return out
}

// CartCount returns the number of reserved seats.
func (c *Controller) CartCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cart)
}

// CartTotal returns the sum of the captured item prices.
func (c *Controller) CartTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cartTotalLocked()
}

func (c *Controller) cartTotalLocked() float64 {
	var total float64
	for _, item := range c.cart {
		total += item.Price
	}
	return total
}
