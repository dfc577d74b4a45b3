package storefront

import (
	"context"
	"fmt"
	"regexp"

	"github.com/asalah03/educate-app-frontend/internal/domain"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// CheckoutResult reports a completed checkout. CatalogRefreshed is false
// when the order went through but the follow-up catalog reload failed;
// that failure is independent of the checkout's own outcome.
type CheckoutResult struct {
	Message          string
	CatalogRefreshed bool
}

// CheckoutValid reports whether a checkout may start: the customer name is
// letters and spaces only, the phone is digits only, and the cart is not
// empty.
func (c *Controller) CheckoutValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkoutValidLocked()
}

func (c *Controller) checkoutValidLocked() bool {
	return nameRe.MatchString(c.customer.Name) &&
		phoneRe.MatchString(c.customer.Phone) &&
		len(c.cart) > 0
}

// Checkout runs the order workflow: submit the order, then push each
// reserved lesson's current availability to the backend one call at a
// time, then clear the cart and customer info and reload the catalog.
//
// Failure semantics follow the state machine Idle -> Submitting ->
// {Success, Failed}. A rejected or unreachable order submission fails the
// checkout with cart and customer preserved for resubmission. A failed
// availability update aborts the remaining updates and fails the checkout
// even though the order was already accepted; the backend and the local
// view may diverge until the next successful catalog load. Cart items
// whose lesson is no longer in the catalog are skipped silently.
//
// Parameters:
//   - ctx: request-scoped context.
//
// Returns:
//   - CheckoutResult: confirmation message and reload outcome on success.
//   - error: storefront.ErrCheckoutInvalid if preconditions are unmet
//     (state stays Idle, nothing is touched).
//   - error: storefront.ErrCheckoutInFlight if a checkout is running.
func (c *Controller) Checkout(ctx context.Context) (CheckoutResult, error) {
	const op = "storefront.Checkout"

	c.mu.Lock()
	if c.checkout == domain.CheckoutSubmitting {
		c.mu.Unlock()
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, ErrCheckoutInFlight)
	}

	// A terminal Success/Failed state resets to Idle on the next attempt.
	if !c.checkoutValidLocked() {
		c.checkout = domain.CheckoutIdle
		c.mu.Unlock()
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, ErrCheckoutInvalid)
	}

	c.checkout = domain.CheckoutSubmitting
	order := domain.Order{
		Name:  c.customer.Name,
		Phone: c.customer.Phone,
		Items: append([]domain.CartItem(nil), c.cart...),
		Total: c.cartTotalLocked(),
	}
	c.mu.Unlock()

	if err := c.api.SubmitOrder(ctx, order); err != nil {
		c.setCheckoutState(domain.CheckoutFailed)
		return CheckoutResult{}, fmt.Errorf("%s: submit order: %w", op, err)
	}

	// One availability update per cart item, strictly sequential. The
	// pushed value is the lesson's current local spaces count.
	for _, item := range order.Items {
		c.mu.Lock()
		l := c.findLessonLocked(item.LessonID)
		if l == nil {
			c.mu.Unlock()
			continue
		}
		subject, location, spaces := l.Subject, l.Location, l.Spaces
		c.mu.Unlock()

		if err := c.api.UpdateLessonSpaces(ctx, subject, location, spaces); err != nil {
			c.setCheckoutState(domain.CheckoutFailed)
			return CheckoutResult{}, fmt.Errorf("%s: update availability: %w", op, err)
		}
	}

	c.mu.Lock()
	c.checkout = domain.CheckoutSuccess
	c.cart = nil
	c.customer = domain.CustomerInfo{}
	c.mu.Unlock()

	result := CheckoutResult{
		Message:          fmt.Sprintf("Order for %d seat(s) submitted for %s", len(order.Items), order.Name),
		CatalogRefreshed: true,
	}

	if err := c.LoadCatalog(ctx); err != nil {
		c.logger.Error("catalog reload after checkout failed", "error", err)
		result.CatalogRefreshed = false
	}

	return result, nil
}
