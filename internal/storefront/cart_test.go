package storefront

import (
	"testing"

	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSeatUntilSoldOut(t *testing.T) {
	c := newTestController(t, lesson("Math", "Hall A", 20, 2))
	id := c.Catalog()[0].ID

	require.NoError(t, c.AddSeat(id))
	require.NoError(t, c.AddSeat(id))

	assert.Equal(t, 0, c.Catalog()[0].Spaces)
	assert.Equal(t, 2, c.CartCount())
	assert.Equal(t, 40.0, c.CartTotal())

	// third add is a gated no-op
	err := c.AddSeat(id)
	assert.ErrorIs(t, err, ErrNoSpacesLeft)
	assert.Equal(t, 0, c.Catalog()[0].Spaces)
	assert.Equal(t, 2, c.CartCount())
}

func TestAddSeatUnknownLesson(t *testing.T) {
	c := newTestController(t, lesson("Math", "Hall A", 20, 2))

	err := c.AddSeat(uuid.New())

	assert.ErrorIs(t, err, ErrLessonNotFound)
	assert.Equal(t, 0, c.CartCount())
	assert.Equal(t, 2, c.Catalog()[0].Spaces)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	c := newTestController(t, lesson("Math", "Hall A", 20, 2))
	id := c.Catalog()[0].ID

	require.NoError(t, c.AddSeat(id))
	require.NoError(t, c.RemoveSeat(0))

	assert.Equal(t, 2, c.Catalog()[0].Spaces)
	assert.Equal(t, 0, c.CartCount())
	assert.Equal(t, 0.0, c.CartTotal())
}

func TestRemoveSeatCapturedPrice(t *testing.T) {
	c := newTestController(t,
		lesson("Math", "Hall A", 20, 2),
		lesson("English", "Hall B", 35, 2),
	)
	mathID := c.Catalog()[0].ID
	englishID := c.Catalog()[1].ID

	require.NoError(t, c.AddSeat(mathID))
	require.NoError(t, c.AddSeat(englishID))
	require.Equal(t, 55.0, c.CartTotal())

	// removing the first item releases the math seat, not the english one
	require.NoError(t, c.RemoveSeat(0))

	assert.Equal(t, 35.0, c.CartTotal())
	assert.Equal(t, []domain.CartItem{{
		LessonID: englishID,
		Subject:  "English",
		Location: "Hall B",
		Price:    35,
	}}, c.CartItems())
	assert.Equal(t, 2, c.Catalog()[0].Spaces)
	assert.Equal(t, 1, c.Catalog()[1].Spaces)
}

func TestRemoveSeatOutOfBounds(t *testing.T) {
	c := newTestController(t, lesson("Math", "Hall A", 20, 2))
	require.NoError(t, c.AddSeat(c.Catalog()[0].ID))

	for _, index := range []int{-1, 1, 99} {
		err := c.RemoveSeat(index)
		assert.ErrorIs(t, err, ErrCartIndexOutOfRange)
	}

	assert.Equal(t, 1, c.CartCount())
}

func TestRemoveSeatLookupMiss(t *testing.T) {
	c := newTestController(t, lesson("Math", "Hall A", 20, 2))
	require.NoError(t, c.AddSeat(c.Catalog()[0].ID))

	// catalog reloaded underneath the cart: new ingestion IDs
	c.catalog = []domain.Lesson{lesson("Math", "Hall A", 20, 1)}

	// removal succeeds but no seat is restored anywhere
	require.NoError(t, c.RemoveSeat(0))
	assert.Equal(t, 0, c.CartCount())
	assert.Equal(t, 1, c.Catalog()[0].Spaces)
}
