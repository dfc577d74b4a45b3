package storefront

import (
	"testing"

	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjects(lessons []domain.Lesson) []string {
	out := make([]string, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, l.Subject)
	}
	return out
}

func TestFilteredView(t *testing.T) {
	catalog := []domain.Lesson{
		lesson("Math", "Hall A", 20, 5),
		lesson("English", "Hall B", 35, 10),
		lesson("Science", "London", 20, 3),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query matches everything in order",
			query: "",
			want:  []string{"Math", "English", "Science"},
		},
		{
			name:  "subject match is case-insensitive",
			query: "mAtH",
			want:  []string{"Math"},
		},
		{
			name:  "location substring",
			query: "hall",
			want:  []string{"Math", "English"},
		},
		{
			name:  "price rendering",
			query: "35",
			want:  []string{"English"},
		},
		{
			name:  "spaces rendering",
			query: "10",
			want:  []string{"English"},
		},
		{
			name:  "OR across fields",
			query: "20",
			want:  []string{"Math", "Science"},
		},
		{
			name:  "no match",
			query: "zzz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilteredView(catalog, tt.query)
			assert.Equal(t, tt.want, subjects(got))
		})
	}
}

func TestFilteredViewDoesNotMutateCatalog(t *testing.T) {
	catalog := []domain.Lesson{
		lesson("Math", "Hall A", 20, 5),
		lesson("English", "Hall B", 35, 10),
	}
	before := subjects(catalog)

	_ = FilteredView(catalog, "english")

	assert.Equal(t, before, subjects(catalog))
}

func TestSortedViewAscending(t *testing.T) {
	catalog := []domain.Lesson{
		lesson("banana", "X", 30, 2),
		lesson("Apple", "Y", 10, 10),
		lesson("cherry", "Z", 20, 1),
	}

	got := SortedView(catalog, domain.SortBySubject, domain.SortAsc)

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, subjects(got))
	// permutation, not a mutation of the input
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, subjects(catalog))
}

func TestSortedViewNumericAttributes(t *testing.T) {
	catalog := []domain.Lesson{
		lesson("A", "X", 10, 2),
		lesson("B", "Y", 30, 10),
		lesson("C", "Z", 20, 1),
	}

	t.Run("price desc scenario", func(t *testing.T) {
		got := SortedView(catalog, domain.SortByPrice, domain.SortDesc)
		assert.Equal(t, []string{"B", "C", "A"}, subjects(got))
	})

	t.Run("spaces sorts numerically not lexicographically", func(t *testing.T) {
		got := SortedView(catalog, domain.SortBySpaces, domain.SortAsc)
		assert.Equal(t, []string{"C", "A", "B"}, subjects(got))
	})
}

func TestSortedViewDescendingReversesTies(t *testing.T) {
	// Equal price keys: ascending keeps filtered order (stable sort),
	// descending reverses the whole ascending sequence, so the tie order
	// flips too.
	catalog := []domain.Lesson{
		lesson("first", "X", 20, 1),
		lesson("second", "Y", 20, 2),
		lesson("cheap", "Z", 10, 3),
	}

	asc := SortedView(catalog, domain.SortByPrice, domain.SortAsc)
	require.Equal(t, []string{"cheap", "first", "second"}, subjects(asc))

	desc := SortedView(catalog, domain.SortByPrice, domain.SortDesc)
	assert.Equal(t, []string{"second", "first", "cheap"}, subjects(desc))
}

func TestSortedViewIsPermutation(t *testing.T) {
	catalog := []domain.Lesson{
		lesson("A", "X", 20, 1),
		lesson("B", "Y", 20, 2),
		lesson("C", "Z", 10, 3),
		lesson("D", "W", 30, 0),
	}

	got := SortedView(catalog, domain.SortByPrice, domain.SortDesc)

	require.Len(t, got, len(catalog))
	assert.ElementsMatch(t, subjects(catalog), subjects(got))
}

func TestControllerLessonsDerivation(t *testing.T) {
	c := newTestController(t,
		lesson("Math", "Hall A", 10, 5),
		lesson("English", "Hall B", 30, 5),
		lesson("Science", "Hall C", 20, 5),
	)

	c.SetSearch("hall")
	c.SetSort(domain.SortByPrice, domain.SortDesc)

	assert.Equal(t, []string{"English", "Science", "Math"}, subjects(c.Lessons()))

	// narrowing the search recomputes the view from the same state
	c.SetSearch("hall b")
	assert.Equal(t, []string{"English"}, subjects(c.Lessons()))
}
