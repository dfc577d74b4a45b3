package storefront

import (
	"sort"
	"strconv"
	"strings"

	"github.com/asalah03/educate-app-frontend/internal/domain"
)

// FilteredView returns the lessons whose subject, location, price or
// spaces rendering contains query case-insensitively. An empty query
// matches everything. The result is a new slice in catalog order; the
// input is never mutated.
func FilteredView(catalog []domain.Lesson, query string) []domain.Lesson {
	out := make([]domain.Lesson, 0, len(catalog))

	q := strings.ToLower(query)
	if q == "" {
		return append(out, catalog...)
	}

	for _, l := range catalog {
		if strings.Contains(strings.ToLower(l.Subject), q) ||
			strings.Contains(strings.ToLower(l.Location), q) ||
			strings.Contains(formatNumber(l.Price), q) ||
			strings.Contains(strconv.Itoa(l.Spaces), q) {
			out = append(out, l)
		}
	}

	return out
}

// SortedView returns lessons ordered by attr. Ascending is a stable sort,
// so equal keys keep their filtered order. Descending reverses the whole
// ascending result rather than negating the comparator, which also flips
// the relative order of equal keys; that tie behavior is observable and
// intentional.
func SortedView(lessons []domain.Lesson, attr domain.SortAttribute, dir domain.SortDirection) []domain.Lesson {
	out := make([]domain.Lesson, len(lessons))
	copy(out, lessons)

	sort.SliceStable(out, func(i, j int) bool {
		switch attr {
		case domain.SortByPrice, domain.SortBySpaces:
			return numericSortValue(out[i], attr) < numericSortValue(out[j], attr)
		default:
			return textSortValue(out[i], attr) < textSortValue(out[j], attr)
		}
	})

	if dir == domain.SortDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// textSortValue defaults to the empty string for unknown attributes to
// keep the comparator total.
func textSortValue(l domain.Lesson, attr domain.SortAttribute) string {
	switch attr {
	case domain.SortBySubject:
		return strings.ToLower(l.Subject)
	case domain.SortByLocation:
		return strings.ToLower(l.Location)
	}
	return ""
}

func numericSortValue(l domain.Lesson, attr domain.SortAttribute) float64 {
	switch attr {
	case domain.SortByPrice:
		return l.Price
	case domain.SortBySpaces:
		return float64(l.Spaces)
	}
	return 0
}

// formatNumber renders a price the way the UI displays it: no exponent,
// no trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
