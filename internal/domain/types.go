package domain

import (
	"github.com/google/uuid"
)

// Lesson is one bookable listing in the catalog. The backend identifies
// lessons only by the (subject, location) pair; ID is assigned client-side
// at ingestion so that cart bookkeeping does not depend on field equality.
type Lesson struct {
	ID       uuid.UUID `json:"-"`
	Subject  string    `json:"subject"`
	Location string    `json:"location"`
	Price    float64   `json:"price"`
	Spaces   int       `json:"spaces"`
	Image    string    `json:"image,omitempty"`
}

// CartItem is one reserved seat. Subject, location and price are a snapshot
// taken at reservation time; the price is captured, never recomputed.
type CartItem struct {
	LessonID uuid.UUID `json:"-"`
	Subject  string    `json:"subject"`
	Location string    `json:"location"`
	Price    float64   `json:"price"`
}

// CustomerInfo is the checkout form state. Reset after a successful order.
type CustomerInfo struct {
	Name  string
	Phone string
}

// Order is the payload submitted to the backend on checkout.
type Order struct {
	Name  string     `json:"name"`
	Phone string     `json:"phone"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type SortAttribute string

const (
	SortBySubject  SortAttribute = "subject"
	SortByLocation SortAttribute = "location"
	SortByPrice    SortAttribute = "price"
	SortBySpaces   SortAttribute = "spaces"
)

// ParseSortAttribute reports whether s names a valid sort attribute.
func ParseSortAttribute(s string) (SortAttribute, bool) {
	switch SortAttribute(s) {
	case SortBySubject, SortByLocation, SortByPrice, SortBySpaces:
		return SortAttribute(s), true
	}
	return "", false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		return SortDirection(s), true
	}
	return "", false
}

// QueryState drives the derived lesson view. Never persisted.
type QueryState struct {
	Search    string
	Attribute SortAttribute
	Direction SortDirection
}

type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSuccess    CheckoutState = "success"
	CheckoutFailed     CheckoutState = "failed"
)
