package storefront

import (
	"errors"
)

var (
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrNoSpacesLeft        = errors.New("no spaces left on lesson")
	ErrCartIndexOutOfRange = errors.New("cart index out of range")
	ErrCheckoutInvalid     = errors.New("checkout preconditions not met")
	ErrCheckoutInFlight    = errors.New("checkout already in progress")
)
