package httpgin

type LessonResponse struct {
	ID       string  `json:"id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
	Image    string  `json:"image,omitempty"`
}

type CartItemResponse struct {
	LessonID string  `json:"lesson_id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}

type AddSeatRequest struct {
	LessonID string `json:"lesson_id" binding:"required,uuid"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CheckoutStatusResponse struct {
	State string `json:"state"`
	Valid bool   `json:"valid"`
}

type CheckoutResponse struct {
	Message          string `json:"message"`
	CatalogRefreshed bool   `json:"catalog_refreshed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
