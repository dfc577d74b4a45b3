package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/asalah03/educate-app-frontend/internal/backend"
	"github.com/asalah03/educate-app-frontend/internal/domain"
	"github.com/asalah03/educate-app-frontend/internal/storefront"
)

func NewRouter(
	ctrl *storefront.Controller,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/lessons", handleListLessons(ctrl))
	r.POST("/catalog/refresh", handleRefreshCatalog(ctrl))

	r.GET("/cart", handleGetCart(ctrl))
	r.POST("/cart", handleAddSeat(ctrl))
	r.DELETE("/cart/:index", handleRemoveSeat(ctrl))

	r.PUT("/customer", handleSetCustomer(ctrl))
	r.GET("/checkout", handleCheckoutStatus(ctrl))
	r.POST("/checkout", handleCheckout(ctrl))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List lessons (derived view)
// @Param    q     query  string  false "search text"
// @Param    sort  query  string  false "subject|location|price|spaces"
// @Param    dir   query  string  false "asc|desc"
// @Success  200  {array}   LessonResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /lessons [get]
func handleListLessons(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := c.Request.URL.Query()

		if params.Has("q") {
			ctrl.SetSearch(params.Get("q"))
		}

		if params.Has("sort") || params.Has("dir") {
			q := ctrl.Query()

			attr := q.Attribute
			if s := params.Get("sort"); s != "" {
				a, ok := domain.ParseSortAttribute(s)
				if !ok {
					badRequest(c, "invalid sort attribute")
					return
				}
				attr = a
			}

			dir := q.Direction
			if s := params.Get("dir"); s != "" {
				d, ok := domain.ParseSortDirection(s)
				if !ok {
					badRequest(c, "invalid sort direction")
					return
				}
				dir = d
			}

			ctrl.SetSort(attr, dir)
		}

		lessons := ctrl.Lessons()
		out := make([]LessonResponse, 0, len(lessons))
		for _, l := range lessons {
			out = append(out, LessonResponse{
				ID:       l.ID.String(),
				Subject:  l.Subject,
				Location: l.Location,
				Price:    l.Price,
				Spaces:   l.Spaces,
				Image:    ctrl.ResolveImageURL(l.Image),
			})
		}

		writeJSONWithETag(c, http.StatusOK, out)
	}
}

// @Summary  Reload the catalog from the backend
// @Success  204
// @Failure  502  {object}  ErrorResponse
// @Router   /catalog/refresh [post]
func handleRefreshCatalog(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.LoadCatalog(c.Request.Context()); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Get cart contents
// @Success  200  {object}  CartResponse
// @Router   /cart [get]
func handleGetCart(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(ctrl))
	}
}

// @Summary  Reserve one seat
// @Param    req body  AddSeatRequest true "payload"
// @Success  201  {object}  CartResponse
// @Failure  404  {object}  ErrorResponse "unknown lesson"
// @Failure  409  {object}  ErrorResponse "no spaces left"
// @Router   /cart [post]
func handleAddSeat(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddSeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		id, err := uuid.Parse(req.LessonID)
		if err != nil {
			badRequest(c, "invalid lesson_id")
			return
		}

		if err := ctrl.AddSeat(id); err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, cartResponse(ctrl))
	}
}

// @Summary  Release one reserved seat
// @Param    index  path  int  true  "Cart item index"
// @Success  200  {object}  CartResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cart/{index} [delete]
func handleRemoveSeat(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			badRequest(c, "invalid index")
			return
		}

		if err := ctrl.RemoveSeat(index); err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(ctrl))
	}
}

// @Summary  Set customer name and phone
// @Param    req body  CustomerRequest true "payload"
// @Success  200  {object}  CheckoutStatusResponse
// @Router   /customer [put]
func handleSetCustomer(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ctrl.SetCustomer(req.Name, req.Phone)
		c.JSON(http.StatusOK, checkoutStatus(ctrl))
	}
}

// @Summary  Get checkout state and validity
// @Success  200  {object}  CheckoutStatusResponse
// @Router   /checkout [get]
func handleCheckoutStatus(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, checkoutStatus(ctrl))
	}
}

// @Summary  Submit the order
// @Success  200  {object}  CheckoutResponse
// @Failure  409  {object}  ErrorResponse "checkout already running"
// @Failure  422  {object}  ErrorResponse "preconditions not met"
// @Failure  502  {object}  ErrorResponse "backend failure"
// @Router   /checkout [post]
func handleCheckout(ctrl *storefront.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := ctrl.Checkout(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			Message:          result.Message,
			CatalogRefreshed: result.CatalogRefreshed,
		})
	}
}

// --- Helpers ---

func cartResponse(ctrl *storefront.Controller) CartResponse {
	items := ctrl.CartItems()
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemResponse{
			LessonID: item.LessonID.String(),
			Subject:  item.Subject,
			Location: item.Location,
			Price:    item.Price,
		})
	}

	return CartResponse{
		Items: out,
		Count: ctrl.CartCount(),
		Total: ctrl.CartTotal(),
	}
}

func checkoutStatus(ctrl *storefront.Controller) CheckoutStatusResponse {
	return CheckoutStatusResponse{
		State: string(ctrl.CheckoutState()),
		Valid: ctrl.CheckoutValid(),
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	case errors.Is(err, storefront.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "lesson not found"})
	case errors.Is(err, storefront.ErrNoSpacesLeft):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "no spaces left"})
	case errors.Is(err, storefront.ErrCartIndexOutOfRange):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart item not found"})
	case errors.Is(err, storefront.ErrCheckoutInvalid):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "checkout preconditions not met"})
	case errors.Is(err, storefront.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout already in progress"})
	case errors.Is(err, backend.ErrUnexpectedStatus):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		// transport failures reaching the backend
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	}
}
