package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shop-service/internal/domain"
	"shop-service/internal/logger"
	"shop-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	customers *services.CustomerService
	products  *services.ProductService
	orders    *services.OrderService
	auth      *services.AuthService
	limiter   *RateLimiter
}

func NewHandler(c *services.CustomerService, p *services.ProductService, o *services.OrderService, a *services.AuthService, limiter *RateLimiter) *Handler {
	return &Handler{customers: c, products: p, orders: o, auth: a, limiter: limiter}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	token := api.Group("/token")
	if h.limiter != nil {
		token.Use(h.limiter.Middleware())
	}
	token.POST("", h.ObtainToken)
	token.POST("/refresh", h.RefreshToken)

	authed := api.Group("")
	authed.Use(Authenticate(h.auth))
	admin := RequireAdmin()

	authed.GET("/products", h.ListProducts)
	authed.POST("/products", admin, h.CreateProduct)
	authed.GET("/products/:id", h.GetProduct)
	authed.PUT("/products/:id", admin, h.UpdateProduct)
	authed.DELETE("/products/:id", admin, h.DeleteProduct)

	authed.GET("/customers", h.ListCustomers)
	authed.POST("/customers", admin, h.CreateCustomer)
	authed.GET("/customers/:id", h.GetCustomer)
	authed.PUT("/customers/:id", admin, h.UpdateCustomer)
	authed.DELETE("/customers/:id", admin, h.DeleteCustomer)
	authed.GET("/customers/:id/orders", h.ListCustomerOrders)

	authed.GET("/orders", h.ListOrders)
	authed.POST("/orders", admin, h.CreateOrder)
	authed.GET("/orders/:id", h.GetOrder)
	authed.PUT("/orders/:id", admin, h.UpdateOrder)
	authed.DELETE("/orders/:id", admin, h.DeleteOrder)
	authed.POST("/orders/:id/products", admin, h.AddOrderProducts)
}

// pathID reads the :id parameter. Anything that is not a positive integer
// cannot name a record, so it is answered with 404.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body and answers 400 when it is malformed.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// bindExisting decodes the body of a write to an existing record. A body that
// does not decode is reported only once the record is known to exist, so an
// unknown id answers 404 whatever was sent.
func bindExisting(c *gin.Context, dst interface{}, exists func(context.Context, uint64) error, id uint64) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if lerr := exists(c.Request.Context(), id); lerr != nil {
			writeError(c, lerr)
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active account found with the given credentials"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "token is invalid or expired"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "you do not have permission to perform this action"})
	default:
		logger.Error(c, "request failed", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
