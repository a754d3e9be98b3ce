package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hpham16/server-shopapp/internal/httpx"
	"github.com/hpham16/server-shopapp/internal/order"
	"github.com/hpham16/server-shopapp/internal/pagination"
)

func registerRoutes(g *gin.RouterGroup, svc *order.Service) {
	orders := g.Group("/orders")
	orders.POST("", createOrderHandler(svc))
	orders.GET("/user/:user_id", listOrdersByUserHandler(svc))
	orders.GET("/:id", getOrderHandler(svc))
	orders.PUT("/:id", updateOrderHandler(svc))
	orders.DELETE("/:id", deleteOrderHandler(svc))

	admin := orders.Group("", httpx.RequireAdmin())
	admin.GET("/get-orders-by-keyword", ordersByKeywordHandler(svc))
	admin.GET("/thong-ke-thang", monthlyRevenueHandler(svc))
	admin.GET("/thong-ke-san-pham", productRevenueHandler(svc))
	admin.GET("/thong-ke-danh-muc", categoryRevenueHandler(svc))
}

// writeError flattens error kinds to client-safe responses at the boundary.
func writeError(c *gin.Context, err error) {
	var verr *order.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Messages})
	case errors.Is(err, order.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, pagination.ErrInvalidPageSize),
		errors.Is(err, pagination.ErrInvalidPageIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		rid, _ := c.Get("rid")
		log.Printf("[error] rid=%v %v", rid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

// @Summary  Create an order
// @Accept   json
// @Produce  json
// @Param    order body order.CreateOrderRequest true "order payload"
// @Success  201 {object} order.Order
// @Failure  400 {object} map[string][]string
// @Router   /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, &order.ValidationError{Messages: order.ValidationMessages(err)})
			return
		}
		o, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// @Summary  List a user's active orders
// @Produce  json
// @Param    user_id path int true "user id"
// @Success  200 {array} order.Order
// @Router   /orders/user/{user_id} [get]
func listOrdersByUserHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		orders, err := svc.ListByUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// @Summary  Fetch one order
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} map[string]string
// @Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		o, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Update an order
// @Accept   json
// @Produce  json
// @Param    id path int true "order id"
// @Param    order body order.CreateOrderRequest true "order payload"
// @Success  200 {object} order.Order
// @Router   /orders/{id} [put]
func updateOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, &order.ValidationError{Messages: order.ValidationMessages(err)})
			return
		}
		o, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Soft-delete an order
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} map[string]string
// @Router   /orders/{id} [delete]
func deleteOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.SoftDelete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order %d deleted successfully", id)})
	}
}

// @Summary  Search orders by keyword (admin)
// @Produce  json
// @Param    keyword query string false "substring over name/address/note/phone"
// @Param    page query int false "zero-based page" default(0)
// @Param    limit query int false "page size" default(10)
// @Success  200 {object} order.OrderListResponse
// @Router   /orders/get-orders-by-keyword [get]
func ordersByKeywordHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.DefaultQuery("keyword", "")
		page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		orders, totalPages, err := svc.SearchByKeyword(c.Request.Context(), keyword, page, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.OrderListResponse{Orders: orders, TotalPages: totalPages})
	}
}

// @Summary  Revenue grouped by month (admin)
// @Produce  json
// @Param    month query int false "restrict to one calendar month across years"
// @Success  200 {array} stats.MonthRecord
// @Router   /orders/thong-ke-thang [get]
func monthlyRevenueHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var month *int
		if raw := c.Query("month"); raw != "" {
			m, err := strconv.Atoi(raw)
			if err != nil || m < 1 || m > 12 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
				return
			}
			month = &m
		}
		records, err := svc.RevenueByMonth(c.Request.Context(), month)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// @Summary  Revenue grouped by product (admin)
// @Produce  json
// @Param    productName query string false "case-insensitive substring filter"
// @Success  200 {array} stats.ProductRecord
// @Router   /orders/thong-ke-san-pham [get]
func productRevenueHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.RevenueByProduct(c.Request.Context(), c.Query("productName"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// @Summary  Revenue grouped by category (admin)
// @Produce  json
// @Param    categoryName query string false "case-insensitive substring filter"
// @Success  200 {array} stats.CategoryRecord
// @Router   /orders/thong-ke-danh-muc [get]
func categoryRevenueHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.RevenueByCategory(c.Request.Context(), c.Query("categoryName"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
