package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
	"github.com/ermalb/suxhuk-orders/internal/service/backoffice"
)

// BackofficeHandler exposes the admin portal over HTTP.
type BackofficeHandler struct {
	svc    backoffice.Service
	logger *zap.Logger
}

// NewBackofficeHandler constructs the HTTP handler adapter.
func NewBackofficeHandler(svc backoffice.Service, logger *zap.Logger) *BackofficeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackofficeHandler{svc: svc, logger: logger}
}

// ListInventory reloads and returns the inventory board.
func (h *BackofficeHandler) ListInventory(c *gin.Context) {
	items, err := h.svc.RefreshInventory(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading inventory", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

type adjustRequest struct {
	Field string `json:"field" binding:"required"`
	Delta int    `json:"delta" binding:"required"`
}

// AdjustInventory applies one of the fixed-step edits (+1kg, -1kg, +$1, -$1)
// to an item and returns the reloaded board.
func (h *BackofficeHandler) AdjustInventory(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid adjustment payload"})
		return
	}

	var (
		items []models.InventoryItem
		err   error
	)
	switch req.Field {
	case "available_kg":
		items, err = h.svc.AdjustAvailable(c.Request.Context(), c.Param("id"), req.Delta)
	case "price_per_kg":
		items, err = h.svc.AdjustPrice(c.Request.Context(), c.Param("id"), req.Delta)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be available_kg or price_per_kg"})
		return
	}
	if err != nil {
		h.logger.Warn("inventory adjustment failed", zap.String("item_id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListCustomers returns every client record.
func (h *BackofficeHandler) ListCustomers(c *gin.Context) {
	customers, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading customers", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// UpsertCustomer saves a client record and returns the reloaded list.
func (h *BackofficeHandler) UpsertCustomer(c *gin.Context) {
	var form models.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer payload"})
		return
	}

	customers, err := h.svc.UpsertCustomer(c.Request.Context(), form)
	if err != nil {
		h.logger.Warn("customer upsert failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// orderView decorates an order with the badge color the admin board shows.
type orderView struct {
	models.Order
	Badge string `json:"badge"`
}

func orderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView{Order: order, Badge: order.Status.Badge()})
	}
	return views
}

// ListOrders returns every order with its status badge.
func (h *BackofficeHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading orders", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderViews(orders))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus jumps an order to any of the three states and returns the
// reloaded order list.
func (h *BackofficeHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status payload"})
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.logger.Warn("status change failed", zap.String("order_id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderViews(orders))
}
