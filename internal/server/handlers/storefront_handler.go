package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
	"github.com/ermalb/suxhuk-orders/internal/service/storefront"
)

// StorefrontHandler exposes the customer portal over HTTP.
type StorefrontHandler struct {
	svc    storefront.Service
	logger *zap.Logger
}

// NewStorefrontHandler constructs the HTTP handler adapter.
func NewStorefrontHandler(svc storefront.Service, logger *zap.Logger) *StorefrontHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StorefrontHandler{svc: svc, logger: logger}
}

// StartSession opens a customer session and returns its ID with the initial
// quote for the default product.
func (h *StorefrontHandler) StartSession(c *gin.Context) {
	sess, err := h.svc.StartSession(c.Request.Context())
	if err != nil {
		h.logger.Error("failed starting session", zap.Error(err))
		respondError(c, err)
		return
	}

	body := gin.H{"session_id": sess.ID}
	if quote, err := h.svc.Quote(sess.ID); err == nil {
		body["quote"] = quote
	}

	c.JSON(http.StatusCreated, body)
}

// SaveProfile upserts the session's customer profile.
func (h *StorefrontHandler) SaveProfile(c *gin.Context) {
	var form models.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	customer, err := h.svc.SaveProfile(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.logger.Warn("profile save rejected", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

type selectProductRequest struct {
	Product string `json:"product" binding:"required"`
}

// SelectProduct switches the session's product tab.
func (h *StorefrontHandler) SelectProduct(c *gin.Context) {
	var req selectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	product, err := models.ParseProduct(req.Product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.svc.SelectProduct(c.Request.Context(), c.Param("id"), product)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

type setQuantityRequest struct {
	Quantity string `json:"quantity"`
}

// SetQuantity applies a requested quantity. The value arrives as free-form
// text; anything unusable falls back to the product minimum.
func (h *StorefrontHandler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity payload"})
		return
	}

	quote, err := h.svc.SetQuantity(c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Quote returns the session's current running total.
func (h *StorefrontHandler) Quote(c *gin.Context) {
	quote, err := h.svc.Quote(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

type placeOrderRequest struct {
	Notes string `json:"notes"`
}

// PlaceOrder submits the session's selection as an order.
func (h *StorefrontHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}

	confirmation, err := h.svc.PlaceOrder(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.logger.Warn("order rejected", zap.String("session_id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
