package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ermalb/suxhuk-orders/internal/service/backoffice"
	"github.com/ermalb/suxhuk-orders/internal/service/storefront"
	"github.com/ermalb/suxhuk-orders/pkg/clients/orderapi"
)

// respondError maps the error taxonomy onto HTTP statuses. Every failure
// reaches the caller as the same {"error": ...} shape, but the status keeps
// precondition failures, upstream rejections and dead-upstream cases apart.
func respondError(c *gin.Context, err error) {
	var precondition *storefront.PreconditionError
	var serverErr *orderapi.ServerError
	var networkErr *orderapi.NetworkError

	switch {
	case errors.As(err, &precondition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": precondition.Reason})
	case errors.Is(err, storefront.ErrSessionNotFound),
		errors.Is(err, storefront.ErrProductUnavailable),
		errors.Is(err, backoffice.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, backoffice.ErrInvalidDelta):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &serverErr):
		status := serverErr.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": serverErr.Error()})
	case errors.As(err, &networkErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": networkErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
