package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type processPaymentRequest struct {
	OrderID int64 `json:"orderId"`
}

// POST /api/payment/process
// Payment simulator: marks the order paid and always succeeds.
func ProcessPayment(c *gin.Context) {
	var req processPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := paymentService(c).ProcessPayment(req.OrderID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
