package services

import (
	"fmt"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/utils"
)

// PaymentService is the payment simulator: it marks an existing order as
// paid and always succeeds. A real gateway integration would replace this.
type PaymentService struct {
	Orders    OrderService
	RequestID string
}

type PaymentResult struct {
	Success bool         `json:"success"`
	OrderID int64        `json:"orderId"`
	Order   models.Order `json:"order"`
}

func (s PaymentService) ProcessPayment(orderID int64) (PaymentResult, error) {
	if orderID <= 0 {
		return PaymentResult{}, domain.ValidationError{Field: "orderId", Msg: "must be positive"}
	}

	order, err := s.Orders.UpdatePaymentStatus(orderID, models.PaymentPaid)
	if err != nil {
		return PaymentResult{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "process", fmt.Sprintf("order_id=%d", orderID))

	return PaymentResult{Success: true, OrderID: orderID, Order: order}, nil
}
