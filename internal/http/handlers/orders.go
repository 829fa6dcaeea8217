package handlers

import (
	"net/http"
	"strconv"

	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type calculateOrderRequest struct {
	CarBrand   string `json:"carBrand"`
	CityFromID int64  `json:"cityFromId"`
	CityToID   int64  `json:"cityToId"`
	StartDate  string `json:"startDate"`
}

type createOrderRequest struct {
	UserID     int64  `json:"userId"`
	CarBrand   string `json:"carBrand"`
	CityFromID int64  `json:"cityFromId"`
	CityToID   int64  `json:"cityToId"`
	StartDate  string `json:"startDate"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// POST /api/orders/calculate
func CalculateOrder(c *gin.Context) {
	var req calculateOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	quote, err := orderService(c).CalculateQuote(req.CityFromID, req.CityToID, req.StartDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /api/orders
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	order, err := orderService(c).CreateOrder(req.UserID, req.CarBrand, req.CityFromID, req.CityToID, req.StartDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := orderService(c).GetOrder(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:id/invoice
func GetOrderInvoicePDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pdf, filename, err := docsService(c).GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/orders/admin/list
func ListOrdersAdmin(c *gin.Context) {
	opts := repositories.ListOptions{
		Date:      c.Query("date"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	opts.CityFromID, _ = strconv.ParseInt(c.Query("cityFromId"), 10, 64)
	opts.CityToID, _ = strconv.ParseInt(c.Query("cityToId"), 10, 64)
	opts.Page, _ = strconv.Atoi(c.Query("page"))
	opts.Limit, _ = strconv.Atoi(c.Query("limit"))

	if raw := c.Query("paymentStatus"); raw != "" {
		status, ok := models.ParsePaymentStatus(raw)
		if !ok {
			RespondError(c, http.StatusBadRequest, "invalid paymentStatus", nil)
			return
		}
		opts.PaymentStatus = status
	}

	orders, total, err := orderService(c).ListOrders(opts)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = len(orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// PATCH /api/orders/admin/:id/payment-status
func UpdateOrderPaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updatePaymentStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	status, valid := models.ParsePaymentStatus(req.PaymentStatus)
	if !valid {
		RespondError(c, http.StatusBadRequest, "invalid paymentStatus", nil)
		return
	}
	order, err := orderService(c).UpdatePaymentStatus(id, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
