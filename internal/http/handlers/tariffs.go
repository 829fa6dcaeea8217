package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTariffRequest struct {
	Month               int     `json:"month"`
	PricePerKmUnder1000 float64 `json:"pricePerKmUnder1000"`
	PricePerKmOver1000  float64 `json:"pricePerKmOver1000"`
}

type updateTariffRequest struct {
	PricePerKmUnder1000 float64 `json:"pricePerKmUnder1000"`
	PricePerKmOver1000  float64 `json:"pricePerKmOver1000"`
}

// GET /api/tariffs
func GetTariffs(c *gin.Context) {
	tariffs, err := tariffService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariffs)
}

// GET /api/tariffs/:id
func GetTariffByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tariff, err := tariffService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariff)
}

// POST /api/admin/tariffs
func CreateTariff(c *gin.Context) {
	var req createTariffRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tariff, err := tariffService(c).Create(req.Month, req.PricePerKmUnder1000, req.PricePerKmOver1000)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tariff)
}

// PUT /api/admin/tariffs/:id
func UpdateTariff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateTariffRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tariff, err := tariffService(c).Update(id, req.PricePerKmUnder1000, req.PricePerKmOver1000)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariff)
}
