package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cityRequest struct {
	Name string `json:"name"`
}

// GET /api/cities
func GetCities(c *gin.Context) {
	cities, err := cityService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GET /api/cities/:id
func GetCityByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	city, err := cityService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// POST /api/admin/cities
func CreateCity(c *gin.Context) {
	var req cityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	city, err := cityService(c).Create(req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// PUT /api/admin/cities/:id
func UpdateCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	city, err := cityService(c).Update(id, req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// DELETE /api/admin/cities/:id
func DeleteCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := cityService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "city deleted"})
}
