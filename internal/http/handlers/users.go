package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := userService(c).Create(req.FullName, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GET /api/users/by-phone?phone=...
func GetUserByPhone(c *gin.Context) {
	user, err := userService(c).GetByPhone(c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := userService(c).GetProfile(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
