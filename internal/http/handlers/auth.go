package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type adminLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// POST /api/auth/admin/login
func AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if !adminCredentialsValid(req.Login, req.Password) {
		RespondError(c, http.StatusUnauthorized, "invalid login or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  req.Login,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// adminCredentialsValid checks the configured admin credential pair. When a
// bcrypt hash is configured it wins over the plain password.
func adminCredentialsValid(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(env.AdminLogin)) == 1

	if env.AdminPasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(env.AdminPasswordHash), []byte(password))
		return loginOK && err == nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(env.AdminPassword)) == 1
	return loginOK && passOK
}
