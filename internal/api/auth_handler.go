package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tuyendunghub/job-board/internal/logger"
	"github.com/tuyendunghub/job-board/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingErrorMessage(err)})
		return
	}

	token, admin, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgAccountNotFound})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgWrongPassword})
		default:
			internalError(c, logger.ErrorTypeAuth, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"token":   token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Verify echoes the identity decoded by the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {

	claims := claimsFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"admin": gin.H{
			"id":       claims.AdminID,
			"username": claims.Username,
		},
	})
}

func internalError(c *gin.Context, errorType string, err error) {
	log.WithField(logger.ErrorTypeField, errorType).
		Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
}
