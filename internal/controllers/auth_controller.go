package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/config"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
	"github.com/jairomatosve/voyagedesigner/internal/models"
)

// RegisterUser creates an account and opens a session. With the external
// identity provider active this endpoint answers 501.
func RegisterUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := Provider.Register(c.Request.Context(), auth.Credentials{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	case errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	case errors.Is(err, auth.ErrNotSupported):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Registration is handled by the identity provider"})
		return
	case err != nil:
		logrus.WithError(err).Error("RegisterUser: registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// LoginUser checks credentials and opens a session.
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := Provider.Login(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	case errors.Is(err, auth.ErrNotSupported):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Login is handled by the identity provider"})
		return
	case err != nil:
		logrus.WithError(err).Error("LoginUser: login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// LogoutUser discards the caller's session token.
func LogoutUser(c *gin.Context) {
	token := c.MustGet("token").(string)
	if err := Provider.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, auth.ErrNotSupported) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "Logout is handled by the identity provider"})
			return
		}
		logrus.WithError(err).Error("LogoutUser: logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user's profile.
func Me(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}
