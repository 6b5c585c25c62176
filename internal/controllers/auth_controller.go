package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoly-be/internal/middleware"
	"todoly-be/internal/models"
	"todoly-be/internal/service"
)

// accessTokenCookie is the cookie name carrying the bearer token,
// alongside the JSON response body
const accessTokenCookie = "accessToken"

type AuthController struct {
	authService service.AuthService
	tokenTTL    time.Duration // cookie lifetime, matches the token expiry
}

func NewAuthController(authService service.AuthService, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

// CheckEmail handles GET /api/auth/public/search?email=
func (ac *AuthController) CheckEmail(c *gin.Context) {
	var req models.EmailSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "a valid email query parameter is required",
		})
		return
	}

	err := ac.authService.CheckEmail(req.Email)
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
	})
}

// SignUp handles POST /api/auth/public/sign-up
func (ac *AuthController) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	response, err := ac.authService.Register(&req)
	// A duplicate email on sign-up reports 400, not 409; the search
	// endpoint is the only place that answers 409 for the same condition.
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/auth/public/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	// The token goes out both ways: response body and cookie
	c.SetCookie(accessTokenCookie, response.AccessToken, int(ac.tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response)
}

// DeleteAccount handles DELETE /api/auth/private/delete-account
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	err := ac.authService.DeleteAccount(userID)
	// The token's subject no longer resolves to a user
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "account deleted successfully",
	})
}
