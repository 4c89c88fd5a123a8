package handler

import (
	"net/http"

	"fintrack/config"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	cfg     *config.Config
	authSvc *service.AuthService
}

func NewAuthHandler(cfg *config.Config, authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":               u.ID,
		"name":             u.Name,
		"email":            u.Email,
		"default_currency": u.DefaultCurrency,
	}
}

// setAuthCookie delivers the JWT as an httpOnly cookie so browser
// scripts never see the token.
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.cfg.JWT.Expiry.Seconds()), "/", "", h.cfg.JWT.CookieSecure, true)
}

// Signup registers a user together with their default wallet and
// category set, then logs them in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}
	u, token, err := h.authSvc.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"user_id": u.ID}).Info("user signed up")
	h.setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    userView(u),
		"message": "signup successful",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}
	u, token, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userView(u),
		"message": "login successful",
	})
}

// Logout clears the auth cookie; the token itself simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cfg.JWT.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.authSvc.Me(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userView(u)})
}
