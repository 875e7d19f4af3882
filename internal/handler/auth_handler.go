package handler

import (
	"net/http"

	"ramahomes/internal/middleware"
	"ramahomes/internal/models"
	"ramahomes/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func formatAdmin(a *models.AdminUser) adminView {
	return adminView{ID: a.ID, Name: a.Name, Email: a.Email}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required."})
		return
	}

	admin, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCreds {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password."})
			return
		}
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token": token,
		"admin": formatAdmin(admin),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	respondData(c, http.StatusOK, formatAdmin(admin))
}
