package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
	"github.com/FSDTeam-SAA/loadboard/internal/core/service"
)

type AuthHandler struct {
	svc  *service.AuthService
	repo postgres.Store
}

func NewAuthHandler(svc *service.AuthService, repo postgres.Store) *AuthHandler {
	return &AuthHandler{svc: svc, repo: repo}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := domain.Role(req.Role)
	if !role.IsValid() || role == domain.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	if _, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		respondError(c, domain.ErrEmailTaken)
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		respondError(c, err)
		return
	}

	hash, err := h.svc.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.repo.CreateUser(c.Request.Context(), postgres.CreateUserParams{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if !h.svc.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := h.svc.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
