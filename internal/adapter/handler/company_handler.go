package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/loadboard/internal/core/service"
)

type CompanyHandler struct {
	svc *service.FleetService
}

func NewCompanyHandler(svc *service.FleetService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.svc.CreateCompany(c.Request.Context(), actorFrom(c), service.CreateCompanyInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    company.ID,
		"name":  company.Name,
		"owner": company.OwnerID,
	})
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	DrivingLicense string `json:"driving_license"`
}

func (h *CompanyHandler) CreateDriver(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.svc.CreateDriver(c.Request.Context(), actorFrom(c), service.CreateMemberInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DrivingLicense: req.DrivingLicense,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      driver.ID,
		"user_id": driver.UserID,
		"company": driver.CompanyID,
	})
}

func (h *CompanyHandler) CreateDispatcher(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispatcher, err := h.svc.CreateDispatcher(c.Request.Context(), actorFrom(c), service.CreateMemberInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      dispatcher.ID,
		"user_id": dispatcher.UserID,
		"company": dispatcher.CompanyID,
	})
}

func (h *CompanyHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.ListDrivers(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

func (h *CompanyHandler) ListDispatchers(c *gin.Context) {
	dispatchers, err := h.svc.ListDispatchers(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispatchers": dispatchers})
}
