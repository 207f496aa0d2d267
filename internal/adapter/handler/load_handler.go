package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
	"github.com/FSDTeam-SAA/loadboard/internal/core/service"
)

type LoadHandler struct {
	svc *service.LoadService
}

func NewLoadHandler(svc *service.LoadService) *LoadHandler {
	return &LoadHandler{svc: svc}
}

type loadResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	PickupLocation   string     `json:"pickup_location"`
	DeliveryLocation string     `json:"delivery_location"`
	CompanyID        uuid.UUID  `json:"company_id"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	AskPrice         *int64     `json:"ask_price,omitempty"`
	DriverID         *uuid.UUID `json:"driver_id,omitempty"`
	OrderStatus      string     `json:"order_status"`
	PickupDate       *time.Time `json:"pickup_date,omitempty"`
	Note             string     `json:"note,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toLoadResponse(l domain.Load) loadResponse {
	return loadResponse{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		Category:         l.Category,
		PickupLocation:   l.PickupLocation,
		DeliveryLocation: l.DeliveryLocation,
		CompanyID:        l.CompanyID,
		CreatedBy:        l.CreatedBy,
		AskPrice:         l.AskPrice,
		DriverID:         l.DriverID,
		OrderStatus:      l.OrderStatus.String(),
		PickupDate:       l.PickupDate,
		Note:             l.Note,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

type CreateLoadRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Category         string     `json:"category" binding:"required"`
	PickupLocation   string     `json:"pickup_location" binding:"required"`
	DeliveryLocation string     `json:"delivery_location" binding:"required"`
	CompanyToken     string     `json:"company_token"`
	PickupDate       *time.Time `json:"pickup_date"`
	Note             string     `json:"note"`
}

func (h *LoadHandler) CreateLoad(c *gin.Context) {
	var req CreateLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load, err := h.svc.Create(c.Request.Context(), actorFrom(c), service.CreateLoadInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		CompanyToken:     req.CompanyToken,
		PickupDate:       req.PickupDate,
		Note:             req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toLoadResponse(load))
}

func (h *LoadHandler) ListLoads(c *gin.Context) {
	loads, err := h.svc.List(c.Request.Context(), actorFrom(c), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]loadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, toLoadResponse(l))
	}
	c.JSON(http.StatusOK, gin.H{"loads": out})
}

func (h *LoadHandler) GetLoad(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	load, err := h.svc.Get(c.Request.Context(), actorFrom(c), loadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}

type UpdateLoadRequest struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Category         string `json:"category" binding:"required"`
	PickupLocation   string `json:"pickup_location" binding:"required"`
	DeliveryLocation string `json:"delivery_location" binding:"required"`
}

func (h *LoadHandler) UpdateLoad(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	var req UpdateLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load, err := h.svc.Update(c.Request.Context(), actorFrom(c), loadID, service.UpdateLoadInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}

func (h *LoadHandler) DeleteLoad(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), loadID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type AskPriceRequest struct {
	AskPrice int64 `json:"ask_price" binding:"required,gt=0"`
}

func (h *LoadHandler) AskPrice(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	var req AskPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load, err := h.svc.SetAskPrice(c.Request.Context(), actorFrom(c), loadID, req.AskPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}

type PriceActionRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *LoadHandler) PriceAction(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	var req PriceActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load, err := h.svc.ResolveAskPrice(c.Request.Context(), actorFrom(c), loadID, domain.OrderStatus(req.Action))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

func (h *LoadHandler) AssignDriver(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	driverID, _ := uuid.Parse(req.DriverID)

	load, err := h.svc.AssignDriver(c.Request.Context(), actorFrom(c), loadID, driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *LoadHandler) UpdateStatus(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("loadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid load id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	load, err := h.svc.AdvanceStatus(c.Request.Context(), actorFrom(c), loadID, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoadResponse(load))
}
