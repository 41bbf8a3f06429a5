package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// BarberServiceHandler manages the per-barber offerings: which catalog
// services a barber provides, at what price and duration.
type BarberServiceHandler struct {
	db *gorm.DB
}

func NewBarberServiceHandler(db *gorm.DB) *BarberServiceHandler {
	return &BarberServiceHandler{db: db}
}

type CreateBarberServiceRequest struct {
	ServiceID   uint    `json:"service_id" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min"`
}

type UpdateBarberServiceRequest struct {
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

// ListByBarber is public: the booking page shows the active offerings.
func (h *BarberServiceHandler) ListByBarber(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	var offerings []models.BarberService
	if err := h.db.
		Preload("Service").
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("id ASC").
		Find(&offerings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar los servicios.")
		return
	}

	c.JSON(http.StatusOK, offerings)
}

func (h *BarberServiceHandler) Create(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextBarberShopID).(uint)

	barberID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	// Barbers manage their own offerings; admins manage any barber in
	// their shop.
	if uint(barberID) != callerID {
		role := c.MustGet(middleware.ContextUserRole).(string)
		if role != "admin" {
			httperr.Unauthorized(c, "forbidden", "No autorizado.")
			return
		}
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND barber_shop_id = ?", barberID, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	var req CreateBarberServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	duration := req.DurationMin
	if duration <= 0 {
		duration = 30
	}

	offering := models.BarberService{
		BarberID:    uint(barberID),
		ServiceID:   req.ServiceID,
		Price:       req.Price,
		DurationMin: duration,
		Active:      true,
	}

	if err := h.db.Create(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servicio.")
		return
	}

	h.db.Preload("Service").First(&offering, offering.ID)

	c.JSON(http.StatusCreated, offering)
}

func (h *BarberServiceHandler) Update(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	var offering models.BarberService
	if err := h.db.First(&offering, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	if offering.BarberID != callerID {
		role := c.MustGet(middleware.ContextUserRole).(string)
		if role != "admin" {
			httperr.Unauthorized(c, "forbidden", "No autorizado.")
			return
		}
	}

	var req UpdateBarberServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Price != nil {
		offering.Price = *req.Price
	}
	if req.DurationMin != nil && *req.DurationMin > 0 {
		// Existing reservations keep their frozen end times.
		offering.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		offering.Active = *req.Active
	}

	if err := h.db.Save(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar el servicio.")
		return
	}

	h.db.Preload("Service").First(&offering, offering.ID)

	c.JSON(http.StatusOK, offering)
}

func (h *BarberServiceHandler) Delete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	var offering models.BarberService
	if err := h.db.First(&offering, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	if offering.BarberID != callerID {
		role := c.MustGet(middleware.ContextUserRole).(string)
		if role != "admin" {
			httperr.Unauthorized(c, "forbidden", "No autorizado.")
			return
		}
	}

	// Soft delete: reservations keep referencing the offering row.
	offering.Active = false
	if err := h.db.Save(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servicio.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
