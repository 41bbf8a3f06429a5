package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httpresp"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
	ucBooking "github.com/ignaciosolar/TuBarberiaAPI/internal/usecase/booking"
)

// BlockHandler manages ad-hoc blocked intervals (vacations, breaks).
// Timestamps arrive as RFC3339 and are stored in UTC.
type BlockHandler struct {
	db    *gorm.DB
	cache ucBooking.SlotCache
}

func NewBlockHandler(db *gorm.DB, cache ucBooking.SlotCache) *BlockHandler {
	return &BlockHandler{db: db, cache: cache}
}

type BlockRequest struct {
	StartTime string `json:"start_time" binding:"required"` // RFC3339
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *BlockHandler) parseRange(c *gin.Context, req *BlockRequest) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Hora de inicio inválida.")
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Hora de término inválida.")
		return time.Time{}, time.Time{}, false
	}

	if !start.Before(end) {
		httperr.BadRequest(c, "inverted_range", "La hora de inicio debe ser anterior a la de término.")
		return time.Time{}, time.Time{}, false
	}

	return start.UTC(), end.UTC(), true
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, ok := h.parseRange(c, &req)
	if !ok {
		return
	}

	block := models.BlockedTime{
		BarberID:  barberID,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Error al crear el bloqueo.")
		return
	}

	h.invalidate(c, &block)

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BlockHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_block_id", "Bloqueo inválido.")
		return
	}

	var block models.BlockedTime
	if err := h.db.Where("id = ? AND barber_id = ?", id, barberID).First(&block).Error; err != nil {
		httperr.NotFound(c, "block_not_found", "Bloqueo no encontrado.")
		return
	}

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, ok := h.parseRange(c, &req)
	if !ok {
		return
	}

	// Invalidate the old day too in case the block moved.
	h.invalidate(c, &block)

	block.StartTime = start
	block.EndTime = end
	block.Reason = req.Reason

	if err := h.db.Save(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_update_block", "Error al actualizar el bloqueo.")
		return
	}

	h.invalidate(c, &block)

	c.JSON(http.StatusOK, block)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_block_id", "Bloqueo inválido.")
		return
	}

	var block models.BlockedTime
	if err := h.db.Where("id = ? AND barber_id = ?", id, barberID).First(&block).Error; err != nil {
		httperr.NotFound(c, "block_not_found", "Bloqueo no encontrado.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Error al eliminar el bloqueo.")
		return
	}

	h.invalidate(c, &block)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// LIST
// ======================================================

func (h *BlockHandler) ListByBarber(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("barberId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	var blocks []models.BlockedTime
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("start_time DESC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Error al listar los bloqueos.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// CACHE
// ======================================================

func (h *BlockHandler) invalidate(c *gin.Context, block *models.BlockedTime) {
	if h.cache == nil {
		return
	}

	var shop models.BarberShop
	tz := ""
	if err := h.db.
		Joins("JOIN users ON users.barber_shop_id = barber_shops.id").
		Where("users.id = ?", block.BarberID).
		First(&shop).Error; err == nil {
		tz = shop.Timezone
	}
	loc := timezone.Location(tz)

	// A block can span midnight; invalidate every touched day.
	for day := block.StartTime.In(loc); day.Before(block.EndTime.In(loc)); day = day.AddDate(0, 0, 1) {
		h.cache.InvalidateDay(c.Request.Context(), block.BarberID, day.Format("2006-01-02"))
	}
	h.cache.InvalidateDay(c.Request.Context(), block.BarberID, block.EndTime.In(loc).Format("2006-01-02"))
}
