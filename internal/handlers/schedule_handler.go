package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// ScheduleHandler manages the recurring weekly windows. Updates replace
// the barber's whole week wholesale; there is no per-entry patching.
type ScheduleHandler struct {
	repo domain.Repository
}

func NewScheduleHandler(repo domain.Repository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

type ScheduleEntryRequest struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ReplaceScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries"`
}

var weekdayNames = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// ======================================================
// REPLACE
// ======================================================

func (h *ScheduleHandler) Replace(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	entries := make([]models.ScheduleEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Día de la semana inválido.")
			return
		}

		start, err := time.Parse("15:04", e.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", fmt.Sprintf("Hora de inicio inválida en %s.", weekdayNames[e.Weekday]))
			return
		}
		end, err := time.Parse("15:04", e.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", fmt.Sprintf("Hora de término inválida en %s.", weekdayNames[e.Weekday]))
			return
		}
		if !start.Before(end) {
			httperr.BadRequest(c, "inverted_window", fmt.Sprintf("La hora de inicio debe ser anterior a la de término en %s.", weekdayNames[e.Weekday]))
			return
		}

		entries = append(entries, models.ScheduleEntry{
			BarberID:  barberID,
			Weekday:   e.Weekday,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	if err := h.repo.ReplaceSchedule(c.Request.Context(), barberID, entries); err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Error al actualizar el horario.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "entries": len(entries)})
}

// ======================================================
// GET (grouped by weekday)
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("barberId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	entries, err := h.repo.ListSchedule(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Error al listar el horario.")
		return
	}

	grouped := make(map[int][]gin.H, 7)
	for _, e := range entries {
		grouped[e.Weekday] = append(grouped[e.Weekday], gin.H{
			"start_time": e.StartTime,
			"end_time":   e.EndTime,
		})
	}

	days := make([]gin.H, 0, 7)
	for wd := 0; wd < 7; wd++ {
		windows := grouped[wd]
		if windows == nil {
			windows = []gin.H{}
		}
		days = append(days, gin.H{
			"weekday": wd,
			"windows": windows,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"days":      days,
	})
}
