package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
	ucBooking "github.com/ignaciosolar/TuBarberiaAPI/internal/usecase/booking"
)

type AvailabilityHandler struct {
	repo          domain.Repository
	availability  *ucBooking.GetAvailability
	nextAvailable *ucBooking.NextAvailable
}

func NewAvailabilityHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	nextAvailable *ucBooking.NextAvailable,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:          repo,
		availability:  availability,
		nextAvailable: nextAvailable,
	}
}

// DayView returns the bookable "HH:mm" start times for one civil day
// in the shop's timezone.
func (h *AvailabilityHandler) DayView(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("barberId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("durationMinutes", "30"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	var tz string
	if barber.BarberShop != nil {
		tz = barber.BarberShop.Timezone
	}
	loc := timezone.Location(tz)

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:    uint(barberID),
		Date:        date,
		DurationMin: duration,
		StepMin:     domain.DayViewStepMin,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_compute_availability", "Error al calcular la disponibilidad.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Next returns the first free slot within the search horizon, or 404
// when the whole horizon is booked.
func (h *AvailabilityHandler) Next(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("barberId"))
	if err != nil || barberID <= 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("durationMinutes", "30"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
		return
	}

	next, err := h.nextAvailable.Execute(c.Request.Context(), uint(barberID), duration)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		case httperr.IsBusiness(err, "no_slot_in_horizon"):
			httperr.NotFound(c, "no_slot_in_horizon", "No hay horas disponibles en los próximos días.")
		default:
			httperr.Internal(c, "failed_to_compute_availability", "Error al calcular la disponibilidad.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nextAvailable": next.Format(time.RFC3339),
		"formatted":     next.Format("2006-01-02 15:04"),
	})
}
