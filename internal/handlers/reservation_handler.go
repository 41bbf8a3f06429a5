package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/dto"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httpresp"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/token"
	ucBooking "github.com/ignaciosolar/TuBarberiaAPI/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	repo          domain.Repository
	create        *ucBooking.CreateReservation
	cancel        *ucBooking.CancelReservation
	cancelByToken *ucBooking.CancelByToken
}

func NewReservationHandler(
	repo domain.Repository,
	create *ucBooking.CreateReservation,
	cancel *ucBooking.CancelReservation,
	cancelByToken *ucBooking.CancelByToken,
) *ReservationHandler {
	return &ReservationHandler{
		repo:          repo,
		create:        create,
		cancel:        cancel,
		cancelByToken: cancelByToken,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	BarberServiceID uint   `json:"barber_service_id" binding:"required"`
	ClientName      string `json:"client_name" binding:"required"`
	ClientPhone     string `json:"client_phone" binding:"required"`
	ClientEmail     string `json:"client_email"`
	// RFC3339, or "2006-01-02 15:04" on the shop's clock.
	StartTime string `json:"start_time" binding:"required"`
}

type CreatePublicReservationRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`
	CreateReservationRequest
}

// ======================================================
// CREATE (authenticated: the barber books for a walk-in)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	h.doCreate(c, barberID, req)
}

// CreatePublic is the client-facing booking endpoint: no session, the
// barber comes in the body.
func (h *ReservationHandler) CreatePublic(c *gin.Context) {
	var req CreatePublicReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	h.doCreate(c, req.BarberID, req.CreateReservationRequest)
}

func (h *ReservationHandler) doCreate(c *gin.Context, barberID uint, req CreateReservationRequest) {
	start, err := h.parseStart(c, barberID, req.StartTime)
	if err != nil {
		// parseStart already wrote the response
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateReservationInput{
		BarberID:        barberID,
		BarberServiceID: req.BarberServiceID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		StartTime:       start,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "La hora ya no está disponible.")
		case httperr.IsBusiness(err, "invalid_service"):
			httperr.BadRequest(c, "invalid_service", "Servicio inválido para este barbero.")
		case httperr.IsBusiness(err, "invalid_input"):
			httperr.BadRequest(c, "invalid_input", "Datos inválidos.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		default:
			httperr.Internal(c, "failed_to_create_reservation", "Error al crear la reserva.")
		}
		return
	}

	resp := gin.H{"reservation": out.Reservation}
	if out.PaymentURL != "" {
		resp["payment_url"] = out.PaymentURL
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) parseStart(c *gin.Context, barberID uint, raw string) (time.Time, error) {
	barber, err := h.repo.GetBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return time.Time{}, err
	}

	var tz string
	if barber.BarberShop != nil {
		tz = barber.BarberShop.Timezone
	}
	loc := timezone.Location(tz)

	start, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Zone-less inputs are civil times on the shop's clock.
		start, err = time.ParseInLocation("2006-01-02T15:04", raw, loc)
	}
	if err != nil {
		start, err = time.ParseInLocation("2006-01-02 15:04", raw, loc)
	}
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Fecha u hora inválida.")
		return time.Time{}, err
	}

	return start.UTC(), nil
}

// ======================================================
// CANCEL (authenticated)
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_reservation_id", "Reserva inválida.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_reservation", "Error al cancelar la reserva.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ======================================================
// CANCEL BY TOKEN (link from the confirmation email)
// ======================================================

func (h *ReservationHandler) CancelByToken(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(cancelPageInvalid))
		return
	}

	err := h.cancelByToken.Execute(c.Request.Context(), tokenStr)
	switch {
	case err == nil:
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cancelPageSuccess))
	case errors.Is(err, token.ErrExpired):
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(cancelPageExpired))
	case errors.Is(err, token.ErrInvalid):
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(cancelPageInvalid))
	case httperr.IsBusiness(err, "reservation_not_found"):
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(cancelPageInvalid))
	default:
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(cancelPageError))
	}
}

// ======================================================
// LIST FOR A BARBER'S DAY
// ======================================================

func (h *ReservationHandler) ListForBarber(c *gin.Context) {
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

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	reservations, err := h.repo.ListReservationsForDay(c.Request.Context(), uint(barberID), dayStart, dayEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Error al listar las reservas.")
		return
	}

	items := make([]dto.ReservationListItem, 0, len(reservations))
	for i := range reservations {
		items = append(items, dto.NewReservationListItem(&reservations[i], loc))
	}

	httpresp.List(c, items)
}
