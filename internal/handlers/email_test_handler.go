package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/config"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/mail"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/validators"
)

// EmailTestHandler sends a probe email synchronously. Unlike the
// reservation notifications, send errors propagate to the response so
// the provider setup can be verified. Disabled unless the env flag
// turns it on.
type EmailTestHandler struct {
	config  *config.Config
	gateway mail.Gateway
}

func NewEmailTestHandler(cfg *config.Config, gateway mail.Gateway) *EmailTestHandler {
	return &EmailTestHandler{config: cfg, gateway: gateway}
}

type SendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

func (h *EmailTestHandler) Send(c *gin.Context) {
	if !h.config.EmailTestEnabled {
		httperr.NotFound(c, "not_found", "Recurso no encontrado.")
		return
	}

	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsEmailDomainValid(req.To) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	body := "<p>Correo de prueba de TuBarbería. Si lo recibiste, el envío está funcionando.</p>"
	if err := h.gateway.Send(ctx, req.To, "Correo de prueba - TuBarbería", body); err != nil {
		httperr.Internal(c, "email_send_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
