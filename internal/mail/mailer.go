package mail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/token"
)

// Gateway is the raw email transport. Reservation notifications go
// through Notifier; the debug endpoint uses Gateway directly so send
// errors stay visible there.
type Gateway interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type ResendGateway struct {
	client *resend.Client
	from   string
}

func NewResendGateway(apiKey, from string) *ResendGateway {
	return &ResendGateway{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (g *ResendGateway) Send(ctx context.Context, to, subject, htmlBody string) error {
	_, err := g.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    g.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	})
	return err
}

// ===============================
// Reservation notifications
// ===============================

const (
	cancelTokenTTL = 30 * 24 * time.Hour
	sendTimeout    = 15 * time.Second
)

// Notifier composes and dispatches reservation emails. Dispatch is
// fire-and-forget: failures are logged and counted, never surfaced to
// the booking outcome.
type Notifier struct {
	gateway Gateway
	tokens  *token.Issuer
	baseURL string
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewNotifier(
	gateway Gateway,
	tokens *token.Issuer,
	baseURL string,
	m *metrics.Metrics,
	log zerolog.Logger,
) *Notifier {
	return &Notifier{
		gateway: gateway,
		tokens:  tokens,
		baseURL: baseURL,
		metrics: m,
		log:     log,
	}
}

// ReservationCreated emails the barber (with a cancellation link) and
// the client (with the optional deposit payment link). res must carry
// its Barber, BarberShop and BarberService associations.
func (n *Notifier) ReservationCreated(res *models.Reservation, paymentURL string) {
	loc := n.shopLocation(res)
	dia, fecha, rel, hora := buildDateParts(res.StartTime, loc)

	data := templateData{
		Barbero:    res.Barber.FullName,
		Barberia:   n.shopName(res),
		Cliente:    res.ClientName,
		Servicio:   res.BarberService.Service.Name,
		DiaSemana:  dia,
		Fecha:      fecha,
		Relativo:   rel,
		Hora:       hora,
		PaymentURL: paymentURL,
	}

	if res.Barber.Email != "" {
		data.CancelURL = n.cancelURL(res.ID)
		if html, err := render(barberCreatedTmpl, data); err == nil {
			n.dispatch(res.Barber.Email, fmt.Sprintf("Nueva reserva: %s %s", fecha, hora), html)
		} else {
			n.log.Error().Err(err).Msg("render barber created email")
		}
	}

	if res.ClientEmail != "" {
		data.CancelURL = ""
		if html, err := render(clientCreatedTmpl, data); err == nil {
			n.dispatch(res.ClientEmail, fmt.Sprintf("Tu reserva en %s", data.Barberia), html)
		} else {
			n.log.Error().Err(err).Msg("render client created email")
		}
	}
}

func (n *Notifier) ReservationCancelled(res *models.Reservation) {
	loc := n.shopLocation(res)
	dia, fecha, _, hora := buildDateParts(res.StartTime, loc)

	data := templateData{
		Barbero:   res.Barber.FullName,
		Barberia:  n.shopName(res),
		Cliente:   res.ClientName,
		Servicio:  res.BarberService.Service.Name,
		DiaSemana: dia,
		Fecha:     fecha,
		Hora:      hora,
	}

	if res.Barber.Email != "" {
		if html, err := render(barberCancelledTmpl, data); err == nil {
			n.dispatch(res.Barber.Email, fmt.Sprintf("Reserva anulada: %s %s", fecha, hora), html)
		}
	}

	if res.ClientEmail != "" {
		if html, err := render(clientCancelledTmpl, data); err == nil {
			n.dispatch(res.ClientEmail, "Tu reserva fue anulada", html)
		}
	}
}

func (n *Notifier) dispatch(to, subject, html string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := n.gateway.Send(ctx, to, subject, html); err != nil {
			if n.metrics != nil {
				n.metrics.NotificationFailures.Inc()
			}
			n.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("email send failed")
			return
		}
		n.log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	}()
}

func (n *Notifier) cancelURL(reservationID uint) string {
	t, err := n.tokens.Issue(reservationID, token.PurposeCancel, cancelTokenTTL)
	if err != nil {
		n.log.Error().Err(err).Msg("issue cancel token")
		return ""
	}
	return fmt.Sprintf("%s/api/reservations/cancel-by-token?token=%s", n.baseURL, url.QueryEscape(t))
}

func (n *Notifier) shopName(res *models.Reservation) string {
	if res.Barber.BarberShop != nil && res.Barber.BarberShop.Name != "" {
		return res.Barber.BarberShop.Name
	}
	return "TuBarbería"
}

func (n *Notifier) shopLocation(res *models.Reservation) *time.Location {
	if res.Barber.BarberShop != nil {
		return timezone.Location(res.Barber.BarberShop.Timezone)
	}
	return timezone.Location("")
}
