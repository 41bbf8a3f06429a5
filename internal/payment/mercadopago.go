package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// MercadoPago builds checkout links for booking deposits. Shops opt in
// by configuring a deposit amount; the link is attached to the
// confirmation email and response, payment capture itself is out of
// scope.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) DepositLink(
	ctx context.Context,
	shop *models.BarberShop,
	res *models.Reservation,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Seña de reserva - %s", shop.Name),
				Description: fmt.Sprintf("Reserva %s %s", res.StartTime.Format("02-01-2006"), res.StartTime.Format("15:04")),
				Quantity:    1,
				UnitPrice:   shop.DepositAmount,
				CurrencyID:  "CLP",
			},
		},
		ExternalReference: fmt.Sprintf("reservation-%d", res.ID),
	}

	pref, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}
	return pref.InitPoint, nil
}
