package booking

import (
	"context"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/token"
)

// TokenVerifier abstracts the capability-token check so the use case
// doesn't depend on the signing implementation.
type TokenVerifier interface {
	Verify(tokenStr, purpose string) (uint, error)
}

// CancelByToken cancels a reservation authorized by an emailed
// capability token instead of a login session. Token failures pass
// through unchanged so the transport can distinguish expired from
// invalid.
type CancelByToken struct {
	tokens TokenVerifier
	cancel *CancelReservation
}

func NewCancelByToken(tokens TokenVerifier, cancel *CancelReservation) *CancelByToken {
	return &CancelByToken{tokens: tokens, cancel: cancel}
}

func (uc *CancelByToken) Execute(ctx context.Context, tokenStr string) error {
	reservationID, err := uc.tokens.Verify(tokenStr, token.PurposeCancel)
	if err != nil {
		return err
	}

	return uc.cancel.Execute(ctx, reservationID)
}
