package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purposes a capability token may grant. Each token authorizes one
// action on one reservation, independent of any login session.
const PurposeCancel = "cancel"

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

type actionClaims struct {
	Purpose       string `json:"purpose"`
	ReservationID string `json:"resId"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
}

// NewIssuer fails when the signing key is not configured; callers
// treat that as a fatal startup error, not a per-request condition.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token signing key not configured")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

func (i *Issuer) Issue(reservationID uint, purpose string, ttl time.Duration) (string, error) {
	claims := actionClaims{
		Purpose:       purpose,
		ReservationID: strconv.FormatUint(uint64(reservationID), 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature, lifetime and purpose, returning the
// reservation ID the token grants access to. ErrExpired and ErrInvalid
// are distinguished so callers can render different failure pages.
func (i *Issuer) Verify(tokenStr, purpose string) (uint, error) {
	var claims actionClaims

	_, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return i.secret, nil
		},
		jwt.WithLeeway(2*time.Minute),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}

	if claims.Purpose != purpose {
		return 0, ErrInvalid
	}

	id, err := strconv.ParseUint(claims.ReservationID, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalid
	}

	return uint(id), nil
}
