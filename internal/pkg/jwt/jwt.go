package jwt

import (
	"errors"
	"time"

	"table-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const issuer = "table-booking"

// ManageClaims authorise a guest to look up or cancel one reservation.
type ManageClaims struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Service) GenerateManageToken(reservationID uuid.UUID, code string) (string, error) {
	now := s.clock.Now()
	claims := ManageClaims{
		ReservationID: reservationID,
		Code:          code,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   reservationID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateManageToken(tokenString string) (*ManageClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ManageClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ManageClaims)
	if !ok || !token.Valid || claims.ReservationID == uuid.Nil || claims.Code == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
