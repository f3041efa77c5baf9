package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/webcontacts/contacts-api/internal/config"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
)

const (
	ScopeAccess  = "access_token"
	ScopeRefresh = "refresh_token"
	ScopeEmail   = "email_token"
)

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Service mints and verifies the three token kinds used by the API. The
// secret and signing method are fixed at construction and never change.
type Service struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	emailTTL   time.Duration
}

func New(cfg *config.Config) (*Service, error) {
	var method jwt.SigningMethod
	switch cfg.JWTAlgorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, errors.New("signing algorithm must be HS256 or HS512")
	}

	return &Service{
		secret:     []byte(cfg.JWTSecret),
		method:     method,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		emailTTL:   cfg.EmailTokenTTL,
	}, nil
}

func (s *Service) CreateAccessToken(email string) (string, error) {
	return s.sign(email, ScopeAccess, s.accessTTL)
}

func (s *Service) CreateRefreshToken(email string) (string, error) {
	return s.sign(email, ScopeRefresh, s.refreshTTL)
}

func (s *Service) CreateEmailToken(email string) (string, error) {
	return s.sign(email, ScopeEmail, s.emailTTL)
}

func (s *Service) sign(email, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// jti keeps two tokens minted within the same second distinct,
			// which refresh rotation relies on.
			ID: uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign "+scope)
	}
	return signed, nil
}

// DecodeAccessToken returns the subject email of a valid access token.
func (s *Service) DecodeAccessToken(raw string) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", customErrors.ErrInvalidToken
	}
	if claims.Scope != ScopeAccess {
		return "", customErrors.ErrInvalidToken
	}
	return claims.Subject, nil
}

// DecodeRefreshToken distinguishes a wrong-scope token from a broken one so
// the caller can report "invalid scope" separately.
func (s *Service) DecodeRefreshToken(raw string) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", customErrors.ErrInvalidToken
	}
	if claims.Scope != ScopeRefresh {
		return "", customErrors.ErrInvalidScope
	}
	return claims.Subject, nil
}

// DecodeEmailToken verifies signature and expiry only; any failure surfaces
// as the user-facing email verification error.
func (s *Service) DecodeEmailToken(raw string) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", customErrors.ErrEmailToken
	}
	return claims.Subject, nil
}

func (s *Service) parse(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, customErrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, customErrors.ErrInvalidToken
	}
	return claims, nil
}
