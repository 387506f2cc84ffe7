package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dating/config"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/service"
	"dating/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide HMAC signing key.
	ttl    time.Duration // Lifetime of issued tokens.
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing or short signing key is a startup error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.SecretKey.Token) < config.MinTokenKeyLength {
		return nil, errors.Errorf("jwt signing key must be at least %d bytes", config.MinTokenKeyLength)
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return newJWTService([]byte(cfg.SecretKey.Token), ttl, cfg.Env.ServiceName, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, issuer string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		issuer: issuer,
		now:    now,
	}
}

// Issue creates a signed HS512 token whose subject is the account ID.
func (s *jwtService) Issue(accountID, displayName string) (*service.Token, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Validate verifies the signature, algorithm and expiry of a token.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token has no subject")
	}

	return claims, nil
}
