package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sahara/config"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	"sahara/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing secret and token lifetime come from configuration, never from globals.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed session token for the user.
func (s *jwtService) GenerateToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm and expiry and returns the token subject.
func (s *jwtService) ValidateToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails(err.Error()))
	}

	subject := claims.UserID
	if subject == "" {
		subject = claims.Subject
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("token subject is not a user id"))
	}

	return userID, nil
}

// TokenTTL returns the configured session lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
