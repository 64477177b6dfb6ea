package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const jwtIssuer = "servicebooking"

type claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// JWTStrategy issues HS256 signed JWT access tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	return &JWTStrategy{secret: []byte(secret), ttl: opts.ttl(), now: time.Now}
}

// IssueToken signs a token with the principal as subject.
func (s *JWTStrategy) IssueToken(principal model.Principal) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Admin: principal.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			Issuer:    jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// ParseToken verifies signature, issuer and expiry.
func (s *JWTStrategy) ParseToken(token string) (model.Principal, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return model.Principal{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	return model.Principal{UserID: userID, Admin: c.Admin}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
