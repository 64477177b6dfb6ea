package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	principal := model.Principal{UserID: uuid.New(), Admin: true}

	token, err := strategy.IssueToken(principal)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parsed, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsed != principal {
		t.Fatalf("unexpected principal: %+v", parsed)
	}
}

func TestJWTStrategy_RejectsOtherSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret", Options{})
	verifier := NewJWTStrategy("other", Options{})

	token, err := issuer.IssueToken(model.Principal{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsExpired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	issuedAt := time.Now().Add(-time.Hour)
	strategy.now = func() time.Time { return issuedAt }

	token, err := strategy.IssueToken(model.Principal{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	strategy.now = time.Now
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsUnexpectedAlgorithm(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    jwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := strategy.ParseToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsMalformedSubject(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    jwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := strategy.ParseToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if NewJWTStrategy("secret", Options{}).Name() != "jwt" {
		t.Fatal("unexpected strategy name")
	}
}
