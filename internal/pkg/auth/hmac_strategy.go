package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret), ttl: opts.ttl()}
}

// IssueToken generates signed auth token for the principal.
func (s *HMACStrategy) IssueToken(principal model.Principal) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%t:%d", principal.UserID, principal.Admin, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns the encoded principal.
func (s *HMACStrategy) ParseToken(token string) (model.Principal, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return model.Principal{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return model.Principal{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	admin, err := strconv.ParseBool(parts[1])
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return model.Principal{}, ErrInvalidToken
	}

	return model.Principal{UserID: userID, Admin: admin}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
