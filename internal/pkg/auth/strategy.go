package auth

import (
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

type Strategy interface {
	IssueToken(principal model.Principal) (string, error)
	ParseToken(token string) (model.Principal, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

const defaultTTL = 24 * time.Hour

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return defaultTTL
	}
	return o.TTL
}
