package test

import (
	"context"
	"sync/atomic"

	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

// StoreStub bundles in-memory repositories behind repository.Store.
type StoreStub struct {
	UserRepo    *UserRepositoryStub
	ServiceRepo *ServiceRepositoryStub
	LedgerRepo  *LedgerRepositoryStub
	BlogRepo    *BlogRepositoryStub
	ContactRepo *ContactRepositoryStub
	ReviewRepo  *ReviewRepositoryStub
	HealthErr   error

	closed atomic.Bool
}

// NewStoreStub creates a store over empty repositories.
func NewStoreStub() *StoreStub {
	return &StoreStub{
		UserRepo:    NewUserRepositoryStub(),
		ServiceRepo: NewServiceRepositoryStub(),
		LedgerRepo:  NewLedgerRepositoryStub(),
		BlogRepo:    NewBlogRepositoryStub(),
		ContactRepo: NewContactRepositoryStub(),
		ReviewRepo:  NewReviewRepositoryStub(),
	}
}

func (s *StoreStub) Users() repository.UserRepository       { return s.UserRepo }
func (s *StoreStub) Services() repository.ServiceRepository { return s.ServiceRepo }
func (s *StoreStub) Ledger() repository.LedgerRepository    { return s.LedgerRepo }
func (s *StoreStub) Blogs() repository.BlogRepository        { return s.BlogRepo }
func (s *StoreStub) Contacts() repository.ContactRepository  { return s.ContactRepo }
func (s *StoreStub) Reviews() repository.ReviewRepository    { return s.ReviewRepo }

// HealthCheck returns HealthErr.
func (s *StoreStub) HealthCheck(context.Context) error { return s.HealthErr }

// Close marks the store closed.
func (s *StoreStub) Close() { s.closed.Store(true) }

// Closed reports whether Close was called.
func (s *StoreStub) Closed() bool { return s.closed.Load() }

var _ repository.Store = (*StoreStub)(nil)
