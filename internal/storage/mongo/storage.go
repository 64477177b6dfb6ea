package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/mgo/v3"

	"github.com/polkiloo/servicebooking/internal/domain/repository"
)

const (
	usersC    = "users"
	servicesC = "services"
	ledgerC   = "user_services"
	blogsC    = "blogs"
	contactsC = "contacts"
	reviewsC  = "reviews"
)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	session *mgo.Session
	db      string
	logger  *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type serviceRepository struct {
	storage *Storage
}

type ledgerRepository struct {
	storage *Storage
}

type blogRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

var _ repository.Store = (*Storage)(nil)

// New dials MongoDB at url and ensures the indexes the repositories rely on.
func New(ctx context.Context, url, database string, logger *slog.Logger) (*Storage, error) {
	info, err := mgo.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse mongo url: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		info.Timeout = time.Until(deadline)
	} else if info.Timeout == 0 {
		info.Timeout = 10 * time.Second
	}
	if info.Database != "" {
		database = info.Database
	}

	session, err := mgo.DialWithInfo(info)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	session.SetMode(mgo.Monotonic, true)

	storage := &Storage{session: session, db: database, logger: logger}
	if err := storage.ensureIndexes(); err != nil {
		session.Close()
		return nil, err
	}
	return storage, nil
}

func (s *Storage) ensureIndexes() error {
	session := s.session.Copy()
	defer session.Close()
	db := session.DB(s.db)

	indexes := []struct {
		collection string
		index      mgo.Index
	}{
		{usersC, mgo.Index{Key: []string{"email"}, Unique: true}},
		{servicesC, mgo.Index{Key: []string{"-created_at"}}},
		{ledgerC, mgo.Index{Key: []string{"owner_id"}, Unique: true}},
		{ledgerC, mgo.Index{Key: []string{"selections._id"}}},
		{ledgerC, mgo.Index{Key: []string{"-created_at"}}},
		{blogsC, mgo.Index{Key: []string{"-created_at"}}},
		{contactsC, mgo.Index{Key: []string{"-created_at"}}},
		{reviewsC, mgo.Index{Key: []string{"author_id"}, Unique: true}},
		{reviewsC, mgo.Index{Key: []string{"-created_at"}}},
	}
	for _, idx := range indexes {
		if err := db.C(idx.collection).EnsureIndex(idx.index); err != nil {
			return fmt.Errorf("ensure index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// collection returns a collection bound to a copied session. The returned
// func releases the session.
func (s *Storage) collection(ctx context.Context, name string) (*mgo.Collection, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	session := s.session.Copy()
	return session.DB(s.db).C(name), session.Close, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.session != nil {
		s.session.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Services() repository.ServiceRepository {
	return &serviceRepository{storage: s}
}

func (s *Storage) Ledger() repository.LedgerRepository {
	return &ledgerRepository{storage: s}
}

func (s *Storage) Blogs() repository.BlogRepository {
	return &blogRepository{storage: s}
}

func (s *Storage) Contacts() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	session := s.session.Copy()
	defer session.Close()

	done := make(chan error, 1)
	go func() { done <- session.Ping() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
