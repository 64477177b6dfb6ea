package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Services() ServiceRepository
	Ledger() LedgerRepository
	Blogs() BlogRepository
	Contacts() ContactRepository
	Reviews() ReviewRepository
}

// Store is a storage backend owning the repositories it produces.
type Store interface {
	Factory
	HealthCheck(ctx context.Context) error
	Close()
}
