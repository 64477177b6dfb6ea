package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu      sync.Mutex
	ByEmail map[string]*model.User
	ByID    map[uuid.UUID]*model.User
	Err     error
	GetErr  error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	stored := user
	s.ByEmail[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

// Add stores user directly, bypassing error injection.
func (s *UserRepositoryStub) Add(user model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := user
	s.ByEmail[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readErr(); err != nil {
		return nil, err
	}
	if user, ok := s.ByEmail[email]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readErr(); err != nil {
		return nil, err
	}
	if user, ok := s.ByID[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces name, email and password hash of a stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	prev, ok := s.ByID[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if other, taken := s.ByEmail[user.Email]; taken && other.ID != user.ID {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.ByEmail, prev.Email)
	stored := *prev
	stored.Name, stored.Email, stored.PasswordHash = user.Name, user.Email, user.PasswordHash
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	cp := stored
	return &cp, nil
}

func (s *UserRepositoryStub) readErr() error {
	if s.GetErr != nil {
		return s.GetErr
	}
	return s.Err
}

// ServiceRepositoryStub keeps the catalog in memory.
type ServiceRepositoryStub struct {
	mu       sync.Mutex
	Services map[uuid.UUID]model.Service
	Err      error
	ListErr  error
}

// NewServiceRepositoryStub builds an empty catalog.
func NewServiceRepositoryStub(services ...model.Service) *ServiceRepositoryStub {
	s := &ServiceRepositoryStub{Services: make(map[uuid.UUID]model.Service)}
	for _, svc := range services {
		s.Services[svc.ID] = svc
	}
	return s
}

// Create stores service.
func (s *ServiceRepositoryStub) Create(ctx context.Context, service model.Service) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Services[service.ID]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now().UTC()
	service.CreatedAt, service.UpdatedAt = now, now
	s.Services[service.ID] = service
	return &service, nil
}

// Update replaces stored service.
func (s *ServiceRepositoryStub) Update(ctx context.Context, service model.Service) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	prev, ok := s.Services[service.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	service.CreatedAt = prev.CreatedAt
	service.UpdatedAt = time.Now().UTC()
	s.Services[service.ID] = service
	return &service, nil
}

// Delete removes service.
func (s *ServiceRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Services[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Services, id)
	return nil
}

// GetByID returns a stored service.
func (s *ServiceRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	svc, ok := s.Services[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &svc, nil
}

// ListByIDs returns the stored services among ids.
func (s *ServiceRepositoryStub) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := s.Services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

// List returns every service, newest first.
func (s *ServiceRepositoryStub) List(ctx context.Context) ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.Service, 0, len(s.Services))
	for _, svc := range s.Services {
		out = append(out, svc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// LedgerRepositoryStub is an in-memory ledger with the same per-selection
// atomicity as the real stores.
type LedgerRepositoryStub struct {
	mu      sync.Mutex
	entries []*model.LedgerEntry
	clock   time.Time
	Err     error
}

// NewLedgerRepositoryStub constructs an empty ledger.
func NewLedgerRepositoryStub() *LedgerRepositoryStub {
	return &LedgerRepositoryStub{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *LedgerRepositoryStub) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// UpsertSelection creates or updates the selection of ownerID for serviceID.
func (s *LedgerRepositoryStub) UpsertSelection(ctx context.Context, ownerID, serviceID uuid.UUID, planID string) (*model.LedgerEntry, *model.Selection, model.SelectionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, nil, "", s.Err
	}

	var entry *model.LedgerEntry
	for _, e := range s.entries {
		if e.OwnerID == ownerID {
			entry = e
			break
		}
	}
	if entry == nil {
		now := s.tick()
		entry = &model.LedgerEntry{ID: uuid.New(), OwnerID: ownerID, CreatedAt: now, UpdatedAt: now}
		s.entries = append(s.entries, entry)
	}

	outcome := model.SelectionCreated
	sel, ok := entry.SelectionFor(serviceID)
	switch {
	case ok && sel.PlanID == planID:
		outcome = model.SelectionUnchanged
	case ok:
		sel.PlanID = planID
		outcome = model.SelectionUpdated
	default:
		entry.Selections = append(entry.Selections, model.Selection{
			ID:        uuid.New(),
			ServiceID: serviceID,
			PlanID:    planID,
			Status:    model.SelectionStatusPending,
			CreatedAt: s.tick(),
		})
		sel = &entry.Selections[len(entry.Selections)-1]
	}
	if outcome != model.SelectionUnchanged {
		entry.UpdatedAt = s.tick()
	}
	selCopy := *sel
	return cloneEntry(entry), &selCopy, outcome, nil
}

// ListByOwner returns the entry of ownerID.
func (s *LedgerRepositoryStub) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.LedgerEntry, error) {
	return s.list(func(e *model.LedgerEntry) bool { return e.OwnerID == ownerID })
}

// ListAll returns every entry, newest first.
func (s *LedgerRepositoryStub) ListAll(ctx context.Context) ([]model.LedgerEntry, error) {
	return s.list(func(*model.LedgerEntry) bool { return true })
}

func (s *LedgerRepositoryStub) list(keep func(*model.LedgerEntry) bool) ([]model.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.LedgerEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		if keep(s.entries[i]) {
			out = append(out, *cloneEntry(s.entries[i]))
		}
	}
	return out, nil
}

// SetSelectionStatus assigns status to the selection.
func (s *LedgerRepositoryStub) SetSelectionStatus(ctx context.Context, selectionID uuid.UUID, status model.SelectionStatus) (*model.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.entries {
		if sel, ok := e.Selection(selectionID); ok {
			sel.Status = status
			e.UpdatedAt = s.tick()
			return cloneEntry(e), nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CompleteSelection removes the selection.
func (s *LedgerRepositoryStub) CompleteSelection(ctx context.Context, selectionID uuid.UUID) (*model.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.entries {
		for i := range e.Selections {
			if e.Selections[i].ID != selectionID {
				continue
			}
			e.Selections = append(e.Selections[:i], e.Selections[i+1:]...)
			e.UpdatedAt = s.tick()
			return cloneEntry(e), nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func cloneEntry(e *model.LedgerEntry) *model.LedgerEntry {
	cp := *e
	cp.Selections = append([]model.Selection(nil), e.Selections...)
	return &cp
}
