package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	testhelpers "github.com/polkiloo/servicebooking/internal/test"
)

type ledgerFixture struct {
	uc       *LedgerUseCase
	ledger   *testhelpers.LedgerRepositoryStub
	services *testhelpers.ServiceRepositoryStub
	users    *testhelpers.UserRepositoryStub
	queue    *testhelpers.QueueStub
	service  model.Service
	user     *model.User
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	svc := model.Service{
		ID:          uuid.New(),
		Title:       "Website",
		Description: "Landing page development",
		Categories:  []string{"web"},
		PricingPlans: map[model.PlanTier]model.PricingPlan{
			model.PlanTierBasic:    {PlanID: "p1", Price: 10, Features: []string{"one page"}},
			model.PlanTierStandard: {PlanID: "p2", Price: 20, Features: []string{"five pages"}},
		},
	}
	f := &ledgerFixture{
		ledger:   testhelpers.NewLedgerRepositoryStub(),
		services: testhelpers.NewServiceRepositoryStub(svc),
		users:    testhelpers.NewUserRepositoryStub(),
		queue:    &testhelpers.QueueStub{},
		service:  svc,
	}
	f.user = f.users.Add(model.User{Name: "Uma", Email: "uma@example.com"})
	f.uc = NewLedgerUseCase(f.ledger, f.services, f.users, f.queue, nil)
	return f
}

func (f *ledgerFixture) selectPlan(t *testing.T, owner uuid.UUID, planID string) *model.SelectionResult {
	t.Helper()
	res, err := f.uc.AddOrUpdateSelection(context.Background(), owner, f.service.ID.String(), planID)
	require.NoError(t, err)
	return res
}

func (f *ledgerFixture) list(t *testing.T, viewer model.Principal) []model.ResolvedEntry {
	t.Helper()
	entries, err := f.uc.ListSelections(context.Background(), viewer)
	require.NoError(t, err)
	return entries
}

func TestLedgerBookingScenario(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	owner := model.Principal{UserID: f.user.ID}

	res := f.selectPlan(t, f.user.ID, "p1")
	assert.Equal(t, model.SelectionCreated, res.Outcome)
	require.NotNil(t, res.Selection)
	assert.Equal(t, model.SelectionStatusPending, res.Selection.Status)
	require.NotNil(t, res.Selection.Plan)
	assert.Equal(t, float64(10), res.Selection.Plan.Price)
	assert.Equal(t, model.PlanTierBasic, res.Selection.Tier)
	assert.Equal(t, "uma@example.com", res.Entry.Owner.Email)
	assert.Empty(t, f.queue.Enqueued(), "creation must not notify")

	selID := res.Selection.ID.String()
	booked, err := f.uc.UpdateStatus(ctx, selID, "Booked")
	require.NoError(t, err)
	assert.False(t, booked.Removed)
	require.NotNil(t, booked.Entry)
	require.Len(t, booked.Entry.Selections, 1)
	assert.Equal(t, model.SelectionStatusBooked, booked.Entry.Selections[0].Status)

	changes := f.queue.Enqueued()
	require.Len(t, changes, 1)
	assert.Equal(t, res.Selection.ID, changes[0].SelectionID)
	assert.Equal(t, "uma@example.com", changes[0].Email)
	assert.Equal(t, "Uma", changes[0].Name)
	assert.Equal(t, model.SelectionStatusBooked, changes[0].Status)

	done, err := f.uc.UpdateStatus(ctx, selID, "completed")
	require.NoError(t, err)
	assert.True(t, done.Removed)
	assert.Nil(t, done.Entry)
	assert.Len(t, f.queue.Enqueued(), 2)

	entries := f.list(t, owner)
	require.Len(t, entries, 1)
	for _, sel := range entries[0].Selections {
		assert.NotEqual(t, f.service.ID, sel.ServiceID)
	}

	_, err = f.uc.UpdateStatus(ctx, selID, "Booked")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.Len(t, f.queue.Enqueued(), 2)
}

func TestLedgerSelectionIsUniquePerService(t *testing.T) {
	f := newLedgerFixture(t)

	first := f.selectPlan(t, f.user.ID, "p1")
	second := f.selectPlan(t, f.user.ID, "p2")
	assert.Equal(t, model.SelectionUpdated, second.Outcome)
	assert.Equal(t, first.Selection.ID, second.Selection.ID)
	assert.Equal(t, model.PlanTierStandard, second.Selection.Tier)

	again := f.selectPlan(t, f.user.ID, "p2")
	assert.Equal(t, model.SelectionUnchanged, again.Outcome)

	entries := f.list(t, model.Principal{UserID: f.user.ID})
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Selections, 1)
	assert.Equal(t, "p2", entries[0].Selections[0].PlanID)
}

func TestLedgerPlanChangeKeepsStatus(t *testing.T) {
	f := newLedgerFixture(t)
	res := f.selectPlan(t, f.user.ID, "p1")
	_, err := f.uc.UpdateStatus(context.Background(), res.Selection.ID.String(), "processing")
	require.NoError(t, err)

	updated := f.selectPlan(t, f.user.ID, "p2")
	assert.Equal(t, model.SelectionStatusProcessing, updated.Selection.Status)
}

func TestLedgerConcurrentSelectionsConverge(t *testing.T) {
	f := newLedgerFixture(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		plan := "p1"
		if i%2 == 0 {
			plan = "p2"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.AddOrUpdateSelection(context.Background(), f.user.ID, f.service.ID.String(), plan)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries := f.list(t, model.Principal{UserID: f.user.ID})
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Selections, 1)
}

func TestLedgerAddRejectsBadInput(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddOrUpdateSelection(ctx, f.user.ID, f.service.ID.String(), "p9")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidPlan)
	_, err = f.uc.AddOrUpdateSelection(ctx, f.user.ID, f.service.ID.String(), "  ")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidPlan)
	_, err = f.uc.AddOrUpdateSelection(ctx, f.user.ID, "bogus", "p1")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidIdentifier)
	_, err = f.uc.AddOrUpdateSelection(ctx, f.user.ID, uuid.NewString(), "p1")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	assert.Empty(t, f.list(t, model.Principal{UserID: f.user.ID}), "rejected input must not create selections")
}

func TestLedgerUpdateStatusIsIdempotent(t *testing.T) {
	f := newLedgerFixture(t)
	res := f.selectPlan(t, f.user.ID, "p1")

	for _, status := range []string{"processing", "Booked", "cancelled"} {
		for i := 0; i < 2; i++ {
			out, err := f.uc.UpdateStatus(context.Background(), res.Selection.ID.String(), status)
			require.NoError(t, err)
			require.Len(t, out.Entry.Selections, 1)
			assert.Equal(t, model.SelectionStatus(status), out.Entry.Selections[0].Status)
		}
	}
}

func TestLedgerUpdateStatusRejectsUnsettable(t *testing.T) {
	f := newLedgerFixture(t)
	res := f.selectPlan(t, f.user.ID, "p1")

	for _, status := range []string{"pending", "booked", "done", ""} {
		_, err := f.uc.UpdateStatus(context.Background(), res.Selection.ID.String(), status)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidStatus, status)
	}
	entries := f.list(t, model.Principal{UserID: f.user.ID})
	assert.Equal(t, model.SelectionStatusPending, entries[0].Selections[0].Status)
	assert.Empty(t, f.queue.Enqueued())
}

func TestLedgerUpdateStatusBadIdentifiers(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.uc.UpdateStatus(context.Background(), "nope", "Booked")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidIdentifier)
	_, err = f.uc.UpdateStatus(context.Background(), uuid.NewString(), "completed")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestLedgerListIsolation(t *testing.T) {
	f := newLedgerFixture(t)
	other := f.users.Add(model.User{Name: "Olga", Email: "olga@example.com"})

	f.selectPlan(t, f.user.ID, "p1")
	f.selectPlan(t, other.ID, "p2")

	mine := f.list(t, model.Principal{UserID: f.user.ID})
	require.Len(t, mine, 1)
	assert.Equal(t, f.user.ID, mine[0].Owner.ID)

	theirs := f.list(t, model.Principal{UserID: other.ID})
	require.Len(t, theirs, 1)
	assert.Equal(t, other.ID, theirs[0].Owner.ID)

	all := f.list(t, model.Principal{UserID: uuid.New(), Admin: true})
	require.Len(t, all, 2)
	assert.Equal(t, other.ID, all[0].Owner.ID, "newest entry first")
	assert.Equal(t, f.user.ID, all[1].Owner.ID)
}

func TestLedgerListDegradesMissingReferences(t *testing.T) {
	f := newLedgerFixture(t)
	f.selectPlan(t, f.user.ID, "p1")

	require.NoError(t, f.services.Delete(context.Background(), f.service.ID))
	entries := f.list(t, model.Principal{UserID: f.user.ID})
	require.Len(t, entries[0].Selections, 1)
	assert.Nil(t, entries[0].Selections[0].Service)
	assert.Nil(t, entries[0].Selections[0].Plan)

	f.services.ListErr = errors.New("catalog offline")
	entries = f.list(t, model.Principal{UserID: f.user.ID})
	require.Len(t, entries[0].Selections, 1)
	assert.Nil(t, entries[0].Selections[0].Plan)
}

func TestLedgerListDegradesMissingOwner(t *testing.T) {
	f := newLedgerFixture(t)
	stranger := uuid.New()
	f.selectPlan(t, stranger, "p1")

	entries := f.list(t, model.Principal{UserID: stranger})
	require.Len(t, entries, 1)
	assert.Equal(t, model.Owner{ID: stranger}, entries[0].Owner)
}

func TestLedgerNotificationFailuresDoNotFailUpdate(t *testing.T) {
	f := newLedgerFixture(t)
	res := f.selectPlan(t, f.user.ID, "p1")

	f.queue.Reject = true
	_, err := f.uc.UpdateStatus(context.Background(), res.Selection.ID.String(), "processing")
	require.NoError(t, err)

	f.queue.Reject = false
	f.users.GetErr = fmt.Errorf("users offline")
	out, err := f.uc.UpdateStatus(context.Background(), res.Selection.ID.String(), "Booked")
	require.NoError(t, err)
	assert.Equal(t, model.SelectionStatusBooked, out.Entry.Selections[0].Status)
	assert.Empty(t, f.queue.Enqueued())
}

func TestLedgerRepositoryErrorsPropagate(t *testing.T) {
	f := newLedgerFixture(t)
	boom := errors.New("store down")
	f.ledger.Err = boom

	_, err := f.uc.AddOrUpdateSelection(context.Background(), f.user.ID, f.service.ID.String(), "p1")
	assert.ErrorIs(t, err, boom)
	_, err = f.uc.ListSelections(context.Background(), model.Principal{UserID: f.user.ID})
	assert.ErrorIs(t, err, boom)
	_, err = f.uc.UpdateStatus(context.Background(), uuid.NewString(), "Booked")
	assert.ErrorIs(t, err, boom)
}
