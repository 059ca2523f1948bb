package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/config"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/metrics"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseMocks struct {
	repo      *mocks.MockPurchaseRepo
	events    *mocks.MockEventRepo
	publisher *mocks.MockPurchasePublisher
	metrics   *mocks.MockPurchaseMetrics
}

func newPurchaseService(t *testing.T, pendingTTL time.Duration) (*PurchaseService, purchaseMocks) {
	t.Helper()
	m := purchaseMocks{
		repo:      mocks.NewMockPurchaseRepo(t),
		events:    mocks.NewMockEventRepo(t),
		publisher: mocks.NewMockPurchasePublisher(t),
		metrics:   mocks.NewMockPurchaseMetrics(t),
	}
	return NewPurchaseService(m.repo, m.events, m.publisher, m.metrics, pendingTTL, newTestLogger(t)), m
}

func generalItems(counts ...int) domain.PurchaseInput {
	in := domain.PurchaseInput{TotalAmount: decimal.NewFromInt(150)}
	for _, c := range counts {
		in.Items = append(in.Items, domain.LineItem{
			Type:  domain.TicketTypeGeneral,
			Price: decimal.NewFromInt(50),
			Count: c,
		})
	}
	return in
}

func (m purchaseMocks) eventExists(id string) {
	m.events.EXPECT().GetByID(mock.Anything, id).Return(&domain.Event{ID: id}, nil)
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Purchase) { p.IssueTickets() }).
		Return(nil)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeSuccess, 3).Return()
	m.publisher.EXPECT().PublishPurchaseCreated(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(2, 1))

	require.NoError(t, err)
	assert.Equal(t, 3, p.TicketCount)
	assert.Len(t, p.Tickets, 3)
	assert.Equal(t, domain.PurchaseStatusPending, p.Status)
	assert.Equal(t, domain.DefaultCurrency, p.Currency)
	for _, tk := range p.Tickets {
		assert.Equal(t, p.ID, tk.PurchaseID)
		assert.Equal(t, "u1", tk.UserID)
		assert.Equal(t, "e1", tk.EventID)
	}
}

func TestPurchaseService_Purchase_NoTicketsBeforeRepo(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Purchase) {
			assert.Nil(t, p.Tickets)
			assert.Equal(t, 2_000_000_000, p.TicketCount)
		}).
		Return(domain.ErrInsufficientInventory)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeSoldOut, 2_000_000_000).Return()

	_, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(2_000_000_000))

	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestPurchaseService_Purchase_NotAuthenticated(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeInvalid, 0).Return()

	_, err := svc.Purchase(context.Background(), "", "e1", generalItems(1))

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestPurchaseService_Purchase_ValidationError(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeInvalid, 0).Return()

	_, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(0))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPurchaseService_Purchase_SoldOut(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInsufficientInventory)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeSoldOut, 8).Return()

	_, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(8))

	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	m.publisher.AssertNotCalled(t, "PublishPurchaseCreated", mock.Anything, mock.Anything)
}

func TestPurchaseService_Purchase_EventNotFound(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeNotFound, 0).Return()

	_, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(1))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPurchaseService_Purchase_EventNotFoundBeforeValidation(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeNotFound, 0).Return()

	_, err := svc.Purchase(context.Background(), "u1", "missing", generalItems(0))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestPurchaseService_Purchase_EventDeletedMidway(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEventNotFound)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeNotFound, 1).Return()

	_, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(1))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPurchaseService_Purchase_PublishErrorIgnored(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeSuccess, 1).Return()
	m.publisher.EXPECT().PublishPurchaseCreated(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	p, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(1))

	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPurchaseService_GetByID_OtherOwner(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Purchase{ID: "p1", UserID: "u2"}, nil)

	_, err := svc.GetByID(context.Background(), "u1", "p1")

	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestPurchaseService_GetByID_Owner(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Purchase{ID: "p1", UserID: "u1"}, nil)

	p, err := svc.GetByID(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestPurchaseService_Complete_NotPending(t *testing.T) {
	svc, m := newPurchaseService(t, 0)

	m.repo.EXPECT().Complete(mock.Anything, "p1", "u1", "ref-1").Return(nil, domain.ErrPurchaseNotPending)

	_, err := svc.Complete(context.Background(), "u1", "p1", "ref-1")

	assert.ErrorIs(t, err, domain.ErrPurchaseNotPending)
}

func TestPurchaseService_ExpirePending_Disabled(t *testing.T) {
	svc, _ := newPurchaseService(t, 0)

	expired, err := svc.ExpirePending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestPurchaseService_DefaultStatusSurvivesDefaultTTL(t *testing.T) {
	var cfg config.PurchaseConfig
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	svc, m := newPurchaseService(t, cfg.PendingTTL)
	m.eventExists("e1")
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.metrics.EXPECT().PurchaseProcessed(metrics.OutcomeSuccess, 1).Return()
	m.publisher.EXPECT().PublishPurchaseCreated(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Purchase(context.Background(), "u1", "e1", generalItems(1))
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusPending, p.Status)

	svc.now = func() time.Time { return p.CreatedAt.Add(24 * time.Hour) }
	expired, err := svc.ExpirePending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, expired)
	m.repo.AssertNotCalled(t, "FailExpired", mock.Anything, mock.Anything)
}

func TestPurchaseService_ExpirePending_PublishesFailed(t *testing.T) {
	svc, m := newPurchaseService(t, 30*time.Minute)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	failed := []*domain.Purchase{
		{ID: "p1", UserID: "u1", EventID: "e1", TicketCount: 2},
		{ID: "p2", UserID: "u2", EventID: "e1", TicketCount: 1},
	}
	m.repo.EXPECT().FailExpired(mock.Anything, now.Add(-30*time.Minute)).Return(failed, nil)
	m.metrics.EXPECT().PurchasesExpired(2).Return()
	m.publisher.EXPECT().PublishPurchaseFailed(mock.Anything, failed[0]).Return(nil)
	m.publisher.EXPECT().PublishPurchaseFailed(mock.Anything, failed[1]).Return(errors.New("redis down"))

	got, err := svc.ExpirePending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, failed, got)
}

func TestPurchaseService_ExpirePending_RepoError(t *testing.T) {
	svc, m := newPurchaseService(t, time.Minute)

	m.repo.EXPECT().FailExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpirePending(context.Background())

	assert.Error(t, err)
}
