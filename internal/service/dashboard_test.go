package service

import (
	"context"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Get(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	tickets := mocks.NewMockTicketRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewDashboardService(users, tickets, events)

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)
	tickets.EXPECT().ListByUser(mock.Anything, "u1").Return([]domain.Ticket{
		{ID: "t1", EventID: "e1"},
		{ID: "t2", EventID: "e2"},
		{ID: "t3", EventID: "e1"},
	}, nil)
	events.EXPECT().ListByIDs(mock.Anything, []string{"e1", "e2"}).Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	d, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", d.User.Name)
	assert.Len(t, d.Tickets, 3)
	assert.Len(t, d.Events, 2)
}

func TestDashboardService_Get_DeletedEventTickets(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	tickets := mocks.NewMockTicketRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewDashboardService(users, tickets, events)

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	tickets.EXPECT().ListByUser(mock.Anything, "u1").Return([]domain.Ticket{
		{ID: "t1", EventID: ""},
		{ID: "t2", EventID: "e2"},
	}, nil)
	events.EXPECT().ListByIDs(mock.Anything, []string{"e2"}).Return([]*domain.Event{{ID: "e2"}}, nil)

	d, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, d.Tickets, 2)
	assert.Len(t, d.Events, 1)
}

func TestDashboardService_Get_NoTickets(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	tickets := mocks.NewMockTicketRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewDashboardService(users, tickets, events)

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	tickets.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)

	d, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, d.Events)
	events.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestDashboardService_Get_UserGone(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewDashboardService(users, mocks.NewMockTicketRepo(t), mocks.NewMockEventRepo(t))

	users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Get(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
