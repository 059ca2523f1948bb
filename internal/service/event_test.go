package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:        "Concert",
		Date:         time.Now().Add(24 * time.Hour),
		TotalTickets: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, "Concert", event.Title)
	assert.Equal(t, 100, event.GeneralTickets)
	assert.Zero(t, event.SoldTickets)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_CreateEvent_ValidationError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:        "",
		Date:         time.Now().Add(-time.Hour),
		TotalTickets: -1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:        "Concert",
		Date:         time.Now().Add(time.Hour),
		TotalTickets: 10,
	})

	assert.Error(t, err)
}

func TestEventService_ListNearby_InvalidQuery(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	_, err := svc.ListNearby(context.Background(), domain.NearbyQuery{
		Center:   domain.GeoPoint{Longitude: 200, Latitude: 0},
		RadiusKm: 10,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_ListNearby(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	q := domain.NearbyQuery{Center: domain.GeoPoint{Longitude: 37.6, Latitude: 55.7}, RadiusKm: 5}
	events := []*domain.Event{{ID: "e1"}}
	repo.EXPECT().ListNearby(mock.Anything, q).Return(events, nil)

	got, err := svc.ListNearby(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetByID(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetByID(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
