package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookline/internal/domain"
)

type MockReservationSource struct {
	mock.Mock
}

func (m *MockReservationSource) DueForReminder(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationSource) MarkReminderSent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStoreSource struct {
	mock.Mock
}

func (m *MockStoreSource) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReminder(ctx context.Context, r domain.Reservation, store domain.Store) error {
	args := m.Called(ctx, r, store)
	return args.Error(0)
}

func dueReservation(id string) domain.Reservation {
	start := time.Now().Add(20 * time.Hour)
	return domain.Reservation{
		ID:            id,
		StoreID:       "store-1",
		ServiceName:   "Haircut",
		CustomerName:  "Maya Patel",
		CustomerEmail: "maya@example.com",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		Status:        domain.ReservationConfirmed,
	}
}

func TestService_Sweep_SendsOnceAndMarks(t *testing.T) {
	mockReservations := new(MockReservationSource)
	mockStores := new(MockStoreSource)
	mockMailer := new(MockMailer)

	store := &domain.Store{ID: "store-1", Name: "Shear Genius", Phone: "+44 20 7946 0102"}
	res := dueReservation("res-1")

	mockReservations.On("DueForReminder", mock.Anything, mock.Anything, mock.Anything, 50).
		Return([]domain.Reservation{res}, nil).Once()
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockMailer.On("SendReminder", mock.Anything, res, *store).Return(nil).Once()
	mockReservations.On("MarkReminderSent", mock.Anything, "res-1").Return(nil).Once()

	// second pass: the flag is part of the selection, nothing comes back
	mockReservations.On("DueForReminder", mock.Anything, mock.Anything, mock.Anything, 50).
		Return([]domain.Reservation{}, nil).Once()

	service := NewService(mockReservations, mockStores, mockMailer, 24*time.Hour, 50)

	sent, err := service.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = service.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, sent)

	mockMailer.AssertNumberOfCalls(t, "SendReminder", 1)
}

func TestService_Sweep_MarksBeforeNextItem(t *testing.T) {
	mockReservations := new(MockReservationSource)
	mockStores := new(MockStoreSource)
	mockMailer := new(MockMailer)

	store := &domain.Store{ID: "store-1", Name: "Shear Genius"}
	first := dueReservation("res-1")
	second := dueReservation("res-2")

	mockReservations.On("DueForReminder", mock.Anything, mock.Anything, mock.Anything, 50).
		Return([]domain.Reservation{first, second}, nil)
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)

	mockMailer.On("SendReminder", mock.Anything, first, *store).Return(nil)
	mockReservations.On("MarkReminderSent", mock.Anything, "res-1").Return(nil)
	mockMailer.On("SendReminder", mock.Anything, second, *store).Run(func(args mock.Arguments) {
		// by the time the second send happens, the first is already marked
		mockReservations.AssertCalled(t, "MarkReminderSent", mock.Anything, "res-1")
	}).Return(nil)
	mockReservations.On("MarkReminderSent", mock.Anything, "res-2").Return(nil)

	service := NewService(mockReservations, mockStores, mockMailer, 24*time.Hour, 50)

	sent, err := service.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestService_Sweep_StoreGoneSkipsItem(t *testing.T) {
	mockReservations := new(MockReservationSource)
	mockStores := new(MockStoreSource)
	mockMailer := new(MockMailer)

	orphan := dueReservation("res-orphan")
	orphan.StoreID = "gone"
	ok := dueReservation("res-ok")
	store := &domain.Store{ID: "store-1", Name: "Shear Genius"}

	mockReservations.On("DueForReminder", mock.Anything, mock.Anything, mock.Anything, 50).
		Return([]domain.Reservation{orphan, ok}, nil)
	mockStores.On("GetStore", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockMailer.On("SendReminder", mock.Anything, ok, *store).Return(nil)
	mockReservations.On("MarkReminderSent", mock.Anything, "res-ok").Return(nil)

	service := NewService(mockReservations, mockStores, mockMailer, 24*time.Hour, 50)

	sent, err := service.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	mockMailer.AssertNumberOfCalls(t, "SendReminder", 1)
	mockReservations.AssertNotCalled(t, "MarkReminderSent", mock.Anything, "res-orphan")
}

func TestService_Sweep_DispatchFailureContinuesBatch(t *testing.T) {
	mockReservations := new(MockReservationSource)
	mockStores := new(MockStoreSource)
	mockMailer := new(MockMailer)

	store := &domain.Store{ID: "store-1", Name: "Shear Genius"}
	failing := dueReservation("res-fail")
	working := dueReservation("res-ok")

	mockReservations.On("DueForReminder", mock.Anything, mock.Anything, mock.Anything, 50).
		Return([]domain.Reservation{failing, working}, nil)
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockMailer.On("SendReminder", mock.Anything, failing, *store).Return(errors.New("smtp timeout"))
	mockMailer.On("SendReminder", mock.Anything, working, *store).Return(nil)
	mockReservations.On("MarkReminderSent", mock.Anything, "res-ok").Return(nil)

	service := NewService(mockReservations, mockStores, mockMailer, 24*time.Hour, 50)

	sent, err := service.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	// the failed one keeps its flag unset so the next pass retries it
	mockReservations.AssertNotCalled(t, "MarkReminderSent", mock.Anything, "res-fail")
}

func TestService_Sweep_SelectionWindow(t *testing.T) {
	mockReservations := new(MockReservationSource)
	mockStores := new(MockStoreSource)
	mockMailer := new(MockMailer)

	fixed := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	mockReservations.On("DueForReminder", mock.Anything, fixed, fixed.Add(24*time.Hour), 50).
		Return([]domain.Reservation{}, nil)

	service := NewService(mockReservations, mockStores, mockMailer, 24*time.Hour, 50)
	service.now = func() time.Time { return fixed }

	sent, err := service.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, sent)
	mockReservations.AssertExpectations(t)
}
