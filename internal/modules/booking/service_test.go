package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActive(ctx context.Context, guestID int64, onDate time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, guestID, onDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, guestID int64, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, guestID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) AddPayment(ctx context.Context, bookingID int64, amount float64) (bool, error) {
	args := m.Called(ctx, bookingID, amount)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByIDAndRole(ctx context.Context, id int64, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService() (*Service, *MockBookingRepository, *MockUserRepository, *MockRoomRepository) {
	bookings := new(MockBookingRepository)
	users := new(MockUserRepository)
	rooms := new(MockRoomRepository)
	return NewService(bookings, users, rooms), bookings, users, rooms
}

func TestService_FindActiveBooking(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	ctx := context.Background()
	day := mustDate(t, "2024-05-03")
	want := &domain.Booking{ID: 1, GuestID: 5}

	bookings.On("FindActive", ctx, int64(5), day).Return(want, nil)

	got, err := svc.FindActiveBooking(ctx, 5, day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Same(t, want, got)
	bookings.AssertExpectations(t)
}

func TestService_FindActiveBooking_NotFoundIsDistinct(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	ctx := context.Background()
	day := mustDate(t, "2024-06-01")
	dbErr := errors.New("connection reset")

	bookings.On("FindActive", ctx, int64(5), day).Return(nil, gorm.ErrRecordNotFound).Once()
	bookings.On("FindActive", ctx, int64(6), day).Return(nil, dbErr).Once()

	_, err := svc.FindActiveBooking(ctx, 5, day)
	assert.ErrorIs(t, err, ErrNoActiveBooking)

	_, err = svc.FindActiveBooking(ctx, 6, day)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNoActiveBooking)
}

func TestService_FindActiveBooking_Validation(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	_, err := svc.FindActiveBooking(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.FindActiveBooking(context.Background(), 1, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ActiveBooking_DefaultsToToday(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	today := mustDate(t, "2024-05-02")
	svc.today = func() time.Time { return today }

	bookings.On("FindActive", mock.Anything, int64(3), today).Return(&domain.Booking{ID: 4}, nil)

	b, err := svc.ActiveBooking(context.Background(), ActiveBookingQuery{GuestID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), b.ID)

	_, err = svc.ActiveBooking(context.Background(), ActiveBookingQuery{GuestID: 3, Date: "02.05.2024"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_PricesByNights(t *testing.T) {
	svc, bookings, users, rooms := newTestService()
	ctx := context.Background()
	in, out := mustDate(t, "2024-05-01"), mustDate(t, "2024-05-04")

	users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
	rooms.On("GetByID", ctx, int64(2)).Return(&domain.Room{ID: 2, Category: &domain.Category{Price: 49.99}}, nil)
	bookings.On("HasOverlap", ctx, int64(5), in, out).Return(false, nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{
		GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-04", PaidAmount: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, 149.97, b.TotalCost)
	assert.Equal(t, 50.0, b.PaidAmount)
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_SameDayStayChargesOneNight(t *testing.T) {
	svc, bookings, users, rooms := newTestService()
	ctx := context.Background()

	users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
	rooms.On("GetByID", ctx, int64(2)).Return(&domain.Room{ID: 2, Category: &domain.Category{Price: 80}}, nil)
	bookings.On("HasOverlap", ctx, int64(5), mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("Create", ctx, mock.Anything).Return(nil)

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 80.0, b.TotalCost)
}

func TestService_CreateBooking_ExplicitTotal(t *testing.T) {
	svc, bookings, users, rooms := newTestService()
	ctx := context.Background()
	total := 200.0

	users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
	rooms.On("GetByID", ctx, int64(2)).Return(&domain.Room{ID: 2, Category: &domain.Category{Price: 80}}, nil)
	bookings.On("HasOverlap", ctx, int64(5), mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("Create", ctx, mock.Anything).Return(nil)

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{
		GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-05", TotalCost: &total,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, b.TotalCost)
}

func TestService_CreateBooking_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("reversed dates", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-04", CheckOutDate: "2024-05-01"})
		assert.ErrorIs(t, err, ErrValidation)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "tomorrow", CheckOutDate: "2024-05-01"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("guest is not a client", func(t *testing.T) {
		svc, _, users, _ := newTestService()
		users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-02"})
		assert.ErrorIs(t, err, ErrGuestNotFound)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _, users, rooms := newTestService()
		users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
		rooms.On("GetByID", ctx, int64(2)).Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-02"})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("overlapping stay", func(t *testing.T) {
		svc, bookings, users, rooms := newTestService()
		users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
		rooms.On("GetByID", ctx, int64(2)).Return(&domain.Room{ID: 2}, nil)
		bookings.On("HasOverlap", ctx, int64(5), mock.Anything, mock.Anything).Return(true, nil)
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-02"})
		assert.ErrorIs(t, err, ErrOverlap)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("prepaid above total", func(t *testing.T) {
		svc, bookings, users, rooms := newTestService()
		users.On("GetByIDAndRole", ctx, int64(5), domain.RoleClient).Return(&domain.User{ID: 5}, nil)
		rooms.On("GetByID", ctx, int64(2)).Return(&domain.Room{ID: 2, Category: &domain.Category{Price: 10}}, nil)
		bookings.On("HasOverlap", ctx, int64(5), mock.Anything, mock.Anything).Return(false, nil)
		_, err := svc.CreateBooking(ctx, CreateBookingRequest{GuestID: 5, RoomID: 2, CheckInDate: "2024-05-01", CheckOutDate: "2024-05-02", PaidAmount: 11})
		assert.ErrorIs(t, err, ErrOverpayment)
	})
}

func TestService_AddPayment(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(1)).Return(&domain.Booking{ID: 1, TotalCost: 100, PaidAmount: 40}, nil).Once()
	bookings.On("AddPayment", ctx, int64(1), 60.0).Return(true, nil).Once()
	bookings.On("GetByID", ctx, int64(1)).Return(&domain.Booking{ID: 1, TotalCost: 100, PaidAmount: 100}, nil).Once()

	b, err := svc.AddPayment(ctx, 1, 60)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Balance())
	bookings.AssertExpectations(t)
}

func TestService_AddPayment_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		_, err := svc.AddPayment(ctx, 1, 0)
		assert.ErrorIs(t, err, ErrValidation)
		bookings.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		bookings.On("GetByID", ctx, int64(1)).Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.AddPayment(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("overpayment", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		bookings.On("GetByID", ctx, int64(1)).Return(&domain.Booking{ID: 1, TotalCost: 100, PaidAmount: 90}, nil)
		bookings.On("AddPayment", ctx, int64(1), 20.0).Return(false, nil)
		_, err := svc.AddPayment(ctx, 1, 20)
		assert.ErrorIs(t, err, ErrOverpayment)
	})
}
