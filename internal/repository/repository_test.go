package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel/internal/database/dbtest"
	"hotel/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	users     *UserRepository
	rooms     *RoomRepository
	cats      *CategoryRepository
	services  *ServiceRepository
	bookings  *BookingRepository
	provision *ProvisionRepository

	guest *domain.User
	room  *domain.Room
	spa   *domain.Service
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	f := &fixture{
		db:        db,
		users:     NewUserRepository(db),
		rooms:     NewRoomRepository(db),
		cats:      NewCategoryRepository(db),
		services:  NewServiceRepository(db),
		bookings:  NewBookingRepository(db),
		provision: NewProvisionRepository(db),
	}
	ctx := context.Background()

	f.guest = &domain.User{Email: "Alice@Hotel.kz", PasswordHash: "x", Role: domain.RoleClient, FullName: "Alice", Discount: 10, IsActive: true}
	require.NoError(t, f.users.Create(ctx, f.guest))

	cat := &domain.Category{Name: "Standard", Price: 50}
	require.NoError(t, f.cats.Create(ctx, cat))
	f.room = &domain.Room{CategoryID: cat.ID, Floor: 2, RoomCount: 1, BedCount: 2}
	require.NoError(t, f.rooms.Create(ctx, f.room))

	f.spa = &domain.Service{Name: "Spa", Cost: 100, IsActive: true}
	require.NoError(t, f.services.Create(ctx, f.spa))
	return f
}

func (f *fixture) book(t *testing.T, in, out string) *domain.Booking {
	t.Helper()
	b := &domain.Booking{GuestID: f.guest.ID, RoomID: f.room.ID, CheckInDate: date(t, in), CheckOutDate: date(t, out), TotalCost: 200}
	require.NoError(t, f.bookings.Create(context.Background(), b))
	return b
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("EmailIsNormalised", func(t *testing.T) {
		got, err := f.users.GetByEmail(ctx, "  ALICE@hotel.kz ")
		require.NoError(t, err)
		assert.Equal(t, f.guest.ID, got.ID)
		assert.Equal(t, "alice@hotel.kz", got.Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := f.users.Create(ctx, &domain.User{Email: "alice@hotel.kz", PasswordHash: "y", Role: domain.RoleClient})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("GetByIDAndRole", func(t *testing.T) {
		_, err := f.users.GetByIDAndRole(ctx, f.guest.ID, domain.RoleClient)
		require.NoError(t, err)
		_, err = f.users.GetByIDAndRole(ctx, f.guest.ID, domain.RoleManager)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("CountAndList", func(t *testing.T) {
		require.NoError(t, f.users.Create(ctx, &domain.User{Email: "m@hotel.kz", PasswordHash: "x", Role: domain.RoleManager}))
		n, err := f.users.CountByRole(ctx, domain.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		clients, err := f.users.ListByRole(ctx, domain.RoleClient)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Alice", clients[0].FullName)
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		ok, err := f.users.ExistsByEmail(ctx, "ALICE@hotel.kz")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = f.users.ExistsByEmail(ctx, "bob@hotel.kz")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceRepository_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: "Airport transfer", Cost: 30, IsActive: false}))
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: "SPA evening", Cost: 120, IsActive: true}))

	found, err := f.services.List(ctx, "spa")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	all, err := f.services.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := f.services.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	n, err := f.services.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestServiceRepository_SearchLiteralWildcards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: "Room_Service", Cost: 20, IsActive: true}))
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: "RoomXService", Cost: 20, IsActive: true}))
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: "100% Juice", Cost: 5, IsActive: true}))
	require.NoError(t, f.services.Create(ctx, &domain.Service{Name: `Dry\Clean`, Cost: 8, IsActive: true}))

	tests := []struct {
		search string
		want   []string
	}{
		{"room_service", []string{"Room_Service"}},
		{"100% j", []string{"100% Juice"}},
		{"%", []string{"100% Juice"}},
		{"_", []string{"Room_Service"}},
		{`y\c`, []string{`Dry\Clean`}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			found, err := f.services.List(ctx, tt.search)
			require.NoError(t, err)
			var names []string
			for _, s := range found {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRoomRepository_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lux := &domain.Category{Name: "Lux", Price: 150}
	require.NoError(t, f.cats.Create(ctx, lux))
	_, err := f.cats.AddEquipment(ctx, lux.ID, "Minibar")
	require.NoError(t, err)
	require.NoError(t, f.rooms.Create(ctx, &domain.Room{CategoryID: lux.ID, Floor: 5, RoomCount: 3, BedCount: 4}))
	require.NoError(t, f.rooms.Create(ctx, &domain.Room{CategoryID: lux.ID, Floor: 6, RoomCount: 4, BedCount: 6}))

	exact, err := f.rooms.List(ctx, RoomFilters{BedCount: 2})
	require.NoError(t, err)
	assert.Len(t, exact, 1)

	big, err := f.rooms.List(ctx, RoomFilters{MinBedCount: 4})
	require.NoError(t, err)
	require.Len(t, big, 2)
	require.NotNil(t, big[0].Category)
	require.Len(t, big[0].Category.Equipment, 1)
	assert.Equal(t, "Minibar", big[0].Category.Equipment[0].Item.Name)

	byCat, err := f.rooms.List(ctx, RoomFilters{CategoryID: lux.ID})
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	n, err := f.rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestBookingRepository_FindActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("NoBooking", func(t *testing.T) {
		_, err := f.bookings.FindActive(ctx, f.guest.ID, date(t, "2024-06-01"))
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	june := f.book(t, "2024-06-01", "2024-06-05")

	t.Run("CoveringBooking", func(t *testing.T) {
		for _, d := range []string{"2024-06-01", "2024-06-03", "2024-06-05"} {
			got, err := f.bookings.FindActive(ctx, f.guest.ID, date(t, d))
			require.NoError(t, err, d)
			assert.Equal(t, june.ID, got.ID, d)
		}
	})

	t.Run("OutsideStay", func(t *testing.T) {
		_, err := f.bookings.FindActive(ctx, f.guest.ID, date(t, "2024-06-06"))
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("OverlapPrefersEarliestCheckIn", func(t *testing.T) {
		f.book(t, "2024-06-04", "2024-06-10")
		got, err := f.bookings.FindActive(ctx, f.guest.ID, date(t, "2024-06-04"))
		require.NoError(t, err)
		assert.Equal(t, june.ID, got.ID)
	})

	t.Run("CountActive", func(t *testing.T) {
		n, err := f.bookings.CountActive(ctx, date(t, "2024-06-04"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("HasOverlap", func(t *testing.T) {
		ok, err := f.bookings.HasOverlap(ctx, f.guest.ID, date(t, "2024-05-28"), date(t, "2024-06-01"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = f.bookings.HasOverlap(ctx, f.guest.ID, date(t, "2024-07-01"), date(t, "2024-07-03"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBookingRepository_AddPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "2024-06-01", "2024-06-05")

	ok, err := f.bookings.AddPayment(ctx, b.ID, 150)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.bookings.AddPayment(ctx, b.ID, 60)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150, got.PaidAmount, 1e-9)
	require.NotNil(t, got.Room)
	assert.Equal(t, "Standard", got.Room.Category.Name)
}

func TestBookingRepository_AddPaymentExactBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := &domain.Booking{
		GuestID:      f.guest.ID,
		RoomID:       f.room.ID,
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-02"),
		TotalCost:    0.30,
		PaidAmount:   0.10,
	}
	require.NoError(t, f.bookings.Create(ctx, b))

	ok, err := f.bookings.AddPayment(ctx, b.ID, 0.2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, got.PaidAmount, 1e-9)
	assert.InDelta(t, 0, got.Balance(), 1e-9)

	ok, err = f.bookings.AddPayment(ctx, b.ID, 0.01)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProvisionRepository_CreateOrIncrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "2024-06-01", "2024-06-05")

	first := &domain.ServiceProvision{BookingID: b.ID, ServiceID: f.spa.ID, ServiceDate: date(t, "2024-06-02"), Quantity: 1}
	created, err := f.provision.CreateOrIncrement(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	second := &domain.ServiceProvision{BookingID: b.ID, ServiceID: f.spa.ID, ServiceDate: date(t, "2024-06-02").Add(15 * time.Hour), Quantity: 1}
	created, err = f.provision.CreateOrIncrement(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	other := &domain.ServiceProvision{BookingID: b.ID, ServiceID: f.spa.ID, ServiceDate: date(t, "2024-06-03"), Quantity: 3}
	created, err = f.provision.CreateOrIncrement(ctx, other)
	require.NoError(t, err)
	assert.True(t, created)

	rows, err := f.provision.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, "Spa", rows[0].Service.Name)

	got, err := f.provision.Find(ctx, b.ID, f.spa.ID, date(t, "2024-06-03"))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestProvisionRepository_ConcurrentAssignmentsMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "2024-06-01", "2024-06-05")

	const workers = 8
	day := date(t, "2024-06-02")
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &domain.ServiceProvision{BookingID: b.ID, ServiceID: f.spa.ID, ServiceDate: day, Quantity: 1}
			_, err := f.provision.CreateOrIncrement(ctx, p)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := f.provision.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, workers, rows[0].Quantity)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
	assert.False(t, isUniqueViolation(errors.New("database is locked")))
}
