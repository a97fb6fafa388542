package seed

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"hotel/internal/database/dbtest"
	"hotel/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fixturePath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "seed", "hotel.yaml")
}

func TestApply_DemoFixture(t *testing.T) {
	f, err := LoadFile(fixturePath(t))
	require.NoError(t, err)

	db := dbtest.Open(t)
	ctx := context.Background()
	require.NoError(t, Apply(ctx, db, f, bcrypt.MinCost, zerolog.Nop()))
	// re-applying replaces rather than duplicates
	require.NoError(t, Apply(ctx, db, f, bcrypt.MinCost, zerolog.Nop()))

	var cnt int64
	require.NoError(t, db.Model(&domain.Room{}).Count(&cnt).Error)
	assert.Equal(t, int64(len(f.Rooms)), cnt)
	require.NoError(t, db.Model(&domain.Item{}).Count(&cnt).Error)
	assert.Equal(t, int64(6), cnt)

	var alice domain.User
	require.NoError(t, db.Preload("Document").Where("email = ?", "alice@hotel.kz").First(&alice).Error)
	assert.Equal(t, domain.RoleClient, alice.Role)
	assert.Equal(t, 10.0, alice.Discount)
	require.NotNil(t, alice.Document)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("client123")))

	var b domain.Booking
	require.NoError(t, db.Where("guest_id = ?", alice.ID).First(&b).Error)
	assert.Equal(t, 480.0, b.TotalCost)

	var inactive domain.Service
	require.NoError(t, db.Where("name = ?", "Late checkout").First(&inactive).Error)
	assert.False(t, inactive.IsActive)
}

func TestApply_RejectsBadReferences(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	err := Apply(ctx, db, &Fixture{Rooms: []Room{{Key: "1", Category: "Missing", BedCount: 1, RoomCount: 1}}}, bcrypt.MinCost, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown category")

	err = Apply(ctx, db, &Fixture{Users: []User{{Email: "x@hotel.kz", Password: "p", Role: "owner"}}}, bcrypt.MinCost, zerolog.Nop())
	assert.ErrorContains(t, err, "invalid role")

	err = Apply(ctx, db, &Fixture{Users: []User{{Email: "x@hotel.kz", Password: "p", Role: "client", Discount: 120}}}, bcrypt.MinCost, zerolog.Nop())
	assert.ErrorContains(t, err, "out of range")

	err = Apply(ctx, db, &Fixture{Bookings: []Booking{{Guest: "ghost@hotel.kz", Room: "1"}}}, bcrypt.MinCost, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown guest")
}
