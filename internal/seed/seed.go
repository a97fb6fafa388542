// Package seed loads demo data from a YAML fixture.
package seed

import (
	"context"
	"fmt"
	"os"

	"hotel/internal/domain"
	"hotel/internal/pricing"
	"hotel/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Fixture struct {
	Categories []Category `yaml:"categories"`
	Rooms      []Room     `yaml:"rooms"`
	Services   []Service  `yaml:"services"`
	Users      []User     `yaml:"users"`
	Bookings   []Booking  `yaml:"bookings"`
}

type Category struct {
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	Description string   `yaml:"description"`
	Equipment   []string `yaml:"equipment"`
}

type Room struct {
	Key       string `yaml:"key"`
	Category  string `yaml:"category"`
	Floor     int    `yaml:"floor"`
	RoomCount int    `yaml:"room_count"`
	BedCount  int    `yaml:"bed_count"`
}

type Service struct {
	Name        string  `yaml:"name"`
	Cost        float64 `yaml:"cost"`
	Description string  `yaml:"description"`
	Active      *bool   `yaml:"active"`
}

type Document struct {
	Series    string `yaml:"series"`
	Number    string `yaml:"number"`
	IssueDate string `yaml:"issue_date"`
	IssuedBy  string `yaml:"issued_by"`
}

type User struct {
	Email       string    `yaml:"email"`
	Password    string    `yaml:"password"`
	Role        string    `yaml:"role"`
	FullName    string    `yaml:"full_name"`
	PhoneNumber string    `yaml:"phone_number"`
	BirthDate   string    `yaml:"birth_date"`
	Discount    float64   `yaml:"discount"`
	Document    *Document `yaml:"document"`
}

type Booking struct {
	Guest        string   `yaml:"guest"`
	Room         string   `yaml:"room"`
	CheckInDate  string   `yaml:"check_in_date"`
	CheckOutDate string   `yaml:"check_out_date"`
	TotalCost    *float64 `yaml:"total_cost"`
	PaidAmount   float64  `yaml:"paid_amount"`
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// wipeOrder lists tables children first so foreign keys never block a delete.
var wipeOrder = []string{
	"service_provisions",
	"bookings",
	"services",
	"equipment",
	"items",
	"rooms",
	"categories",
	"users",
	"documents",
}

// Apply replaces demo tables with the fixture in a single transaction.
// cost is the bcrypt cost used for passwords.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture, cost int, log zerolog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range wipeOrder {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("wipe %s: %w", table, err)
			}
		}

		cats := repository.NewCategoryRepository(tx)
		categories := make(map[string]*domain.Category, len(f.Categories))
		items := make(map[int64]struct{})
		for _, c := range f.Categories {
			cat := &domain.Category{Name: c.Name, Price: c.Price, Description: c.Description}
			if err := cats.Create(ctx, cat); err != nil {
				return fmt.Errorf("category %q: %w", c.Name, err)
			}
			for _, name := range c.Equipment {
				eq, err := cats.AddEquipment(ctx, cat.ID, name)
				if err != nil {
					return fmt.Errorf("equipment %q/%q: %w", c.Name, name, err)
				}
				items[eq.ItemID] = struct{}{}
			}
			categories[c.Name] = cat
		}
		log.Info().Int("categories", len(categories)).Int("items", len(items)).Msg("catalog seeded")

		rooms := make(map[string]*domain.Room, len(f.Rooms))
		for _, r := range f.Rooms {
			cat, ok := categories[r.Category]
			if !ok {
				return fmt.Errorf("room %q: unknown category %q", r.Key, r.Category)
			}
			room := &domain.Room{CategoryID: cat.ID, Floor: r.Floor, RoomCount: r.RoomCount, BedCount: r.BedCount}
			if err := tx.Omit("Category").Create(room).Error; err != nil {
				return fmt.Errorf("room %q: %w", r.Key, err)
			}
			room.Category = cat
			rooms[r.Key] = room
		}

		for _, s := range f.Services {
			active := s.Active == nil || *s.Active
			svc := &domain.Service{Name: s.Name, Cost: s.Cost, Description: s.Description, IsActive: active}
			if err := tx.Create(svc).Error; err != nil {
				return fmt.Errorf("service %q: %w", s.Name, err)
			}
		}
		log.Info().Int("rooms", len(rooms)).Int("services", len(f.Services)).Msg("rooms and services seeded")

		users := make(map[string]*domain.User, len(f.Users))
		for _, u := range f.Users {
			user, err := buildUser(u, cost)
			if err != nil {
				return err
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("user %q: %w", u.Email, err)
			}
			users[user.Email] = user
		}
		log.Info().Int("users", len(users)).Msg("users seeded")

		for i, b := range f.Bookings {
			booking, err := buildBooking(b, users, rooms)
			if err != nil {
				return fmt.Errorf("booking %d: %w", i, err)
			}
			if err := tx.Omit("Guest", "Room").Create(booking).Error; err != nil {
				return fmt.Errorf("booking %d: %w", i, err)
			}
		}
		log.Info().Int("bookings", len(f.Bookings)).Msg("bookings seeded")
		return nil
	})
}

func buildUser(u User, cost int) (*domain.User, error) {
	role := domain.UserRole(u.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("user %q: invalid role %q", u.Email, u.Role)
	}
	if u.Discount < 0 || u.Discount > pricing.MaxDiscount {
		return nil, fmt.Errorf("user %q: discount %v out of range", u.Email, u.Discount)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("user %q: hash password: %w", u.Email, err)
	}

	user := &domain.User{
		Email:        u.Email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     u.FullName,
		Phone:        u.PhoneNumber,
		Discount:     u.Discount,
		IsActive:     true,
		IsStaff:      role == domain.RoleAdmin || role == domain.RoleManager,
	}
	if u.BirthDate != "" {
		d, err := domain.ParseDate(u.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("user %q: birth_date: %w", u.Email, err)
		}
		user.BirthDate = &d
	}
	if u.Document != nil {
		issued, err := domain.ParseDate(u.Document.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("user %q: document issue_date: %w", u.Email, err)
		}
		user.Document = &domain.Document{
			Series:    u.Document.Series,
			Number:    u.Document.Number,
			IssueDate: issued,
			IssuedBy:  u.Document.IssuedBy,
		}
	}
	return user, nil
}

func buildBooking(b Booking, users map[string]*domain.User, rooms map[string]*domain.Room) (*domain.Booking, error) {
	guest, ok := users[b.Guest]
	if !ok {
		return nil, fmt.Errorf("unknown guest %q", b.Guest)
	}
	room, ok := rooms[b.Room]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", b.Room)
	}
	in, err := domain.ParseDate(b.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("check_in_date: %w", err)
	}
	out, err := domain.ParseDate(b.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("check_out_date: %w", err)
	}
	if out.Before(in) {
		return nil, fmt.Errorf("check_out_date before check_in_date")
	}

	booking := &domain.Booking{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  in,
		CheckOutDate: out,
		PaidAmount:   b.PaidAmount,
	}
	if b.TotalCost != nil {
		booking.TotalCost = *b.TotalCost
	} else {
		booking.TotalCost = pricing.Round(room.Category.Price * float64(booking.Nights()))
	}
	if booking.PaidAmount > booking.TotalCost {
		return nil, fmt.Errorf("paid_amount exceeds total_cost")
	}
	return booking, nil
}
