package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"expo-ticketing/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// Init creates the bookings table if it doesn't exist.
func (d *DB) Init(ctx context.Context) error {
	_, err := d.Bun.NewCreateTable().
		Model((*models.Booking)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// CreateBooking inserts a confirmed booking.
func (d *DB) CreateBooking(booking models.Booking) error {
	_, err := d.Bun.NewInsert().Model(&booking).Exec(context.Background())
	return err
}

// GetBookingByRef fetches one booking by its reference.
func (d *DB) GetBookingByRef(ref string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("ref = ?", ref).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("booking", ref)
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookingsByEmail fetches all bookings for an email, newest first.
func (d *DB) ListBookingsByEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("email = ?", email).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
