package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"expo-ticketing/internal/booking/db"
	"expo-ticketing/internal/models"
)

func setupTestDB(t *testing.T) *db.DB {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if err := bunDB.ResetModel(context.Background(), (*models.Booking)(nil)); err != nil {
		t.Fatalf("Failed to reset bookings table: %v", err)
	}
	return &db.DB{Bun: bunDB}
}

func ticketBooking(ref, email string, createdAt time.Time) models.Booking {
	return models.Booking{
		Ref:             ref,
		Flow:            models.FlowTicket,
		ExhibitionID:    "ex1",
		ExhibitionTitle: "Tech Horizons",
		ItemID:          "day",
		ItemName:        "Day Pass",
		Quantity:        2,
		VisitDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Name:            "Asha Rao",
		Email:           email,
		Phone:           "9876543210",
		Subtotal:        998,
		ConvenienceFee:  20,
		Tax:             4,
		Total:           1022,
		PaymentMethod:   "upi",
		TransactionID:   "txn_test_1",
		CreatedAt:       createdAt,
	}
}

func TestCreateAndGetBooking(t *testing.T) {
	store := setupTestDB(t)

	booking := ticketBooking("ETX0000AAAA", "asha@example.com", time.Now())
	assert.NoError(t, store.CreateBooking(booking))

	got, err := store.GetBookingByRef("ETX0000AAAA")
	assert.NoError(t, err)
	assert.Equal(t, booking.Ref, got.Ref)
	assert.Equal(t, booking.ExhibitionTitle, got.ExhibitionTitle)
	assert.Equal(t, booking.Quantity, got.Quantity)
	assert.Equal(t, booking.Total, got.Total)
	assert.Equal(t, booking.Email, got.Email)
}

func TestStallBooking_AddonsRoundtrip(t *testing.T) {
	store := setupTestDB(t)

	booking := models.Booking{
		Ref:             "STL0000BBBB",
		Flow:            models.FlowStall,
		ExhibitionID:    "ex1",
		ExhibitionTitle: "Tech Horizons",
		ItemID:          "basic",
		ItemName:        "Basic Stall",
		AddonIDs:        []string{"wifi", "display"},
		Name:            "Vikram Shah",
		Email:           "vikram@horizonwidgets.in",
		Phone:           "02240001234",
		CompanyName:     "Horizon Widgets Pvt Ltd",
		GSTNumber:       "27AAACH7409R1ZX",
		Subtotal:        25500,
		Tax:             4590,
		Total:           30090,
		PaymentMethod:   "netbanking",
		CreatedAt:       time.Now(),
	}
	assert.NoError(t, store.CreateBooking(booking))

	got, err := store.GetBookingByRef("STL0000BBBB")
	assert.NoError(t, err)
	assert.Equal(t, []string{"wifi", "display"}, got.AddonIDs)
	assert.Equal(t, "Horizon Widgets Pvt Ltd", got.CompanyName)
	assert.Equal(t, 30090.0, got.Total)
}

func TestGetBookingByRef_NotFound(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.GetBookingByRef("ETXMISSING1")
	var nferr *models.NotFoundError
	assert.True(t, errors.As(err, &nferr))
	assert.Equal(t, "booking", nferr.Resource)
}

func TestListBookingsByEmail_NewestFirst(t *testing.T) {
	store := setupTestDB(t)

	base := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, store.CreateBooking(ticketBooking("ETX0000CCC1", "asha@example.com", base)))
	assert.NoError(t, store.CreateBooking(ticketBooking("ETX0000CCC2", "asha@example.com", base.Add(time.Hour))))
	assert.NoError(t, store.CreateBooking(ticketBooking("ETX0000CCC3", "other@example.com", base.Add(2*time.Hour))))

	bookings, err := store.ListBookingsByEmail("asha@example.com")
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "ETX0000CCC2", bookings[0].Ref)
	assert.Equal(t, "ETX0000CCC1", bookings[1].Ref)
}

func TestListBookingsByEmail_EmptyIsNotNil(t *testing.T) {
	store := setupTestDB(t)

	bookings, err := store.ListBookingsByEmail("nobody@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}
