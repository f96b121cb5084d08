package bookingsvc

import (
	"context"

	"tripway/models"
)

// BookingService is the typed client for the booking bounded context.
// The with-details and dashboard variants request server-side joins so
// callers never aggregate per row.
type BookingService interface {
	GetAllBookings(ctx context.Context, token string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, token string, id int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, token string, input models.BookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, token string, id int64, input models.BookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error

	ConfirmBooking(ctx context.Context, token string, id int64) error
	CancelBooking(ctx context.Context, token string, id int64) error

	GetUserBookingsWithDetails(ctx context.Context, token string, userID int64) ([]models.BookingWithDetails, error)
	GetAgentDashboard(ctx context.Context, token string, agentID int64) (*models.AgentDashboard, error)
}
