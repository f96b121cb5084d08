package bookingsvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// DefaultBookingService implements BookingService over the API gateway.
type DefaultBookingService struct {
	Gateway gateway.Caller
}

func (s *DefaultBookingService) GetAllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	res := s.Gateway.Do(ctx, "/api/bookings", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var bookings []models.Booking
	if err := res.Decode(&bookings); err != nil {
		return nil, fmt.Errorf("failed to parse bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBookingByID(ctx context.Context, token string, id int64) (*models.Booking, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/%d", id), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var b models.Booking
	if err := res.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}
	return &b, nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, token string, input models.BookingInput) (*models.Booking, error) {
	res := s.Gateway.Do(ctx, "/api/bookings", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var b models.Booking
	if err := res.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}
	return &b, nil
}

func (s *DefaultBookingService) UpdateBooking(ctx context.Context, token string, id int64, input models.BookingInput) (*models.Booking, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/%d", id), gateway.Options{
		Method: http.MethodPut,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var b models.Booking
	if err := res.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}
	return &b, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/%d", id), gateway.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/%d/confirm", id), gateway.Options{
		Method: http.MethodPut,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/%d/cancel", id), gateway.Options{
		Method: http.MethodPut,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultBookingService) GetUserBookingsWithDetails(ctx context.Context, token string, userID int64) ([]models.BookingWithDetails, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/user/%d/with-details", userID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var details []models.BookingWithDetails
	if err := res.Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to parse booking details: %w", err)
	}
	return details, nil
}

func (s *DefaultBookingService) GetAgentDashboard(ctx context.Context, token string, agentID int64) (*models.AgentDashboard, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/bookings/agent/%d/dashboard", agentID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var dash models.AgentDashboard
	if err := res.Decode(&dash); err != nil {
		return nil, fmt.Errorf("failed to parse agent dashboard: %w", err)
	}
	return &dash, nil
}
