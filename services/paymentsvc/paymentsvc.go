package paymentsvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// DefaultPaymentService implements PaymentService over the API gateway.
type DefaultPaymentService struct {
	Gateway gateway.Caller
}

func (s *DefaultPaymentService) GetAllPayments(ctx context.Context, token string) ([]models.Payment, error) {
	res := s.Gateway.Do(ctx, "/api/payments", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var payments []models.Payment
	if err := res.Decode(&payments); err != nil {
		return nil, fmt.Errorf("failed to parse payments: %w", err)
	}
	return payments, nil
}

func (s *DefaultPaymentService) GetPaymentsByUser(ctx context.Context, token string, userID int64) ([]models.Payment, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/payments/user/%d", userID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var payments []models.Payment
	if err := res.Decode(&payments); err != nil {
		return nil, fmt.Errorf("failed to parse payments: %w", err)
	}
	return payments, nil
}

func (s *DefaultPaymentService) ProcessPayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error) {
	res := s.Gateway.Do(ctx, "/api/payments/process", gateway.Options{
		Method: http.MethodPost,
		Data:   req,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var p models.Payment
	if err := res.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse payment: %w", err)
	}
	return &p, nil
}

func (s *DefaultPaymentService) RefundPayment(ctx context.Context, token string, paymentID int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/payments/%d/refund", paymentID), gateway.Options{
		Method: http.MethodPut,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}
