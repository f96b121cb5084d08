package paymentsvc

import (
	"context"

	"tripway/models"
)

// PaymentService is the typed client for the payment bounded context.
type PaymentService interface {
	GetAllPayments(ctx context.Context, token string) ([]models.Payment, error)
	GetPaymentsByUser(ctx context.Context, token string, userID int64) ([]models.Payment, error)
	ProcessPayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error)
	RefundPayment(ctx context.Context, token string, paymentID int64) error
}
