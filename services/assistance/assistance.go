package assistance

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// AssistanceService is the typed client for the assistance bounded context.
type AssistanceService interface {
	GetAllRequests(ctx context.Context, token string) ([]models.AssistanceRequest, error)
	GetUserRequests(ctx context.Context, token string, userID int64) ([]models.AssistanceRequest, error)
	CreateRequest(ctx context.Context, token string, input models.AssistanceInput) (*models.AssistanceRequest, error)
	UpdateStatus(ctx context.Context, token string, requestID int64, status string) error
	ResolveRequest(ctx context.Context, token string, requestID int64, note string) error
}

// DefaultAssistanceService implements AssistanceService over the API gateway.
type DefaultAssistanceService struct {
	Gateway gateway.Caller
}

func (s *DefaultAssistanceService) GetAllRequests(ctx context.Context, token string) ([]models.AssistanceRequest, error) {
	res := s.Gateway.Do(ctx, "/api/assistance", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var requests []models.AssistanceRequest
	if err := res.Decode(&requests); err != nil {
		return nil, fmt.Errorf("failed to parse assistance requests: %w", err)
	}
	return requests, nil
}

func (s *DefaultAssistanceService) GetUserRequests(ctx context.Context, token string, userID int64) ([]models.AssistanceRequest, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/assistance/user/%d", userID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var requests []models.AssistanceRequest
	if err := res.Decode(&requests); err != nil {
		return nil, fmt.Errorf("failed to parse assistance requests: %w", err)
	}
	return requests, nil
}

func (s *DefaultAssistanceService) CreateRequest(ctx context.Context, token string, input models.AssistanceInput) (*models.AssistanceRequest, error) {
	res := s.Gateway.Do(ctx, "/api/assistance", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var req models.AssistanceRequest
	if err := res.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse assistance request: %w", err)
	}
	return &req, nil
}

func (s *DefaultAssistanceService) UpdateStatus(ctx context.Context, token string, requestID int64, status string) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/assistance/%d/status", requestID), gateway.Options{
		Method: http.MethodPut,
		Data:   map[string]string{"status": status},
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultAssistanceService) ResolveRequest(ctx context.Context, token string, requestID int64, note string) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/assistance/%d/resolve", requestID), gateway.Options{
		Method: http.MethodPut,
		Data:   map[string]string{"resolutionNote": note},
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}
