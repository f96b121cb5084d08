package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// DefaultUserService implements UserService over the API gateway.
type DefaultUserService struct {
	Gateway gateway.Caller
}

func (s *DefaultUserService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	res := s.Gateway.Do(ctx, "/api/auth/login", gateway.Options{
		Method: http.MethodPost,
		Data:   creds,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var auth models.AuthResponse
	if err := res.Decode(&auth); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	return &auth, nil
}

func (s *DefaultUserService) Register(ctx context.Context, input models.RegistrationInput) (*models.AuthResponse, error) {
	res := s.Gateway.Do(ctx, "/api/auth/register", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var auth models.AuthResponse
	if err := res.Decode(&auth); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	return &auth, nil
}

// Revoke invalidates the gateway token server-side. Callers treat it
// as best-effort.
func (s *DefaultUserService) Revoke(ctx context.Context, token string) error {
	res := s.Gateway.Do(ctx, "/api/auth/logout", gateway.Options{
		Method: http.MethodPost,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context, token string) ([]models.User, error) {
	res := s.Gateway.Do(ctx, "/api/users", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var users []models.User
	if err := res.Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, token string, id int64) (*models.User, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/users/%d", id), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var u models.User
	if err := res.Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &u, nil
}

func (s *DefaultUserService) UpdateUser(ctx context.Context, token string, id int64, u models.User) (*models.User, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/users/%d", id), gateway.Options{
		Method: http.MethodPut,
		Data:   u,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var updated models.User
	if err := res.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &updated, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/users/%d", id), gateway.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultUserService) GetProfile(ctx context.Context, token string) (*models.User, error) {
	res := s.Gateway.Do(ctx, "/api/users/profile", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var u models.User
	if err := res.Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.User, error) {
	res := s.Gateway.Do(ctx, "/api/users/profile", gateway.Options{
		Method: http.MethodPut,
		Data:   update,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var u models.User
	if err := res.Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &u, nil
}

func (s *DefaultUserService) GetPendingApprovals(ctx context.Context, token string) ([]models.User, error) {
	res := s.Gateway.Do(ctx, "/api/users/pending-approvals", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var users []models.User
	if err := res.Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to parse pending approvals: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) ApproveUser(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/users/%d/approve", id), gateway.Options{
		Method: http.MethodPut,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultUserService) RejectUser(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/users/%d/reject", id), gateway.Options{
		Method: http.MethodPut,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func (s *DefaultUserService) CountByRole(ctx context.Context, token string, role string) (int, error) {
	res := s.Gateway.Do(ctx, "/api/users/count/"+role, gateway.Options{Token: token})
	if !res.Success {
		return 0, errors.New(res.Error)
	}
	// Some generations answer a bare number, others wrap it.
	var count int
	if err := res.Decode(&count); err == nil {
		return count, nil
	}
	var wrapped struct {
		Count int `json:"count"`
	}
	if err := res.Decode(&wrapped); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return wrapped.Count, nil
}
