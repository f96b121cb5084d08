package user

import (
	"context"

	"tripway/models"
)

// UserService is the typed client for the user bounded context behind
// the API gateway. Pure request shaping: no retries, no validation; a
// failed call carries the gateway's user-facing message.
type UserService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, input models.RegistrationInput) (*models.AuthResponse, error)
	Revoke(ctx context.Context, token string) error

	GetAllUsers(ctx context.Context, token string) ([]models.User, error)
	GetUserByID(ctx context.Context, token string, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id int64, u models.User) (*models.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error

	GetProfile(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.User, error)

	GetPendingApprovals(ctx context.Context, token string) ([]models.User, error)
	ApproveUser(ctx context.Context, token string, id int64) error
	RejectUser(ctx context.Context, token string, id int64) error
	CountByRole(ctx context.Context, token string, role string) (int, error)
}
