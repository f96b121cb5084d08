// File: tripway/services/session/session.go
package session

import (
	"context"
	"fmt"
	"time"

	"tripway/models"
	"tripway/services/user"
	"tripway/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthOutcome is what login and register resolve to. On failure the
// message is user-facing and session state is untouched.
type AuthOutcome struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message,omitempty"`
	PendingApproval bool            `json:"pendingApproval,omitempty"`
	Session         *models.Session `json:"-"`
	SessionToken    string          `json:"-"`
	User            *models.User    `json:"user,omitempty"`
}

// SessionService owns the authentication lifecycle: Anonymous →
// Authenticating → Authenticated → Anonymous, with agents awaiting
// approval authenticated-but-gated.
type SessionService interface {
	Login(ctx context.Context, creds models.Credentials) AuthOutcome
	Register(ctx context.Context, input models.RegistrationInput) AuthOutcome
	Logout(ctx context.Context, sessionID string)
	Current(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateUser(ctx context.Context, sessionID string, updated models.User) (*models.Session, error)
	RefreshUserData(ctx context.Context, sessionID string) (*models.Session, error)
	InvalidateFromContext(ctx context.Context)
}

// DefaultSessionService implements SessionService on a Store and the
// user-service client.
type DefaultSessionService struct {
	Users  user.UserService
	Store  Store
	TTL    time.Duration
	Logger *zap.Logger
}

// Login authenticates against the user-service and, on success, creates
// the session record and its signed token. A rejection leaves no trace.
func (s *DefaultSessionService) Login(ctx context.Context, creds models.Credentials) AuthOutcome {
	auth, err := s.Users.Login(ctx, creds)
	if err != nil {
		return AuthOutcome{Success: false, Message: err.Error()}
	}
	if auth.Token == "" {
		return AuthOutcome{Success: false, Message: "Invalid email or password"}
	}
	return s.establish(ctx, auth)
}

// Register signs a new account up. Customers with a token in the
// response are auto-authenticated; agents are never auto-authenticated —
// their account waits for admin approval and the caller shows a
// pending-approval notice instead of a dashboard.
func (s *DefaultSessionService) Register(ctx context.Context, input models.RegistrationInput) AuthOutcome {
	auth, err := s.Users.Register(ctx, input)
	if err != nil {
		return AuthOutcome{Success: false, Message: err.Error()}
	}

	if input.Role == models.RoleAgent || auth.Token == "" {
		msg := auth.Message
		if msg == "" {
			msg = "Registration successful"
		}
		u := auth.User
		return AuthOutcome{
			Success:         true,
			Message:         msg,
			PendingApproval: input.Role == models.RoleAgent,
			User:            &u,
		}
	}

	return s.establish(ctx, auth)
}

func (s *DefaultSessionService) establish(ctx context.Context, auth *models.AuthResponse) AuthOutcome {
	sess := models.Session{
		SessionID: uuid.New().String(),
		User:      auth.User,
		AuthToken: auth.Token,
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		s.Logger.Error("session: failed to persist session", zap.Error(err))
		return AuthOutcome{Success: false, Message: "Sign in failed. Please try again."}
	}
	token, err := utils.GenerateSessionToken(sess.SessionID, sess.User.Email, s.TTL)
	if err != nil {
		s.Logger.Error("session: failed to sign session token", zap.Error(err))
		return AuthOutcome{Success: false, Message: "Sign in failed. Please try again."}
	}
	u := sess.User
	return AuthOutcome{
		Success:      true,
		Message:      auth.Message,
		Session:      &sess,
		SessionToken: token,
		User:         &u,
	}
}

// Logout clears the session unconditionally. The remote revoke is
// best-effort: sign-out must never fail visibly.
func (s *DefaultSessionService) Logout(ctx context.Context, sessionID string) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err == nil && sess.AuthToken != "" {
		if err := s.Users.Revoke(ctx, sess.AuthToken); err != nil {
			s.Logger.Debug("session: remote revoke failed", zap.Error(err))
		}
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("session: failed to delete session", zap.Error(err))
	}
}

// Current loads the session for an ID.
func (s *DefaultSessionService) Current(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateUser merges fresh user data into the session, always keeping
// the existing gateway token (profile responses carry none).
func (s *DefaultSessionService) UpdateUser(ctx context.Context, sessionID string, updated models.User) (*models.Session, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.User = updated
	if err := s.Store.Save(ctx, *sess); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return sess, nil
}

// RefreshUserData pulls the caller's profile from the user-service and
// merges it into the session, preserving the token.
func (s *DefaultSessionService) RefreshUserData(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fresh, err := s.Users.GetProfile(ctx, sess.AuthToken)
	if err != nil {
		return nil, err
	}
	sess.User = *fresh
	if err := s.Store.Save(ctx, *sess); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return sess, nil
}

// InvalidateFromContext is wired as the gateway's unauthorized hook: a
// 401 from any non-auth endpoint destroys the calling session.
func (s *DefaultSessionService) InvalidateFromContext(ctx context.Context) {
	sid, ok := SessionIDFromContext(ctx)
	if !ok {
		return
	}
	if err := s.Store.Delete(ctx, sid); err != nil {
		s.Logger.Warn("session: failed to invalidate session", zap.Error(err))
		return
	}
	s.Logger.Info("session: invalidated after 401", zap.String("sessionId", sid))
}
