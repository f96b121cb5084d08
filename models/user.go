package models

import "encoding/json"

// Roles recognized by the platform.
const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

// Agent approval states.
const (
	ApprovalApproved = "approved"
	ApprovalPending  = "pending"
	ApprovalRejected = "rejected"
)

// User is the canonical shape of a platform account.
type User struct {
	UserID         int64  `json:"userId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ContactNumber  string `json:"contactNumber,omitempty"`
	ApprovalStatus string `json:"approvalStatus,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID         flexID `json:"userId"`
		ID             flexID `json:"id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		Role           string `json:"role"`
		ContactNumber  string `json:"contactNumber"`
		Approval       string `json:"approval"`
		ApprovalStatus string `json:"approvalStatus"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.UserID = firstID(raw.UserID, raw.ID)
	u.Name = raw.Name
	u.Email = raw.Email
	u.Role = raw.Role
	u.ContactNumber = raw.ContactNumber
	u.ApprovalStatus = firstNonEmpty(raw.ApprovalStatus, raw.Approval)
	return nil
}

// IsPendingAgent reports whether the account is an agent still awaiting
// admin approval.
func (u User) IsPendingAgent() bool {
	return u.Role == RoleAgent && u.ApprovalStatus == ApprovalPending
}

// AuthResponse is the user-service reply to login and register calls.
type AuthResponse struct {
	Token   string `json:"token"`
	Type    string `json:"type,omitempty"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// RegistrationInput carries a sign-up submission.
type RegistrationInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=customer agent"`
	ContactNumber string `json:"contactNumber"`
}

// Credentials carries a sign-in submission.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate carries the editable fields of the caller's own profile.
type ProfileUpdate struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}
