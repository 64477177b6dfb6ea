package dto

import "github.com/polkiloo/servicebooking/internal/domain/model"

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountRequest edits the signed-in account. Omitted fields are kept.
type AccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// ToModel converts the request into an account change.
func (r AccountRequest) ToModel() model.AccountChange {
	return model.AccountChange{Name: r.Name, Email: r.Email, Password: r.Password}
}

// NewUserResponse converts u for output.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse is returned after register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewAuthResponse builds AuthResponse.
func NewAuthResponse(u *model.User, token string) AuthResponse {
	resp := AuthResponse{Token: token}
	if u != nil {
		resp.User = NewUserResponse(u)
	}
	return resp
}
