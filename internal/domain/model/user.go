package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered customer or administrator.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Principal is the authenticated identity carried by access tokens.
type Principal struct {
	UserID uuid.UUID
	Admin  bool
}

// Owner is the display projection of a ledger owner.
type Owner struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// OwnerOf projects user into its display form.
func OwnerOf(u *User) Owner {
	if u == nil {
		return Owner{}
	}
	return Owner{ID: u.ID, Name: u.Name, Email: u.Email}
}
