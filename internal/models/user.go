// Package models contains data models for the ticket service.
package models

import "time"

// User represents a registered user in the system.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Roles           []UserRole           `json:"-" gorm:"foreignKey:UserID"`
	InternalSectors []UserInternalSector `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// UserView is the safe projection of a user returned at the API boundary.
// It never carries the password hash.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// View projects the user into its boundary-safe form.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
