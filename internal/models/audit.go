// Package models contains data models for the ticket service.
package models

import "time"

// Audit actions recorded by the service.
const (
	ActionRegister     = "register"
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
	ActionLogout       = "logout"
)

// ActionLog is an audit record of an authentication event.
type ActionLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Action    string    `json:"action" gorm:"not null;index"`
	UserID    *int64    `json:"user_id" gorm:"index"`
	Source    string    `json:"source" gorm:"not null"`
	Detail    string    `json:"detail" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the ActionLog model.
func (ActionLog) TableName() string {
	return "action_logs"
}
