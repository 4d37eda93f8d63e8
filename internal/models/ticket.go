// Package models contains data models for the ticket service.
package models

import "time"

// Ticket statuses.
const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// Ticket represents a support ticket.
type Ticket struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Description      string    `json:"description"`
	Status           string    `json:"status" gorm:"not null;default:open"`
	AuthorID         int64     `json:"author_id" gorm:"not null;index"`
	InternalSectorID *int64    `json:"internal_sector_id" gorm:"index"`
	DependencyID     *int64    `json:"dependency_id" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Ticket model.
func (Ticket) TableName() string {
	return "tickets"
}
