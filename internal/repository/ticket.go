package repository

import (
	"context"
	"fmt"

	"github.com/helpdesk-platform/ticket-service/internal/models"
	"gorm.io/gorm"
)

// TicketRepository defines the interface for ticket data operations.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Ticket, error)
	ListByInternalSector(ctx context.Context, sectorID int64) ([]models.Ticket, error)
	ListByDependency(ctx context.Context, dependencyID int64) ([]models.Ticket, error)
	// DependencyOfSector returns the dependency id linked to the sector, or
	// nil when the sector has none.
	DependencyOfSector(ctx context.Context, sectorID int64) (*int64, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new TicketRepository instance.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *ticketRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for author %d: %w", authorID, err)
	}
	return tickets, nil
}

func (r *ticketRepository) ListByInternalSector(ctx context.Context, sectorID int64) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Where("internal_sector_id = ?", sectorID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for sector %d: %w", sectorID, err)
	}
	return tickets, nil
}

func (r *ticketRepository) ListByDependency(ctx context.Context, dependencyID int64) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Where("dependency_id = ?", dependencyID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for dependency %d: %w", dependencyID, err)
	}
	return tickets, nil
}

func (r *ticketRepository) DependencyOfSector(ctx context.Context, sectorID int64) (*int64, error) {
	var sector models.InternalSector
	if err := r.db.WithContext(ctx).First(&sector, sectorID).Error; err != nil {
		return nil, fmt.Errorf("failed to find internal sector %d: %w", sectorID, err)
	}
	return sector.DependencyID, nil
}
