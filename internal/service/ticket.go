package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/repository"
)

// ErrNoSectorClaim is returned for sector- or dependency-scoped queries made
// with a token that carries no internal sector claim (a token issued at
// registration, before the first login).
var ErrNoSectorClaim = errors.New("session has no internal sector access")

// CreateTicketRequest is the payload for creating a ticket.
type CreateTicketRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	DependencyID *int64 `json:"dependency_id"`
}

// TicketService exposes ticket queries scoped by session claims.
type TicketService interface {
	Create(ctx context.Context, claims *SessionClaims, req CreateTicketRequest) (*models.Ticket, error)
	ListByAuthor(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error)
	ListByInternalSector(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error)
	ListByDependency(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
}

// NewTicketService creates a new TicketService instance.
func NewTicketService(ticketRepo repository.TicketRepository) TicketService {
	return &ticketService{ticketRepo: ticketRepo}
}

func (s *ticketService) Create(ctx context.Context, claims *SessionClaims, req CreateTicketRequest) (*models.Ticket, error) {
	ticket := &models.Ticket{
		Title:            req.Title,
		Description:      req.Description,
		Status:           models.TicketStatusOpen,
		AuthorID:         claims.UserID,
		InternalSectorID: claims.InternalSectorID,
		DependencyID:     req.DependencyID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) ListByAuthor(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error) {
	return s.ticketRepo.ListByAuthor(ctx, claims.UserID)
}

func (s *ticketService) ListByInternalSector(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error) {
	if claims.InternalSectorID == nil {
		return nil, ErrNoSectorClaim
	}
	return s.ticketRepo.ListByInternalSector(ctx, *claims.InternalSectorID)
}

func (s *ticketService) ListByDependency(ctx context.Context, claims *SessionClaims) ([]models.Ticket, error) {
	if claims.InternalSectorID == nil {
		return nil, ErrNoSectorClaim
	}

	dependencyID, err := s.ticketRepo.DependencyOfSector(ctx, *claims.InternalSectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependency for sector %d: %w", *claims.InternalSectorID, err)
	}
	if dependencyID == nil {
		// Sector is linked to no dependency; nothing is visible.
		return []models.Ticket{}, nil
	}

	return s.ticketRepo.ListByDependency(ctx, *dependencyID)
}
