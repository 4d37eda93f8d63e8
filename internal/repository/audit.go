package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/helpdesk-platform/ticket-service/internal/models"
	"gorm.io/gorm"
)

// ActionLogRepository records audit events.
type ActionLogRepository interface {
	Log(ctx context.Context, entry *models.ActionLog) error
}

type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new ActionLogRepository instance.
func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

func (r *actionLogRepository) Log(ctx context.Context, entry *models.ActionLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write action log %s: %w", entry.Action, err)
	}
	return nil
}
