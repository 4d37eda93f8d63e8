// Package repository provides the data access layer for the ticket service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/helpdesk-platform/ticket-service/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateWithDefaults persists the user and binds the named default role
	// and internal sector to it in a single transaction. Missing seed rows
	// roll the whole registration back.
	CreateWithDefaults(ctx context.Context, user *models.User, roleName, sectorName string) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	// EffectiveBindings returns the user's earliest-created role and sector
	// bindings. Either may be nil when the user has no binding of that kind.
	EffectiveBindings(ctx context.Context, userID int64) (*models.Role, *models.InternalSector, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// earliestFirst orders association rows so the first result is the effective
// binding. Created-at alone is not a total order (second resolution on some
// stores), so id breaks ties.
func earliestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

func (r *userRepository) CreateWithDefaults(ctx context.Context, user *models.User, roleName, sectorName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		var role models.Role
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			return fmt.Errorf("failed to find default role %q: %w", roleName, err)
		}

		var sector models.InternalSector
		if err := tx.Where("name = ?", sectorName).First(&sector).Error; err != nil {
			return fmt.Errorf("failed to find default internal sector %q: %w", sectorName, err)
		}

		if err := tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error; err != nil {
			return fmt.Errorf("failed to bind role to user %d: %w", user.ID, err)
		}

		if err := tx.Create(&models.UserInternalSector{UserID: user.ID, InternalSectorID: sector.ID}).Error; err != nil {
			return fmt.Errorf("failed to bind internal sector to user %d: %w", user.ID, err)
		}

		return nil
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Roles", earliestFirst).
		Preload("Roles.Role").
		Preload("InternalSectors", earliestFirst).
		Preload("InternalSectors.InternalSector").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) EffectiveBindings(ctx context.Context, userID int64) (*models.Role, *models.InternalSector, error) {
	var roleBinding models.UserRole
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("user_id = ?", userID).
		Scopes(earliestFirst).
		First(&roleBinding).Error
	var role *models.Role
	switch {
	case err == nil:
		role = &roleBinding.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no role binding; leave nil
	default:
		return nil, nil, fmt.Errorf("failed to find role binding for user %d: %w", userID, err)
	}

	var sectorBinding models.UserInternalSector
	err = r.db.WithContext(ctx).
		Preload("InternalSector").
		Where("user_id = ?", userID).
		Scopes(earliestFirst).
		First(&sectorBinding).Error
	var sector *models.InternalSector
	switch {
	case err == nil:
		sector = &sectorBinding.InternalSector
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no sector binding; leave nil
	default:
		return nil, nil, fmt.Errorf("failed to find sector binding for user %d: %w", userID, err)
	}

	return role, sector, nil
}
