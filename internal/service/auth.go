package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrSeedMissing     = errors.New("default role or internal sector not seeded")
)

// Defaults bound to every new user at registration.
const (
	DefaultRoleName   = "ejecutor"
	DefaultSectorName = "Guest"
)

// profileCacheTTL bounds staleness of the cached profile projection.
const profileCacheTTL = 60 * time.Second

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User             models.UserView
	InternalSectorID *int64
	Token            string
}

// AuthService orchestrates registration, login and profile reads.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.UserView, string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context, userID int64) (*models.UserView, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	cache    *redis.Client
}

// NewAuthService creates a new AuthService instance. The cache client is
// optional; a nil client disables profile caching.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cache *redis.Client) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*models.UserView, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	// The store's unique constraint is the sole arbiter of "email taken";
	// no check-then-insert.
	err = s.userRepo.CreateWithDefaults(ctx, user, DefaultRoleName, DefaultSectorName)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, "", ErrEmailTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", ErrSeedMissing
	default:
		return nil, "", err
	}

	// The registration token carries the user id only; role and sector
	// claims appear after login.
	token, err := s.tokens.Generate(user.ID, "", nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	view := user.View()
	return &view, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	// First association wins: bindings are preloaded earliest-created first.
	var roleName string
	if len(user.Roles) > 0 {
		roleName = user.Roles[0].Role.Name
	}
	var sectorID *int64
	if len(user.InternalSectors) > 0 {
		id := user.InternalSectors[0].InternalSectorID
		sectorID = &id
	}

	token, err := s.tokens.Generate(user.ID, roleName, sectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	view := user.View()
	view.Role = roleName

	return &LoginResult{
		User:             view,
		InternalSectorID: sectorID,
		Token:            token,
	}, nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*models.UserView, error) {
	if view := s.cachedProfile(ctx, userID); view != nil {
		return view, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	role, _, err := s.userRepo.EffectiveBindings(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := user.View()
	if role != nil {
		view.Role = role.Name
	}

	s.storeProfile(ctx, userID, &view)
	return &view, nil
}

// Cache failures are soft: the profile read falls through to the store.

func (s *authService) cachedProfile(ctx context.Context, userID int64) *models.UserView {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, profileCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var view models.UserView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}
	return &view
}

func (s *authService) storeProfile(ctx context.Context, userID int64, view *models.UserView) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, profileCacheKey(userID), data, profileCacheTTL).Err(); err != nil {
		log.Printf("profile cache write failed for user %d: %v", userID, err)
	}
}

func profileCacheKey(userID int64) string {
	return fmt.Sprintf("profile:%d", userID)
}
