package repository

import (
	"context"

	"github.com/saunova/saunova-server/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByAuthID returns (nil, nil) when no user exists; callers decide 404 semantics.
	GetByAuthID(ctx context.Context, authID string) (*domain.User, error)
	// FinishSetup atomically writes all profile attributes and flips
	// onboardingCompleted. Returns domain.ErrUserNotFound if the identity is unknown.
	FinishSetup(ctx context.Context, authID string, setup domain.ProfileSetup) (*domain.User, error)
	// SetProfileImage updates only the image field; nil clears it.
	SetProfileImage(ctx context.Context, authID string, imageURL *string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.SaunaSession) error
	// GetByOwner returns the owner's sessions newest first; ties on created_at
	// fall back to insertion order.
	GetByOwner(ctx context.Context, authID string) ([]*domain.SaunaSession, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
}
