package service

import (
	"context"

	"github.com/saunova/saunova-server/internal/achievement"
	"github.com/saunova/saunova-server/internal/domain"
	"github.com/saunova/saunova-server/internal/repository"
	"github.com/saunova/saunova-server/internal/social"
)

const responseBadgeCount = 3

// AccountPayload is the user-facing shape returned by login, signup and
// finish-setup.
type AccountPayload struct {
	User     *domain.User           `json:"user"`
	Sessions []*domain.SaunaSession `json:"sessions"`
	Badges   []domain.Badge         `json:"badges"`
	Friends  []domain.Friend        `json:"friends"`
}

type AccountService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	badges      achievement.Provider
	friends     social.GraphProvider
}

func NewAccountService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, badges achievement.Provider, friends social.GraphProvider) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		badges:      badges,
		friends:     friends,
	}
}

// Login assembles the full account payload for an already-registered identity.
func (s *AccountService) Login(ctx context.Context, authID string) (*AccountPayload, error) {
	user, err := s.userRepo.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	sessions, err := s.sessionRepo.GetByOwner(ctx, authID)
	if err != nil {
		return nil, err
	}

	return s.payload(user, sessions), nil
}

// Signup creates the user document with zero-valued profile attributes and
// onboardingCompleted=false. Uniqueness of authID/email is enforced by the store.
func (s *AccountService) Signup(ctx context.Context, authID, email string, image *string) (*AccountPayload, error) {
	user := &domain.User{
		AuthID: authID,
		Email:  email,
		Gender: "empty",
		Image:  image,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.payload(user, []*domain.SaunaSession{}), nil
}

// FinishSetup writes all profile attributes together and flips the
// onboarding flag.
func (s *AccountService) FinishSetup(ctx context.Context, authID string, setup domain.ProfileSetup) (*AccountPayload, error) {
	user, err := s.userRepo.FinishSetup(ctx, authID, setup)
	if err != nil {
		return nil, err
	}

	return s.payload(user, []*domain.SaunaSession{}), nil
}

func (s *AccountService) SetProfileImage(ctx context.Context, authID, imageURL string) error {
	return s.userRepo.SetProfileImage(ctx, authID, &imageURL)
}

func (s *AccountService) ClearProfileImage(ctx context.Context, authID string) error {
	return s.userRepo.SetProfileImage(ctx, authID, nil)
}

func (s *AccountService) payload(user *domain.User, sessions []*domain.SaunaSession) *AccountPayload {
	return &AccountPayload{
		User:     user,
		Sessions: sessions,
		Badges:   s.badges.BadgesFor(user.AuthID, responseBadgeCount),
		Friends:  s.friends.FriendsOf(user.AuthID),
	}
}
