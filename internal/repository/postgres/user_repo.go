package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/saunova/saunova-server/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.Goals == nil {
		user.Goals = datatypes.JSON([]byte("[]"))
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByAuthID(ctx context.Context, authID string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "auth_id = ?", authID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FinishSetup(ctx context.Context, authID string, setup domain.ProfileSetup) (*domain.User, error) {
	goals := setup.Goals
	if goals == nil {
		goals = []string{}
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return nil, err
	}

	// Single UPDATE so all profile attributes and the onboarding flag land together.
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("auth_id = ?", authID).
		Updates(map[string]interface{}{
			"gender":               setup.Gender,
			"height":               setup.Height,
			"weight":               setup.Weight,
			"age":                  setup.Age,
			"goals":                datatypes.JSON(goalsJSON),
			"onboarding_completed": true,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "auth_id = ?", authID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetProfileImage(ctx context.Context, authID string, imageURL *string) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("auth_id = ?", authID).
		Update("image", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
