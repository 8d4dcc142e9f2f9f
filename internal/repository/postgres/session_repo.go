package postgres

import (
	"context"

	"github.com/saunova/saunova-server/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.SaunaSession) error {
	if session.AxisData == nil {
		session.AxisData = datatypes.JSON([]byte("null"))
	}
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByOwner(ctx context.Context, authID string) ([]*domain.SaunaSession, error) {
	var sessions []*domain.SaunaSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", authID).
		Order("created_at DESC, id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
