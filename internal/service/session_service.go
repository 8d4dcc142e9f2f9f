package service

import (
	"context"
	"time"

	"github.com/saunova/saunova-server/internal/domain"
	"github.com/saunova/saunova-server/internal/repository"
	"gorm.io/datatypes"
)

type SessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

type SessionLogInput struct {
	AuthID          string
	DurationSeconds int
	TemperatureC    float64
	HumidityPercent float64
	StartedAt       time.Time
	StoppedAt       time.Time
	Brief           string
	AxisData        datatypes.JSON
}

// Log appends one completed session. Records are immutable once written.
func (s *SessionService) Log(ctx context.Context, input SessionLogInput) (*domain.SaunaSession, error) {
	session := &domain.SaunaSession{
		UserID:          input.AuthID,
		DurationSeconds: input.DurationSeconds,
		TemperatureC:    input.TemperatureC,
		HumidityPercent: input.HumidityPercent,
		StartedAt:       input.StartedAt,
		StoppedAt:       input.StoppedAt,
		Brief:           input.Brief,
		AxisData:        input.AxisData,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// History returns the owner's sessions newest first.
func (s *SessionService) History(ctx context.Context, authID string) ([]*domain.SaunaSession, error) {
	return s.sessionRepo.GetByOwner(ctx, authID)
}
