package service

import (
	"github.com/saunova/saunova-server/internal/achievement"
	"github.com/saunova/saunova-server/internal/repository"
	"github.com/saunova/saunova-server/internal/social"
)

type Services struct {
	Account *AccountService
	Session *SessionService
}

func NewServices(repos *repository.Repositories, badges achievement.Provider, friends social.GraphProvider) *Services {
	return &Services{
		Account: NewAccountService(repos.User, repos.Session, badges, friends),
		Session: NewSessionService(repos.Session),
	}
}
