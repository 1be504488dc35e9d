package user_service

import (
	"auramind-bot/internal/clock"
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"
	"auramind-bot/internal/service"
)

type userService struct {
	userRepo repository.UserRepository
	clock    clock.Clock
}

func NewUserService(userRepo repository.UserRepository, clk clock.Clock) service.UserService {
	return &userService{
		userRepo: userRepo,
		clock:    clk,
	}
}

func (s *userService) Register(userID int64, username, firstName, lastName string) error {
	user := &models.User{
		ID:         userID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		BotGender:  models.GenderNeutral,
		UserGender: models.GenderNeutral,
		CreatedAt:  s.clock.Now(),
	}
	return s.userRepo.CreateIfAbsent(user)
}
