package subscription_service

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"auramind-bot/internal/clock"
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"
	"auramind-bot/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrialDuration — длительность бесплатного периода.
const TrialDuration = 3 * 24 * time.Hour

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	keyRepo          repository.ActivationKeyRepository
	clock            clock.Clock
	log              *zap.Logger
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	keyRepo repository.ActivationKeyRepository,
	clk clock.Clock,
	log *zap.Logger,
) service.SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		keyRepo:          keyRepo,
		clock:            clk,
		log:              log,
	}
}

func (s *subscriptionService) Register(userID int64) error {
	return s.subscriptionRepo.Register(userID)
}

func (s *subscriptionService) ActivateTrial(userID int64) (bool, error) {
	ok, err := s.subscriptionRepo.ActivateTrial(userID, s.clock.Now())
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("активирован бесплатный период", zap.Int64("user_id", userID))
	}
	return ok, nil
}

func (s *subscriptionService) TrialDaysLeft(userID int64) (int, error) {
	sub, err := s.subscriptionRepo.Get(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	if !sub.TrialActivated || sub.TrialStartDate == nil {
		return 0, nil
	}

	// Секундный буфер перед округлением: живой триал на границе суток
	// не должен показывать 0 дней.
	remaining := sub.TrialStartDate.Add(TrialDuration).Sub(s.clock.Now()).Seconds() + 1
	if remaining <= 0 {
		return 0, nil
	}
	return int(math.Ceil(remaining / (24 * 3600))), nil
}

func (s *subscriptionService) ActivatePremium(userID int64, key string) (bool, error) {
	ok, err := s.subscriptionRepo.ActivatePremium(userID, key, s.clock.Now())
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("активирован премиум", zap.Int64("user_id", userID))
	}
	return ok, nil
}

func (s *subscriptionService) HasAccess(userID int64) (bool, error) {
	sub, err := s.subscriptionRepo.Get(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if sub.IsPremium {
		return true, nil
	}

	if sub.TrialActivated && sub.TrialStartDate != nil {
		return s.clock.Now().Before(sub.TrialStartDate.Add(TrialDuration)), nil
	}

	return false, nil
}

func (s *subscriptionService) CreateActivationKey() (string, error) {
	key := &models.ActivationKey{
		Key:       uuid.NewString(),
		CreatedAt: s.clock.Now(),
	}
	if err := s.keyRepo.Create(key); err != nil {
		return "", err
	}
	return key.Key, nil
}

func (s *subscriptionService) DeleteActivationKey(key string) (bool, error) {
	return s.keyRepo.Delete(key)
}
