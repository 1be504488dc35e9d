package subscription_service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"auramind-bot/internal/clock"
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type SubscriptionRepoMock struct{ mock.Mock }

func (m *SubscriptionRepoMock) Register(userID int64) error {
	return m.Called(userID).Error(0)
}

func (m *SubscriptionRepoMock) Get(userID int64) (*models.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *SubscriptionRepoMock) ActivateTrial(userID int64, startedAt time.Time) (bool, error) {
	args := m.Called(userID, startedAt)
	return args.Bool(0), args.Error(1)
}

func (m *SubscriptionRepoMock) ActivatePremium(userID int64, key string, usedAt time.Time) (bool, error) {
	args := m.Called(userID, key, usedAt)
	return args.Bool(0), args.Error(1)
}

type KeyRepoMock struct{ mock.Mock }

func (m *KeyRepoMock) Create(key *models.ActivationKey) error {
	return m.Called(key).Error(0)
}

func (m *KeyRepoMock) Consume(key string, userID int64, usedAt time.Time) (bool, error) {
	args := m.Called(key, userID, usedAt)
	return args.Bool(0), args.Error(1)
}

func (m *KeyRepoMock) Delete(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

func newService(subRepo *SubscriptionRepoMock, keyRepo *KeyRepoMock, now time.Time) *subscriptionService {
	svc := NewSubscriptionService(subRepo, keyRepo, &clock.FakeClock{Current: now}, zap.NewNop())
	return svc.(*subscriptionService)
}

func TestHasAccess_FalseBeforeAnyActivation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	subRepo := new(SubscriptionRepoMock)
	subRepo.On("Get", int64(1)).Return(&models.Subscription{UserID: 1}, nil)
	svc := newService(subRepo, new(KeyRepoMock), now)

	ok, err := svc.HasAccess(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAccess_FalseForUnknownUser(t *testing.T) {
	subRepo := new(SubscriptionRepoMock)
	subRepo.On("Get", int64(42)).Return(nil, sql.ErrNoRows)
	svc := newService(subRepo, new(KeyRepoMock), time.Now())

	ok, err := svc.HasAccess(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAccess_TrialWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := &models.Subscription{UserID: 1, TrialActivated: true, TrialStartDate: &start}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"почти истёк", start.Add(2*24*time.Hour + 23*time.Hour + 59*time.Minute), true},
		{"секунда после истечения", start.Add(3*24*time.Hour + time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := new(SubscriptionRepoMock)
			subRepo.On("Get", int64(1)).Return(sub, nil)
			svc := newService(subRepo, new(KeyRepoMock), tt.now)

			ok, err := svc.HasAccess(1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestHasAccess_PremiumIgnoresTrialExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := &models.Subscription{UserID: 1, IsPremium: true, TrialActivated: true, TrialStartDate: &start}

	subRepo := new(SubscriptionRepoMock)
	subRepo.On("Get", int64(1)).Return(sub, nil)
	svc := newService(subRepo, new(KeyRepoMock), start.Add(365*24*time.Hour))

	ok, err := svc.HasAccess(1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestActivateTrial_SecondCallReturnsFalse(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	subRepo := new(SubscriptionRepoMock)
	subRepo.On("ActivateTrial", int64(1), now).Return(true, nil).Once()
	subRepo.On("ActivateTrial", int64(1), now).Return(false, nil)
	svc := newService(subRepo, new(KeyRepoMock), now)

	first, err := svc.ActivateTrial(1)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := svc.ActivateTrial(1)
	require.NoError(t, err)
	assert.False(t, second)

	subRepo.AssertExpectations(t)
}

func TestTrialDaysLeft(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	activated := &models.Subscription{UserID: 1, TrialActivated: true, TrialStartDate: &start}

	tests := []struct {
		name string
		sub  *models.Subscription
		err  error
		now  time.Time
		want int
	}{
		{"триал не активирован", &models.Subscription{UserID: 1}, nil, start, 0},
		{"нет строки подписки", nil, sql.ErrNoRows, start, 0},
		{"только что активирован", activated, nil, start, 3},
		{"полсекунды до конца — буфер не даёт нуля", activated, nil, start.Add(3*24*time.Hour - 500*time.Millisecond), 1},
		{"секунда после конца", activated, nil, start.Add(3*24*time.Hour + time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := new(SubscriptionRepoMock)
			subRepo.On("Get", int64(1)).Return(tt.sub, tt.err)
			svc := newService(subRepo, new(KeyRepoMock), tt.now)

			days, err := svc.TrialDaysLeft(1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestActivatePremium_KeyUsableOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	const key = "k-1"

	subRepo := new(SubscriptionRepoMock)
	subRepo.On("ActivatePremium", int64(2), key, now).Return(true, nil)
	subRepo.On("ActivatePremium", int64(3), key, now).Return(false, nil)
	svc := newService(subRepo, new(KeyRepoMock), now)

	ok, err := svc.ActivatePremium(2, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ActivatePremium(3, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateActivationKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var created *models.ActivationKey
	keyRepo := new(KeyRepoMock)
	keyRepo.On("Create", mock.AnythingOfType("*models.ActivationKey")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.ActivationKey)
	})
	svc := newService(new(SubscriptionRepoMock), keyRepo, now)

	key, err := svc.CreateActivationKey()
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.Key, key)
	assert.Equal(t, now, created.CreatedAt)
	assert.False(t, created.IsUsed)

	_, err = uuid.Parse(key)
	assert.NoError(t, err)
}

func TestCreateActivationKey_DuplicateFailsLoudly(t *testing.T) {
	keyRepo := new(KeyRepoMock)
	keyRepo.On("Create", mock.Anything).Return(repository.ErrDuplicateKey)
	svc := newService(new(SubscriptionRepoMock), keyRepo, time.Now())

	_, err := svc.CreateActivationKey()
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))
}

func TestDeleteActivationKey_WorksForUsedKeys(t *testing.T) {
	keyRepo := new(KeyRepoMock)
	keyRepo.On("Delete", "used-key").Return(true, nil)
	svc := newService(new(SubscriptionRepoMock), keyRepo, time.Now())

	deleted, err := svc.DeleteActivationKey("used-key")
	require.NoError(t, err)
	assert.True(t, deleted)
}
