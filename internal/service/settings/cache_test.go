package settings

import (
	"errors"
	"testing"

	"auramind-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) CreateIfAbsent(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepoMock) GetByID(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetGenders(userID int64) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *UserRepoMock) UpdateBotGender(userID int64, gender string) error {
	return m.Called(userID, gender).Error(0)
}

func (m *UserRepoMock) UpdateUserGender(userID int64, gender string) error {
	return m.Called(userID, gender).Error(0)
}

func TestGet_InitializesDefaults(t *testing.T) {
	cache := NewCache(new(UserRepoMock), zap.NewNop())

	st := cache.Get(1)
	assert.Equal(t, models.StyleShort, st.Style)
	assert.False(t, st.Advice)
	assert.Empty(t, st.Age)
	// Пол обеих сторон нейтральный сразу, а не после первой сверки с БД:
	// клавиатуры настроек показывают текущий выбор уже после /start.
	assert.Equal(t, models.GenderNeutral, st.BotGender)
	assert.Equal(t, models.GenderNeutral, st.UserGender)
}

func TestVolatileSetters(t *testing.T) {
	cache := NewCache(new(UserRepoMock), zap.NewNop())

	cache.SetAge(1, models.AgeTeen)
	cache.SetStyle(1, models.StyleLong)
	cache.SetAdvice(1, true)

	st := cache.Get(1)
	assert.Equal(t, models.AgeTeen, st.Age)
	assert.Equal(t, models.StyleLong, st.Style)
	assert.True(t, st.Advice)
}

func TestSetBotGender_PersistsSynchronously(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("UpdateBotGender", int64(1), models.GenderFemale).Return(nil)

	cache := NewCache(repo, zap.NewNop())
	require.NoError(t, cache.SetBotGender(1, models.GenderFemale))

	assert.Equal(t, models.GenderFemale, cache.Get(1).BotGender)
	repo.AssertExpectations(t)
}

func TestReconcile_OverwritesOnlyGenderFields(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetGenders", int64(1)).Return(models.GenderMale, models.GenderFemale, nil)

	cache := NewCache(repo, zap.NewNop())
	cache.SetAge(1, models.AgeAdult)
	cache.SetAdvice(1, true)

	cache.Reconcile(1)

	st := cache.Get(1)
	// Для пола хранилище важнее кеша.
	assert.Equal(t, models.GenderMale, st.BotGender)
	assert.Equal(t, models.GenderFemale, st.UserGender)
	// Остальные поля нетронуты.
	assert.Equal(t, models.AgeAdult, st.Age)
	assert.True(t, st.Advice)
}

func TestReconcile_ReadFailureKeepsCachedValues(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("UpdateBotGender", int64(1), models.GenderNeutral).Return(nil)
	repo.On("GetGenders", int64(1)).Return("", "", errors.New("no row"))

	cache := NewCache(repo, zap.NewNop())
	require.NoError(t, cache.SetBotGender(1, models.GenderNeutral))

	cache.Reconcile(1)
	assert.Equal(t, models.GenderNeutral, cache.Get(1).BotGender)
}

func TestReset_RestoresDefaults(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("UpdateBotGender", int64(1), models.GenderFemale).Return(nil)

	cache := NewCache(repo, zap.NewNop())
	cache.SetAge(1, models.AgeTeen)
	cache.SetStyle(1, models.StyleLong)
	require.NoError(t, cache.SetBotGender(1, models.GenderFemale))

	cache.Reset(1)

	st := cache.Get(1)
	assert.Empty(t, st.Age)
	assert.Equal(t, models.StyleShort, st.Style)
	assert.Equal(t, models.GenderNeutral, st.BotGender)
}
