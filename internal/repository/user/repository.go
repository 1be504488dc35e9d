package user

import (
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateIfAbsent(user *models.User) error {
	query := `
		INSERT INTO users (user_id, username, first_name, last_name, bot_gender, user_gender, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(
		query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.BotGender,
		user.UserGender,
		user.CreatedAt,
	)
	return err
}

func (r *userRepository) GetByID(userID int64) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE user_id = $1`
	err := r.db.Get(&user, query, userID)
	return &user, err
}

func (r *userRepository) GetGenders(userID int64) (string, string, error) {
	var row struct {
		BotGender  string `db:"bot_gender"`
		UserGender string `db:"user_gender"`
	}
	query := `SELECT bot_gender, user_gender FROM users WHERE user_id = $1`
	err := r.db.Get(&row, query, userID)
	return row.BotGender, row.UserGender, err
}

func (r *userRepository) UpdateBotGender(userID int64, gender string) error {
	query := `UPDATE users SET bot_gender = $1 WHERE user_id = $2`
	_, err := r.db.Exec(query, gender, userID)
	return err
}

func (r *userRepository) UpdateUserGender(userID int64, gender string) error {
	query := `UPDATE users SET user_gender = $1 WHERE user_id = $2`
	_, err := r.db.Exec(query, gender, userID)
	return err
}
