package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type sqliteUserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           int64  `db:"user_id"`
	Username     string `db:"username"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	CreatedAt    string `db:"created_at"`
	LastActive   string `db:"last_active"`
	MessageCount int    `db:"message_count"`
}

func (r userRow) toEntity() (entity.User, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entity.User{}, err
	}
	active, err := parseTime(r.LastActive)
	if err != nil {
		return entity.User{}, err
	}
	return entity.User{
		ID:           r.ID,
		Username:     r.Username,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		CreatedAt:    created,
		LastActive:   active,
		MessageCount: r.MessageCount,
	}, nil
}

// NewSQLiteUserRepository SQLite asosidagi foydalanuvchilar reyestri
func NewSQLiteUserRepository(db *sqlx.DB) repository.UserRepository {
	return &sqliteUserRepository{db: db}
}

// UpsertUser foydalanuvchini qo'shish yoki yangilash
func (s *sqliteUserRepository) UpsertUser(ctx context.Context, user entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.LastActive.IsZero() {
		user.LastActive = user.CreatedAt
	}

	// created_at va message_count mavjud yozuvda o'zgarmaydi
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (user_id, username, first_name, last_name, created_at, last_active, message_count)
VALUES (?, ?, ?, ?, ?, ?, 0)
ON CONFLICT(user_id) DO UPDATE SET
	username = excluded.username,
	first_name = excluded.first_name,
	last_name = excluded.last_name,
	last_active = MAX(users.last_active, excluded.last_active)`,
		user.ID, user.Username, user.FirstName, user.LastName,
		formatTime(user.CreatedAt), formatTime(user.LastActive))
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", user.ID, err)
	}
	return nil
}

// RecordActivity oxirgi faollikni yangilash. Vaqt orqaga qaytmaydi.
func (s *sqliteUserRepository) RecordActivity(ctx context.Context, userID int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE users
SET last_active = MAX(last_active, ?), message_count = message_count + 1
WHERE user_id = ?`, formatTime(at), userID)
	if err != nil {
		return fmt.Errorf("record activity %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}
	return nil
}

// ListUsers barcha foydalanuvchilar, yangilari birinchi
func (s *sqliteUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM users ORDER BY created_at DESC, user_id DESC`); err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		user, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Stats foydalanuvchilar statistikasi
func (s *sqliteUserRepository) Stats(ctx context.Context, dayStart, dayEnd time.Time) (entity.UserStats, error) {
	var row struct {
		Total       int `db:"total"`
		ActiveToday int `db:"active_today"`
		NewToday    int `db:"new_today"`
	}
	from, to := formatTime(dayStart), formatTime(dayEnd)
	err := s.db.GetContext(ctx, &row, `
SELECT
	COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN last_active >= ? AND last_active < ? THEN 1 ELSE 0 END), 0) AS active_today,
	COALESCE(SUM(CASE WHEN created_at >= ? AND created_at < ? THEN 1 ELSE 0 END), 0) AS new_today
FROM users`, from, to, from, to)
	if err != nil {
		return entity.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	return entity.UserStats{Total: row.Total, ActiveToday: row.ActiveToday, NewToday: row.NewToday}, nil
}
