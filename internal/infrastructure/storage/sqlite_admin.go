package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type sqliteAdminRepository struct {
	db *sqlx.DB
}

type adminActionRow struct {
	ID        string `db:"id"`
	UserID    int64  `db:"user_id"`
	Action    string `db:"action"`
	Details   string `db:"details"`
	Timestamp string `db:"ts"`
}

// NewSQLiteAdminRepository admin harakatlari jurnali
func NewSQLiteAdminRepository(db *sqlx.DB) repository.AdminRepository {
	return &sqliteAdminRepository{db: db}
}

// LogAction admin harakatini loglash
func (s *sqliteAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now()
	}

	_, err := s.db.NamedExecContext(ctx, `
INSERT INTO admin_actions (id, user_id, action, details, ts)
VALUES (:id, :user_id, :action, :details, :ts)`, adminActionRow{
		ID:        action.ID,
		UserID:    action.UserID,
		Action:    action.Action,
		Details:   action.Details,
		Timestamp: formatTime(action.Timestamp),
	})
	if err != nil {
		return fmt.Errorf("log admin action: %w", err)
	}
	return nil
}

// ListActions oxirgi harakatlar
func (s *sqliteAdminRepository) ListActions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	query := `SELECT id, user_id, action, details, ts FROM admin_actions ORDER BY ts DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []adminActionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	actions := make([]entity.AdminAction, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTime(row.Timestamp)
		if err != nil {
			return nil, err
		}
		actions = append(actions, entity.AdminAction{
			ID:        row.ID,
			UserID:    row.UserID,
			Action:    row.Action,
			Details:   row.Details,
			Timestamp: ts,
		})
	}
	return actions, nil
}
