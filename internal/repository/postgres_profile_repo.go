package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hitoshi/viewtrack/internal/model"
)

// PostgresProfileRepo はPostgreSQLを使用したプロファイルリポジトリ。
type PostgresProfileRepo struct {
	db *sql.DB
}

// NewPostgresProfileRepo はPostgresProfileRepoを生成する。
func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db}
}

// CreateIfAbsent はプロファイルを作成する。first-write-wins:
// 同一user_idのプロファイルが既に存在する場合は何もせずfalseを返す。
// created_atとlast_login_atはDBのnow()で採番される。
func (r *PostgresProfileRepo) CreateIfAbsent(ctx context.Context, profile *model.UserProfile) (bool, error) {
	prefsJSON, err := json.Marshal(profile.Preferences)
	if err != nil {
		return false, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	detailsJSON, err := json.Marshal(profile.Profile)
	if err != nil {
		return false, fmt.Errorf("failed to marshal profile details: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profiles
		   (user_id, email, display_name, photo_url, phone_number, role, preferences, profile)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO NOTHING`,
		profile.UserID, profile.Email, profile.DisplayName, profile.PhotoURL,
		profile.PhoneNumber, profile.Role, prefsJSON, detailsJSON,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert user profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// FindByID は指定ユーザーのプロファイルを取得する。見つからない場合はnilを返す。
func (r *PostgresProfileRepo) FindByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	var prefsJSON, detailsJSON []byte

	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, display_name, photo_url, phone_number, role,
		        preferences, profile, created_at, last_login_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(
		&profile.UserID, &profile.Email, &profile.DisplayName, &profile.PhotoURL,
		&profile.PhoneNumber, &profile.Role, &prefsJSON, &detailsJSON,
		&profile.CreatedAt, &profile.LastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user profile: %w", err)
	}

	if err := json.Unmarshal(prefsJSON, &profile.Preferences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if err := json.Unmarshal(detailsJSON, &profile.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile details: %w", err)
	}

	return profile, nil
}

// compile-time interface check
var _ ProfileRepository = (*PostgresProfileRepo)(nil)
