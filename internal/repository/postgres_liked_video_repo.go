package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/viewtrack/internal/model"
)

// PostgresLikedVideoRepo はPostgreSQLを使用したいいね済みビデオリポジトリ。
type PostgresLikedVideoRepo struct {
	db *sql.DB
}

// NewPostgresLikedVideoRepo はPostgresLikedVideoRepoを生成する。
func NewPostgresLikedVideoRepo(db *sql.DB) *PostgresLikedVideoRepo {
	return &PostgresLikedVideoRepo{db: db}
}

// Upsert はいいねエントリを作成または上書きする。
// 既存エントリの場合はliked_at（DBのnow()）とnoteが更新される（冪等）。
func (r *PostgresLikedVideoRepo) Upsert(ctx context.Context, userID, videoID, note string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO liked_videos (user_id, video_id, note, liked_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, video_id)
		 DO UPDATE SET note = EXCLUDED.note, liked_at = now()`,
		userID, videoID, note,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert liked video: %w", err)
	}
	return nil
}

// Delete は指定エントリを削除する。存在しないキーの削除はエラーにならない（冪等）。
func (r *PostgresLikedVideoRepo) Delete(ctx context.Context, userID, videoID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM liked_videos WHERE user_id = $1 AND video_id = $2`,
		userID, videoID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete liked video: %w", err)
	}
	return nil
}

// FindByUserAndVideo は(userID, videoID)のエントリを取得する。見つからない場合はnilを返す。
func (r *PostgresLikedVideoRepo) FindByUserAndVideo(ctx context.Context, userID, videoID string) (*model.LikedVideo, error) {
	lv := &model.LikedVideo{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, video_id, note, liked_at
		 FROM liked_videos WHERE user_id = $1 AND video_id = $2`,
		userID, videoID,
	).Scan(&lv.UserID, &lv.VideoID, &lv.Note, &lv.LikedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find liked video: %w", err)
	}

	return lv, nil
}

// ListByUserID はユーザーのいいね一覧をliked_at降順で返す。
func (r *PostgresLikedVideoRepo) ListByUserID(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, video_id, note, liked_at
		 FROM liked_videos WHERE user_id = $1
		 ORDER BY liked_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	defer rows.Close()

	var result []*model.LikedVideo
	for rows.Next() {
		lv := &model.LikedVideo{}
		if err := rows.Scan(&lv.UserID, &lv.VideoID, &lv.Note, &lv.LikedAt); err != nil {
			return nil, fmt.Errorf("failed to scan liked video: %w", err)
		}
		result = append(result, lv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liked videos: %w", err)
	}

	return result, nil
}

// compile-time interface check
var _ LikedVideoRepository = (*PostgresLikedVideoRepo)(nil)
