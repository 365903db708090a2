package likes

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/viewtrack/internal/metrics"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/security"
)

// mockLikedRepo はrepository.LikedVideoRepositoryのモック実装。
type mockLikedRepo struct {
	upsertFn func(ctx context.Context, userID, videoID, note string) error
	deleteFn func(ctx context.Context, userID, videoID string) error
	findFn   func(ctx context.Context, userID, videoID string) (*model.LikedVideo, error)
	listFn   func(ctx context.Context, userID string) ([]*model.LikedVideo, error)
}

func (m *mockLikedRepo) Upsert(ctx context.Context, userID, videoID, note string) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, videoID, note)
	}
	return errors.New("not configured")
}

func (m *mockLikedRepo) Delete(ctx context.Context, userID, videoID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, videoID)
	}
	return errors.New("not configured")
}

func (m *mockLikedRepo) FindByUserAndVideo(ctx context.Context, userID, videoID string) (*model.LikedVideo, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, videoID)
	}
	return nil, errors.New("not configured")
}

func (m *mockLikedRepo) ListByUserID(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, errors.New("not configured")
}

func newTestService(repo *mockLikedRepo) *Service {
	return NewService(repo, security.NewNoteSanitizer(), metrics.NopCollector{})
}

// TestAddLikedVideo_Upsert は登録がupsertとして実行されることを検証する。
func TestAddLikedVideo_Upsert(t *testing.T) {
	var gotUserID, gotVideoID, gotNote string
	repo := &mockLikedRepo{
		upsertFn: func(ctx context.Context, userID, videoID, note string) error {
			gotUserID, gotVideoID, gotNote = userID, videoID, note
			return nil
		},
	}

	svc := newTestService(repo)
	if err := svc.AddLikedVideo(context.Background(), "uid-1", "v1", "great clip"); err != nil {
		t.Fatalf("AddLikedVideo returned error: %v", err)
	}

	if gotUserID != "uid-1" || gotVideoID != "v1" || gotNote != "great clip" {
		t.Errorf("Upsert(%q, %q, %q), want (uid-1, v1, great clip)", gotUserID, gotVideoID, gotNote)
	}
}

// TestAddLikedVideo_NoteSanitized はメモのHTMLタグが保存前に除去されることを検証する。
func TestAddLikedVideo_NoteSanitized(t *testing.T) {
	var gotNote string
	repo := &mockLikedRepo{
		upsertFn: func(ctx context.Context, userID, videoID, note string) error {
			gotNote = note
			return nil
		},
	}

	svc := newTestService(repo)
	err := svc.AddLikedVideo(context.Background(), "uid-1", "v1", `<script>alert(1)</script>あとで見る`)
	if err != nil {
		t.Fatalf("AddLikedVideo returned error: %v", err)
	}

	if gotNote != "あとで見る" {
		t.Errorf("note = %q, want sanitized plain text", gotNote)
	}
}

// TestAddLikedVideo_EmptyVideoID はvideoId欠落で書き込みなしのInvalidArgumentになることを検証する。
func TestAddLikedVideo_EmptyVideoID(t *testing.T) {
	called := false
	repo := &mockLikedRepo{
		upsertFn: func(ctx context.Context, userID, videoID, note string) error {
			called = true
			return nil
		},
	}

	svc := newTestService(repo)
	err := svc.AddLikedVideo(context.Background(), "uid-1", "", "note")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeInvalidArgument {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeInvalidArgument)
	}
	if called {
		t.Error("Upsert must not be called for empty videoId")
	}
}

// TestRemoveLikedVideo_Idempotent は存在しないエントリの削除が成功することを検証する。
func TestRemoveLikedVideo_Idempotent(t *testing.T) {
	repo := &mockLikedRepo{
		deleteFn: func(ctx context.Context, userID, videoID string) error {
			// リポジトリ層は存在しないキーでもエラーを返さない
			return nil
		},
	}

	svc := newTestService(repo)
	if err := svc.RemoveLikedVideo(context.Background(), "uid-1", "v-never-liked"); err != nil {
		t.Errorf("RemoveLikedVideo returned error: %v", err)
	}
}

// TestRemoveLikedVideo_EmptyVideoID はvideoId欠落でInvalidArgumentになることを検証する。
func TestRemoveLikedVideo_EmptyVideoID(t *testing.T) {
	svc := newTestService(&mockLikedRepo{})
	err := svc.RemoveLikedVideo(context.Background(), "uid-1", "")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeInvalidArgument {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeInvalidArgument)
	}
}

// TestRemoveLikedVideo_StorageFailure はストレージ失敗がエラーとして返ることを検証する。
func TestRemoveLikedVideo_StorageFailure(t *testing.T) {
	repo := &mockLikedRepo{
		deleteFn: func(ctx context.Context, userID, videoID string) error {
			return errors.New("connection refused")
		},
	}

	svc := newTestService(repo)
	if err := svc.RemoveLikedVideo(context.Background(), "uid-1", "v1"); err == nil {
		t.Fatal("expected error on storage failure")
	}
}

// TestListLikedVideos_EmptyResult は0件の場合にnilではなく空スライスが返ることを検証する。
func TestListLikedVideos_EmptyResult(t *testing.T) {
	repo := &mockLikedRepo{
		listFn: func(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
			return nil, nil
		},
	}

	svc := newTestService(repo)
	videos, err := svc.ListLikedVideos(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("ListLikedVideos returned error: %v", err)
	}
	if videos == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(videos) != 0 {
		t.Errorf("len = %d, want 0", len(videos))
	}
}

// TestListLikedVideos_ReturnsEntries は一覧が返ることを検証する。
func TestListLikedVideos_ReturnsEntries(t *testing.T) {
	repo := &mockLikedRepo{
		listFn: func(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
			return []*model.LikedVideo{
				{UserID: userID, VideoID: "v2", Note: "newer"},
				{UserID: userID, VideoID: "v1", Note: "older"},
			}, nil
		},
	}

	svc := newTestService(repo)
	videos, err := svc.ListLikedVideos(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("ListLikedVideos returned error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("len = %d, want 2", len(videos))
	}
	if videos[0].VideoID != "v2" {
		t.Errorf("first entry = %q, want v2 (liked_at descending)", videos[0].VideoID)
	}
}
