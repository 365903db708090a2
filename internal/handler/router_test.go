package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/viewtrack/internal/middleware"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/tracking"
)

// mockVerifier はauth.TokenVerifierのモック実装。
type mockVerifier struct {
	verifyFn func(token string) (string, error)
}

func (m *mockVerifier) Verify(token string) (string, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return "", errors.New("not configured")
}

func newTestRouter(t *testing.T, trackingSvc TrackingServiceInterface, likesSvc LikesServiceInterface) http.Handler {
	t.Helper()

	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	return NewRouter(&RouterDeps{
		TokenVerifier: &mockVerifier{
			verifyFn: func(token string) (string, error) {
				if token == "valid-token" {
					return "uid-1", nil
				}
				return "", errors.New("invalid token")
			},
		},
		CORSAllowedOrigin: "http://localhost:3000",
		RateLimiter:       rl,
		Logger:            slog.New(slog.NewJSONHandler(io.Discard, nil)),
		TrackingService:   trackingSvc,
		LikesService:      likesSvc,
		Bootstrapper:      &mockBootstrapper{},
		WebhookSecret:     "webhook-secret",
	})
}

// TestRouter_HealthNoAuth はヘルスチェックが認証なしで到達できることを検証する。
func TestRouter_HealthNoAuth(t *testing.T) {
	router := newTestRouter(t, &mockTrackingService{}, &mockLikesService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

// TestRouter_TrackViewRequiresAuth はトークンなしの視聴記録が401になることを検証する。
func TestRouter_TrackViewRequiresAuth(t *testing.T) {
	called := false
	service := &mockTrackingService{
		trackVideoViewFn: func(ctx context.Context, userID string, req tracking.TrackViewRequest) error {
			called = true
			return nil
		},
	}
	router := newTestRouter(t, service, &mockLikesService{})

	body := []byte(`{"videoId":"v1","watchTime":120,"completionPercentage":87.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/track/view", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("service must not be called without token")
	}
}

// TestRouter_TrackViewWithToken は有効トークンで視聴記録が通ることを検証する。
func TestRouter_TrackViewWithToken(t *testing.T) {
	var gotUserID string
	service := &mockTrackingService{
		trackVideoViewFn: func(ctx context.Context, userID string, req tracking.TrackViewRequest) error {
			gotUserID = userID
			return nil
		},
	}
	router := newTestRouter(t, service, &mockLikesService{})

	body := []byte(`{"videoId":"v1","watchTime":120,"completionPercentage":87.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/track/view", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if gotUserID != "uid-1" {
		t.Errorf("userID = %q, want uid-1", gotUserID)
	}
}

// TestRouter_LikedVideosRoutes はお気に入りの各ルートが配線されていることを検証する。
func TestRouter_LikedVideosRoutes(t *testing.T) {
	var added, removed, listed bool
	service := &mockLikesService{
		addFn: func(ctx context.Context, userID, videoID, note string) error {
			added = true
			return nil
		},
		removeFn: func(ctx context.Context, userID, videoID string) error {
			if videoID != "v1" {
				t.Errorf("videoId = %q, want v1", videoID)
			}
			removed = true
			return nil
		},
		listFn: func(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
			listed = true
			return []*model.LikedVideo{}, nil
		},
	}
	router := newTestRouter(t, &mockTrackingService{}, service)

	cases := []struct {
		method string
		target string
		body   []byte
	}{
		{http.MethodPost, "/api/videos/liked", []byte(`{"videoId":"v1"}`)},
		{http.MethodDelete, "/api/videos/liked/v1", nil},
		{http.MethodGet, "/api/videos/liked", nil},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, bytes.NewReader(tc.body))
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s %s: status = %d, want 200", tc.method, tc.target, w.Code)
		}
	}

	if !added || !removed || !listed {
		t.Errorf("handlers called: add=%v remove=%v list=%v", added, removed, listed)
	}
}

// TestRouter_WebhookNoTokenAuth はWebhookがトークン認証チェーンの外にあることを検証する。
func TestRouter_WebhookNoTokenAuth(t *testing.T) {
	router := newTestRouter(t, &mockTrackingService{}, &mockLikesService{})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/auth/user-created",
		bytes.NewReader([]byte(`{"uid":"uid-1"}`)))
	req.Header.Set("X-Webhook-Secret", "webhook-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

// TestRouter_SecurityHeadersApplied は全ルートにセキュリティヘッダーが付与されることを検証する。
func TestRouter_SecurityHeadersApplied(t *testing.T) {
	router := newTestRouter(t, &mockTrackingService{}, &mockLikesService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}
