package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/viewtrack/internal/auth"
	"github.com/hitoshi/viewtrack/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     auth.TokenVerifier
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// サービス
	TrackingService TrackingServiceInterface
	LikesService    LikesServiceInterface
	Bootstrapper    ProfileBootstrapper

	// Webhook認証用の共有シークレット
	WebhookSecret string
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → CORS → SecurityHeaders → [認証ルート: Auth → RateLimit]
//
// ヘルスチェックとWebhookはトークン認証チェーンの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())

	healthHandler := NewHealthHandler()
	trackingHandler := NewTrackingHandler(deps.TrackingService)
	likesHandler := NewLikesHandler(deps.LikesService)
	webhookHandler := NewWebhookHandler(deps.Bootstrapper, deps.WebhookSecret)

	// --- トークン認証不要のルート ---

	// ヘルスチェック（常に200）
	r.Get("/health", healthHandler.Check)

	// IdPからのWebhook（共有シークレットで認証）
	r.Post("/webhooks/auth/user-created", webhookHandler.UserCreated)

	// --- トークン認証が必要なルート ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))

		// イベント記録（高頻度のためトラッキング専用レート制限）
		r.Route("/api/track", func(r chi.Router) {
			r.Use(deps.RateLimiter.TrackingMiddleware())
			r.Post("/view", trackingHandler.TrackView)
			r.Post("/engagement", trackingHandler.TrackEngagement)
		})

		// お気に入り管理
		r.Route("/api/videos/liked", func(r chi.Router) {
			r.Use(deps.RateLimiter.GeneralMiddleware())
			r.Get("/", likesHandler.ListLiked)
			r.Post("/", likesHandler.AddLiked)
			r.Delete("/{videoId}", likesHandler.RemoveLiked)
		})
	})

	return r
}
