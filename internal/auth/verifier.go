// Package auth は認証済み呼び出し元IDの検証を提供する。
//
// IdPが発行したアクセストークン（HMAC-SHA256署名のJWT）を検証し、
// subクレームを安定した呼び出し元のアカウントIDとして取り出す。
// トークンの発行主体はIdP側であり、本サービスは検証のみを行う。
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims はIdPが発行するアクセストークンのクレーム。
// SubjectにアカウントIDが格納される。
type Claims struct {
	jwt.RegisteredClaims
}

// TokenVerifier はトークン検証のインターフェース。
// ミドルウェアから利用する。
type TokenVerifier interface {
	// Verify はトークンを検証し、呼び出し元のアカウントIDを返す。
	// 署名不正・期限切れ・subクレーム欠落はエラー。
	Verify(tokenString string) (string, error)
}

// JWTVerifier はHMAC-SHA256署名のJWTを検証するTokenVerifier実装。
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier はJWTVerifierを生成する。
// secretはIdPと共有する署名鍵。空の場合はエラーを返す。
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify はトークンを検証し、subクレームのアカウントIDを返す。
// 署名アルゴリズムはHS256のみ許可する。
func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("token is invalid")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return claims.Subject, nil
}

// GenerateToken は指定アカウントIDのトークンを発行する。
// テストおよび運用ツール用（本番のトークン発行はIdPが行う）。
func (v *JWTVerifier) GenerateToken(userID string, ttl time.Duration) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// compile-time interface check
var _ TokenVerifier = (*JWTVerifier)(nil)
