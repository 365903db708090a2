package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-test-secret-test-secret"

// TestNewJWTVerifier_EmptySecret は空の署名鍵がエラーになることを検証する。
func TestNewJWTVerifier_EmptySecret(t *testing.T) {
	_, err := NewJWTVerifier("")
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

// TestVerify_ValidToken は正しく署名されたトークンからアカウントIDが取り出せることを検証する。
func TestVerify_ValidToken(t *testing.T) {
	v, err := NewJWTVerifier(testSecret)
	if err != nil {
		t.Fatalf("NewJWTVerifier returned error: %v", err)
	}

	token, err := v.GenerateToken("uid-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userID, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "uid-123" {
		t.Errorf("userID = %q, want %q", userID, "uid-123")
	}
}

// TestVerify_WrongSecret は異なる鍵で署名されたトークンが拒否されることを検証する。
func TestVerify_WrongSecret(t *testing.T) {
	issuer, _ := NewJWTVerifier("another-secret-another-secret-xx")
	token, err := issuer.GenerateToken("uid-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	v, _ := NewJWTVerifier(testSecret)
	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected error for token signed with wrong secret")
	}
}

// TestVerify_ExpiredToken は期限切れトークンが拒否されることを検証する。
func TestVerify_ExpiredToken(t *testing.T) {
	v, _ := NewJWTVerifier(testSecret)
	token, err := v.GenerateToken("uid-123", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

// TestVerify_MissingSubject はsubクレームのないトークンが拒否されることを検証する。
func TestVerify_MissingSubject(t *testing.T) {
	v, _ := NewJWTVerifier(testSecret)
	token, err := v.GenerateToken("", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected error for token without subject")
	}
}

// TestVerify_Garbage はJWT形式でない文字列が拒否されることを検証する。
func TestVerify_Garbage(t *testing.T) {
	v, _ := NewJWTVerifier(testSecret)

	for _, input := range []string{"", "garbage", strings.Repeat("a.", 10)} {
		if _, err := v.Verify(input); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}
