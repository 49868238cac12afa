// Package middleware - Test xác minh JWT của AuthMiddleware.
package middleware

import (
	"testing"
	"time"

	"artshow_crm/config"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"

	jwt "github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func signToken(t *testing.T, secret string, userID string, expiresAt int64) string {
	t.Helper()
	claims := tokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("ký token thất bại: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}
	userID := primitive.NewObjectID()
	future := time.Now().Add(time.Hour).Unix()

	t.Run("token hợp lệ", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", userID.Hex(), future)
		got, err := verifyToken(tokenString)
		if err != nil {
			t.Fatalf("verifyToken trả lỗi: %v", err)
		}
		if got != userID {
			t.Errorf("userId = %s, muốn %s", got.Hex(), userID.Hex())
		}
	})

	t.Run("sai secret", func(t *testing.T) {
		tokenString := signToken(t, "wrong-secret", userID.Hex(), future)
		if _, err := verifyToken(tokenString); err != common.ErrTokenInvalid {
			t.Errorf("lỗi = %v, muốn ErrTokenInvalid", err)
		}
	})

	t.Run("token hết hạn", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", userID.Hex(), time.Now().Add(-time.Hour).Unix())
		if _, err := verifyToken(tokenString); err != common.ErrTokenExpired {
			t.Errorf("lỗi = %v, muốn ErrTokenExpired", err)
		}
	})

	t.Run("userId sai định dạng", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", "not-a-hex-id", future)
		if _, err := verifyToken(tokenString); err != common.ErrTokenInvalid {
			t.Errorf("lỗi = %v, muốn ErrTokenInvalid", err)
		}
	})

	t.Run("chuỗi rác", func(t *testing.T) {
		if _, err := verifyToken("garbage.token.here"); err != common.ErrTokenInvalid {
			t.Errorf("lỗi = %v, muốn ErrTokenInvalid", err)
		}
	})
}
