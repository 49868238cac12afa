// Package middleware - xác thực JWT và kiểm tra quyền theo danh mục quyền.
package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	adminsvc "artshow_crm/internal/api/admin/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"
	"artshow_crm/internal/utility"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthManager quản lý việc xác thực, giữ service và cache quyền của user.
// Cache 5 phút để tránh truy vấn roles trên mỗi request.
type AuthManager struct {
	userService     *adminsvc.UserService
	permissionCache *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
	authManagerErr      error
)

// GetAuthManager trả về instance singleton của AuthManager.
func GetAuthManager() (*AuthManager, error) {
	authManagerOnce.Do(func() {
		userService, err := adminsvc.NewUserService()
		if err != nil {
			authManagerErr = fmt.Errorf("failed to create user service: %w", err)
			return
		}
		authManagerInstance = &AuthManager{
			userService:     userService,
			permissionCache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance, authManagerErr
}

// InvalidatePermissionCache xóa cache quyền của một user (gọi khi đổi role).
func (m *AuthManager) InvalidatePermissionCache(userID primitive.ObjectID) {
	m.permissionCache.Delete(permissionCacheKey(userID))
}

func permissionCacheKey(userID primitive.ObjectID) string {
	return "permissions:" + userID.Hex()
}

// tokenClaims là payload JWT của hệ thống. Việc phát hành token nằm ngoài
// phạm vi service này, ở đây chỉ xác minh chữ ký và đọc userId.
type tokenClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// parseBearerToken tách token từ header Authorization.
func parseBearerToken(c fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", common.ErrTokenMissing
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", common.ErrTokenInvalid
	}
	return parts[1], nil
}

// verifyToken xác minh chữ ký JWT và trả về userId trong claims.
func verifyToken(tokenString string) (primitive.ObjectID, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không được hỗ trợ: %v", t.Header["alg"])
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return primitive.NilObjectID, common.ErrTokenExpired
		}
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	if !token.Valid {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// getPermissionNames lấy tập quyền của user, ưu tiên cache.
func (m *AuthManager) getPermissionNames(c fiber.Ctx, userID primitive.ObjectID) (map[string]struct{}, error) {
	cacheKey := permissionCacheKey(userID)
	if cached, found := m.permissionCache.Get(cacheKey); found {
		if permissions, ok := cached.(map[string]struct{}); ok {
			return permissions, nil
		}
	}

	names, err := m.userService.GetGrantedPermissionNames(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	permissions := make(map[string]struct{}, len(names))
	for _, name := range names {
		permissions[name] = struct{}{}
	}
	m.permissionCache.Set(cacheKey, permissions)
	return permissions, nil
}

// AuthMiddleware trả về middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập hợp lệ;
// user có role Administrator vượt qua mọi kiểm tra quyền.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := GetAuthManager()
		if err != nil {
			logrus.WithError(err).Error("AuthMiddleware: không khởi tạo được AuthManager")
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err))
			return nil
		}

		tokenString, err := parseBearerToken(c)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID, err := verifyToken(tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := manager.userService.FindOneById(c.Context(), userID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !user.IsActive {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị vô hiệu hóa", common.StatusForbidden, nil))
			return nil
		}

		c.Locals("user_id", userID.Hex())

		if requirePermission == "" {
			return c.Next()
		}

		isAdmin, err := manager.userService.IsAdministrator(c.Context(), userID)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if isAdmin {
			return c.Next()
		}

		permissions, err := manager.getPermissionNames(c, userID)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if _, ok := permissions[requirePermission]; !ok {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID.Hex(),
				"permission": requirePermission,
			}).Warn("AuthMiddleware: Từ chối truy cập do thiếu quyền")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		return c.Next()
	}
}
