package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userContextKey string

const userIDContextKey userContextKey = "user_id"

// SetUserIDToContext lưu userID vào context để các service phía dưới kiểm tra quyền (vd: admin sửa system data).
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context. Trả về false nếu context không có userID.
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}
