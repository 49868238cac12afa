// Package adminsvc - các service thuộc domain admin.
package adminsvc

import (
	"context"
	"fmt"

	models "artshow_crm/internal/api/admin/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	roleService *basesvc.BaseServiceMongoImpl[models.Role]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	roleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		roleService:          basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}

// FindRoles trả về các role đang được gán cho người dùng.
func (s *UserService) FindRoles(ctx context.Context, userID primitive.ObjectID) ([]models.Role, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.RoleIDs) == 0 {
		return []models.Role{}, nil
	}
	return s.roleService.FindManyByIds(ctx, user.RoleIDs)
}

// GetGrantedPermissionNames gom tên các quyền được cấp cho người dùng
// qua tất cả các role đang active. Kết quả đã khử trùng lặp.
func (s *UserService) GetGrantedPermissionNames(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	roles, err := s.FindRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, role := range roles {
		if !role.IsActive {
			continue
		}
		for _, name := range role.GrantedPermissionNames {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}

// IsAdministrator kiểm tra người dùng có role Administrator không.
func (s *UserService) IsAdministrator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(user.RoleIDs) == 0 {
		return false, nil
	}
	count, err := s.roleService.CountDocuments(ctx, bson.M{
		"_id":  bson.M{"$in": user.RoleIDs},
		"name": models.AdministratorRoleName,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RegisterAdminCheck đăng ký callback kiểm tra admin cho tầng base service.
// Gọi một lần khi khởi động, sau khi đã có UserService.
func (s *UserService) RegisterAdminCheck() {
	basesvc.SetIsAdminFromContextFunc(func(ctx context.Context) (bool, error) {
		userID, ok := basesvc.GetUserIDFromContext(ctx)
		if !ok {
			return false, nil
		}
		return s.IsAdministrator(ctx, userID)
	})
}
