package adminsvc

import (
	"context"
	"fmt"
	"time"

	models "artshow_crm/internal/api/admin/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}
	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](collection),
	}, nil
}

// InsertOne tạo vai trò mới.
// Nếu Name trống thì dùng DisplayName làm Name; CreationTime được đóng dấu tại đây.
func (s *RoleService) InsertOne(ctx context.Context, role models.Role) (models.Role, error) {
	if role.Name == "" {
		role.Name = role.DisplayName
	}
	if role.DisplayName == "" {
		role.DisplayName = role.Name
	}
	if role.CreationTime == 0 {
		role.CreationTime = time.Now().UnixMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, role)
}

// DeleteById xóa vai trò theo id, chặn xóa role Administrator.
func (s *RoleService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	role, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if role.Name == models.AdministratorRoleName {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể xóa role Administrator",
			common.StatusForbidden,
			nil,
		)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// EnsureAdministratorRole tạo role Administrator nếu chưa tồn tại.
// Role này là system data, được cấp toàn bộ quyền trong danh mục.
func (s *RoleService) EnsureAdministratorRole(ctx context.Context) error {
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"name": models.AdministratorRoleName})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	permissionNames := make([]string, 0, len(defaultPermissionCatalog))
	for _, item := range defaultPermissionCatalog {
		permissionNames = append(permissionNames, item.Name)
	}

	now := time.Now().UnixMilli()
	adminRole := models.Role{
		Name:                   models.AdministratorRoleName,
		DisplayName:            models.AdministratorRoleName,
		Description:            "Role quản trị hệ thống, được cấp toàn bộ quyền",
		IsStatic:               true,
		IsActive:               true,
		GrantedPermissionNames: permissionNames,
		IsSystem:               true,
		CreationTime:           now,
	}

	insertCtx := basesvc.WithSystemDataInsertAllowed(ctx)
	if _, err := s.InsertOne(insertCtx, adminRole); err != nil {
		return err
	}

	logrus.Info("Đã tạo role Administrator mặc định")
	return nil
}
