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
)

// PermissionService quản lý danh mục quyền cố định của hệ thống.
type PermissionService struct {
	*basesvc.BaseServiceMongoImpl[models.Permission]
}

// NewPermissionService tạo mới PermissionService
func NewPermissionService() (*PermissionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Permissions)
	if !exist {
		return nil, fmt.Errorf("failed to get permissions collection: %v", common.ErrNotFound)
	}
	return &PermissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Permission](collection),
	}, nil
}

// permissionCatalogItem một mục trong danh mục quyền mặc định.
type permissionCatalogItem struct {
	Name               string
	DisplayName        string
	Description        string
	ParentName         string
	IsGrantedByDefault bool
}

// defaultPermissionCatalog danh mục quyền cố định của ứng dụng.
// Cây quyền theo trang: Administration (org unit, role, user),
// Catalog (product, product category), Sales (order, customer).
var defaultPermissionCatalog = []permissionCatalogItem{
	{Name: "Pages", DisplayName: "Pages", Description: "Access to all pages"},
	{Name: "Pages.Administration", DisplayName: "Administration", Description: "Access to all Administration pages", ParentName: "Pages"},
	{Name: "Pages.Administration.OrganizationUnits", DisplayName: "Organization Units", Description: "Access to organization units", ParentName: "Pages.Administration"},
	{Name: "Pages.Administration.OrganizationUnits.Detail", DisplayName: "Organization Unit Details", Description: "View organization unit details", ParentName: "Pages.Administration.OrganizationUnits"},
	{Name: "Pages.Administration.OrganizationUnits.Create", DisplayName: "Create Organization Unit", Description: "Create new organization units", ParentName: "Pages.Administration.OrganizationUnits"},
	{Name: "Pages.Administration.OrganizationUnits.Edit", DisplayName: "Edit Organization Unit", Description: "Edit existing organization units", ParentName: "Pages.Administration.OrganizationUnits"},
	{Name: "Pages.Administration.OrganizationUnits.Delete", DisplayName: "Delete Organization Unit", Description: "Delete organization units", ParentName: "Pages.Administration.OrganizationUnits"},
	{Name: "Pages.Administration.Roles", DisplayName: "Roles", Description: "Manage application roles", ParentName: "Pages.Administration"},
	{Name: "Pages.Administration.Roles.Create", DisplayName: "Create Role", Description: "Create new role", ParentName: "Pages.Administration.Roles"},
	{Name: "Pages.Administration.Roles.Edit", DisplayName: "Edit Role", Description: "Edit role", ParentName: "Pages.Administration.Roles"},
	{Name: "Pages.Administration.Roles.Delete", DisplayName: "Delete Role", Description: "Delete existing role", ParentName: "Pages.Administration.Roles"},
	{Name: "Pages.Administration.Users", DisplayName: "Users", Description: "Manage users and their permissions", ParentName: "Pages.Administration"},
	{Name: "Pages.Administration.Users.Create", DisplayName: "Create User", Description: "Create new user", ParentName: "Pages.Administration.Users"},
	{Name: "Pages.Administration.Users.Edit", DisplayName: "Edit User", Description: "Edit user", ParentName: "Pages.Administration.Users"},
	{Name: "Pages.Administration.Users.Delete", DisplayName: "Delete User", Description: "Delete existing user", ParentName: "Pages.Administration.Users"},
	{Name: "Pages.Catalog", DisplayName: "Catalog", Description: "Manage access for Catalog", ParentName: "Pages"},
	{Name: "Pages.Catalog.Product", DisplayName: "Products", Description: "Manage products in catalog", ParentName: "Pages.Catalog"},
	{Name: "Pages.Catalog.ProductCategory", DisplayName: "Product Categories", Description: "Manage product categories", ParentName: "Pages.Catalog"},
	{Name: "Pages.Sales", DisplayName: "Sales", Description: "Manage access for Sales", ParentName: "Pages"},
	{Name: "Pages.Sales.Order", DisplayName: "Orders", Description: "Manage sales orders", ParentName: "Pages.Sales"},
	{Name: "Pages.Sales.Customers", DisplayName: "Customers", Description: "Manage sales customers", ParentName: "Pages.Sales"},
}

// DefaultPermissions dựng danh sách model Permission từ danh mục mặc định.
func DefaultPermissions() []models.Permission {
	now := time.Now().UnixMilli()
	items := make([]models.Permission, 0, len(defaultPermissionCatalog))
	for _, item := range defaultPermissionCatalog {
		items = append(items, models.Permission{
			Name:               item.Name,
			DisplayName:        item.DisplayName,
			Description:        item.Description,
			ParentName:         item.ParentName,
			IsGrantedByDefault: item.IsGrantedByDefault,
			IsSystem:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	return items
}

// ResetPermissions xóa toàn bộ danh mục quyền và ghi lại danh mục mặc định.
// Trả về số quyền đã ghi. Xóa trực tiếp trên collection vì dữ liệu là system data.
func (s *PermissionService) ResetPermissions(ctx context.Context) (int64, error) {
	deleteResult, err := s.Collection().DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	items := DefaultPermissions()
	insertCtx := basesvc.WithSystemDataInsertAllowed(ctx)
	if _, err := s.BaseServiceMongoImpl.InsertMany(insertCtx, items); err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"deleted":  deleteResult.DeletedCount,
		"inserted": len(items),
	}).Info("Đã reset danh mục quyền về mặc định")

	return int64(len(items)), nil
}

// SeedPermissions ghi danh mục quyền mặc định nếu collection đang rỗng.
// Dùng khi khởi động server ở chế độ init.
func (s *PermissionService) SeedPermissions(ctx context.Context) error {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.ResetPermissions(ctx)
	return err
}
