// Package adminsvc - Test tính toàn vẹn của danh mục quyền mặc định.
package adminsvc

import (
	"strings"
	"testing"
)

func TestDefaultPermissionCatalog_Integrity(t *testing.T) {
	if len(defaultPermissionCatalog) != 21 {
		t.Fatalf("danh mục có %d quyền, muốn 21", len(defaultPermissionCatalog))
	}

	names := map[string]bool{}
	for _, item := range defaultPermissionCatalog {
		if item.Name == "" {
			t.Error("tên quyền không được rỗng")
		}
		if names[item.Name] {
			t.Errorf("tên quyền %q bị trùng", item.Name)
		}
		names[item.Name] = true
		if item.IsGrantedByDefault {
			t.Errorf("quyền %q không được cấp mặc định", item.Name)
		}
	}

	// Mọi parentName phải trỏ tới một quyền tồn tại trong danh mục
	for _, item := range defaultPermissionCatalog {
		if item.ParentName == "" {
			continue
		}
		if !names[item.ParentName] {
			t.Errorf("quyền %q trỏ parent %q không tồn tại", item.Name, item.ParentName)
		}
		// Tên con phải bắt đầu bằng tên parent
		if !strings.HasPrefix(item.Name, item.ParentName+".") {
			t.Errorf("quyền %q không nằm dưới parent %q theo tên", item.Name, item.ParentName)
		}
	}
}

func TestDefaultPermissionCatalog_RouteGuards(t *testing.T) {
	// Các quyền mà router dùng làm guard phải có mặt trong danh mục
	required := []string{
		"Pages.Administration.Users",
		"Pages.Administration.Users.Create",
		"Pages.Administration.Users.Edit",
		"Pages.Administration.Users.Delete",
		"Pages.Administration.Roles",
		"Pages.Administration.Roles.Edit",
		"Pages.Administration.OrganizationUnits",
		"Pages.Administration.OrganizationUnits.Detail",
		"Pages.Administration.OrganizationUnits.Edit",
		"Pages.Catalog.Product",
		"Pages.Sales.Order",
		"Pages.Sales.Customers",
	}
	names := map[string]bool{}
	for _, item := range defaultPermissionCatalog {
		names[item.Name] = true
	}
	for _, name := range required {
		if !names[name] {
			t.Errorf("danh mục thiếu quyền %q dùng làm guard trên route", name)
		}
	}
}

func TestDefaultPermissions_SystemFlag(t *testing.T) {
	items := DefaultPermissions()
	if len(items) != len(defaultPermissionCatalog) {
		t.Fatalf("DefaultPermissions trả %d mục, muốn %d", len(items), len(defaultPermissionCatalog))
	}
	for _, item := range items {
		if !item.IsSystem {
			t.Errorf("quyền %q phải có isSystem=true", item.Name)
		}
		if item.CreatedAt == 0 || item.UpdatedAt == 0 {
			t.Errorf("quyền %q thiếu timestamp", item.Name)
		}
	}
}
