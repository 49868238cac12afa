package adminhdl

import (
	"fmt"

	admindto "artshow_crm/internal/api/admin/dto"
	models "artshow_crm/internal/api/admin/models"
	adminsvc "artshow_crm/internal/api/admin/service"
	basehdl "artshow_crm/internal/api/base/handler"
)

// RoleHandler xử lý các route liên quan đến vai trò.
// Logic copy displayName sang name và guard xóa Administrator nằm ở RoleService.
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, admindto.RoleCreateInput, admindto.RoleUpdateInput]
	RoleService *adminsvc.RoleService
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := adminsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	return &RoleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Role, admindto.RoleCreateInput, admindto.RoleUpdateInput](roleService),
		RoleService: roleService,
	}, nil
}
