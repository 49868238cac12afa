package adminhdl

import (
	"fmt"

	admindto "artshow_crm/internal/api/admin/dto"
	models "artshow_crm/internal/api/admin/models"
	adminsvc "artshow_crm/internal/api/admin/service"
	basehdl "artshow_crm/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// PermissionHandler xử lý các route liên quan đến danh mục quyền.
// Danh mục là dữ liệu hệ thống, các route ghi qua CRUD bị khóa (ReadOnly),
// thay đổi chỉ qua endpoint reset.
type PermissionHandler struct {
	*basehdl.BaseHandler[models.Permission, admindto.PermissionCreateInput, admindto.PermissionUpdateInput]
	PermissionService *adminsvc.PermissionService
}

// NewPermissionHandler tạo instance mới của PermissionHandler
func NewPermissionHandler() (*PermissionHandler, error) {
	permissionService, err := adminsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	return &PermissionHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Permission, admindto.PermissionCreateInput, admindto.PermissionUpdateInput](permissionService),
		PermissionService: permissionService,
	}, nil
}

// HandleResetPermissions xóa toàn bộ danh mục quyền và ghi lại danh mục mặc định.
func (h *PermissionHandler) HandleResetPermissions(c fiber.Ctx) error {
	count, err := h.PermissionService.ResetPermissions(basehdl.ContextWithUserID(c))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{
		"message": "Đã reset danh mục quyền",
		"count":   count,
	}, nil)
	return nil
}
