// Package adminhdl - các handler thuộc domain admin.
package adminhdl

import (
	"fmt"

	admindto "artshow_crm/internal/api/admin/dto"
	models "artshow_crm/internal/api/admin/models"
	adminsvc "artshow_crm/internal/api/admin/service"
	basehdl "artshow_crm/internal/api/base/handler"
)

// UserHandler xử lý các route liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, admindto.UserCreateInput, admindto.UserUpdateInput]
	UserService *adminsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := adminsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, admindto.UserCreateInput, admindto.UserUpdateInput](userService),
		UserService: userService,
	}, nil
}
