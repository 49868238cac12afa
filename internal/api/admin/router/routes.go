// Package router đăng ký các route thuộc domain admin: user, role,
// danh mục quyền và đơn vị tổ chức.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adminhdl "artshow_crm/internal/api/admin/handler"
	basehdl "artshow_crm/internal/api/base/handler"
	"artshow_crm/internal/api/middleware"
	apirouter "artshow_crm/internal/api/router"
)

// Register đăng ký tất cả route admin lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	if err := registerRoleRoutes(v1, r); err != nil {
		return err
	}
	if err := registerPermissionRoutes(v1, r); err != nil {
		return err
	}
	if err := registerOrganisationUnitRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := adminhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadWriteConfig, "Pages.Administration.Users")
	return nil
}

func registerRoleRoutes(router fiber.Router, r *apirouter.Router) error {
	roleHandler, err := adminhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/role", roleHandler, apirouter.ReadWriteConfig, "Pages.Administration.Roles")
	return nil
}

func registerPermissionRoutes(router fiber.Router, r *apirouter.Router) error {
	permissionHandler, err := adminhdl.NewPermissionHandler()
	if err != nil {
		return fmt.Errorf("failed to create permission handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/role-permission", permissionHandler, apirouter.ReadOnlyConfig, "Pages.Administration.Roles")

	resetMiddleware := middleware.AuthMiddleware("Pages.Administration.Roles.Edit")
	apirouter.RegisterRouteWithMiddleware(router, "/role-permission", "POST", "/reset", []fiber.Handler{resetMiddleware}, permissionHandler.HandleResetPermissions)
	return nil
}

func registerOrganisationUnitRoutes(router fiber.Router, r *apirouter.Router) error {
	orgUnitHandler, err := adminhdl.NewOrganisationUnitHandler()
	if err != nil {
		return fmt.Errorf("failed to create organisation unit handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/organisation-unit", orgUnitHandler, apirouter.ReadWriteConfig, "Pages.Administration.OrganizationUnits")

	searchMiddleware := middleware.AuthMiddleware("Pages.Administration.OrganizationUnits")
	apirouter.RegisterRouteWithMiddleware(router, "/organisation-unit", "POST", "/search", []fiber.Handler{searchMiddleware}, orgUnitHandler.HandleSearch)

	detailMiddleware := middleware.AuthMiddleware("Pages.Administration.OrganizationUnits.Detail")
	apirouter.RegisterRouteWithMiddleware(router, "/organisation-unit", "POST", "/:id/roles/search", []fiber.Handler{detailMiddleware}, orgUnitHandler.HandleSearchRoles)

	editMiddleware := middleware.AuthMiddleware("Pages.Administration.OrganizationUnits.Edit")
	apirouter.RegisterRouteWithMiddleware(router, "/organisation-unit", "POST", "/roles/add", []fiber.Handler{editMiddleware}, orgUnitHandler.HandleAddRoles)
	apirouter.RegisterRouteWithMiddleware(router, "/organisation-unit", "POST", "/roles/remove", []fiber.Handler{editMiddleware}, orgUnitHandler.HandleRemoveRole)
	return nil
}
