// Package router đăng ký các route thuộc domain crm: khách hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "artshow_crm/internal/api/crm/handler"
	"artshow_crm/internal/api/middleware"
	apirouter "artshow_crm/internal/api/router"
)

// Register đăng ký tất cả route crm lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/customer", customerHandler, apirouter.ReadWriteConfig, "Pages.Sales.Customers")

	readMiddleware := middleware.AuthMiddleware("Pages.Sales.Customers")
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "GET", "/active", []fiber.Handler{readMiddleware}, customerHandler.HandleFindActive)
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "POST", "/search", []fiber.Handler{readMiddleware}, customerHandler.HandleSearch)
	return nil
}
