// Package router đăng ký các route thuộc domain catalog: sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "artshow_crm/internal/api/catalog/handler"
	"artshow_crm/internal/api/middleware"
	apirouter "artshow_crm/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig, "Pages.Catalog.Product")

	searchMiddleware := middleware.AuthMiddleware("Pages.Catalog.Product")
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/search", []fiber.Handler{searchMiddleware}, productHandler.HandleSearch)
	return nil
}
