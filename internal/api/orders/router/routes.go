// Package router đăng ký các route thuộc domain orders: đơn hàng và hóa đơn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"artshow_crm/internal/api/middleware"
	ordershdl "artshow_crm/internal/api/orders/handler"
	apirouter "artshow_crm/internal/api/router"
)

// Register đăng ký tất cả route orders lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := ordershdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("Pages.Sales.Order")
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/place-order", []fiber.Handler{readMiddleware}, orderHandler.HandlePlaceOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", []fiber.Handler{readMiddleware}, orderHandler.HandleListOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/search", []fiber.Handler{readMiddleware}, orderHandler.HandleSearchOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:id", []fiber.Handler{readMiddleware}, orderHandler.HandleGetOrder)

	invoiceHandler, err := ordershdl.NewInvoiceHandler()
	if err != nil {
		return fmt.Errorf("failed to create invoice handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/invoice", invoiceHandler, apirouter.ReadOnlyConfig, "Pages.Sales.Order")
	return nil
}
