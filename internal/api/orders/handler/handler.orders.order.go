// Package ordershdl - các handler thuộc domain orders.
package ordershdl

import (
	"fmt"

	basehdl "artshow_crm/internal/api/base/handler"
	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"
	orderssvc "artshow_crm/internal/api/orders/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// OrderHandler xử lý các route liên quan đến đơn hàng.
// Workflow đặt hàng (tính toán, ghi, gắn hóa đơn) nằm ở OrderService.
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, ordersdto.OrderInput, ordersdto.OrderInput]
	OrderService *orderssvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := orderssvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Order, ordersdto.OrderInput, ordersdto.OrderInput](orderService),
		OrderService: orderService,
	}, nil
}

// HandlePlaceOrder xử lý POST /orders/place-order.
// Trả 201 với {order, invoice|null}; 400 nếu ID sai định dạng hoặc số lượng
// vi phạm ràng buộc; 404 nếu hóa đơn gắn vào không tồn tại.
func (h *OrderHandler) HandlePlaceOrder(c fiber.Ctx) error {
	var input ordersdto.PlaceOrderInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	output, err := h.OrderService.PlaceOrder(basehdl.ContextWithUserID(c), &input)
	if err != nil {
		logrus.WithError(err).WithField("customer", input.Order.CustomerName).Error("HandlePlaceOrder: đặt hàng thất bại")
		h.HandleResponse(c, nil, err)
		return nil
	}

	return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
		"code":    common.StatusCreated,
		"message": common.MsgCreated,
		"data":    output,
		"status":  "success",
	})
}

// HandleGetOrder trả về đơn hàng kèm hóa đơn liên kết theo id.
func (h *OrderHandler) HandleGetOrder(c fiber.Ctx) error {
	orderID := utility.String2ObjectID(c.Params("id"))
	if orderID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	output, err := h.OrderService.GetOrderWithInvoice(basehdl.ContextWithUserID(c), orderID)
	h.HandleResponse(c, output, err)
	return nil
}

// HandleListOrders trả về tóm tắt tất cả đơn hàng.
func (h *OrderHandler) HandleListOrders(c fiber.Ctx) error {
	summaries, err := h.OrderService.ListSummaries(basehdl.ContextWithUserID(c))
	if summaries == nil {
		summaries = []ordersdto.OrderSummaryOutput{}
	}
	h.HandleResponse(c, summaries, err)
	return nil
}

// HandleSearchOrders tìm đơn hàng có phân trang.
func (h *OrderHandler) HandleSearchOrders(c fiber.Ctx) error {
	var input ordersdto.OrderSearchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.OrderService.SearchSummaries(basehdl.ContextWithUserID(c), &input)
	h.HandleResponse(c, result, err)
	return nil
}
