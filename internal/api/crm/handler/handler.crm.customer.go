// Package crmhdl - các handler thuộc domain crm.
package crmhdl

import (
	"fmt"

	basehdl "artshow_crm/internal/api/base/handler"
	crmdto "artshow_crm/internal/api/crm/dto"
	models "artshow_crm/internal/api/crm/models"
	crmsvc "artshow_crm/internal/api/crm/service"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler xử lý các route liên quan đến khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	CustomerService *crmsvc.CustomerService
}

// NewCustomerHandler tạo instance mới của CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := crmsvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](customerService),
		CustomerService: customerService,
	}, nil
}

// HandleFindActive trả về danh sách khách hàng đang active.
func (h *CustomerHandler) HandleFindActive(c fiber.Ctx) error {
	customers, err := h.CustomerService.FindActive(basehdl.ContextWithUserID(c))
	if customers == nil {
		customers = []models.Customer{}
	}
	h.HandleResponse(c, customers, err)
	return nil
}

// HandleSearch tìm khách hàng có phân trang.
func (h *CustomerHandler) HandleSearch(c fiber.Ctx) error {
	var input crmdto.CustomerSearchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.CustomerService.SearchWithPagination(basehdl.ContextWithUserID(c), &input)
	h.HandleResponse(c, result, err)
	return nil
}
