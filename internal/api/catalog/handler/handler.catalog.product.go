// Package cataloghdl - các handler thuộc domain catalog.
package cataloghdl

import (
	"fmt"

	basehdl "artshow_crm/internal/api/base/handler"
	catalogdto "artshow_crm/internal/api/catalog/dto"
	models "artshow_crm/internal/api/catalog/models"
	catalogsvc "artshow_crm/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các route liên quan đến sản phẩm.
// Sinh code sản phẩm nằm ở ProductService.
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService),
		ProductService: productService,
	}, nil
}

// HandleSearch tìm sản phẩm có phân trang.
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	var input catalogdto.ProductSearchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.ProductService.SearchWithPagination(basehdl.ContextWithUserID(c), &input)
	h.HandleResponse(c, result, err)
	return nil
}
