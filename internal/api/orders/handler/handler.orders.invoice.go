package ordershdl

import (
	"fmt"

	basehdl "artshow_crm/internal/api/base/handler"
	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"
	orderssvc "artshow_crm/internal/api/orders/service"
)

// InvoiceHandler xử lý các route đọc hóa đơn. Hóa đơn chỉ được tạo/cập nhật
// qua workflow đặt hàng, không qua CRUD trực tiếp.
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, ordersdto.InvoiceInput, ordersdto.InvoiceInput]
	InvoiceService *orderssvc.InvoiceService
}

// NewInvoiceHandler tạo instance mới của InvoiceHandler
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := orderssvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %v", err)
	}
	return &InvoiceHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Invoice, ordersdto.InvoiceInput, ordersdto.InvoiceInput](invoiceService),
		InvoiceService: invoiceService,
	}, nil
}
