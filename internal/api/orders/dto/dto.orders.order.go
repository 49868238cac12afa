// Package ordersdto - các DTO thuộc domain orders.
package ordersdto

import (
	models "artshow_crm/internal/api/orders/models"
)

// OrderItemInput một dòng hàng trong payload đặt hàng.
// Các trường dẫn xuất (netQuantity, amountBeforeDiscount, amountAfterDiscount)
// không nhận từ client.
type OrderItemInput struct {
	ProductID          string                    `json:"productId,omitempty"`
	ProductType        string                    `json:"productType,omitempty"`
	Name               string                    `json:"name,omitempty"`
	Description        string                    `json:"description,omitempty"`
	Quantity           int64                     `json:"quantity" validate:"gte=0"`
	UnitPrice          float64                   `json:"unitPrice" validate:"gte=0"`
	DiscountedQuantity int64                     `json:"discountedQuantity" validate:"gte=0"`
	DiscountAmount     float64                   `json:"discountAmount" validate:"gte=0"`
	CancelledQty       int64                     `json:"cancelledQty" validate:"gte=0"`
	TaxSnapshot        []models.TaxRuleSnapshot  `json:"taxSnapshot,omitempty"`
	CustomizedDetails  *models.CustomizedDetails `json:"customizedDetails,omitempty"`
}

// OrderInput payload đơn hàng trong request đặt hàng.
type OrderInput struct {
	OrderCode            string              `json:"orderCode,omitempty"`
	CustomerName         string              `json:"customerName" validate:"required"`
	CustomerID           string              `json:"customerId,omitempty"`
	Items                []OrderItemInput    `json:"items" validate:"required,min=1,dive"`
	DiscountAmount       float64             `json:"discountAmount" validate:"gte=0"`
	MiscCharges          []models.MiscCharge `json:"miscCharges,omitempty"`
	OrderStatus          string              `json:"orderStatus,omitempty"`
	InvoiceID            string              `json:"invoiceId,omitempty"`
	HandledBy            string              `json:"handledBy,omitempty"`
	LikelyDateOfDelivery int64               `json:"likelyDateOfDelivery,omitempty"`
	Note                 string              `json:"note,omitempty"`
}

// InvoiceInput payload hóa đơn đi kèm request đặt hàng.
// GenerateInvoice true nghĩa là tạo hóa đơn mới cho đơn hàng này.
type InvoiceInput struct {
	GenerateInvoice bool                   `json:"generateInvoice"`
	BillDate        string                 `json:"billDate,omitempty"`
	BillFrom        map[string]interface{} `json:"billFrom,omitempty"`
	BillTo          map[string]interface{} `json:"billTo,omitempty"`
	PaymentMode     string                 `json:"paymentMode,omitempty"`
	PaymentStatus   string                 `json:"paymentStatus,omitempty"`
	AdvancePaid     float64                `json:"advancePaid" validate:"gte=0"`
}

// PlaceOrderInput body của POST /orders/place-order.
type PlaceOrderInput struct {
	Order   OrderInput    `json:"order" validate:"required"`
	Invoice *InvoiceInput `json:"invoice,omitempty"`
}

// OrderWithInvoiceOutput kết quả đặt hàng: đơn hàng kèm hóa đơn (nếu có).
type OrderWithInvoiceOutput struct {
	Order   models.Order    `json:"order"`
	Invoice *models.Invoice `json:"invoice"`
}

// OrderSummaryOutput một dòng trong danh sách đơn hàng.
// PaymentStatus lấy từ hóa đơn mới nhất bao phủ đơn hàng, mặc định pending.
type OrderSummaryOutput struct {
	ID            string  `json:"id"`
	OrderCode     string  `json:"orderCode"`
	CustomerName  string  `json:"customerName"`
	CreatedAt     int64   `json:"createdAt"`
	ItemCount     int     `json:"itemCount"`
	PaymentStatus string  `json:"paymentStatus"`
	Total         float64 `json:"total"`
	OrderStatus   string  `json:"orderStatus"`
}

// OrderSearchInput đầu vào tìm kiếm đơn hàng có phân trang.
type OrderSearchInput struct {
	CustomerName string `json:"customerName,omitempty"`
	OrderCode    string `json:"orderCode,omitempty"`
	Page         int64  `json:"page,omitempty"`
	PageSize     int64  `json:"pageSize,omitempty"`
	Sort         string `json:"sort,omitempty" validate:"omitempty,oneof=newest oldest"`
}
