// Package crmdto - các DTO thuộc domain crm.
package crmdto

import (
	models "artshow_crm/internal/api/crm/models"
)

// CustomerCreateInput dùng cho tạo khách hàng.
type CustomerCreateInput struct {
	Name            string           `json:"name" validate:"required"`
	Contact         models.Contact   `json:"contact,omitempty"`
	Description     string           `json:"description,omitempty"`
	Addresses       []models.Address `json:"addresses,omitempty"`
	ShippingAddress *models.Address  `json:"shippingAddress,omitempty"`
	BillingAddress  *models.Address  `json:"billingAddress,omitempty"`
}

// CustomerUpdateInput dùng cho cập nhật khách hàng.
type CustomerUpdateInput struct {
	Name            string           `json:"name,omitempty"`
	Contact         models.Contact   `json:"contact,omitempty"`
	Description     string           `json:"description,omitempty"`
	Addresses       []models.Address `json:"addresses,omitempty"`
	ShippingAddress *models.Address  `json:"shippingAddress,omitempty"`
	BillingAddress  *models.Address  `json:"billingAddress,omitempty"`
}

// CustomerSearchInput đầu vào tìm kiếm khách hàng có phân trang.
// Status nhận "active"/"inactive", rỗng = tất cả.
type CustomerSearchInput struct {
	SearchText string `json:"searchText,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Page       int64  `json:"page,omitempty"`
	PageSize   int64  `json:"pageSize,omitempty"`
	Sort       string `json:"sort,omitempty" validate:"omitempty,oneof=newest oldest"`
}
