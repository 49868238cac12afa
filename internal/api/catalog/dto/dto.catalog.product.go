// Package catalogdto - các DTO thuộc domain catalog.
package catalogdto

import (
	models "artshow_crm/internal/api/catalog/models"
)

// ProductCreateInput dùng cho tạo sản phẩm. Code không nhận từ client,
// được sinh tự động khi tạo.
type ProductCreateInput struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status,omitempty" validate:"omitempty,oneof=published draft scheduled inactive"`
	Template    string             `json:"template,omitempty" validate:"omitempty,oneof=default electronics office_stationary fashion"`
	Categories  []string           `json:"categories,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Media       []models.MediaItem `json:"media,omitempty"`
	Price       *models.Price      `json:"price,omitempty"`
	Inventory   models.Inventory   `json:"inventory,omitempty"`
	Variations  []models.Variation `json:"variations,omitempty"`
	Shipping    models.Shipping    `json:"shipping,omitempty"`
	Meta        models.Meta        `json:"meta,omitempty"`
	Scheduling  models.Scheduling  `json:"scheduling,omitempty"`
}

// ProductUpdateInput dùng cho cập nhật sản phẩm (partial).
type ProductUpdateInput struct {
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status,omitempty" validate:"omitempty,oneof=published draft scheduled inactive"`
	Template    string             `json:"template,omitempty" validate:"omitempty,oneof=default electronics office_stationary fashion"`
	Categories  []string           `json:"categories,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Media       []models.MediaItem `json:"media,omitempty"`
	Price       *models.Price      `json:"price,omitempty"`
	Inventory   models.Inventory   `json:"inventory,omitempty"`
	Variations  []models.Variation `json:"variations,omitempty"`
	Shipping    models.Shipping    `json:"shipping,omitempty"`
	Meta        models.Meta        `json:"meta,omitempty"`
	Scheduling  models.Scheduling  `json:"scheduling,omitempty"`
}

// ProductSearchInput đầu vào tìm kiếm sản phẩm có phân trang.
// SearchText khớp trên name, code, tags và categories.
type ProductSearchInput struct {
	SearchText string `json:"searchText,omitempty"`
	Page       int64  `json:"page,omitempty"`
	PageSize   int64  `json:"pageSize,omitempty"`
	Sort       string `json:"sort,omitempty" validate:"omitempty,oneof=newest oldest"`
}
