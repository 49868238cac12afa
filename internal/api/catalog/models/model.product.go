// Package models - các model thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hợp lệ của sản phẩm
const (
	ProductStatusPublished = "published"
	ProductStatusDraft     = "draft"
	ProductStatusScheduled = "scheduled"
	ProductStatusInactive  = "inactive"
)

// MediaItem ảnh hoặc media của sản phẩm.
type MediaItem struct {
	URL string `json:"url,omitempty" bson:"url,omitempty"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

// Price cấu trúc giá của sản phẩm.
// DiscountType nhận none/percentage/fixed, TaxClass nhận tax_free/taxable_goods/downloadable_product.
type Price struct {
	BasePrice            float64 `json:"basePrice" bson:"basePrice" validate:"gte=0"`
	DiscountType         string  `json:"discountType,omitempty" bson:"discountType,omitempty" validate:"omitempty,oneof=none percentage fixed"`
	DiscountPercentage   float64 `json:"discountPercentage,omitempty" bson:"discountPercentage,omitempty" validate:"gte=0,lte=100"`
	FixedDiscountedPrice float64 `json:"fixedDiscountedPrice,omitempty" bson:"fixedDiscountedPrice,omitempty" validate:"gte=0"`
	TaxClass             string  `json:"taxClass,omitempty" bson:"taxClass,omitempty" validate:"omitempty,oneof=tax_free taxable_goods downloadable_product"`
	VatPercent           float64 `json:"vatPercent,omitempty" bson:"vatPercent,omitempty" validate:"gte=0,lte=100"`
}

// Inventory tồn kho. Quantity là tổng của kệ và kho, tính khi ghi.
type Inventory struct {
	SKU                 string `json:"sku,omitempty" bson:"sku,omitempty"`
	Barcode             string `json:"barcode,omitempty" bson:"barcode,omitempty"`
	QuantityInShelf     int64  `json:"quantityInShelf" bson:"quantityInShelf" validate:"gte=0"`
	QuantityInWarehouse int64  `json:"quantityInWarehouse" bson:"quantityInWarehouse" validate:"gte=0"`
	Quantity            int64  `json:"quantity" bson:"quantity"`
	AllowBackorders     bool   `json:"allowBackorders" bson:"allowBackorders"`
}

// Variation biến thể sản phẩm (color, size, material, style).
type Variation struct {
	Name   string   `json:"name" bson:"name" validate:"omitempty,oneof=color size material style"`
	Values []string `json:"values" bson:"values"`
}

// Shipping thông tin vận chuyển.
type Shipping struct {
	IsPhysical bool    `json:"isPhysical" bson:"isPhysical"`
	WeightInKg float64 `json:"weightInKg,omitempty" bson:"weightInKg,omitempty" validate:"gte=0"`
	LengthInCm float64 `json:"lengthInCm,omitempty" bson:"lengthInCm,omitempty" validate:"gte=0"`
	WidthInCm  float64 `json:"widthInCm,omitempty" bson:"widthInCm,omitempty" validate:"gte=0"`
	HeightInCm float64 `json:"heightInCm,omitempty" bson:"heightInCm,omitempty" validate:"gte=0"`
}

// Meta thông tin SEO của sản phẩm.
type Meta struct {
	MetaTitle       string   `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	MetaKeywords    []string `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`
}

// Scheduling lịch xuất bản.
type Scheduling struct {
	PublishAt int64 `json:"publishAt,omitempty" bson:"publishAt,omitempty"`
}

// Product sản phẩm trong catalog (tranh, khung, dịch vụ).
// Code được sinh tự động dạng PRD-YYYYMMDD-xxxxx khi tạo mới.
type Product struct {
	_Relationships        struct{}           `relationship:"collection:orders,field:items.productId,message:Không thể xóa sản phẩm vì có %d đơn hàng đang tham chiếu. Vui lòng xử lý các đơn hàng trước."`
	ID                    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name                  string             `json:"name" bson:"name" validate:"required"`
	Code                  string             `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	Description           string             `json:"description,omitempty" bson:"description,omitempty"`
	Status                string             `json:"status" bson:"status" default:"draft" validate:"omitempty,oneof=published draft scheduled inactive"`
	Template              string             `json:"template,omitempty" bson:"template,omitempty" validate:"omitempty,oneof=default electronics office_stationary fashion"`
	Categories            []string           `json:"categories" bson:"categories"`
	Tags                  []string           `json:"tags" bson:"tags"`
	Media                 []MediaItem        `json:"media" bson:"media"`
	Price                 *Price             `json:"price,omitempty" bson:"price,omitempty"`
	TotalWishlistedCount  float64            `json:"totalWishlistedCount,omitempty" bson:"totalWishlistedCount,omitempty"`
	Inventory             Inventory          `json:"inventory" bson:"inventory"`
	Variations            []Variation        `json:"variations" bson:"variations"`
	Shipping              Shipping           `json:"shipping" bson:"shipping"`
	Meta                  Meta               `json:"meta" bson:"meta"`
	Scheduling            Scheduling         `json:"scheduling" bson:"scheduling"`
	Rating                int64              `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt             int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64              `json:"updatedAt" bson:"updatedAt"`
}
