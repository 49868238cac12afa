// Package models - các model thuộc domain orders (đơn hàng, hóa đơn).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái đơn hàng thường gặp.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusPartial   = "partial"
	OrderStatusCancelled = "cancelled"
)

// MiscCharge phụ phí cộng thẳng vào tổng tiền đơn hàng.
type MiscCharge struct {
	Label  string  `json:"label" bson:"label"`
	Amount float64 `json:"amount" bson:"amount"`
}

// FrameDetails chi tiết khung tranh.
type FrameDetails struct {
	Type   string  `json:"type,omitempty" bson:"type,omitempty"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// GlassDetails chi tiết kính.
type GlassDetails struct {
	IsEnabled bool    `json:"isEnabled" bson:"isEnabled"`
	Type      string  `json:"type,omitempty" bson:"type,omitempty"`
	Width     float64 `json:"width" bson:"width"`
	Height    float64 `json:"height" bson:"height"`
}

// MountingDetails chi tiết bo (mount) theo bốn cạnh.
type MountingDetails struct {
	IsEnabled bool    `json:"isEnabled" bson:"isEnabled"`
	Top       float64 `json:"top" bson:"top"`
	Right     float64 `json:"right" bson:"right"`
	Bottom    float64 `json:"bottom" bson:"bottom"`
	Left      float64 `json:"left" bson:"left"`
}

// AdditionalServices các dịch vụ bổ sung cho tranh.
type AdditionalServices struct {
	Varnish    bool `json:"varnish" bson:"varnish"`
	Lamination bool `json:"lamination" bson:"lamination"`
	RouterCut  bool `json:"routerCut" bson:"routerCut"`
}

// CustomizedDetails tùy biến của một item (kích thước, khung, kính, bo, dịch vụ).
type CustomizedDetails struct {
	Name        string              `json:"name" bson:"name"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Width       float64             `json:"width" bson:"width"`
	Height      float64             `json:"height" bson:"height"`
	Frame       *FrameDetails       `json:"frame,omitempty" bson:"frame,omitempty"`
	Glass       *GlassDetails       `json:"glass,omitempty" bson:"glass,omitempty"`
	Mounting    *MountingDetails    `json:"mounting,omitempty" bson:"mounting,omitempty"`
	Additional  *AdditionalServices `json:"additional,omitempty" bson:"additional,omitempty"`
}

// TaxRuleSnapshot bản chụp quy tắc thuế tại thời điểm đặt hàng.
// Bất biến sau khi copy, không tham chiếu ngược về bảng tax rule.
type TaxRuleSnapshot struct {
	RuleID     string  `json:"id,omitempty" bson:"ruleId,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Code       string  `json:"code" bson:"code"`
	Percentage float64 `json:"percentage" bson:"percentage"`
	Region     string  `json:"region,omitempty" bson:"region,omitempty"`
	ValidFrom  int64   `json:"validFrom,omitempty" bson:"validFrom,omitempty"`
	ValidTo    int64   `json:"validTo,omitempty" bson:"validTo,omitempty"`
	IsActive   bool    `json:"isActive" bson:"isActive"`
}

// OrderItem một dòng hàng trong đơn.
// NetQuantity, AmountBeforeDiscount, AmountAfterDiscount do calculator tính,
// client không được gửi lên.
type OrderItem struct {
	ProductID            primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"`
	ProductType          string             `json:"productType,omitempty" bson:"productType,omitempty"`
	Name                 string             `json:"name,omitempty" bson:"name,omitempty"`
	Description          string             `json:"description,omitempty" bson:"description,omitempty"`
	Quantity             int64              `json:"quantity" bson:"quantity"`
	UnitPrice            float64            `json:"unitPrice" bson:"unitPrice"`
	DiscountedQuantity   int64              `json:"discountedQuantity" bson:"discountedQuantity"`
	DiscountAmount       float64            `json:"discountAmount" bson:"discountAmount"`
	CancelledQty         int64              `json:"cancelledQty" bson:"cancelledQty"`
	TaxSnapshot          []TaxRuleSnapshot  `json:"taxSnapshot" bson:"taxSnapshot"`
	CustomizedDetails    *CustomizedDetails `json:"customizedDetails,omitempty" bson:"customizedDetails,omitempty"`
	NetQuantity          int64              `json:"netQuantity" bson:"netQuantity"`
	AmountBeforeDiscount float64            `json:"amountBeforeDiscount" bson:"amountBeforeDiscount"`
	AmountAfterDiscount  float64            `json:"amountAfterDiscount" bson:"amountAfterDiscount"`
}

// Order đơn hàng. Các trường tài chính tổng hợp (Subtotal, TotalDiscountAmount,
// TotalAmount, CancelledAmount) chỉ do calculator ghi, bất biến sau khi tạo.
type Order struct {
	ID                   primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	OrderCode            string              `json:"orderCode,omitempty" bson:"orderCode,omitempty" index:"unique,sparse"`
	CustomerName         string              `json:"customerName" bson:"customerName"`
	CustomerID           primitive.ObjectID  `json:"customerId,omitempty" bson:"customerId,omitempty"`
	Items                []OrderItem         `json:"items" bson:"items"`
	DiscountAmount       float64             `json:"discountAmount" bson:"discountAmount"`
	MiscCharges          []MiscCharge        `json:"miscCharges" bson:"miscCharges"`
	OrderStatus          string              `json:"orderStatus,omitempty" bson:"orderStatus,omitempty"`
	InvoiceID            *primitive.ObjectID `json:"invoiceId,omitempty" bson:"invoiceId,omitempty"`
	HandledBy            string              `json:"handledBy,omitempty" bson:"handledBy,omitempty"`
	LikelyDateOfDelivery int64               `json:"likelyDateOfDelivery,omitempty" bson:"likelyDateOfDelivery,omitempty"`
	Note                 string              `json:"note,omitempty" bson:"note,omitempty"`
	Subtotal             float64             `json:"subtotal" bson:"subtotal"`
	TotalDiscountAmount  float64             `json:"totalDiscountAmount" bson:"totalDiscountAmount"`
	TotalAmount          float64             `json:"totalAmount" bson:"totalAmount"`
	CancelledAmount      float64             `json:"cancelledAmount" bson:"cancelledAmount"`
	CreatedAt            int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64               `json:"updatedAt" bson:"updatedAt"`
}
