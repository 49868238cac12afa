// Package models - Invoice thuộc domain orders.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái thanh toán của hóa đơn.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Invoice hóa đơn, có thể bao phủ nhiều đơn hàng (OrderIDs).
// Bất biến: BalanceAmount == TotalAmount - AdvancePaid, được giữ qua các lần
// gắn thêm đơn hàng bằng $inc nguyên tử trên cả ba trường.
type Invoice struct {
	_Relationships struct{}               `relationship:"collection:orders,field:invoiceId,message:Không thể xóa hóa đơn vì có %d đơn hàng đang tham chiếu. Vui lòng gỡ liên kết trước."`
	ID             primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	OrderIDs       []primitive.ObjectID   `json:"orderIds" bson:"orderIds"`
	BillDate       string                 `json:"billDate,omitempty" bson:"billDate,omitempty"`
	BillFrom       map[string]interface{} `json:"billFrom,omitempty" bson:"billFrom,omitempty"`
	BillTo         map[string]interface{} `json:"billTo,omitempty" bson:"billTo,omitempty"`
	PaymentMode    string                 `json:"paymentMode,omitempty" bson:"paymentMode,omitempty"`
	PaymentStatus  string                 `json:"paymentStatus" bson:"paymentStatus" default:"pending"`
	TotalAmount    float64                `json:"totalAmount" bson:"totalAmount"`
	AdvancePaid    float64                `json:"advancePaid" bson:"advancePaid"`
	BalanceAmount  float64                `json:"balanceAmount" bson:"balanceAmount"`
	CreatedAt      int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                  `json:"updatedAt" bson:"updatedAt"`
}
