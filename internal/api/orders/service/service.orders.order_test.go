// Package orderssvc - Test phần thuần của workflow đặt hàng: dựng model từ
// payload, nhận diện lỗi transaction, dựng dòng tóm tắt.
package orderssvc

import (
	"errors"
	"testing"

	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"
	"artshow_crm/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestBuildOrderFromInput_Defaults(t *testing.T) {
	input := &ordersdto.OrderInput{
		CustomerName: "Nguyễn Văn A",
		Items: []ordersdto.OrderItemInput{
			{Name: "Tranh", Quantity: 1, UnitPrice: 100},
		},
	}
	order, err := buildOrderFromInput(input)
	if err != nil {
		t.Fatalf("buildOrderFromInput trả lỗi: %v", err)
	}
	if order.OrderStatus != models.OrderStatusPending {
		t.Errorf("orderStatus = %q, muốn %q", order.OrderStatus, models.OrderStatusPending)
	}
	if order.MiscCharges == nil {
		t.Error("miscCharges phải là slice rỗng, không được nil")
	}
	if len(order.Items) != 1 {
		t.Fatalf("số dòng hàng = %d, muốn 1", len(order.Items))
	}
	if order.Items[0].TaxSnapshot == nil {
		t.Error("taxSnapshot phải là slice rỗng, không được nil")
	}
	if order.InvoiceID != nil {
		t.Error("invoiceId phải nil khi payload không gửi")
	}
}

func TestBuildOrderFromInput_ParsesIDs(t *testing.T) {
	customerID := primitive.NewObjectID()
	invoiceID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	input := &ordersdto.OrderInput{
		CustomerID: customerID.Hex(),
		InvoiceID:  invoiceID.Hex(),
		Items: []ordersdto.OrderItemInput{
			{ProductID: productID.Hex(), Name: "Tranh", Quantity: 1, UnitPrice: 100},
		},
	}
	order, err := buildOrderFromInput(input)
	if err != nil {
		t.Fatalf("buildOrderFromInput trả lỗi: %v", err)
	}
	if order.CustomerID != customerID {
		t.Errorf("customerId = %s, muốn %s", order.CustomerID.Hex(), customerID.Hex())
	}
	if order.InvoiceID == nil || *order.InvoiceID != invoiceID {
		t.Errorf("invoiceId = %v, muốn %s", order.InvoiceID, invoiceID.Hex())
	}
	if order.Items[0].ProductID != productID {
		t.Errorf("productId = %s, muốn %s", order.Items[0].ProductID.Hex(), productID.Hex())
	}
}

func TestBuildOrderFromInput_MalformedIDs(t *testing.T) {
	cases := []struct {
		name  string
		input ordersdto.OrderInput
	}{
		{"customerId sai định dạng", ordersdto.OrderInput{CustomerID: "not-hex", Items: []ordersdto.OrderItemInput{{Name: "A", Quantity: 1, UnitPrice: 1}}}},
		{"invoiceId sai định dạng", ordersdto.OrderInput{InvoiceID: "xyz", Items: []ordersdto.OrderItemInput{{Name: "A", Quantity: 1, UnitPrice: 1}}}},
		{"productId sai định dạng", ordersdto.OrderInput{Items: []ordersdto.OrderItemInput{{ProductID: "123", Name: "A", Quantity: 1, UnitPrice: 1}}}},
	}
	for _, tc := range cases {
		if _, err := buildOrderFromInput(&tc.input); err == nil {
			t.Errorf("%s: muốn lỗi, nhận được nil", tc.name)
		}
	}
}

func TestIsTransactionUnsupported(t *testing.T) {
	if isTransactionUnsupported(nil) {
		t.Error("nil không phải lỗi transaction")
	}
	if isTransactionUnsupported(errors.New("connection refused")) {
		t.Error("lỗi kết nối không phải lỗi transaction")
	}
	if !isTransactionUnsupported(mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}) {
		t.Error("CommandError code 20 phải được nhận diện")
	}
	if !isTransactionUnsupported(errors.New("(IllegalOperation) Transaction numbers are only allowed on a replica set member or mongos")) {
		t.Error("message 'Transaction numbers are only allowed' phải được nhận diện")
	}
}

// Lỗi từ placeOrderSteps luôn đã qua common.ConvertMongoError trước khi
// PlaceOrder quyết định fallback, nên detection phải hoạt động trên lỗi
// đã convert chứ không chỉ trên mongo.CommandError thô.
func TestIsTransactionUnsupported_ConvertedErrors(t *testing.T) {
	converted := common.ConvertMongoError(mongo.CommandError{
		Code:    20,
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	})
	if !isTransactionUnsupported(converted) {
		t.Errorf("CommandError code 20 sau ConvertMongoError phải được nhận diện, nhận được %v", converted)
	}

	otherCmd := common.ConvertMongoError(mongo.CommandError{Code: 11600, Message: "interrupted at shutdown"})
	if isTransactionUnsupported(otherCmd) {
		t.Errorf("CommandError khác code 20 sau convert không phải lỗi transaction, nhận được %v", otherCmd)
	}

	network := common.ConvertMongoError(errors.New("connection refused"))
	if isTransactionUnsupported(network) {
		t.Error("lỗi kết nối sau convert không phải lỗi transaction")
	}
}

func TestToSummary(t *testing.T) {
	id := primitive.NewObjectID()
	order := &models.Order{
		ID:           id,
		OrderCode:    "ORD-20260831-00042",
		CustomerName: "Trần Thị B",
		CreatedAt:    1756600000000,
		OrderStatus:  models.OrderStatusPending,
		TotalAmount:  150,
		Items: []models.OrderItem{
			{Name: "A"}, {Name: "B"},
		},
	}
	summary := toSummary(order, models.PaymentStatusPaid)
	if summary.ID != id.Hex() {
		t.Errorf("id = %q, muốn %q", summary.ID, id.Hex())
	}
	if summary.ItemCount != 2 {
		t.Errorf("itemCount = %d, muốn 2", summary.ItemCount)
	}
	if summary.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("paymentStatus = %q, muốn %q", summary.PaymentStatus, models.PaymentStatusPaid)
	}
	if summary.Total != 150 {
		t.Errorf("total = %v, muốn 150", summary.Total)
	}
}
