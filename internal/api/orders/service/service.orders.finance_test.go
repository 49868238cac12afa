// Package orderssvc - Test calculator tài chính của đơn hàng.
package orderssvc

import (
	"testing"

	models "artshow_crm/internal/api/orders/models"

	"github.com/shopspring/decimal"
)

func TestCalculateOrderTotals_SingleItem(t *testing.T) {
	order := &models.Order{
		Items: []models.OrderItem{
			{Name: "Tranh sơn dầu", Quantity: 2, UnitPrice: 100},
		},
	}
	if err := CalculateOrderTotals(order); err != nil {
		t.Fatalf("CalculateOrderTotals trả lỗi: %v", err)
	}
	if order.Subtotal != 200 {
		t.Errorf("subtotal = %v, muốn 200", order.Subtotal)
	}
	if order.TotalAmount != 200 {
		t.Errorf("totalAmount = %v, muốn 200", order.TotalAmount)
	}
	if order.Items[0].NetQuantity != 2 {
		t.Errorf("netQuantity = %v, muốn 2", order.Items[0].NetQuantity)
	}
	if order.Items[0].AmountBeforeDiscount != 200 {
		t.Errorf("amountBeforeDiscount = %v, muốn 200", order.Items[0].AmountBeforeDiscount)
	}
}

func TestCalculateOrderTotals_MiscChargesAndCancellation(t *testing.T) {
	// 2 x 100 = 200; + phí khung 50 = 250; hủy 1 -> cancelled 100, total 150
	order := &models.Order{
		Items: []models.OrderItem{
			{Name: "Tranh in", Quantity: 2, UnitPrice: 100, CancelledQty: 1},
		},
		MiscCharges: []models.MiscCharge{
			{Label: "Phí đóng khung", Amount: 50},
		},
	}
	if err := CalculateOrderTotals(order); err != nil {
		t.Fatalf("CalculateOrderTotals trả lỗi: %v", err)
	}
	if order.Subtotal != 200 {
		t.Errorf("subtotal = %v, muốn 200", order.Subtotal)
	}
	if order.CancelledAmount != 100 {
		t.Errorf("cancelledAmount = %v, muốn 100", order.CancelledAmount)
	}
	if order.TotalAmount != 150 {
		t.Errorf("totalAmount = %v, muốn 150", order.TotalAmount)
	}
	if order.Items[0].NetQuantity != 1 {
		t.Errorf("netQuantity = %v, muốn 1", order.Items[0].NetQuantity)
	}
	if order.Items[0].AmountBeforeDiscount != 100 {
		t.Errorf("amountBeforeDiscount = %v, muốn 100", order.Items[0].AmountBeforeDiscount)
	}
}

func TestCalculateOrderTotals_Discounts(t *testing.T) {
	// subtotal = 3*100 + 2*50 = 400
	// itemDiscounts = (10 + 100*1) + (0 + 50*0) = 110
	// totalDiscount = 20 (order) + 110 = 130
	// total = 400 - 130 = 270
	order := &models.Order{
		DiscountAmount: 20,
		Items: []models.OrderItem{
			{Name: "A", Quantity: 3, UnitPrice: 100, DiscountAmount: 10, DiscountedQuantity: 1},
			{Name: "B", Quantity: 2, UnitPrice: 50},
		},
	}
	if err := CalculateOrderTotals(order); err != nil {
		t.Fatalf("CalculateOrderTotals trả lỗi: %v", err)
	}
	if order.Subtotal != 400 {
		t.Errorf("subtotal = %v, muốn 400", order.Subtotal)
	}
	if order.TotalDiscountAmount != 130 {
		t.Errorf("totalDiscountAmount = %v, muốn 130", order.TotalDiscountAmount)
	}
	if order.TotalAmount != 270 {
		t.Errorf("totalAmount = %v, muốn 270", order.TotalAmount)
	}
	// amountAfterDiscount dòng A: net 3*100 - 110 = 190
	if order.Items[0].AmountAfterDiscount != 190 {
		t.Errorf("amountAfterDiscount dòng A = %v, muốn 190", order.Items[0].AmountAfterDiscount)
	}
}

func TestCalculateOrderTotals_DecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 kiểu float64 ra 0.30000000000000004; decimal phải ra đúng 0.3
	order := &models.Order{
		Items: []models.OrderItem{
			{Name: "A", Quantity: 1, UnitPrice: 0.1},
			{Name: "B", Quantity: 1, UnitPrice: 0.2},
		},
	}
	if err := CalculateOrderTotals(order); err != nil {
		t.Fatalf("CalculateOrderTotals trả lỗi: %v", err)
	}
	if order.TotalAmount != 0.3 {
		t.Errorf("totalAmount = %v, muốn 0.3", order.TotalAmount)
	}
}

func TestCalculateOrderTotals_CancelledEqualsQuantity(t *testing.T) {
	// Hủy toàn bộ: biên cancelledQty == quantity là hợp lệ, total về 0
	order := &models.Order{
		Items: []models.OrderItem{
			{Name: "A", Quantity: 2, UnitPrice: 75.5, CancelledQty: 2},
		},
	}
	if err := CalculateOrderTotals(order); err != nil {
		t.Fatalf("CalculateOrderTotals trả lỗi: %v", err)
	}
	if order.TotalAmount != 0 {
		t.Errorf("totalAmount = %v, muốn 0", order.TotalAmount)
	}
	if order.Items[0].NetQuantity != 0 {
		t.Errorf("netQuantity = %v, muốn 0", order.Items[0].NetQuantity)
	}
}

func TestCalculateOrderTotals_RejectsInvalidQuantities(t *testing.T) {
	cases := []struct {
		name string
		item models.OrderItem
	}{
		{"số lượng âm", models.OrderItem{Quantity: -1, UnitPrice: 10}},
		{"số lượng hủy âm", models.OrderItem{Quantity: 1, UnitPrice: 10, CancelledQty: -1}},
		{"hủy vượt số lượng đặt", models.OrderItem{Quantity: 1, UnitPrice: 10, CancelledQty: 2}},
	}
	for _, tc := range cases {
		order := &models.Order{Items: []models.OrderItem{tc.item}}
		if err := CalculateOrderTotals(order); err == nil {
			t.Errorf("%s: muốn lỗi, nhận được nil", tc.name)
		}
	}
}

func TestRoundMoney_HalfEven(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2.125", 2.12}, // half-even: làm tròn về chữ số chẵn
		{"2.135", 2.14},
		{"2.145", 2.14},
		{"-2.125", -2.12},
		{"2.10", 2.1},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q): %v", tc.in, err)
		}
		if got := roundMoney(d); got != tc.want {
			t.Errorf("roundMoney(%s) = %v, muốn %v", tc.in, got, tc.want)
		}
	}
}
