// Package orderssvc - Test phần thuần của service hóa đơn: dựng model hóa đơn
// và update document gắn đơn hàng.
package orderssvc

import (
	"testing"

	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildInvoiceForOrder(t *testing.T) {
	order := &models.Order{ID: primitive.NewObjectID(), TotalAmount: 250}
	input := &ordersdto.InvoiceInput{
		BillDate:    "2026-08-31",
		PaymentMode: "cash",
		AdvancePaid: 100,
	}

	invoice := buildInvoiceForOrder(order, input)

	if len(invoice.OrderIDs) != 1 || invoice.OrderIDs[0] != order.ID {
		t.Errorf("orderIds = %v, muốn [%s]", invoice.OrderIDs, order.ID.Hex())
	}
	if invoice.TotalAmount != 250 {
		t.Errorf("totalAmount = %v, muốn 250", invoice.TotalAmount)
	}
	if invoice.AdvancePaid != 100 {
		t.Errorf("advancePaid = %v, muốn 100", invoice.AdvancePaid)
	}
	if invoice.BalanceAmount != 150 {
		t.Errorf("balanceAmount = %v, muốn 150", invoice.BalanceAmount)
	}
	// PaymentStatus mặc định pending khi payload không gửi
	if invoice.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("paymentStatus = %q, muốn %q", invoice.PaymentStatus, models.PaymentStatusPending)
	}
}

func TestBuildInvoiceForOrder_ExplicitPaymentStatus(t *testing.T) {
	order := &models.Order{ID: primitive.NewObjectID(), TotalAmount: 100}
	input := &ordersdto.InvoiceInput{AdvancePaid: 100, PaymentStatus: models.PaymentStatusPaid}

	invoice := buildInvoiceForOrder(order, input)
	if invoice.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("paymentStatus = %q, muốn %q", invoice.PaymentStatus, models.PaymentStatusPaid)
	}
	if invoice.BalanceAmount != 0 {
		t.Errorf("balanceAmount = %v, muốn 0", invoice.BalanceAmount)
	}
}

func TestLinkOrderUpdate(t *testing.T) {
	order := &models.Order{ID: primitive.NewObjectID(), TotalAmount: 300}

	updateData := linkOrderUpdate(order, 120)

	if updateData.AddToSet["orderIds"] != order.ID {
		t.Errorf("$addToSet.orderIds = %v, muốn %s", updateData.AddToSet["orderIds"], order.ID.Hex())
	}
	if updateData.Inc["totalAmount"] != 300.0 {
		t.Errorf("$inc.totalAmount = %v, muốn 300", updateData.Inc["totalAmount"])
	}
	if updateData.Inc["advancePaid"] != 120.0 {
		t.Errorf("$inc.advancePaid = %v, muốn 120", updateData.Inc["advancePaid"])
	}
	if updateData.Inc["balanceAmount"] != 180.0 {
		t.Errorf("$inc.balanceAmount = %v, muốn 180", updateData.Inc["balanceAmount"])
	}
	// Không được đụng tới operator khác
	if updateData.Set != nil || updateData.Pull != nil || updateData.Unset != nil {
		t.Error("linkOrderUpdate chỉ được dùng $addToSet và $inc")
	}
}
