// Package orderssvc - các service thuộc domain orders.
//
// service.orders.finance.go chứa calculator tài chính của đơn hàng: thuần,
// deterministic, không side effect. Toàn bộ số học tiền tệ dùng decimal,
// làm tròn half-even 2 chữ số thập phân trước khi ghi về float64.
package orderssvc

import (
	"fmt"

	models "artshow_crm/internal/api/orders/models"
	"artshow_crm/internal/common"

	"github.com/shopspring/decimal"
)

// roundMoney làm tròn một giá trị tiền tệ theo half-even 2 chữ số thập phân.
func roundMoney(d decimal.Decimal) float64 {
	f, _ := d.RoundBank(2).Float64()
	return f
}

// validateOrderItems kiểm tra ràng buộc số lượng trên từng dòng hàng:
// quantity >= 0 và cancelledQty <= quantity (biên bằng nhau là hợp lệ).
func validateOrderItems(items []models.OrderItem) error {
	for i, item := range items {
		if item.Quantity < 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dòng hàng %d: số lượng không được âm", i),
				common.StatusBadRequest,
				nil,
			)
		}
		if item.CancelledQty < 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dòng hàng %d: số lượng hủy không được âm", i),
				common.StatusBadRequest,
				nil,
			)
		}
		if item.CancelledQty > item.Quantity {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dòng hàng %d: số lượng hủy (%d) vượt quá số lượng đặt (%d)", i, item.CancelledQty, item.Quantity),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	return nil
}

// CalculateOrderTotals tính toàn bộ trường tài chính của đơn hàng:
//
//	lineTotal_i      = unitPrice_i * quantity_i
//	subtotal         = sum(lineTotal_i)
//	itemDiscount_i   = discountAmount_i + unitPrice_i * discountedQuantity_i
//	totalDiscount    = orderDiscount + sum(itemDiscount_i)
//	cancelledAmount  = sum(unitPrice_i * cancelledQty_i)
//	miscTotal        = sum(miscCharges.amount)
//	totalAmount      = subtotal - totalDiscount - cancelledAmount + miscTotal
//
// Đồng thời ghi các trường dẫn xuất trên từng item: netQuantity,
// amountBeforeDiscount (theo netQuantity), amountAfterDiscount.
// Mutate trực tiếp order được truyền vào; trả lỗi khi số lượng vi phạm ràng buộc.
func CalculateOrderTotals(order *models.Order) error {
	if err := validateOrderItems(order.Items); err != nil {
		return err
	}

	subtotal := decimal.Zero
	itemDiscounts := decimal.Zero
	cancelledAmount := decimal.Zero

	for i := range order.Items {
		item := &order.Items[i]

		unitPrice := decimal.NewFromFloat(item.UnitPrice)
		quantity := decimal.NewFromInt(item.Quantity)
		discountedQty := decimal.NewFromInt(item.DiscountedQuantity)
		discountAmount := decimal.NewFromFloat(item.DiscountAmount)
		cancelledQty := decimal.NewFromInt(item.CancelledQty)

		lineTotal := unitPrice.Mul(quantity)
		itemDiscount := discountAmount.Add(unitPrice.Mul(discountedQty))
		itemCancelled := unitPrice.Mul(cancelledQty)

		subtotal = subtotal.Add(lineTotal)
		itemDiscounts = itemDiscounts.Add(itemDiscount)
		cancelledAmount = cancelledAmount.Add(itemCancelled)

		netQuantity := item.Quantity - item.CancelledQty
		amountBeforeDiscount := unitPrice.Mul(decimal.NewFromInt(netQuantity))
		item.NetQuantity = netQuantity
		item.AmountBeforeDiscount = roundMoney(amountBeforeDiscount)
		item.AmountAfterDiscount = roundMoney(amountBeforeDiscount.Sub(itemDiscount))
	}

	miscTotal := decimal.Zero
	for _, charge := range order.MiscCharges {
		miscTotal = miscTotal.Add(decimal.NewFromFloat(charge.Amount))
	}

	totalDiscount := decimal.NewFromFloat(order.DiscountAmount).Add(itemDiscounts)
	totalAmount := subtotal.Sub(totalDiscount).Sub(cancelledAmount).Add(miscTotal)

	order.Subtotal = roundMoney(subtotal)
	order.TotalDiscountAmount = roundMoney(totalDiscount)
	order.CancelledAmount = roundMoney(cancelledAmount)
	order.TotalAmount = roundMoney(totalAmount)

	return nil
}
